// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jsonwriter provides a forward-only JSON emitter that validates
// structural correctness as it goes: values may only be written where the
// grammar allows one, object members always get a property name first,
// and containers must be closed in the order they were opened.
package jsonwriter

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Format selects the output layout
type Format int

const (
	// FormatCompact emits JSON with no whitespace
	FormatCompact Format = iota
	// FormatPretty emits JSON with newlines and two-space indentation
	FormatPretty
)

// ErrMaxDepth is returned when container nesting exceeds maxNestedLevels
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

const maxNestedLevels = 1024

const indentUnit = "  "

type contextKind int

const (
	contextRoot contextKind = iota
	contextObject
	contextArray
)

type frame struct {
	kind  contextKind
	items int
}

// Writer builds a single JSON value. The zero value is not usable; create
// one with NewWriter.
type Writer struct {
	data            []byte
	format          Format
	frames          []frame
	pendingProperty bool
}

// NewWriter creates a Writer producing the given format
func NewWriter(format Format) *Writer {
	return &Writer{
		format: format,
		frames: []frame{{kind: contextRoot}},
	}
}

func (w *Writer) topFrame() *frame {
	return &w.frames[len(w.frames)-1]
}

func stateErrorf(format string, args ...any) error {
	return fmt.Errorf("json: "+format, args...)
}

// beginValue validates that a value is allowed at the current position
// and emits any separator and layout bytes that precede it
func (w *Writer) beginValue() error {
	f := w.topFrame()
	switch f.kind {
	case contextRoot:
		if f.items > 0 {
			return stateErrorf("only one top-level value is allowed")
		}
	case contextObject:
		if !w.pendingProperty {
			return stateErrorf("expected property name inside object")
		}
	case contextArray:
		if f.items > 0 {
			w.data = append(w.data, ',')
		}
		w.newlineAndIndent()
	}
	return nil
}

// endValue records a completed value in the current context
func (w *Writer) endValue() {
	w.topFrame().items++
	w.pendingProperty = false
}

func (w *Writer) newlineAndIndent() {
	if w.format != FormatPretty {
		return
	}
	w.data = append(w.data, '\n')
	for range len(w.frames) - 1 {
		w.data = append(w.data, indentUnit...)
	}
}

// WritePropertyName writes the name of the next object member. It is only
// valid directly inside an object, and each name must be followed by
// exactly one value.
func (w *Writer) WritePropertyName(name string) error {
	f := w.topFrame()
	if f.kind != contextObject {
		return stateErrorf("property name outside of object")
	}
	if w.pendingProperty {
		return stateErrorf("property %q has no value", name)
	}
	if f.items > 0 {
		w.data = append(w.data, ',')
	}
	w.newlineAndIndent()
	w.appendQuoted(name)
	w.data = append(w.data, ':')
	if w.format == FormatPretty {
		w.data = append(w.data, ' ')
	}
	w.pendingProperty = true
	return nil
}

// WriteStartObject opens an object, closed by WriteEndObject
func (w *Writer) WriteStartObject() error {
	return w.startContainer(contextObject, '{')
}

// WriteStartArray opens an array, closed by WriteEndArray
func (w *Writer) WriteStartArray() error {
	return w.startContainer(contextArray, '[')
}

func (w *Writer) startContainer(kind contextKind, open byte) error {
	if len(w.frames) >= maxNestedLevels {
		return ErrMaxDepth
	}
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = append(w.data, open)
	w.pendingProperty = false
	w.frames = append(w.frames, frame{kind: kind})
	return nil
}

// WriteEndObject closes the innermost object
func (w *Writer) WriteEndObject() error {
	return w.endContainer(contextObject, '}')
}

// WriteEndArray closes the innermost array
func (w *Writer) WriteEndArray() error {
	return w.endContainer(contextArray, ']')
}

func (w *Writer) endContainer(kind contextKind, close byte) error {
	f := w.topFrame()
	if f.kind != kind {
		return stateErrorf("mismatched container close")
	}
	if w.pendingProperty {
		return stateErrorf("dangling property name")
	}
	items := f.items
	w.frames = w.frames[:len(w.frames)-1]
	if items > 0 {
		w.newlineAndIndent()
	}
	w.data = append(w.data, close)
	w.endValue()
	return nil
}

// WriteString writes a string value with full escaping
func (w *Writer) WriteString(value string) error {
	if err := w.beginValue(); err != nil {
		return err
	}
	w.appendQuoted(value)
	w.endValue()
	return nil
}

// WriteUint writes an unsigned integer value
func (w *Writer) WriteUint(value uint64) error {
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = strconv.AppendUint(w.data, value, 10)
	w.endValue()
	return nil
}

// WriteInt writes a signed integer value
func (w *Writer) WriteInt(value int64) error {
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = strconv.AppendInt(w.data, value, 10)
	w.endValue()
	return nil
}

// WriteBigInt writes an arbitrary-precision integer value
func (w *Writer) WriteBigInt(value *big.Int) error {
	if value == nil {
		return errors.New("value is nil")
	}
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = value.Append(w.data, 10)
	w.endValue()
	return nil
}

// WriteFloat writes a number value. NaN and infinities have no JSON
// representation and are rejected.
func (w *Writer) WriteFloat(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return stateErrorf("%g has no JSON representation", value)
	}
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = strconv.AppendFloat(w.data, value, 'g', -1, 64)
	w.endValue()
	return nil
}

// WriteBool writes a boolean value
func (w *Writer) WriteBool(value bool) error {
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = strconv.AppendBool(w.data, value)
	w.endValue()
	return nil
}

// WriteNull writes a null value
func (w *Writer) WriteNull() error {
	if err := w.beginValue(); err != nil {
		return err
	}
	w.data = append(w.data, "null"...)
	w.endValue()
	return nil
}

// Encode returns the JSON produced so far as a string. It fails if any
// container is still open or no value has been written.
func (w *Writer) Encode() (string, error) {
	if len(w.frames) != 1 {
		return "", stateErrorf("unclosed container")
	}
	if w.frames[0].items == 0 {
		return "", stateErrorf("no value written")
	}
	return string(w.data), nil
}

// Reset discards all output and state so the Writer can build a new value
func (w *Writer) Reset() {
	w.data = nil
	w.frames = w.frames[:0]
	w.frames = append(w.frames, frame{kind: contextRoot})
	w.pendingProperty = false
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends value as a quoted JSON string, escaping quotes,
// backslashes, and control characters
func (w *Writer) appendQuoted(value string) {
	w.data = append(w.data, '"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '"':
			w.data = append(w.data, '\\', '"')
		case c == '\\':
			w.data = append(w.data, '\\', '\\')
		case c == '\b':
			w.data = append(w.data, '\\', 'b')
		case c == '\f':
			w.data = append(w.data, '\\', 'f')
		case c == '\n':
			w.data = append(w.data, '\\', 'n')
		case c == '\r':
			w.data = append(w.data, '\\', 'r')
		case c == '\t':
			w.data = append(w.data, '\\', 't')
		case c < 0x20:
			w.data = append(
				w.data,
				'\\', 'u', '0', '0',
				hexDigits[c>>4],
				hexDigits[c&0xf],
			)
		default:
			w.data = append(w.data, c)
		}
	}
	w.data = append(w.data, '"')
}
