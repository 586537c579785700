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

package cbor

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/x448/float16"
)

// ReaderState describes the kind of the next item a Reader will produce
type ReaderState int

const (
	ReaderStateUndefined ReaderState = iota
	ReaderStateUnsignedInteger
	ReaderStateNegativeInteger
	ReaderStateByteString
	ReaderStateStartIndefiniteByteString
	ReaderStateEndIndefiniteByteString
	ReaderStateTextString
	ReaderStateStartIndefiniteTextString
	ReaderStateEndIndefiniteTextString
	ReaderStateStartArray
	ReaderStateEndArray
	ReaderStateStartMap
	ReaderStateEndMap
	ReaderStateTag
	ReaderStateSimpleValue
	ReaderStateHalfFloat
	ReaderStateSingleFloat
	ReaderStateDoubleFloat
	ReaderStateNull
	ReaderStateBoolean
	ReaderStateFinished
)

func (s ReaderState) String() string {
	switch s {
	case ReaderStateUnsignedInteger:
		return "unsigned integer"
	case ReaderStateNegativeInteger:
		return "negative integer"
	case ReaderStateByteString:
		return "byte string"
	case ReaderStateStartIndefiniteByteString:
		return "start indefinite byte string"
	case ReaderStateEndIndefiniteByteString:
		return "end indefinite byte string"
	case ReaderStateTextString:
		return "text string"
	case ReaderStateStartIndefiniteTextString:
		return "start indefinite text string"
	case ReaderStateEndIndefiniteTextString:
		return "end indefinite text string"
	case ReaderStateStartArray:
		return "start array"
	case ReaderStateEndArray:
		return "end array"
	case ReaderStateStartMap:
		return "start map"
	case ReaderStateEndMap:
		return "end map"
	case ReaderStateTag:
		return "tag"
	case ReaderStateSimpleValue:
		return "simple value"
	case ReaderStateHalfFloat:
		return "half-precision float"
	case ReaderStateSingleFloat:
		return "single-precision float"
	case ReaderStateDoubleFloat:
		return "double-precision float"
	case ReaderStateNull:
		return "null"
	case ReaderStateBoolean:
		return "boolean"
	case ReaderStateFinished:
		return "finished"
	default:
		return "undefined"
	}
}

// readerFrame tracks one open container. For definite-length containers
// remaining counts the data items left (a map entry is two items); for
// indefinite containers consumed is used to detect dangling map keys.
type readerFrame struct {
	major     MajorType
	definite  bool
	remaining uint64
	consumed  uint64
}

// Reader is a forward-only pull parser over an immutable byte slice. It
// never copies or modifies the input; byte strings and encoded spans
// returned from it alias the input buffer for definite-length items.
type Reader struct {
	data   []byte
	offset int
	frames []readerFrame
}

// NewReader creates a Reader over the given bytes. The Reader does not
// copy the input; the caller must not modify it while reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Clone returns an independent cursor over the same input buffer. The
// clone starts at the current position with the same open containers;
// advancing it does not disturb the original. This is the lookahead used
// to capture an upcoming value's raw bytes before decoding it.
func (r *Reader) Clone() *Reader {
	frames := make([]readerFrame, len(r.frames))
	copy(frames, r.frames)
	return &Reader{
		data:   r.data,
		offset: r.offset,
		frames: frames,
	}
}

// Position returns the current byte offset into the input
func (r *Reader) Position() int {
	return r.offset
}

func (r *Reader) topFrame() *readerFrame {
	if len(r.frames) == 0 {
		return nil
	}
	return &r.frames[len(r.frames)-1]
}

// itemConsumed records completion of one data item at the current nesting
// level
func (r *Reader) itemConsumed() {
	if f := r.topFrame(); f != nil {
		if f.definite && f.remaining > 0 {
			f.remaining--
		}
		f.consumed++
	}
}

// PeekState returns the kind of the next item without consuming anything.
// It is idempotent and has no effect on the cursor.
func (r *Reader) PeekState() (ReaderState, error) {
	if f := r.topFrame(); f != nil && f.definite && f.remaining == 0 {
		if f.major == MajorTypeMap {
			return ReaderStateEndMap, nil
		}
		return ReaderStateEndArray, nil
	}
	if r.offset >= len(r.data) {
		if len(r.frames) == 0 {
			return ReaderStateFinished, nil
		}
		return ReaderStateUndefined, ErrShortData
	}
	initial := r.data[r.offset]
	addlInfo := addlInfoOf(initial)
	switch majorTypeOf(initial) {
	case MajorTypeUnsignedInt:
		return ReaderStateUnsignedInteger, nil
	case MajorTypeNegativeInt:
		return ReaderStateNegativeInteger, nil
	case MajorTypeByteString:
		if addlInfo == addlInfoIndefinite {
			return ReaderStateStartIndefiniteByteString, nil
		}
		return ReaderStateByteString, nil
	case MajorTypeTextString:
		if addlInfo == addlInfoIndefinite {
			return ReaderStateStartIndefiniteTextString, nil
		}
		return ReaderStateTextString, nil
	case MajorTypeArray:
		return ReaderStateStartArray, nil
	case MajorTypeMap:
		return ReaderStateStartMap, nil
	case MajorTypeTag:
		return ReaderStateTag, nil
	default:
		switch addlInfo {
		case simpleValueFalse, simpleValueTrue:
			return ReaderStateBoolean, nil
		case simpleValueNull:
			return ReaderStateNull, nil
		case addlInfoUint16:
			return ReaderStateHalfFloat, nil
		case addlInfoUint32:
			return ReaderStateSingleFloat, nil
		case addlInfoUint64:
			return ReaderStateDoubleFloat, nil
		case addlInfoIndefinite:
			// Break byte: only legal to close an open indefinite container
			f := r.topFrame()
			if f == nil || f.definite {
				return ReaderStateUndefined, decodeErrorf(
					"unexpected break byte at offset %d",
					r.offset,
				)
			}
			switch f.major {
			case MajorTypeArray:
				return ReaderStateEndArray, nil
			case MajorTypeMap:
				if f.consumed%2 != 0 {
					return ReaderStateUndefined, decodeErrorf(
						"map break after dangling key at offset %d",
						r.offset,
					)
				}
				return ReaderStateEndMap, nil
			case MajorTypeByteString:
				return ReaderStateEndIndefiniteByteString, nil
			default:
				return ReaderStateEndIndefiniteTextString, nil
			}
		default:
			return ReaderStateSimpleValue, nil
		}
	}
}

// expectState peeks the next item kind and fails with a descriptive
// decode error if it doesn't match
func (r *Reader) expectState(want ReaderState) error {
	state, err := r.PeekState()
	if err != nil {
		return err
	}
	if state != want {
		return decodeErrorf("expected %s, found %s", want, state)
	}
	return nil
}

// readArgument consumes the initial byte and any extended argument bytes
// of the next item, returning the argument value. Indefinite-length
// markers and reserved additional-info values are rejected; callers that
// allow them check for addlInfoIndefinite first.
func (r *Reader) readArgument() (uint64, error) {
	if r.offset >= len(r.data) {
		return 0, ErrShortData
	}
	addlInfo := addlInfoOf(r.data[r.offset])
	if addlInfo <= addlInfoDirectMax {
		r.offset++
		return uint64(addlInfo), nil
	}
	var argLen int
	switch addlInfo {
	case addlInfoUint8:
		argLen = 1
	case addlInfoUint16:
		argLen = 2
	case addlInfoUint32:
		argLen = 4
	case addlInfoUint64:
		argLen = 8
	default:
		return 0, decodeErrorf(
			"invalid additional info %d at offset %d",
			addlInfo,
			r.offset,
		)
	}
	if r.offset+1+argLen > len(r.data) {
		return 0, ErrShortData
	}
	var value uint64
	switch argLen {
	case 1:
		value = uint64(r.data[r.offset+1])
	case 2:
		value = uint64(binary.BigEndian.Uint16(r.data[r.offset+1:]))
	case 4:
		value = uint64(binary.BigEndian.Uint32(r.data[r.offset+1:]))
	case 8:
		value = binary.BigEndian.Uint64(r.data[r.offset+1:])
	}
	r.offset += 1 + argLen
	return value, nil
}

// ReadUint reads an unsigned integer (major type 0)
func (r *Reader) ReadUint() (uint64, error) {
	if err := r.expectState(ReaderStateUnsignedInteger); err != nil {
		return 0, err
	}
	value, err := r.readArgument()
	if err != nil {
		return 0, err
	}
	r.itemConsumed()
	return value, nil
}

// ReadInt reads a signed integer from either integer major type. Values
// outside the int64 range produce a decode error; use ReadBigInt for
// full-range negative integers.
func (r *Reader) ReadInt() (int64, error) {
	state, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	switch state {
	case ReaderStateUnsignedInteger:
		value, err := r.readArgument()
		if err != nil {
			return 0, err
		}
		if value > math.MaxInt64 {
			return 0, decodeErrorf("integer %d overflows int64", value)
		}
		r.itemConsumed()
		return int64(value), nil
	case ReaderStateNegativeInteger:
		magnitude, err := r.readArgument()
		if err != nil {
			return 0, err
		}
		// -1 - magnitude; magnitude == MaxInt64 yields exactly MinInt64
		if magnitude > math.MaxInt64 {
			return 0, decodeErrorf(
				"negative integer magnitude %d overflows int64",
				magnitude,
			)
		}
		r.itemConsumed()
		return -1 - int64(magnitude), nil
	default:
		return 0, decodeErrorf("expected integer, found %s", state)
	}
}

// ReadBigInt reads an arbitrary-precision integer: a plain integer item
// or a tagged bignum (tag 2/3 wrapping either a byte string magnitude or
// an unsigned integer)
func (r *Reader) ReadBigInt() (*big.Int, error) {
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch state {
	case ReaderStateUnsignedInteger:
		value, err := r.readArgument()
		if err != nil {
			return nil, err
		}
		r.itemConsumed()
		return new(big.Int).SetUint64(value), nil
	case ReaderStateNegativeInteger:
		magnitude, err := r.readArgument()
		if err != nil {
			return nil, err
		}
		r.itemConsumed()
		ret := new(big.Int).SetUint64(magnitude)
		ret.Add(ret, big.NewInt(1))
		return ret.Neg(ret), nil
	case ReaderStateTag:
		tag, err := r.PeekTag()
		if err != nil {
			return nil, err
		}
		if tag != TagUnsignedBignum && tag != TagNegativeBignum {
			return nil, decodeErrorf("expected bignum tag, found tag %d", tag)
		}
		if _, err := r.ReadTag(); err != nil {
			return nil, err
		}
		contentState, err := r.PeekState()
		if err != nil {
			return nil, err
		}
		magnitude := new(big.Int)
		switch contentState {
		case ReaderStateByteString:
			magBytes, err := r.ReadByteString()
			if err != nil {
				return nil, err
			}
			magnitude.SetBytes(magBytes)
		case ReaderStateUnsignedInteger:
			value, err := r.ReadUint()
			if err != nil {
				return nil, err
			}
			magnitude.SetUint64(value)
		default:
			return nil, decodeErrorf(
				"expected bignum content, found %s",
				contentState,
			)
		}
		if tag == TagNegativeBignum {
			magnitude.Add(magnitude, big.NewInt(1))
			magnitude.Neg(magnitude)
		}
		return magnitude, nil
	default:
		return nil, decodeErrorf("expected integer or bignum, found %s", state)
	}
}

// ReadByteString reads a byte string (major type 2). Definite-length
// strings return a subslice of the input; indefinite-length strings are
// concatenated from their definite-length chunks.
func (r *Reader) ReadByteString() ([]byte, error) {
	return r.readString(
		MajorTypeByteString,
		ReaderStateByteString,
		ReaderStateStartIndefiniteByteString,
	)
}

// ReadTextString reads a text string (major type 3)
func (r *Reader) ReadTextString() (string, error) {
	data, err := r.readString(
		MajorTypeTextString,
		ReaderStateTextString,
		ReaderStateStartIndefiniteTextString,
	)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) readString(
	major MajorType,
	definiteState ReaderState,
	indefiniteState ReaderState,
) ([]byte, error) {
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch state {
	case definiteState:
		length, err := r.readArgument()
		if err != nil {
			return nil, err
		}
		if uint64(len(r.data)-r.offset) < length {
			return nil, ErrShortData
		}
		ret := r.data[r.offset : r.offset+int(length)]
		r.offset += int(length)
		r.itemConsumed()
		return ret, nil
	case indefiniteState:
		// Concatenate definite-length chunks up to the break byte
		r.offset++
		var ret []byte
		for {
			if r.offset >= len(r.data) {
				return nil, ErrShortData
			}
			if r.data[r.offset] == breakByte {
				r.offset++
				r.itemConsumed()
				return ret, nil
			}
			chunkInitial := r.data[r.offset]
			if majorTypeOf(chunkInitial) != major ||
				addlInfoOf(chunkInitial) == addlInfoIndefinite {
				return nil, decodeErrorf(
					"invalid chunk in indefinite-length %s at offset %d",
					major,
					r.offset,
				)
			}
			length, err := r.readArgument()
			if err != nil {
				return nil, err
			}
			if uint64(len(r.data)-r.offset) < length {
				return nil, ErrShortData
			}
			ret = append(ret, r.data[r.offset:r.offset+int(length)]...)
			r.offset += int(length)
		}
	default:
		return nil, decodeErrorf("expected %s, found %s", definiteState, state)
	}
}

// ReadStartArray consumes an array header and returns the declared
// element count, or -1 for an indefinite-length array. Callers detect the
// end of an indefinite array by PeekState returning the end-array state,
// and close either kind with ReadEndArray.
func (r *Reader) ReadStartArray() (int64, error) {
	if err := r.expectState(ReaderStateStartArray); err != nil {
		return 0, err
	}
	return r.startContainer(MajorTypeArray, 1)
}

// ReadStartMap consumes a map header and returns the declared pair count,
// or -1 for an indefinite-length map
func (r *Reader) ReadStartMap() (int64, error) {
	if err := r.expectState(ReaderStateStartMap); err != nil {
		return 0, err
	}
	return r.startContainer(MajorTypeMap, 2)
}

func (r *Reader) startContainer(
	major MajorType,
	itemsPerEntry uint64,
) (int64, error) {
	if len(r.frames) >= maxNestedLevels {
		return 0, ErrMaxDepth
	}
	if addlInfoOf(r.data[r.offset]) == addlInfoIndefinite {
		r.offset++
		r.frames = append(r.frames, readerFrame{major: major})
		return -1, nil
	}
	size, err := r.readArgument()
	if err != nil {
		return 0, err
	}
	if size > math.MaxInt64/itemsPerEntry {
		return 0, decodeErrorf("container size %d too large", size)
	}
	r.frames = append(r.frames, readerFrame{
		major:     major,
		definite:  true,
		remaining: size * itemsPerEntry,
	})
	return int64(size), nil
}

// ReadEndArray closes the current array: for an indefinite-length array
// it consumes the break byte; for a definite-length array it verifies all
// declared elements were read
func (r *Reader) ReadEndArray() error {
	if err := r.expectState(ReaderStateEndArray); err != nil {
		return err
	}
	return r.endContainer()
}

// ReadEndMap closes the current map
func (r *Reader) ReadEndMap() error {
	if err := r.expectState(ReaderStateEndMap); err != nil {
		return err
	}
	return r.endContainer()
}

func (r *Reader) endContainer() error {
	f := r.topFrame()
	if !f.definite {
		// consume break byte
		r.offset++
	}
	r.frames = r.frames[:len(r.frames)-1]
	// The closed container is one item of its parent
	r.itemConsumed()
	return nil
}

// PeekTag returns the next item's tag number without consuming it
func (r *Reader) PeekTag() (uint64, error) {
	if err := r.expectState(ReaderStateTag); err != nil {
		return 0, err
	}
	savedOffset := r.offset
	tag, err := r.readArgument()
	r.offset = savedOffset
	return tag, err
}

// ReadTag consumes a tag header and returns the tag number. The tag's
// content item follows and is read separately; the tag and its content
// together count as a single data item of the enclosing container.
func (r *Reader) ReadTag() (uint64, error) {
	if err := r.expectState(ReaderStateTag); err != nil {
		return 0, err
	}
	return r.readArgument()
}

// ReadBool reads a boolean simple value
func (r *Reader) ReadBool() (bool, error) {
	if err := r.expectState(ReaderStateBoolean); err != nil {
		return false, err
	}
	value := r.data[r.offset] == trueByte
	r.offset++
	r.itemConsumed()
	return value, nil
}

// ReadNull consumes a null simple value
func (r *Reader) ReadNull() error {
	if err := r.expectState(ReaderStateNull); err != nil {
		return err
	}
	r.offset++
	r.itemConsumed()
	return nil
}

// ReadSimpleValue reads any major type 7 simple value (including
// booleans, null, and undefined) and returns its numeric value
func (r *Reader) ReadSimpleValue() (uint8, error) {
	state, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	switch state {
	case ReaderStateSimpleValue, ReaderStateBoolean, ReaderStateNull:
	default:
		return 0, decodeErrorf("expected simple value, found %s", state)
	}
	value, err := r.readArgument()
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint8 {
		return 0, decodeErrorf("simple value %d out of range", value)
	}
	r.itemConsumed()
	return uint8(value), nil
}

// ReadFloat reads a half-, single-, or double-precision float and returns
// it as a float64
func (r *Reader) ReadFloat() (float64, error) {
	state, err := r.PeekState()
	if err != nil {
		return 0, err
	}
	switch state {
	case ReaderStateHalfFloat:
		if r.offset+3 > len(r.data) {
			return 0, ErrShortData
		}
		bits := binary.BigEndian.Uint16(r.data[r.offset+1:])
		r.offset += 3
		r.itemConsumed()
		return float64(float16.Frombits(bits).Float32()), nil
	case ReaderStateSingleFloat:
		if r.offset+5 > len(r.data) {
			return 0, ErrShortData
		}
		bits := binary.BigEndian.Uint32(r.data[r.offset+1:])
		r.offset += 5
		r.itemConsumed()
		return float64(math.Float32frombits(bits)), nil
	case ReaderStateDoubleFloat:
		if r.offset+9 > len(r.data) {
			return 0, ErrShortData
		}
		bits := binary.BigEndian.Uint64(r.data[r.offset+1:])
		r.offset += 9
		r.itemConsumed()
		return math.Float64frombits(bits), nil
	default:
		return 0, decodeErrorf("expected float, found %s", state)
	}
}

// ReadEncodedValue consumes the next complete data item (including any
// tags and nested containers) and returns its exact encoded bytes as a
// subslice of the input. Combined with Clone, this is how callers capture
// the verbatim encoding of a value they are about to decode.
func (r *Reader) ReadEncodedValue() ([]byte, error) {
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch state {
	case ReaderStateEndArray, ReaderStateEndMap,
		ReaderStateEndIndefiniteByteString,
		ReaderStateEndIndefiniteTextString,
		ReaderStateFinished:
		return nil, decodeErrorf("expected value, found %s", state)
	}
	end, err := scanItem(r.data, r.offset, 0)
	if err != nil {
		return nil, err
	}
	ret := r.data[r.offset:end]
	r.offset = end
	r.itemConsumed()
	return ret, nil
}

// scanItem returns the offset just past the complete data item starting
// at off, without interpreting its contents
func scanItem(data []byte, off int, depth int) (int, error) {
	if depth > maxNestedLevels {
		return 0, ErrMaxDepth
	}
	if off >= len(data) {
		return 0, ErrShortData
	}
	initial := data[off]
	major := majorTypeOf(initial)
	addlInfo := addlInfoOf(initial)
	arg, next, err := scanArgument(data, off)
	switch major {
	case MajorTypeUnsignedInt, MajorTypeNegativeInt:
		return next, err
	case MajorTypeByteString, MajorTypeTextString:
		if addlInfo == addlInfoIndefinite {
			return scanIndefiniteString(data, off+1, major)
		}
		if err != nil {
			return 0, err
		}
		if uint64(len(data)-next) < arg {
			return 0, ErrShortData
		}
		return next + int(arg), nil
	case MajorTypeArray, MajorTypeMap:
		count := arg
		if major == MajorTypeMap {
			if arg > math.MaxUint64/2 {
				return 0, decodeErrorf("container size %d too large", arg)
			}
			count = arg * 2
		}
		if addlInfo == addlInfoIndefinite {
			pos := off + 1
			for {
				if pos >= len(data) {
					return 0, ErrShortData
				}
				if data[pos] == breakByte {
					return pos + 1, nil
				}
				pos, err = scanItem(data, pos, depth+1)
				if err != nil {
					return 0, err
				}
			}
		}
		if err != nil {
			return 0, err
		}
		pos := next
		for range count {
			pos, err = scanItem(data, pos, depth+1)
			if err != nil {
				return 0, err
			}
		}
		return pos, nil
	case MajorTypeTag:
		if err != nil {
			return 0, err
		}
		return scanItem(data, next, depth+1)
	default:
		switch addlInfo {
		case addlInfoIndefinite:
			return 0, decodeErrorf("unexpected break byte at offset %d", off)
		default:
			return next, err
		}
	}
}

// scanArgument decodes the argument of the item at off without consuming
// it from a Reader; returns the argument and the offset just past it
func scanArgument(data []byte, off int) (uint64, int, error) {
	addlInfo := addlInfoOf(data[off])
	if addlInfo <= addlInfoDirectMax {
		return uint64(addlInfo), off + 1, nil
	}
	var argLen int
	switch addlInfo {
	case addlInfoUint8:
		argLen = 1
	case addlInfoUint16:
		argLen = 2
	case addlInfoUint32:
		argLen = 4
	case addlInfoUint64:
		argLen = 8
	default:
		return 0, 0, decodeErrorf(
			"invalid additional info %d at offset %d",
			addlInfo,
			off,
		)
	}
	if off+1+argLen > len(data) {
		return 0, 0, ErrShortData
	}
	var value uint64
	switch argLen {
	case 1:
		value = uint64(data[off+1])
	case 2:
		value = uint64(binary.BigEndian.Uint16(data[off+1:]))
	case 4:
		value = uint64(binary.BigEndian.Uint32(data[off+1:]))
	case 8:
		value = binary.BigEndian.Uint64(data[off+1:])
	}
	return value, off + 1 + argLen, nil
}

func scanIndefiniteString(
	data []byte,
	pos int,
	major MajorType,
) (int, error) {
	for {
		if pos >= len(data) {
			return 0, ErrShortData
		}
		if data[pos] == breakByte {
			return pos + 1, nil
		}
		if majorTypeOf(data[pos]) != major ||
			addlInfoOf(data[pos]) == addlInfoIndefinite {
			return 0, decodeErrorf(
				"invalid chunk in indefinite-length %s at offset %d",
				major,
				pos,
			)
		}
		length, next, err := scanArgument(data, pos)
		if err != nil {
			return 0, err
		}
		if uint64(len(data)-next) < length {
			return 0, ErrShortData
		}
		pos = next + int(length)
	}
}
