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
	"encoding/hex"
	"errors"
	"math"
	"math/big"
)

// Writer is a forward-only CBOR encoder. Each Write* call appends the
// header and payload bytes for one item to an internal buffer. The Writer
// tracks no nesting state: callers are responsible for emitting matching
// start/end pairs for indefinite-length containers and for writing the
// number of items a definite-length header declares.
type Writer struct {
	data []byte
}

// NewWriter creates an empty Writer
func NewWriter() *Writer {
	return &Writer{}
}

// writeTypeValue appends the initial byte and extended argument for the
// given major type, always selecting the smallest encoding that can
// represent the value. Wire compatibility depends on this exact ladder.
func (w *Writer) writeTypeValue(major MajorType, value uint64) {
	switch {
	case value <= addlInfoDirectMax:
		w.data = append(w.data, byte(major)<<5|byte(value))
	case value <= math.MaxUint8:
		w.data = append(w.data, byte(major)<<5|addlInfoUint8, byte(value))
	case value <= math.MaxUint16:
		w.data = append(w.data, byte(major)<<5|addlInfoUint16)
		w.data = binary.BigEndian.AppendUint16(w.data, uint16(value))
	case value <= math.MaxUint32:
		w.data = append(w.data, byte(major)<<5|addlInfoUint32)
		w.data = binary.BigEndian.AppendUint32(w.data, uint32(value))
	default:
		w.data = append(w.data, byte(major)<<5|addlInfoUint64)
		w.data = binary.BigEndian.AppendUint64(w.data, value)
	}
}

// WriteUint writes an unsigned integer (major type 0)
func (w *Writer) WriteUint(value uint64) error {
	w.writeTypeValue(MajorTypeUnsignedInt, value)
	return nil
}

// WriteInt writes a signed integer. Non-negative values use major type 0;
// negative values use major type 1 with magnitude -1-value. The magnitude
// is computed in unsigned space so that math.MinInt64 does not overflow.
func (w *Writer) WriteInt(value int64) error {
	if value >= 0 {
		w.writeTypeValue(MajorTypeUnsignedInt, uint64(value))
	} else {
		// ^value == -1 - value in two's complement
		w.writeTypeValue(MajorTypeNegativeInt, uint64(^value))
	}
	return nil
}

// WriteBigInt writes an arbitrary-precision integer as a tagged bignum
// (tag 2 for non-negative, tag 3 for negative). Magnitudes that fit in a
// uint64 use the integer argument encoding; larger magnitudes use the
// RFC 8949 byte-string form.
func (w *Writer) WriteBigInt(value *big.Int) error {
	if value == nil {
		return errors.New("value is nil")
	}
	tag := TagUnsignedBignum
	magnitude := value
	if value.Sign() < 0 {
		tag = TagNegativeBignum
		// tag 3 encodes -1 - n
		magnitude = new(big.Int).Neg(value)
		magnitude.Sub(magnitude, big.NewInt(1))
	}
	w.writeTypeValue(MajorTypeTag, tag)
	if magnitude.IsUint64() {
		w.writeTypeValue(MajorTypeUnsignedInt, magnitude.Uint64())
	} else {
		magBytes := magnitude.Bytes()
		w.writeTypeValue(MajorTypeByteString, uint64(len(magBytes)))
		w.data = append(w.data, magBytes...)
	}
	return nil
}

// WriteBytes writes a definite-length byte string (major type 2). The
// bytes are appended verbatim.
func (w *Writer) WriteBytes(value []byte) error {
	w.writeTypeValue(MajorTypeByteString, uint64(len(value)))
	w.data = append(w.data, value...)
	return nil
}

// WriteString writes a definite-length text string (major type 3). The
// string is assumed to already be valid UTF-8; no validation is performed.
func (w *Writer) WriteString(value string) error {
	w.writeTypeValue(MajorTypeTextString, uint64(len(value)))
	w.data = append(w.data, value...)
	return nil
}

// WriteBool writes a boolean simple value
func (w *Writer) WriteBool(value bool) error {
	if value {
		w.data = append(w.data, trueByte)
	} else {
		w.data = append(w.data, falseByte)
	}
	return nil
}

// WriteNull writes the null simple value
func (w *Writer) WriteNull() error {
	w.data = append(w.data, nullByte)
	return nil
}

// WriteUndefined writes the undefined simple value
func (w *Writer) WriteUndefined() error {
	w.data = append(w.data, undefinedByte)
	return nil
}

// WriteFloat32 writes an IEEE 754 single-precision float
func (w *Writer) WriteFloat32(value float32) error {
	w.data = append(w.data, singleFloatByte)
	w.data = binary.BigEndian.AppendUint32(w.data, math.Float32bits(value))
	return nil
}

// WriteFloat64 writes an IEEE 754 double-precision float
func (w *Writer) WriteFloat64(value float64) error {
	w.data = append(w.data, doubleFloatByte)
	w.data = binary.BigEndian.AppendUint64(w.data, math.Float64bits(value))
	return nil
}

// WriteTag writes a tag header (major type 6). The caller must follow it
// with exactly one item for the tag content.
func (w *Writer) WriteTag(tag uint64) error {
	w.writeTypeValue(MajorTypeTag, tag)
	return nil
}

// WriteStartArray writes an array header. A size of zero starts an
// indefinite-length array, which must be closed with WriteEndArray.
// Definite-length arrays are not closed explicitly: the caller writes
// exactly size items after the header.
func (w *Writer) WriteStartArray(size uint64) error {
	if size == 0 {
		w.data = append(w.data, indefiniteArrayByte)
	} else {
		w.writeTypeValue(MajorTypeArray, size)
	}
	return nil
}

// WriteEndArray closes an indefinite-length array with a break byte
func (w *Writer) WriteEndArray() error {
	w.data = append(w.data, breakByte)
	return nil
}

// WriteStartMap writes a map header. A size of zero starts an
// indefinite-length map, closed with WriteEndMap; otherwise size is the
// number of key/value pairs that follow.
func (w *Writer) WriteStartMap(size uint64) error {
	if size == 0 {
		w.data = append(w.data, indefiniteMapByte)
	} else {
		w.writeTypeValue(MajorTypeMap, size)
	}
	return nil
}

// WriteEndMap closes an indefinite-length map. Arrays and maps share the
// same break byte, so this is identical to WriteEndArray; pairing it with
// the matching start call is the caller's contract.
func (w *Writer) WriteEndMap() error {
	return w.WriteEndArray()
}

// WriteEncoded appends already-encoded CBOR verbatim. This is the replay
// path for cached encodings captured by Reader.ReadEncodedValue.
func (w *Writer) WriteEncoded(data []byte) error {
	if len(data) == 0 {
		return errors.New("encoded value is empty")
	}
	w.data = append(w.data, data...)
	return nil
}

// Encode returns a copy of the encoded bytes
func (w *Writer) Encode() []byte {
	ret := make([]byte, len(w.data))
	copy(ret, w.data)
	return ret
}

// EncodeHex returns the encoded bytes as a hex string
func (w *Writer) EncodeHex() string {
	return hex.EncodeToString(w.data)
}

// EncodeTo copies the encoded bytes into dst and returns the number of
// bytes written. If dst is too small, ErrInsufficientBuffer is returned
// and nothing is written.
func (w *Writer) EncodeTo(dst []byte) (int, error) {
	if len(dst) < len(w.data) {
		return 0, ErrInsufficientBuffer
	}
	return copy(dst, w.data), nil
}

// Len returns the current encoded size in bytes
func (w *Writer) Len() int {
	return len(w.data)
}

// Reset discards the internal buffer so the Writer can be reused for an
// independent encode
func (w *Writer) Reset() {
	w.data = nil
}
