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

// MajorType is the 3-bit major type from the high bits of a CBOR item's
// initial byte
type MajorType byte

const (
	MajorTypeUnsignedInt MajorType = 0
	MajorTypeNegativeInt MajorType = 1
	MajorTypeByteString  MajorType = 2
	MajorTypeTextString  MajorType = 3
	MajorTypeArray       MajorType = 4
	MajorTypeMap         MajorType = 5
	MajorTypeTag         MajorType = 6
	MajorTypeSimple      MajorType = 7
)

func (m MajorType) String() string {
	switch m {
	case MajorTypeUnsignedInt:
		return "unsigned integer"
	case MajorTypeNegativeInt:
		return "negative integer"
	case MajorTypeByteString:
		return "byte string"
	case MajorTypeTextString:
		return "text string"
	case MajorTypeArray:
		return "array"
	case MajorTypeMap:
		return "map"
	case MajorTypeTag:
		return "tag"
	case MajorTypeSimple:
		return "simple value"
	default:
		return "unknown"
	}
}

// Additional-info values from the low 5 bits of an item's initial byte.
// Values <= 23 encode the argument directly; 24-27 signal a 1/2/4/8-byte
// big-endian argument; 31 signals indefinite length (or a break byte for
// major type 7).
const (
	addlInfoDirectMax  = 23
	addlInfoUint8      = 24
	addlInfoUint16     = 25
	addlInfoUint32     = 26
	addlInfoUint64     = 27
	addlInfoIndefinite = 31
)

// Simple values (major type 7)
const (
	simpleValueFalse     = 20
	simpleValueTrue      = 21
	simpleValueNull      = 22
	simpleValueUndefined = 23
)

// Fixed initial bytes
const (
	indefiniteByteStringByte = 0x5f
	indefiniteTextStringByte = 0x7f
	indefiniteArrayByte      = 0x9f
	indefiniteMapByte        = 0xbf
	falseByte                = 0xf4
	trueByte                 = 0xf5
	nullByte                 = 0xf6
	undefinedByte            = 0xf7
	halfFloatByte            = 0xf9
	singleFloatByte          = 0xfa
	doubleFloatByte          = 0xfb
	breakByte                = 0xff
)

func majorTypeOf(b byte) MajorType {
	return MajorType(b >> 5)
}

func addlInfoOf(b byte) byte {
	return b & 0x1f
}
