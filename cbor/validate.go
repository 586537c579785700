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

// ValidateArrayOfNElements reads an array header and verifies it declares
// exactly n elements. Indefinite-length arrays are rejected: ledger
// structures are encoded with definite-length framing.
func ValidateArrayOfNElements(r *Reader, objName string, n uint64) error {
	size, err := r.ReadStartArray()
	if err != nil {
		return err
	}
	if size < 0 {
		return decodeErrorf(
			"%s: expected array of %d elements, found indefinite-length array",
			objName,
			n,
		)
	}
	if uint64(size) != n {
		return decodeErrorf(
			"%s: expected array of %d elements, found %d",
			objName,
			n,
			size,
		)
	}
	return nil
}

// ValidateUintInRange reads an unsigned integer and verifies it falls in
// [min, max]
func ValidateUintInRange(
	r *Reader,
	objName string,
	fieldName string,
	min uint64,
	max uint64,
) (uint64, error) {
	value, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		return 0, decodeErrorf(
			"%s: %s value %d out of range [%d, %d]",
			objName,
			fieldName,
			value,
			min,
			max,
		)
	}
	return value, nil
}

// ValidateEnumValue reads an unsigned integer and verifies it matches the
// expected enum discriminant. nameFn, when non-nil, renders values for
// the error message.
func ValidateEnumValue(
	r *Reader,
	objName string,
	fieldName string,
	expected uint64,
	nameFn func(uint64) string,
) error {
	value, err := r.ReadUint()
	if err != nil {
		return err
	}
	if value != expected {
		if nameFn != nil {
			return decodeErrorf(
				"%s: %s: expected %s (%d), found %s (%d)",
				objName,
				fieldName,
				nameFn(expected),
				expected,
				nameFn(value),
				value,
			)
		}
		return decodeErrorf(
			"%s: %s: expected %d, found %d",
			objName,
			fieldName,
			expected,
			value,
		)
	}
	return nil
}

// ValidateEndArray closes the current array, failing with a decode error
// naming objName if unread elements remain
func ValidateEndArray(r *Reader, objName string) error {
	state, err := r.PeekState()
	if err != nil {
		return err
	}
	if state != ReaderStateEndArray {
		return decodeErrorf(
			"%s: expected end of array, found %s",
			objName,
			state,
		)
	}
	return r.ReadEndArray()
}

// ValidateEndMap closes the current map, failing with a decode error
// naming objName if unread entries remain
func ValidateEndMap(r *Reader, objName string) error {
	state, err := r.PeekState()
	if err != nil {
		return err
	}
	if state != ReaderStateEndMap {
		return decodeErrorf(
			"%s: expected end of map, found %s",
			objName,
			state,
		)
	}
	return r.ReadEndMap()
}

// ReadOptionalSetTag consumes a leading set tag (tag 258) if present and
// reports whether one was found. Sets appear on the wire both with and
// without the tag.
func ReadOptionalSetTag(r *Reader) (bool, error) {
	state, err := r.PeekState()
	if err != nil {
		return false, err
	}
	if state != ReaderStateTag {
		return false, nil
	}
	tag, err := r.PeekTag()
	if err != nil {
		return false, err
	}
	if tag != TagSet {
		return false, nil
	}
	if _, err := r.ReadTag(); err != nil {
		return false, err
	}
	return true, nil
}
