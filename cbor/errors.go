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
	"errors"
	"fmt"
)

var (
	// ErrShortData is returned when the input ends before a complete item
	ErrShortData = errors.New("unexpected end of CBOR data")

	// ErrInsufficientBuffer is returned by Writer.EncodeTo when the
	// destination cannot hold the encoded output
	ErrInsufficientBuffer = errors.New("insufficient buffer size")

	// ErrMaxDepth is returned when nesting exceeds maxNestedLevels. This
	// matches the limit used elsewhere in the wild: blocks have been seen
	// with more than 64 nested levels, but 256 is plenty
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// maxNestedLevels bounds container nesting in the Reader
const maxNestedLevels = 256

// DecodeError describes malformed or unexpected CBOR input
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Message
}

func decodeErrorf(format string, args ...any) error {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}

// IsDecodeError reports whether err (or anything it wraps) is a DecodeError
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}
