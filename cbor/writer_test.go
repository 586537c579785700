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

package cbor_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/blinklabs-io/cardano-codec/cbor"

	fxcbor "github.com/fxamacker/cbor/v2"
)

var writeUintTests = []struct {
	value   uint64
	cborHex string
}{
	// Boundaries of each header width
	{0, "00"},
	{23, "17"},
	{24, "1818"},
	{255, "18ff"},
	{256, "190100"},
	{65535, "19ffff"},
	{65536, "1a00010000"},
	{4294967295, "1affffffff"},
	{4294967296, "1b0000000100000000"},
	{math.MaxUint64, "1bffffffffffffffff"},
}

func TestWriteUint(t *testing.T) {
	for _, test := range writeUintTests {
		w := cbor.NewWriter()
		if err := w.WriteUint(test.value); err != nil {
			t.Fatalf("failed to write uint %d: %s", test.value, err)
		}
		if w.EncodeHex() != test.cborHex {
			t.Fatalf(
				"uint %d did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				test.value,
				w.EncodeHex(),
				test.cborHex,
			)
		}
	}
}

// Cross-check the header ladder against an independent encoder
func TestWriteUintMatchesReferenceEncoder(t *testing.T) {
	for _, test := range writeUintTests {
		w := cbor.NewWriter()
		if err := w.WriteUint(test.value); err != nil {
			t.Fatalf("failed to write uint %d: %s", test.value, err)
		}
		expected, err := fxcbor.Marshal(test.value)
		if err != nil {
			t.Fatalf("reference encoder failed for %d: %s", test.value, err)
		}
		if string(w.Encode()) != string(expected) {
			t.Fatalf(
				"uint %d encoding disagrees with reference encoder\n  got: %x\n  wanted: %x",
				test.value,
				w.Encode(),
				expected,
			)
		}
	}
}

var writeIntTests = []struct {
	value   int64
	cborHex string
}{
	{0, "00"},
	{1, "01"},
	{-1, "20"},
	{-24, "37"},
	{-25, "3818"},
	{-256, "38ff"},
	{-257, "390100"},
	{math.MaxInt64, "1b7fffffffffffffff"},
	{math.MinInt64, "3b7fffffffffffffff"},
}

func TestWriteInt(t *testing.T) {
	for _, test := range writeIntTests {
		w := cbor.NewWriter()
		if err := w.WriteInt(test.value); err != nil {
			t.Fatalf("failed to write int %d: %s", test.value, err)
		}
		if w.EncodeHex() != test.cborHex {
			t.Fatalf(
				"int %d did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				test.value,
				w.EncodeHex(),
				test.cborHex,
			)
		}
	}
}

var writeBigIntTests = []struct {
	value   string
	cborHex string
}{
	{"0", "c200"},
	{"1000", "c21903e8"},
	{"18446744073709551615", "c21bffffffffffffffff"},
	// 2^64, the smallest magnitude needing the byte-string form
	{"18446744073709551616", "c249010000000000000000"},
	{"-1", "c300"},
	{"-18446744073709551617", "c349010000000000000000"},
}

func TestWriteBigInt(t *testing.T) {
	for _, test := range writeBigIntTests {
		value, ok := new(big.Int).SetString(test.value, 10)
		if !ok {
			t.Fatalf("bad test value: %s", test.value)
		}
		w := cbor.NewWriter()
		if err := w.WriteBigInt(value); err != nil {
			t.Fatalf("failed to write bignum %s: %s", test.value, err)
		}
		if w.EncodeHex() != test.cborHex {
			t.Fatalf(
				"bignum %s did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				test.value,
				w.EncodeHex(),
				test.cborHex,
			)
		}
	}
}

func TestWriteIndefiniteArray(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteStartArray(0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := int64(1); i <= 3; i++ {
		if err := w.WriteInt(i); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	if err := w.WriteEndArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "9f010203ff"
	if w.EncodeHex() != expected {
		t.Fatalf(
			"indefinite array did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			w.EncodeHex(),
			expected,
		)
	}
}

func TestWriteDefiniteArray(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteStartArray(3); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := int64(1); i <= 3; i++ {
		if err := w.WriteInt(i); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	expected := "83010203"
	if w.EncodeHex() != expected {
		t.Fatalf(
			"definite array did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			w.EncodeHex(),
			expected,
		)
	}
}

func TestWriteIndefiniteMap(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteStartMap(0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteString("a"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteUint(1); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteEndMap(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "bf616101ff"
	if w.EncodeHex() != expected {
		t.Fatalf(
			"indefinite map did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			w.EncodeHex(),
			expected,
		)
	}
}

func TestWriteSimpleValues(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteBool(false); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteBool(true); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteNull(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteUndefined(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "f4f5f6f7"
	if w.EncodeHex() != expected {
		t.Fatalf(
			"simple values did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			w.EncodeHex(),
			expected,
		)
	}
}

func TestWriteFloats(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteFloat32(100000.0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := w.WriteFloat64(1.1); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "fa47c35000fb3ff199999999999a"
	if w.EncodeHex() != expected {
		t.Fatalf(
			"floats did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			w.EncodeHex(),
			expected,
		)
	}
}

func TestWriteEncodedEmpty(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteEncoded(nil); err == nil {
		t.Fatalf("expected error writing empty encoded value")
	}
}

func TestEncodeTo(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteUint(1000); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	short := make([]byte, w.Len()-1)
	if _, err := w.EncodeTo(short); !errors.Is(err, cbor.ErrInsufficientBuffer) {
		t.Fatalf("expected ErrInsufficientBuffer, got %v", err)
	}
	dst := make([]byte, w.Len())
	n, err := w.EncodeTo(dst)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n != w.Len() {
		t.Fatalf("expected %d bytes written, got %d", w.Len(), n)
	}
}

func TestWriterReset(t *testing.T) {
	w := cbor.NewWriter()
	if err := w.WriteUint(42); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("expected empty writer after reset, got %d bytes", w.Len())
	}
	if err := w.WriteBool(true); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if w.EncodeHex() != "f5" {
		t.Fatalf("unexpected encoding after reset: %s", w.EncodeHex())
	}
}
