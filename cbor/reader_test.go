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
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"

	"github.com/blinklabs-io/cardano-codec/cbor"
)

func decodeHex(t *testing.T, cborHex string) []byte {
	t.Helper()
	data, err := hex.DecodeString(cborHex)
	if err != nil {
		t.Fatalf("bad test data %s: %s", cborHex, err)
	}
	return data
}

func TestReadUint(t *testing.T) {
	for _, test := range writeUintTests {
		r := cbor.NewReader(decodeHex(t, test.cborHex))
		value, err := r.ReadUint()
		if err != nil {
			t.Fatalf("failed to read uint from %s: %s", test.cborHex, err)
		}
		if value != test.value {
			t.Fatalf(
				"did not decode expected uint from %s\n  got: %d\n  wanted: %d",
				test.cborHex,
				value,
				test.value,
			)
		}
	}
}

func TestReadInt(t *testing.T) {
	for _, test := range writeIntTests {
		r := cbor.NewReader(decodeHex(t, test.cborHex))
		value, err := r.ReadInt()
		if err != nil {
			t.Fatalf("failed to read int from %s: %s", test.cborHex, err)
		}
		if value != test.value {
			t.Fatalf(
				"did not decode expected int from %s\n  got: %d\n  wanted: %d",
				test.cborHex,
				value,
				test.value,
			)
		}
	}
}

func TestReadIntOverflow(t *testing.T) {
	// magnitude MaxInt64+1 encodes -(2^63)-1, one past int64 range
	r := cbor.NewReader(decodeHex(t, "3b8000000000000000"))
	if _, err := r.ReadInt(); !cbor.IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestReadBigInt(t *testing.T) {
	for _, test := range writeBigIntTests {
		r := cbor.NewReader(decodeHex(t, test.cborHex))
		value, err := r.ReadBigInt()
		if err != nil {
			t.Fatalf("failed to read bignum from %s: %s", test.cborHex, err)
		}
		if value.String() != test.value {
			t.Fatalf(
				"did not decode expected bignum from %s\n  got: %s\n  wanted: %s",
				test.cborHex,
				value.String(),
				test.value,
			)
		}
	}
	// Plain integers also satisfy ReadBigInt
	r := cbor.NewReader(decodeHex(t, "3b7fffffffffffffff"))
	value, err := r.ReadBigInt()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !value.IsInt64() || value.Int64() != math.MinInt64 {
		t.Fatalf("did not decode expected value, got %s", value.String())
	}
}

func TestPeekStateIsSideEffectFree(t *testing.T) {
	r := cbor.NewReader(decodeHex(t, "83010203"))
	for range 5 {
		state, err := r.PeekState()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if state != cbor.ReaderStateStartArray {
			t.Fatalf("expected start array state, got %s", state)
		}
		if r.Position() != 0 {
			t.Fatalf("peek moved the cursor to %d", r.Position())
		}
	}
}

func TestReadDefiniteArray(t *testing.T) {
	r := cbor.NewReader(decodeHex(t, "83010203"))
	size, err := r.ReadStartArray()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if size != 3 {
		t.Fatalf("expected 3 elements, got %d", size)
	}
	for i := uint64(1); i <= 3; i++ {
		value, err := r.ReadUint()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != i {
			t.Fatalf("expected %d, got %d", i, value)
		}
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	state, err := r.PeekState()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if state != cbor.ReaderStateFinished {
		t.Fatalf("expected finished state, got %s", state)
	}
}

func TestReadIndefiniteArray(t *testing.T) {
	r := cbor.NewReader(decodeHex(t, "9f010203ff"))
	size, err := r.ReadStartArray()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if size != -1 {
		t.Fatalf("expected indefinite-length marker, got %d", size)
	}
	var items []uint64
	for {
		state, err := r.PeekState()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if state == cbor.ReaderStateEndArray {
			break
		}
		value, err := r.ReadUint()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		items = append(items, value)
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(items) != 3 || items[0] != 1 || items[1] != 2 || items[2] != 3 {
		t.Fatalf("did not decode expected items: %v", items)
	}
}

func TestReadDefiniteArrayPrematureEnd(t *testing.T) {
	r := cbor.NewReader(decodeHex(t, "830102"))
	if _, err := r.ReadStartArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for range 2 {
		if _, err := r.ReadUint(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	if _, err := r.ReadUint(); !errors.Is(err, cbor.ErrShortData) {
		t.Fatalf("expected ErrShortData, got %v", err)
	}
}

func TestReadIndefiniteByteString(t *testing.T) {
	// (_ h'0102', h'03')
	r := cbor.NewReader(decodeHex(t, "5f4201024103ff"))
	value, err := r.ReadByteString()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(value, []byte{1, 2, 3}) {
		t.Fatalf("did not decode expected bytes: %x", value)
	}
}

func TestReadIndefiniteTextString(t *testing.T) {
	// (_ "strea", "ming")
	r := cbor.NewReader(decodeHex(t, "7f657374726561646d696e67ff"))
	value, err := r.ReadTextString()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "streaming" {
		t.Fatalf("did not decode expected string: %q", value)
	}
}

func TestReadMap(t *testing.T) {
	// {1: 2, 3: 4}
	r := cbor.NewReader(decodeHex(t, "a201020304"))
	size, err := r.ReadStartMap()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if size != 2 {
		t.Fatalf("expected 2 pairs, got %d", size)
	}
	for range 4 {
		if _, err := r.ReadUint(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	if err := r.ReadEndMap(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestReadIndefiniteMapDanglingKey(t *testing.T) {
	// {_ 1: } with the value missing before the break
	r := cbor.NewReader(decodeHex(t, "bf01ff"))
	if _, err := r.ReadStartMap(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := r.ReadUint(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := r.PeekState(); !cbor.IsDecodeError(err) {
		t.Fatalf("expected decode error for dangling key, got %v", err)
	}
}

func TestReadTag(t *testing.T) {
	// tag 258 wrapping [1]
	r := cbor.NewReader(decodeHex(t, "d901028101"))
	tag, err := r.PeekTag()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tag != cbor.TagSet {
		t.Fatalf("expected tag %d, got %d", cbor.TagSet, tag)
	}
	if r.Position() != 0 {
		t.Fatalf("peek moved the cursor to %d", r.Position())
	}
	if _, err := r.ReadTag(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	size, err := r.ReadStartArray()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if size != 1 {
		t.Fatalf("expected 1 element, got %d", size)
	}
}

func TestReadFloats(t *testing.T) {
	tests := []struct {
		cborHex string
		value   float64
	}{
		{"f93c00", 1.0},           // half
		{"f9c400", -4.0},          // half
		{"fa47c35000", 100000.0},  // single
		{"fb3ff199999999999a", 1.1}, // double
	}
	for _, test := range tests {
		r := cbor.NewReader(decodeHex(t, test.cborHex))
		value, err := r.ReadFloat()
		if err != nil {
			t.Fatalf("failed to read float from %s: %s", test.cborHex, err)
		}
		if value != test.value {
			t.Fatalf(
				"did not decode expected float from %s\n  got: %g\n  wanted: %g",
				test.cborHex,
				value,
				test.value,
			)
		}
	}
}

func TestReadSimpleValues(t *testing.T) {
	r := cbor.NewReader(decodeHex(t, "f4f5f6f7"))
	value, err := r.ReadBool()
	if err != nil || value {
		t.Fatalf("expected false, got %v (%v)", value, err)
	}
	value, err = r.ReadBool()
	if err != nil || !value {
		t.Fatalf("expected true, got %v (%v)", value, err)
	}
	if err := r.ReadNull(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	simple, err := r.ReadSimpleValue()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if simple != 23 {
		t.Fatalf("expected simple value 23, got %d", simple)
	}
}

func TestReadEncodedValue(t *testing.T) {
	// [tag 121([1, 2]), 3] - the first element spans tag and nested array
	data := decodeHex(t, "82d87982010203")
	r := cbor.NewReader(data)
	if _, err := r.ReadStartArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	encoded, err := r.ReadEncodedValue()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(encoded) != "d879820102" {
		t.Fatalf("did not capture expected span: %x", encoded)
	}
	value, err := r.ReadUint()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != 3 {
		t.Fatalf("expected 3 after captured span, got %d", value)
	}
	if err := r.ReadEndArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestCloneLookahead(t *testing.T) {
	data := decodeHex(t, "83010203")
	r := cbor.NewReader(data)
	if _, err := r.ReadStartArray(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	clone := r.Clone()
	for i := uint64(1); i <= 3; i++ {
		value, err := clone.ReadUint()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != i {
			t.Fatalf("expected %d, got %d", i, value)
		}
	}
	// Original cursor is untouched by the clone's reads
	value, err := r.ReadUint()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != 1 {
		t.Fatalf("clone reads disturbed the original reader, got %d", value)
	}
}

func TestReadMaxDepth(t *testing.T) {
	data := bytes.Repeat([]byte{0x81}, 300)
	data = append(data, 0x00)
	r := cbor.NewReader(data)
	var err error
	for err == nil {
		_, err = r.ReadStartArray()
	}
	if !errors.Is(err, cbor.ErrMaxDepth) {
		t.Fatalf("expected ErrMaxDepth, got %v", err)
	}
	// The same bound applies to structural scans
	r = cbor.NewReader(data)
	if _, err := r.ReadEncodedValue(); !errors.Is(err, cbor.ErrMaxDepth) {
		t.Fatalf("expected ErrMaxDepth from encoded-value scan, got %v", err)
	}
}

func TestReadShortData(t *testing.T) {
	tests := []string{
		"18",       // uint header without argument
		"440102",   // byte string shorter than declared
		"9f0102",   // indefinite array without break
		"fb000000", // truncated double
	}
	for _, cborHex := range tests {
		r := cbor.NewReader(decodeHex(t, cborHex))
		_, err := r.ReadEncodedValue()
		if !errors.Is(err, cbor.ErrShortData) {
			t.Fatalf("expected ErrShortData for %s, got %v", cborHex, err)
		}
	}
}

func TestUnexpectedBreakByte(t *testing.T) {
	r := cbor.NewReader([]byte{0xff})
	if _, err := r.PeekState(); !cbor.IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDumpStructure(t *testing.T) {
	dump, err := cbor.DumpStructure(decodeHex(t, "82d87982010203"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dump == "" {
		t.Fatalf("expected non-empty dump")
	}
}
