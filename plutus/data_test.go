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

package plutus_test

import (
	"encoding/hex"
	"math/big"
	"sync"
	"testing"

	"github.com/blinklabs-io/cardano-codec/plutus"

	"go.uber.org/goleak"
)

// Swap datum captured from a mainnet transaction
const testDatumHex = "d8799fd8799fd8799f581cb255e2283f9b495dd663b841090c42bc5a5103283fc2aef5c6cd2f5cffd8799fd8799fd8799f581c07d8b4b15e9609e76a38b25637900d60cdf13a6abce984757bbc1349ffffffffd8799f581cf5808c2c990d86da54bfc97d89cee6efa20cd8461616359478d96b4c582073e1518e92f367fd5820ac2da1d40ab24fbca1d6cb2c28121ad92f57aff8abceff1b0000000148f3f3579fd8799fd8799f4040ff1a094f78d8ffd8799fd8799f581cf13ac4d66b3ee19a6aa0f2a22298737bd907cc95121662fc971b527546535452494b45ff1af7c5c601ffffff"

func decodeHex(t *testing.T, cborHex string) []byte {
	t.Helper()
	data, err := hex.DecodeString(cborHex)
	if err != nil {
		t.Fatalf("bad test data %s: %s", cborHex, err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	testData := decodeHex(t, testDatumHex)
	decoded, err := plutus.DecodeBytes(testData)
	if err != nil {
		t.Fatalf("failed to decode datum: %s", err)
	}
	encoded, err := plutus.Encode(decoded)
	if err != nil {
		t.Fatalf("failed to encode datum: %s", err)
	}
	if hex.EncodeToString(encoded) != testDatumHex {
		t.Fatalf(
			"datum did not round-trip\n  got: %x\n  wanted: %s",
			encoded,
			testDatumHex,
		)
	}
}

// A value decoded from a non-canonical encoding must replay the original
// bytes exactly, not our preferred framing
func TestNonCanonicalReplay(t *testing.T) {
	// definite-length array with a non-minimal header on the first item
	testData := decodeHex(t, "8318010203")
	decoded, err := plutus.DecodeBytes(testData)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	encoded, err := plutus.Encode(decoded)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "8318010203" {
		t.Fatalf(
			"non-canonical encoding was not replayed\n  got: %x\n  wanted: 8318010203",
			encoded,
		)
	}
	// Dropping the captured encoding forces our framing
	plutus.ClearCache(decoded)
	encoded, err = plutus.Encode(decoded)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "9f010203ff" {
		t.Fatalf(
			"fresh encoding did not use expected framing\n  got: %x\n  wanted: 9f010203ff",
			encoded,
		)
	}
}

// Mutation drops the captured encoding so the change shows up on encode
func TestMutationInvalidatesCache(t *testing.T) {
	testData := decodeHex(t, "8318010203")
	decoded, err := plutus.DecodeBytes(testData)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	list, ok := decoded.(*plutus.List)
	if !ok {
		t.Fatalf("expected list, got %T", decoded)
	}
	list.Add(plutus.NewIntegerFromInt64(4))
	encoded, err := plutus.Encode(list)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "9f01020304ff" {
		t.Fatalf(
			"mutation was not reflected on encode\n  got: %x\n  wanted: 9f01020304ff",
			encoded,
		)
	}
}

func TestRemoveInvalidatesCache(t *testing.T) {
	testData := decodeHex(t, "8318010203")
	decoded, err := plutus.DecodeBytes(testData)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	list, ok := decoded.(*plutus.List)
	if !ok {
		t.Fatalf("expected list, got %T", decoded)
	}
	list.Remove(1)
	encoded, err := plutus.Encode(list)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "9f0103ff" {
		t.Fatalf(
			"removal was not reflected on encode\n  got: %x\n  wanted: 9f0103ff",
			encoded,
		)
	}
}

func TestMapDelete(t *testing.T) {
	decoded, err := plutus.DecodeBytes(decodeHex(t, "bf01020304ff"))
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	m, ok := decoded.(*plutus.Map)
	if !ok {
		t.Fatalf("expected map, got %T", decoded)
	}
	if !m.Delete(plutus.NewIntegerFromInt64(1)) {
		t.Fatalf("expected key to be deleted")
	}
	if m.Delete(plutus.NewIntegerFromInt64(1)) {
		t.Fatalf("did not expect a second deletion")
	}
	encoded, err := plutus.Encode(m)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "bf0304ff" {
		t.Fatalf(
			"deletion was not reflected on encode\n  got: %x\n  wanted: bf0304ff",
			encoded,
		)
	}
}

func TestDatumHash(t *testing.T) {
	expectedHash := "4dfec91f63f946d7c91af0041e5d92a45531790a4a104637dd8691f46fdce842"
	decoded, err := plutus.DecodeBytes(decodeHex(t, testDatumHex))
	if err != nil {
		t.Fatalf("failed to decode datum: %s", err)
	}
	datumHash, err := plutus.Hash(decoded)
	if err != nil {
		t.Fatalf("failed to hash datum: %s", err)
	}
	if datumHash.String() != expectedHash {
		t.Fatalf(
			"did not get expected datum hash: got %s, wanted %s",
			datumHash.String(),
			expectedHash,
		)
	}
}

var constrEncodingTests = []struct {
	alternative uint64
	cborHex     string
}{
	{0, "d8799fff"},
	{6, "d87f9fff"},
	{7, "d905009fff"},
	{127, "d905789fff"},
	// Beyond the compact ranges the general form carries the alternative
	{128, "d866821880" + "9fff"},
}

func TestConstrEncoding(t *testing.T) {
	for _, test := range constrEncodingTests {
		encoded, err := plutus.Encode(plutus.NewConstr(test.alternative))
		if err != nil {
			t.Fatalf(
				"failed to encode constr %d: %s",
				test.alternative,
				err,
			)
		}
		if hex.EncodeToString(encoded) != test.cborHex {
			t.Fatalf(
				"constr %d did not encode to expected CBOR\n  got: %x\n  wanted: %s",
				test.alternative,
				encoded,
				test.cborHex,
			)
		}
	}
}

func TestConstrDecoding(t *testing.T) {
	for _, test := range constrEncodingTests {
		decoded, err := plutus.DecodeBytes(decodeHex(t, test.cborHex))
		if err != nil {
			t.Fatalf("failed to decode %s: %s", test.cborHex, err)
		}
		constr, ok := decoded.(*plutus.Constr)
		if !ok {
			t.Fatalf("expected constr, got %T", decoded)
		}
		if constr.Alternative() != test.alternative {
			t.Fatalf(
				"did not decode expected alternative from %s\n  got: %d\n  wanted: %d",
				test.cborHex,
				constr.Alternative(),
				test.alternative,
			)
		}
	}
}

func TestDecodeMap(t *testing.T) {
	decoded, err := plutus.DecodeBytes(decodeHex(t, "bf01020304ff"))
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	m, ok := decoded.(*plutus.Map)
	if !ok {
		t.Fatalf("expected map, got %T", decoded)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
	value, found := m.Get(plutus.NewIntegerFromInt64(3))
	if !found {
		t.Fatalf("expected key to be found")
	}
	if !plutus.Equal(value, plutus.NewIntegerFromInt64(4)) {
		t.Fatalf("did not find expected value")
	}
}

func TestDecodeBigInteger(t *testing.T) {
	decoded, err := plutus.DecodeBytes(
		decodeHex(t, "c249010000000000000000"),
	)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	integer, ok := decoded.(*plutus.Integer)
	if !ok {
		t.Fatalf("expected integer, got %T", decoded)
	}
	expected, _ := new(big.Int).SetString("18446744073709551616", 10)
	if integer.Value().Cmp(expected) != 0 {
		t.Fatalf("did not decode expected value: %s", integer.Value())
	}
	// Too big for a plain integer item, so it re-encodes as a bignum
	encoded, err := plutus.Encode(decoded)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(encoded) != "c249010000000000000000" {
		t.Fatalf("did not encode expected CBOR: %x", encoded)
	}
}

func TestDecodeTrailingData(t *testing.T) {
	if _, err := plutus.DecodeBytes(decodeHex(t, "0001")); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestEqual(t *testing.T) {
	a := plutus.NewConstr(
		1,
		plutus.NewByteString([]byte{1, 2, 3}),
		plutus.NewList(
			plutus.NewIntegerFromInt64(-5),
			plutus.NewMap(plutus.MapPair{
				Key:   plutus.NewIntegerFromInt64(1),
				Value: plutus.NewByteString(nil),
			}),
		),
	)
	b := plutus.NewConstr(
		1,
		plutus.NewByteString([]byte{1, 2, 3}),
		plutus.NewList(
			plutus.NewIntegerFromInt64(-5),
			plutus.NewMap(plutus.MapPair{
				Key:   plutus.NewIntegerFromInt64(1),
				Value: plutus.NewByteString(nil),
			}),
		),
	)
	if !plutus.Equal(a, b) {
		t.Fatalf("expected values to be equal")
	}
	b.SetAlternative(2)
	if plutus.Equal(a, b) {
		t.Fatalf("did not expect values to be equal")
	}
}

// Independent readers over shared input are safe to use concurrently
func TestConcurrentDecode(t *testing.T) {
	defer goleak.VerifyNone(t)
	testData := decodeHex(t, testDatumHex)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decoded, err := plutus.DecodeBytes(testData)
			if err != nil {
				t.Errorf("failed to decode: %s", err)
				return
			}
			encoded, err := plutus.Encode(decoded)
			if err != nil {
				t.Errorf("failed to encode: %s", err)
				return
			}
			if hex.EncodeToString(encoded) != testDatumHex {
				t.Errorf("datum did not round-trip")
			}
		}()
	}
	wg.Wait()
}
