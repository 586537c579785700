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

// Package ledger provides Cardano ledger structures built on the cbor
// package's explicit Reader/Writer API: credentials, governance types,
// certificates, and protocol parameters.
package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/cardano-codec/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	Blake2b256Size = 32
	Blake2b224Size = 28
	Blake2b160Size = 20
)

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// Bech32 encodes the hash as a CIP-0005 bech32 string with the given prefix
func (b Blake2b256) Bech32(prefix string) string {
	return bech32EncodeHash(prefix, b[:])
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	tmpHash, err := blake2b.New(Blake2b256Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Blake2b256(tmpHash.Sum(nil))
}

type Blake2b224 [Blake2b224Size]byte

func NewBlake2b224(data []byte) Blake2b224 {
	b := Blake2b224{}
	copy(b[:], data)
	return b
}

func (b Blake2b224) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b224) Bytes() []byte {
	return b[:]
}

func (b Blake2b224) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b Blake2b224) Bech32(prefix string) string {
	return bech32EncodeHash(prefix, b[:])
}

// Blake2b224Hash generates a Blake2b-224 hash from the provided data
func Blake2b224Hash(data []byte) Blake2b224 {
	tmpHash, err := blake2b.New(Blake2b224Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Blake2b224(tmpHash.Sum(nil))
}

type Blake2b160 [Blake2b160Size]byte

func NewBlake2b160(data []byte) Blake2b160 {
	b := Blake2b160{}
	copy(b[:], data)
	return b
}

func (b Blake2b160) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b160) Bytes() []byte {
	return b[:]
}

func (b Blake2b160) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b Blake2b160) Bech32(prefix string) string {
	return bech32EncodeHash(prefix, b[:])
}

// Blake2b160Hash generates a Blake2b-160 hash from the provided data
func Blake2b160Hash(data []byte) Blake2b160 {
	tmpHash, err := blake2b.New(Blake2b160Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Blake2b160(tmpHash.Sum(nil))
}

func bech32EncodeHash(prefix string, data []byte) string {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding data as bech32: %s", err),
		)
	}
	return encoded
}

type (
	PoolKeyHash    = Blake2b224
	AddrKeyHash    = Blake2b224
	ScriptHash     = Blake2b224
	TransactionId  = Blake2b256
	AnchorDataHash = Blake2b256
)

// readBlake2b224 reads a byte string that must be exactly 28 bytes
func readBlake2b224(
	r *cbor.Reader,
	objName string,
	fieldName string,
) (Blake2b224, error) {
	hashBytes, err := r.ReadByteString()
	if err != nil {
		return Blake2b224{}, err
	}
	if len(hashBytes) != Blake2b224Size {
		return Blake2b224{}, &cbor.DecodeError{
			Message: fmt.Sprintf(
				"%s: %s: expected %d bytes, found %d",
				objName,
				fieldName,
				Blake2b224Size,
				len(hashBytes),
			),
		}
	}
	return NewBlake2b224(hashBytes), nil
}

// readBlake2b256 reads a byte string that must be exactly 32 bytes
func readBlake2b256(
	r *cbor.Reader,
	objName string,
	fieldName string,
) (Blake2b256, error) {
	hashBytes, err := r.ReadByteString()
	if err != nil {
		return Blake2b256{}, err
	}
	if len(hashBytes) != Blake2b256Size {
		return Blake2b256{}, &cbor.DecodeError{
			Message: fmt.Sprintf(
				"%s: %s: expected %d bytes, found %d",
				objName,
				fieldName,
				Blake2b256Size,
				len(hashBytes),
			),
		}
	}
	return NewBlake2b256(hashBytes), nil
}

// UnitInterval is a rational number in the unit interval, encoded as a
// tag 30 rational
type UnitInterval struct {
	Numerator   uint64
	Denominator uint64
}

func (u *UnitInterval) FromCbor(r *cbor.Reader) error {
	tag, err := r.ReadTag()
	if err != nil {
		return err
	}
	if tag != cbor.TagRational {
		return &cbor.DecodeError{
			Message: fmt.Sprintf(
				"UnitInterval: expected tag %d, found %d",
				cbor.TagRational,
				tag,
			),
		}
	}
	if err := cbor.ValidateArrayOfNElements(r, "UnitInterval", 2); err != nil {
		return err
	}
	if u.Numerator, err = r.ReadUint(); err != nil {
		return err
	}
	if u.Denominator, err = r.ReadUint(); err != nil {
		return err
	}
	if u.Denominator == 0 {
		return &cbor.DecodeError{
			Message: "UnitInterval: zero denominator",
		}
	}
	return cbor.ValidateEndArray(r, "UnitInterval")
}

func (u *UnitInterval) ToCbor(w *cbor.Writer) error {
	if err := w.WriteTag(cbor.TagRational); err != nil {
		return err
	}
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(u.Numerator); err != nil {
		return err
	}
	return w.WriteUint(u.Denominator)
}

func (u UnitInterval) String() string {
	return fmt.Sprintf("%d/%d", u.Numerator, u.Denominator)
}
