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

package ledger

import (
	"fmt"

	"github.com/blinklabs-io/cardano-codec/cbor"

	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
	"golang.org/x/crypto/blake2b"
)

const (
	CredentialTypeAddrKeyHash = 0
	CredentialTypeScriptHash  = 1
)

// Credential is a stake or payment credential: a key hash or script hash
// with a type discriminant, encoded as [type, hash]
type Credential struct {
	CredType   uint64
	Credential Blake2b224
}

func (c *Credential) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "Credential", 2); err != nil {
		return err
	}
	credType, err := cbor.ValidateUintInRange(
		r,
		"Credential",
		"type",
		CredentialTypeAddrKeyHash,
		CredentialTypeScriptHash,
	)
	if err != nil {
		return err
	}
	c.CredType = credType
	if c.Credential, err = readBlake2b224(r, "Credential", "hash"); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "Credential")
}

func (c *Credential) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(c.CredType); err != nil {
		return err
	}
	return w.WriteBytes(c.Credential.Bytes())
}

func (c *Credential) Hash() Blake2b224 {
	hash, err := blake2b.New(Blake2b224Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error creating empty blake2b hash: %s",
				err,
			),
		)
	}
	if c != nil {
		hash.Write(c.Credential[:])
	}
	return Blake2b224(hash.Sum(nil))
}

func (c *Credential) Utxorpc() (*utxorpc.StakeCredential, error) {
	ret := &utxorpc.StakeCredential{}
	switch c.CredType {
	case CredentialTypeAddrKeyHash:
		ret.StakeCredential = &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: c.Credential.Bytes(),
		}
	case CredentialTypeScriptHash:
		ret.StakeCredential = &utxorpc.StakeCredential_ScriptHash{
			ScriptHash: c.Credential.Bytes(),
		}
	default:
		return nil, fmt.Errorf("unknown credential type: %d", c.CredType)
	}
	return ret, nil
}
