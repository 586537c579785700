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
)

// Anchor points at off-chain governance metadata, encoded as
// [url, data_hash]
type Anchor struct {
	Url      string
	DataHash AnchorDataHash
}

func (a *Anchor) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "Anchor", 2); err != nil {
		return err
	}
	var err error
	if a.Url, err = r.ReadTextString(); err != nil {
		return err
	}
	if a.DataHash, err = readBlake2b256(r, "Anchor", "data hash"); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "Anchor")
}

func (a *Anchor) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteString(a.Url); err != nil {
		return err
	}
	return w.WriteBytes(a.DataHash.Bytes())
}

// readOptionalAnchor reads an anchor or a null placeholder
func readOptionalAnchor(r *cbor.Reader) (*Anchor, error) {
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	if state == cbor.ReaderStateNull {
		return nil, r.ReadNull()
	}
	var anchor Anchor
	if err := anchor.FromCbor(r); err != nil {
		return nil, err
	}
	return &anchor, nil
}

func writeOptionalAnchor(w *cbor.Writer, anchor *Anchor) error {
	if anchor == nil {
		return w.WriteNull()
	}
	return anchor.ToCbor(w)
}

// GovActionId identifies a governance action by the transaction that
// proposed it, encoded as [transaction_id, action_index]
type GovActionId struct {
	TransactionId TransactionId
	GovActionIdx  uint64
}

func (g *GovActionId) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "GovActionId", 2); err != nil {
		return err
	}
	var err error
	g.TransactionId, err = readBlake2b256(r, "GovActionId", "transaction id")
	if err != nil {
		return err
	}
	if g.GovActionIdx, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "GovActionId")
}

func (g *GovActionId) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteBytes(g.TransactionId.Bytes()); err != nil {
		return err
	}
	return w.WriteUint(g.GovActionIdx)
}

const (
	DrepTypeAddrKeyHash  = 0
	DrepTypeScriptHash   = 1
	DrepTypeAbstain      = 2
	DrepTypeNoConfidence = 3
)

// Drep is a vote delegation target: a specific DRep identified by
// credential, or the always-abstain / no-confidence pseudo-DReps
type Drep struct {
	Type       uint64
	Credential []byte
}

func (d *Drep) FromCbor(r *cbor.Reader) error {
	size, err := r.ReadStartArray()
	if err != nil {
		return err
	}
	drepType, err := cbor.ValidateUintInRange(
		r,
		"Drep",
		"type",
		DrepTypeAddrKeyHash,
		DrepTypeNoConfidence,
	)
	if err != nil {
		return err
	}
	d.Type = drepType
	switch drepType {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		if size != 2 {
			return &cbor.DecodeError{
				Message: fmt.Sprintf(
					"Drep: expected array of 2 elements, found %d",
					size,
				),
			}
		}
		hash, err := readBlake2b224(r, "Drep", "credential")
		if err != nil {
			return err
		}
		d.Credential = hash.Bytes()
	default:
		if size != 1 {
			return &cbor.DecodeError{
				Message: fmt.Sprintf(
					"Drep: expected array of 1 element, found %d",
					size,
				),
			}
		}
		d.Credential = nil
	}
	return cbor.ValidateEndArray(r, "Drep")
}

func (d *Drep) ToCbor(w *cbor.Writer) error {
	switch d.Type {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		if err := w.WriteStartArray(2); err != nil {
			return err
		}
		if err := w.WriteUint(d.Type); err != nil {
			return err
		}
		return w.WriteBytes(d.Credential)
	case DrepTypeAbstain, DrepTypeNoConfidence:
		if err := w.WriteStartArray(1); err != nil {
			return err
		}
		return w.WriteUint(d.Type)
	default:
		return fmt.Errorf("unknown drep type: %d", d.Type)
	}
}

// CredentialHash returns the credential hash for the key-hash and
// script-hash variants. The abstain and no-confidence pseudo-DReps carry
// no credential.
func (d *Drep) CredentialHash() ([]byte, error) {
	switch d.Type {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		return d.Credential, nil
	default:
		return nil, fmt.Errorf(
			"drep type %d has no credential",
			d.Type,
		)
	}
}

func (d *Drep) Utxorpc() (*utxorpc.DRep, error) {
	switch d.Type {
	case DrepTypeAddrKeyHash:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_AddrKeyHash{AddrKeyHash: d.Credential},
		}, nil
	case DrepTypeScriptHash:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_ScriptHash{ScriptHash: d.Credential},
		}, nil
	case DrepTypeAbstain:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_Abstain{Abstain: true},
		}, nil
	case DrepTypeNoConfidence:
		return &utxorpc.DRep{
			Drep: &utxorpc.DRep_NoConfidence{NoConfidence: true},
		}, nil
	default:
		return nil, fmt.Errorf("unknown DRep type: %d", d.Type)
	}
}
