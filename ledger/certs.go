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

const (
	CertificateTypeStakeRegistration   = 0
	CertificateTypeStakeDeregistration = 1
	CertificateTypeStakeDelegation     = 2
	CertificateTypePoolRetirement      = 4
	CertificateTypeRegistration        = 7
	CertificateTypeDeregistration      = 8
	CertificateTypeVoteDelegation      = 9
	CertificateTypeAuthCommitteeHot    = 14
	CertificateTypeResignCommitteeCold = 15
	CertificateTypeRegistrationDrep    = 16
	CertificateTypeDeregistrationDrep  = 17
	CertificateTypeUpdateDrep          = 18
)

func certificateTypeName(certType uint64) string {
	switch certType {
	case CertificateTypeStakeRegistration:
		return "stake registration"
	case CertificateTypeStakeDeregistration:
		return "stake deregistration"
	case CertificateTypeStakeDelegation:
		return "stake delegation"
	case CertificateTypePoolRetirement:
		return "pool retirement"
	case CertificateTypeRegistration:
		return "registration"
	case CertificateTypeDeregistration:
		return "deregistration"
	case CertificateTypeVoteDelegation:
		return "vote delegation"
	case CertificateTypeAuthCommitteeHot:
		return "auth committee hot"
	case CertificateTypeResignCommitteeCold:
		return "resign committee cold"
	case CertificateTypeRegistrationDrep:
		return "drep registration"
	case CertificateTypeDeregistrationDrep:
		return "drep deregistration"
	case CertificateTypeUpdateDrep:
		return "drep update"
	default:
		return "unknown"
	}
}

// Certificate is a ledger certificate
type Certificate interface {
	isCertificate()
	Type() uint64
	ToCbor(w *cbor.Writer) error
}

// CertificateFromCbor reads the next certificate, dispatching on the type
// discriminant at the head of the certificate array
func CertificateFromCbor(r *cbor.Reader) (Certificate, error) {
	// Peek the discriminant without disturbing the cursor
	peek := r.Clone()
	if _, err := peek.ReadStartArray(); err != nil {
		return nil, err
	}
	certType, err := peek.ReadUint()
	if err != nil {
		return nil, err
	}
	var cert Certificate
	switch certType {
	case CertificateTypeStakeRegistration:
		cert = &StakeRegistrationCertificate{}
	case CertificateTypeStakeDeregistration:
		cert = &StakeDeregistrationCertificate{}
	case CertificateTypeStakeDelegation:
		cert = &StakeDelegationCertificate{}
	case CertificateTypePoolRetirement:
		cert = &PoolRetirementCertificate{}
	case CertificateTypeRegistration:
		cert = &RegistrationCertificate{}
	case CertificateTypeDeregistration:
		cert = &DeregistrationCertificate{}
	case CertificateTypeVoteDelegation:
		cert = &VoteDelegationCertificate{}
	case CertificateTypeAuthCommitteeHot:
		cert = &AuthCommitteeHotCertificate{}
	case CertificateTypeResignCommitteeCold:
		cert = &ResignCommitteeColdCertificate{}
	case CertificateTypeRegistrationDrep:
		cert = &RegistrationDrepCertificate{}
	case CertificateTypeDeregistrationDrep:
		cert = &DeregistrationDrepCertificate{}
	case CertificateTypeUpdateDrep:
		cert = &UpdateDrepCertificate{}
	default:
		return nil, &cbor.DecodeError{
			Message: fmt.Sprintf(
				"unsupported certificate type: %d",
				certType,
			),
		}
	}
	type certDecoder interface {
		FromCbor(r *cbor.Reader) error
	}
	if err := cert.(certDecoder).FromCbor(r); err != nil {
		return nil, err
	}
	return cert, nil
}

// StakeRegistrationCertificate is [0, stake_credential]
type StakeRegistrationCertificate struct {
	StakeCredential Credential
}

func (StakeRegistrationCertificate) isCertificate() {}

func (c *StakeRegistrationCertificate) Type() uint64 {
	return CertificateTypeStakeRegistration
}

func (c *StakeRegistrationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "StakeRegistrationCertificate", 2); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"StakeRegistrationCertificate",
		"certificate type",
		CertificateTypeStakeRegistration,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "StakeRegistrationCertificate")
}

func (c *StakeRegistrationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeStakeRegistration); err != nil {
		return err
	}
	return c.StakeCredential.ToCbor(w)
}

func (c *StakeRegistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeRegistration{
			StakeRegistration: stakeCred,
		},
	}, nil
}

// StakeDeregistrationCertificate is [1, stake_credential]
type StakeDeregistrationCertificate struct {
	StakeCredential Credential
}

func (StakeDeregistrationCertificate) isCertificate() {}

func (c *StakeDeregistrationCertificate) Type() uint64 {
	return CertificateTypeStakeDeregistration
}

func (c *StakeDeregistrationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "StakeDeregistrationCertificate", 2); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"StakeDeregistrationCertificate",
		"certificate type",
		CertificateTypeStakeDeregistration,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "StakeDeregistrationCertificate")
}

func (c *StakeDeregistrationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeStakeDeregistration); err != nil {
		return err
	}
	return c.StakeCredential.ToCbor(w)
}

func (c *StakeDeregistrationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDeregistration{
			StakeDeregistration: stakeCred,
		},
	}, nil
}

// StakeDelegationCertificate is [2, stake_credential, pool_keyhash]
type StakeDelegationCertificate struct {
	StakeCredential Credential
	PoolKeyHash     PoolKeyHash
}

func (StakeDelegationCertificate) isCertificate() {}

func (c *StakeDelegationCertificate) Type() uint64 {
	return CertificateTypeStakeDelegation
}

func (c *StakeDelegationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "StakeDelegationCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"StakeDelegationCertificate",
		"certificate type",
		CertificateTypeStakeDelegation,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	c.PoolKeyHash, err = readBlake2b224(
		r,
		"StakeDelegationCertificate",
		"pool key hash",
	)
	if err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "StakeDelegationCertificate")
}

func (c *StakeDelegationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeStakeDelegation); err != nil {
		return err
	}
	if err := c.StakeCredential.ToCbor(w); err != nil {
		return err
	}
	return w.WriteBytes(c.PoolKeyHash.Bytes())
}

func (c *StakeDelegationCertificate) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := c.StakeCredential.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDelegation{
			StakeDelegation: &utxorpc.StakeDelegationCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     c.PoolKeyHash.Bytes(),
			},
		},
	}, nil
}

// PoolRetirementCertificate is [4, pool_keyhash, epoch]
type PoolRetirementCertificate struct {
	PoolKeyHash PoolKeyHash
	Epoch       uint64
}

func (PoolRetirementCertificate) isCertificate() {}

func (c *PoolRetirementCertificate) Type() uint64 {
	return CertificateTypePoolRetirement
}

func (c *PoolRetirementCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "PoolRetirementCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"PoolRetirementCertificate",
		"certificate type",
		CertificateTypePoolRetirement,
		certificateTypeName,
	); err != nil {
		return err
	}
	var err error
	c.PoolKeyHash, err = readBlake2b224(
		r,
		"PoolRetirementCertificate",
		"pool key hash",
	)
	if err != nil {
		return err
	}
	if c.Epoch, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "PoolRetirementCertificate")
}

func (c *PoolRetirementCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypePoolRetirement); err != nil {
		return err
	}
	if err := w.WriteBytes(c.PoolKeyHash.Bytes()); err != nil {
		return err
	}
	return w.WriteUint(c.Epoch)
}

// RegistrationCertificate is [7, stake_credential, coin]
type RegistrationCertificate struct {
	StakeCredential Credential
	Amount          uint64
}

func (RegistrationCertificate) isCertificate() {}

func (c *RegistrationCertificate) Type() uint64 {
	return CertificateTypeRegistration
}

func (c *RegistrationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "RegistrationCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"RegistrationCertificate",
		"certificate type",
		CertificateTypeRegistration,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Amount, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "RegistrationCertificate")
}

func (c *RegistrationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeRegistration); err != nil {
		return err
	}
	if err := c.StakeCredential.ToCbor(w); err != nil {
		return err
	}
	return w.WriteUint(c.Amount)
}

// DeregistrationCertificate is [8, stake_credential, coin]
type DeregistrationCertificate struct {
	StakeCredential Credential
	Amount          uint64
}

func (DeregistrationCertificate) isCertificate() {}

func (c *DeregistrationCertificate) Type() uint64 {
	return CertificateTypeDeregistration
}

func (c *DeregistrationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "DeregistrationCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"DeregistrationCertificate",
		"certificate type",
		CertificateTypeDeregistration,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Amount, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "DeregistrationCertificate")
}

func (c *DeregistrationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeDeregistration); err != nil {
		return err
	}
	if err := c.StakeCredential.ToCbor(w); err != nil {
		return err
	}
	return w.WriteUint(c.Amount)
}

// VoteDelegationCertificate is [9, stake_credential, drep]
type VoteDelegationCertificate struct {
	StakeCredential Credential
	Drep            Drep
}

func (VoteDelegationCertificate) isCertificate() {}

func (c *VoteDelegationCertificate) Type() uint64 {
	return CertificateTypeVoteDelegation
}

func (c *VoteDelegationCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "VoteDelegationCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"VoteDelegationCertificate",
		"certificate type",
		CertificateTypeVoteDelegation,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.StakeCredential.FromCbor(r); err != nil {
		return err
	}
	if err := c.Drep.FromCbor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "VoteDelegationCertificate")
}

func (c *VoteDelegationCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeVoteDelegation); err != nil {
		return err
	}
	if err := c.StakeCredential.ToCbor(w); err != nil {
		return err
	}
	return c.Drep.ToCbor(w)
}

// AuthCommitteeHotCertificate is [14, cold_credential, hot_credential]
type AuthCommitteeHotCertificate struct {
	ColdCredential Credential
	HotCredential  Credential
}

func (AuthCommitteeHotCertificate) isCertificate() {}

func (c *AuthCommitteeHotCertificate) Type() uint64 {
	return CertificateTypeAuthCommitteeHot
}

func (c *AuthCommitteeHotCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "AuthCommitteeHotCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"AuthCommitteeHotCertificate",
		"certificate type",
		CertificateTypeAuthCommitteeHot,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.ColdCredential.FromCbor(r); err != nil {
		return err
	}
	if err := c.HotCredential.FromCbor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "AuthCommitteeHotCertificate")
}

func (c *AuthCommitteeHotCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeAuthCommitteeHot); err != nil {
		return err
	}
	if err := c.ColdCredential.ToCbor(w); err != nil {
		return err
	}
	return c.HotCredential.ToCbor(w)
}

// ResignCommitteeColdCertificate is [15, cold_credential, anchor / null]
type ResignCommitteeColdCertificate struct {
	ColdCredential Credential
	Anchor         *Anchor
}

func (ResignCommitteeColdCertificate) isCertificate() {}

func (c *ResignCommitteeColdCertificate) Type() uint64 {
	return CertificateTypeResignCommitteeCold
}

func (c *ResignCommitteeColdCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "ResignCommitteeColdCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"ResignCommitteeColdCertificate",
		"certificate type",
		CertificateTypeResignCommitteeCold,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.ColdCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Anchor, err = readOptionalAnchor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "ResignCommitteeColdCertificate")
}

func (c *ResignCommitteeColdCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeResignCommitteeCold); err != nil {
		return err
	}
	if err := c.ColdCredential.ToCbor(w); err != nil {
		return err
	}
	return writeOptionalAnchor(w, c.Anchor)
}

// RegistrationDrepCertificate is [16, drep_credential, coin, anchor / null]
type RegistrationDrepCertificate struct {
	DrepCredential Credential
	Amount         uint64
	Anchor         *Anchor
}

func (RegistrationDrepCertificate) isCertificate() {}

func (c *RegistrationDrepCertificate) Type() uint64 {
	return CertificateTypeRegistrationDrep
}

func (c *RegistrationDrepCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "RegistrationDrepCertificate", 4); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"RegistrationDrepCertificate",
		"certificate type",
		CertificateTypeRegistrationDrep,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.DrepCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Amount, err = r.ReadUint(); err != nil {
		return err
	}
	if c.Anchor, err = readOptionalAnchor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "RegistrationDrepCertificate")
}

func (c *RegistrationDrepCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(4); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeRegistrationDrep); err != nil {
		return err
	}
	if err := c.DrepCredential.ToCbor(w); err != nil {
		return err
	}
	if err := w.WriteUint(c.Amount); err != nil {
		return err
	}
	return writeOptionalAnchor(w, c.Anchor)
}

// DeregistrationDrepCertificate is [17, drep_credential, coin]
type DeregistrationDrepCertificate struct {
	DrepCredential Credential
	Amount         uint64
}

func (DeregistrationDrepCertificate) isCertificate() {}

func (c *DeregistrationDrepCertificate) Type() uint64 {
	return CertificateTypeDeregistrationDrep
}

func (c *DeregistrationDrepCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "DeregistrationDrepCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"DeregistrationDrepCertificate",
		"certificate type",
		CertificateTypeDeregistrationDrep,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.DrepCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Amount, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "DeregistrationDrepCertificate")
}

func (c *DeregistrationDrepCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeDeregistrationDrep); err != nil {
		return err
	}
	if err := c.DrepCredential.ToCbor(w); err != nil {
		return err
	}
	return w.WriteUint(c.Amount)
}

// UpdateDrepCertificate is [18, drep_credential, anchor / null]
type UpdateDrepCertificate struct {
	DrepCredential Credential
	Anchor         *Anchor
}

func (UpdateDrepCertificate) isCertificate() {}

func (c *UpdateDrepCertificate) Type() uint64 {
	return CertificateTypeUpdateDrep
}

func (c *UpdateDrepCertificate) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "UpdateDrepCertificate", 3); err != nil {
		return err
	}
	if err := cbor.ValidateEnumValue(
		r,
		"UpdateDrepCertificate",
		"certificate type",
		CertificateTypeUpdateDrep,
		certificateTypeName,
	); err != nil {
		return err
	}
	if err := c.DrepCredential.FromCbor(r); err != nil {
		return err
	}
	var err error
	if c.Anchor, err = readOptionalAnchor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "UpdateDrepCertificate")
}

func (c *UpdateDrepCertificate) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(3); err != nil {
		return err
	}
	if err := w.WriteUint(CertificateTypeUpdateDrep); err != nil {
		return err
	}
	if err := c.DrepCredential.ToCbor(w); err != nil {
		return err
	}
	return writeOptionalAnchor(w, c.Anchor)
}

// CertificateSetFromCbor reads a set of certificates: an array optionally
// wrapped in the set tag (258)
func CertificateSetFromCbor(r *cbor.Reader) ([]Certificate, error) {
	if _, err := cbor.ReadOptionalSetTag(r); err != nil {
		return nil, err
	}
	if _, err := r.ReadStartArray(); err != nil {
		return nil, err
	}
	var certs []Certificate
	for {
		state, err := r.PeekState()
		if err != nil {
			return nil, err
		}
		if state == cbor.ReaderStateEndArray {
			break
		}
		cert, err := CertificateFromCbor(r)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return certs, nil
}

// CertificateSetToCbor writes a set of certificates with the set tag and
// definite-length framing
func CertificateSetToCbor(w *cbor.Writer, certs []Certificate) error {
	if err := w.WriteTag(cbor.TagSet); err != nil {
		return err
	}
	if len(certs) == 0 {
		// Definite empty array; a zero size would start an
		// indefinite-length one
		return w.WriteEncoded([]byte{0x80})
	}
	if err := w.WriteStartArray(uint64(len(certs))); err != nil {
		return err
	}
	for _, cert := range certs {
		if err := cert.ToCbor(w); err != nil {
			return err
		}
	}
	return nil
}
