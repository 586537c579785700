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
	"sort"

	"github.com/blinklabs-io/cardano-codec/cbor"
	"github.com/jinzhu/copier"
)

// ExUnits is a pair of execution resource measures, encoded as
// [mem, steps]
type ExUnits struct {
	Memory uint64
	Steps  uint64
}

func (e *ExUnits) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "ExUnits", 2); err != nil {
		return err
	}
	var err error
	if e.Memory, err = r.ReadUint(); err != nil {
		return err
	}
	if e.Steps, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "ExUnits")
}

func (e *ExUnits) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(e.Memory); err != nil {
		return err
	}
	return w.WriteUint(e.Steps)
}

// ExUnitPrices is the cost of execution resources, encoded as
// [mem_price, step_price]
type ExUnitPrices struct {
	MemPrice  UnitInterval
	StepPrice UnitInterval
}

func (e *ExUnitPrices) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "ExUnitPrices", 2); err != nil {
		return err
	}
	if err := e.MemPrice.FromCbor(r); err != nil {
		return err
	}
	if err := e.StepPrice.FromCbor(r); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "ExUnitPrices")
}

func (e *ExUnitPrices) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := e.MemPrice.ToCbor(w); err != nil {
		return err
	}
	return e.StepPrice.ToCbor(w)
}

// ProtocolVersion is encoded as [major, minor]
type ProtocolVersion struct {
	Major uint64
	Minor uint64
}

func (p *ProtocolVersion) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "ProtocolVersion", 2); err != nil {
		return err
	}
	var err error
	if p.Major, err = r.ReadUint(); err != nil {
		return err
	}
	if p.Minor, err = r.ReadUint(); err != nil {
		return err
	}
	return cbor.ValidateEndArray(r, "ProtocolVersion")
}

func (p *ProtocolVersion) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(p.Major); err != nil {
		return err
	}
	return w.WriteUint(p.Minor)
}

// PoolVotingThresholds is the five pool voting thresholds, encoded as an
// array of unit intervals
type PoolVotingThresholds struct {
	MotionNoConfidence    UnitInterval
	CommitteeNormal       UnitInterval
	CommitteeNoConfidence UnitInterval
	HardForkInitiation    UnitInterval
	SecurityRelevantParam UnitInterval
}

func (t *PoolVotingThresholds) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "PoolVotingThresholds", 5); err != nil {
		return err
	}
	for _, interval := range []*UnitInterval{
		&t.MotionNoConfidence,
		&t.CommitteeNormal,
		&t.CommitteeNoConfidence,
		&t.HardForkInitiation,
		&t.SecurityRelevantParam,
	} {
		if err := interval.FromCbor(r); err != nil {
			return err
		}
	}
	return cbor.ValidateEndArray(r, "PoolVotingThresholds")
}

func (t *PoolVotingThresholds) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(5); err != nil {
		return err
	}
	for _, interval := range []*UnitInterval{
		&t.MotionNoConfidence,
		&t.CommitteeNormal,
		&t.CommitteeNoConfidence,
		&t.HardForkInitiation,
		&t.SecurityRelevantParam,
	} {
		if err := interval.ToCbor(w); err != nil {
			return err
		}
	}
	return nil
}

// DRepVotingThresholds is the ten DRep voting thresholds, encoded as an
// array of unit intervals
type DRepVotingThresholds struct {
	MotionNoConfidence    UnitInterval
	CommitteeNormal       UnitInterval
	CommitteeNoConfidence UnitInterval
	UpdateConstitution    UnitInterval
	HardForkInitiation    UnitInterval
	PPNetworkGroup        UnitInterval
	PPEconomicGroup       UnitInterval
	PPTechnicalGroup      UnitInterval
	PPGovGroup            UnitInterval
	TreasuryWithdrawal    UnitInterval
}

func (t *DRepVotingThresholds) intervals() []*UnitInterval {
	return []*UnitInterval{
		&t.MotionNoConfidence,
		&t.CommitteeNormal,
		&t.CommitteeNoConfidence,
		&t.UpdateConstitution,
		&t.HardForkInitiation,
		&t.PPNetworkGroup,
		&t.PPEconomicGroup,
		&t.PPTechnicalGroup,
		&t.PPGovGroup,
		&t.TreasuryWithdrawal,
	}
}

func (t *DRepVotingThresholds) FromCbor(r *cbor.Reader) error {
	if err := cbor.ValidateArrayOfNElements(r, "DRepVotingThresholds", 10); err != nil {
		return err
	}
	for _, interval := range t.intervals() {
		if err := interval.FromCbor(r); err != nil {
			return err
		}
	}
	return cbor.ValidateEndArray(r, "DRepVotingThresholds")
}

func (t *DRepVotingThresholds) ToCbor(w *cbor.Writer) error {
	if err := w.WriteStartArray(10); err != nil {
		return err
	}
	for _, interval := range t.intervals() {
		if err := interval.ToCbor(w); err != nil {
			return err
		}
	}
	return nil
}

// CostModels maps a Plutus language version to its cost model parameters
type CostModels map[uint64][]int64

func (c *CostModels) FromCbor(r *cbor.Reader) error {
	size, err := r.ReadStartMap()
	if err != nil {
		return err
	}
	ret := make(CostModels)
	if size != 0 {
		for {
			state, err := r.PeekState()
			if err != nil {
				return err
			}
			if state == cbor.ReaderStateEndMap {
				break
			}
			language, err := r.ReadUint()
			if err != nil {
				return err
			}
			count, err := r.ReadStartArray()
			if err != nil {
				return err
			}
			var params []int64
			if count > 0 {
				params = make([]int64, 0, count)
			}
			for {
				state, err := r.PeekState()
				if err != nil {
					return err
				}
				if state == cbor.ReaderStateEndArray {
					break
				}
				param, err := r.ReadInt()
				if err != nil {
					return err
				}
				params = append(params, param)
			}
			if err := r.ReadEndArray(); err != nil {
				return err
			}
			ret[language] = params
		}
	}
	if err := r.ReadEndMap(); err != nil {
		return err
	}
	*c = ret
	return nil
}

func (c CostModels) ToCbor(w *cbor.Writer) error {
	if len(c) == 0 {
		return w.WriteEncoded([]byte{0xa0})
	}
	if err := w.WriteStartMap(uint64(len(c))); err != nil {
		return err
	}
	languages := make([]uint64, 0, len(c))
	for language := range c {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i] < languages[j]
	})
	for _, language := range languages {
		if err := w.WriteUint(language); err != nil {
			return err
		}
		params := c[language]
		if len(params) == 0 {
			if err := w.WriteEncoded([]byte{0x80}); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteStartArray(uint64(len(params))); err != nil {
			return err
		}
		for _, param := range params {
			if err := w.WriteInt(param); err != nil {
				return err
			}
		}
	}
	return nil
}

// Map keys for protocol parameter updates
const (
	pparamUpdateKeyMinFeeA                    = 0
	pparamUpdateKeyMinFeeB                    = 1
	pparamUpdateKeyMaxBlockBodySize           = 2
	pparamUpdateKeyMaxTxSize                  = 3
	pparamUpdateKeyMaxBlockHeaderSize         = 4
	pparamUpdateKeyKeyDeposit                 = 5
	pparamUpdateKeyPoolDeposit                = 6
	pparamUpdateKeyMaxEpoch                   = 7
	pparamUpdateKeyNOpt                       = 8
	pparamUpdateKeyA0                         = 9
	pparamUpdateKeyRho                        = 10
	pparamUpdateKeyTau                        = 11
	pparamUpdateKeyProtocolVersion            = 14
	pparamUpdateKeyMinPoolCost                = 16
	pparamUpdateKeyAdaPerUtxoByte             = 17
	pparamUpdateKeyCostModels                 = 18
	pparamUpdateKeyExecutionCosts             = 19
	pparamUpdateKeyMaxTxExUnits               = 20
	pparamUpdateKeyMaxBlockExUnits            = 21
	pparamUpdateKeyMaxValueSize               = 22
	pparamUpdateKeyCollateralPercentage       = 23
	pparamUpdateKeyMaxCollateralInputs        = 24
	pparamUpdateKeyPoolVotingThresholds       = 25
	pparamUpdateKeyDRepVotingThresholds       = 26
	pparamUpdateKeyMinCommitteeSize           = 27
	pparamUpdateKeyCommitteeTermLimit         = 28
	pparamUpdateKeyGovActionValidityPeriod    = 29
	pparamUpdateKeyGovActionDeposit           = 30
	pparamUpdateKeyDRepDeposit                = 31
	pparamUpdateKeyDRepInactivityPeriod       = 32
	pparamUpdateKeyMinFeeRefScriptCostPerByte = 33
)

// ProtocolParamUpdate is a partial protocol parameter change, encoded as
// a map keyed by parameter number. Absent parameters stay nil. Unknown
// keys are skipped on decode and dropped on re-encode.
type ProtocolParamUpdate struct {
	MinFeeA                    *uint64
	MinFeeB                    *uint64
	MaxBlockBodySize           *uint64
	MaxTxSize                  *uint64
	MaxBlockHeaderSize         *uint64
	KeyDeposit                 *uint64
	PoolDeposit                *uint64
	MaxEpoch                   *uint64
	NOpt                       *uint64
	A0                         *UnitInterval
	Rho                        *UnitInterval
	Tau                        *UnitInterval
	ProtocolVersion            *ProtocolVersion
	MinPoolCost                *uint64
	AdaPerUtxoByte             *uint64
	CostModels                 CostModels
	ExecutionCosts             *ExUnitPrices
	MaxTxExUnits               *ExUnits
	MaxBlockExUnits            *ExUnits
	MaxValueSize               *uint64
	CollateralPercentage       *uint64
	MaxCollateralInputs        *uint64
	PoolVotingThresholds       *PoolVotingThresholds
	DRepVotingThresholds       *DRepVotingThresholds
	MinCommitteeSize           *uint64
	CommitteeTermLimit         *uint64
	GovActionValidityPeriod    *uint64
	GovActionDeposit           *uint64
	DRepDeposit                *uint64
	DRepInactivityPeriod       *uint64
	MinFeeRefScriptCostPerByte *UnitInterval
}

func (u *ProtocolParamUpdate) uintFieldByKey(key uint64) **uint64 {
	switch key {
	case pparamUpdateKeyMinFeeA:
		return &u.MinFeeA
	case pparamUpdateKeyMinFeeB:
		return &u.MinFeeB
	case pparamUpdateKeyMaxBlockBodySize:
		return &u.MaxBlockBodySize
	case pparamUpdateKeyMaxTxSize:
		return &u.MaxTxSize
	case pparamUpdateKeyMaxBlockHeaderSize:
		return &u.MaxBlockHeaderSize
	case pparamUpdateKeyKeyDeposit:
		return &u.KeyDeposit
	case pparamUpdateKeyPoolDeposit:
		return &u.PoolDeposit
	case pparamUpdateKeyMaxEpoch:
		return &u.MaxEpoch
	case pparamUpdateKeyNOpt:
		return &u.NOpt
	case pparamUpdateKeyMinPoolCost:
		return &u.MinPoolCost
	case pparamUpdateKeyAdaPerUtxoByte:
		return &u.AdaPerUtxoByte
	case pparamUpdateKeyMaxValueSize:
		return &u.MaxValueSize
	case pparamUpdateKeyCollateralPercentage:
		return &u.CollateralPercentage
	case pparamUpdateKeyMaxCollateralInputs:
		return &u.MaxCollateralInputs
	case pparamUpdateKeyMinCommitteeSize:
		return &u.MinCommitteeSize
	case pparamUpdateKeyCommitteeTermLimit:
		return &u.CommitteeTermLimit
	case pparamUpdateKeyGovActionValidityPeriod:
		return &u.GovActionValidityPeriod
	case pparamUpdateKeyGovActionDeposit:
		return &u.GovActionDeposit
	case pparamUpdateKeyDRepDeposit:
		return &u.DRepDeposit
	case pparamUpdateKeyDRepInactivityPeriod:
		return &u.DRepInactivityPeriod
	default:
		return nil
	}
}

func (u *ProtocolParamUpdate) intervalFieldByKey(key uint64) **UnitInterval {
	switch key {
	case pparamUpdateKeyA0:
		return &u.A0
	case pparamUpdateKeyRho:
		return &u.Rho
	case pparamUpdateKeyTau:
		return &u.Tau
	case pparamUpdateKeyMinFeeRefScriptCostPerByte:
		return &u.MinFeeRefScriptCostPerByte
	default:
		return nil
	}
}

func (u *ProtocolParamUpdate) FromCbor(r *cbor.Reader) error {
	if _, err := r.ReadStartMap(); err != nil {
		return err
	}
	for {
		state, err := r.PeekState()
		if err != nil {
			return err
		}
		if state == cbor.ReaderStateEndMap {
			break
		}
		key, err := r.ReadUint()
		if err != nil {
			return err
		}
		if field := u.uintFieldByKey(key); field != nil {
			value, err := r.ReadUint()
			if err != nil {
				return err
			}
			*field = &value
			continue
		}
		if field := u.intervalFieldByKey(key); field != nil {
			var interval UnitInterval
			if err := interval.FromCbor(r); err != nil {
				return err
			}
			*field = &interval
			continue
		}
		switch key {
		case pparamUpdateKeyProtocolVersion:
			u.ProtocolVersion = &ProtocolVersion{}
			err = u.ProtocolVersion.FromCbor(r)
		case pparamUpdateKeyCostModels:
			err = u.CostModels.FromCbor(r)
		case pparamUpdateKeyExecutionCosts:
			u.ExecutionCosts = &ExUnitPrices{}
			err = u.ExecutionCosts.FromCbor(r)
		case pparamUpdateKeyMaxTxExUnits:
			u.MaxTxExUnits = &ExUnits{}
			err = u.MaxTxExUnits.FromCbor(r)
		case pparamUpdateKeyMaxBlockExUnits:
			u.MaxBlockExUnits = &ExUnits{}
			err = u.MaxBlockExUnits.FromCbor(r)
		case pparamUpdateKeyPoolVotingThresholds:
			u.PoolVotingThresholds = &PoolVotingThresholds{}
			err = u.PoolVotingThresholds.FromCbor(r)
		case pparamUpdateKeyDRepVotingThresholds:
			u.DRepVotingThresholds = &DRepVotingThresholds{}
			err = u.DRepVotingThresholds.FromCbor(r)
		default:
			// Skip parameters we don't know about
			_, err = r.ReadEncodedValue()
		}
		if err != nil {
			return err
		}
	}
	return r.ReadEndMap()
}

// pparamUpdateEntry pairs a map key with the writer for its value
type pparamUpdateEntry struct {
	key   uint64
	write func(w *cbor.Writer) error
}

func (u *ProtocolParamUpdate) entries() []pparamUpdateEntry {
	var entries []pparamUpdateEntry
	addUint := func(key uint64, value *uint64) {
		if value != nil {
			entries = append(entries, pparamUpdateEntry{
				key: key,
				write: func(w *cbor.Writer) error {
					return w.WriteUint(*value)
				},
			})
		}
	}
	addUint(pparamUpdateKeyMinFeeA, u.MinFeeA)
	addUint(pparamUpdateKeyMinFeeB, u.MinFeeB)
	addUint(pparamUpdateKeyMaxBlockBodySize, u.MaxBlockBodySize)
	addUint(pparamUpdateKeyMaxTxSize, u.MaxTxSize)
	addUint(pparamUpdateKeyMaxBlockHeaderSize, u.MaxBlockHeaderSize)
	addUint(pparamUpdateKeyKeyDeposit, u.KeyDeposit)
	addUint(pparamUpdateKeyPoolDeposit, u.PoolDeposit)
	addUint(pparamUpdateKeyMaxEpoch, u.MaxEpoch)
	addUint(pparamUpdateKeyNOpt, u.NOpt)
	if u.A0 != nil {
		entries = append(entries, pparamUpdateEntry{
			key: pparamUpdateKeyA0, write: u.A0.ToCbor,
		})
	}
	if u.Rho != nil {
		entries = append(entries, pparamUpdateEntry{
			key: pparamUpdateKeyRho, write: u.Rho.ToCbor,
		})
	}
	if u.Tau != nil {
		entries = append(entries, pparamUpdateEntry{
			key: pparamUpdateKeyTau, write: u.Tau.ToCbor,
		})
	}
	if u.ProtocolVersion != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyProtocolVersion,
			write: u.ProtocolVersion.ToCbor,
		})
	}
	addUint(pparamUpdateKeyMinPoolCost, u.MinPoolCost)
	addUint(pparamUpdateKeyAdaPerUtxoByte, u.AdaPerUtxoByte)
	if u.CostModels != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyCostModels,
			write: u.CostModels.ToCbor,
		})
	}
	if u.ExecutionCosts != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyExecutionCosts,
			write: u.ExecutionCosts.ToCbor,
		})
	}
	if u.MaxTxExUnits != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyMaxTxExUnits,
			write: u.MaxTxExUnits.ToCbor,
		})
	}
	if u.MaxBlockExUnits != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyMaxBlockExUnits,
			write: u.MaxBlockExUnits.ToCbor,
		})
	}
	addUint(pparamUpdateKeyMaxValueSize, u.MaxValueSize)
	addUint(pparamUpdateKeyCollateralPercentage, u.CollateralPercentage)
	addUint(pparamUpdateKeyMaxCollateralInputs, u.MaxCollateralInputs)
	if u.PoolVotingThresholds != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyPoolVotingThresholds,
			write: u.PoolVotingThresholds.ToCbor,
		})
	}
	if u.DRepVotingThresholds != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyDRepVotingThresholds,
			write: u.DRepVotingThresholds.ToCbor,
		})
	}
	addUint(pparamUpdateKeyMinCommitteeSize, u.MinCommitteeSize)
	addUint(pparamUpdateKeyCommitteeTermLimit, u.CommitteeTermLimit)
	addUint(pparamUpdateKeyGovActionValidityPeriod, u.GovActionValidityPeriod)
	addUint(pparamUpdateKeyGovActionDeposit, u.GovActionDeposit)
	addUint(pparamUpdateKeyDRepDeposit, u.DRepDeposit)
	addUint(pparamUpdateKeyDRepInactivityPeriod, u.DRepInactivityPeriod)
	if u.MinFeeRefScriptCostPerByte != nil {
		entries = append(entries, pparamUpdateEntry{
			key:   pparamUpdateKeyMinFeeRefScriptCostPerByte,
			write: u.MinFeeRefScriptCostPerByte.ToCbor,
		})
	}
	return entries
}

// ToCbor writes the update as a definite-length map with keys in
// ascending order
func (u *ProtocolParamUpdate) ToCbor(w *cbor.Writer) error {
	entries := u.entries()
	if len(entries) == 0 {
		return w.WriteEncoded([]byte{0xa0})
	}
	if err := w.WriteStartMap(uint64(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := w.WriteUint(entry.key); err != nil {
			return err
		}
		if err := entry.write(w); err != nil {
			return err
		}
	}
	return nil
}

// ProtocolParams is the full set of protocol parameters
type ProtocolParams struct {
	MinFeeA                    uint64
	MinFeeB                    uint64
	MaxBlockBodySize           uint64
	MaxTxSize                  uint64
	MaxBlockHeaderSize         uint64
	KeyDeposit                 uint64
	PoolDeposit                uint64
	MaxEpoch                   uint64
	NOpt                       uint64
	A0                         UnitInterval
	Rho                        UnitInterval
	Tau                        UnitInterval
	ProtocolVersion            ProtocolVersion
	MinPoolCost                uint64
	AdaPerUtxoByte             uint64
	CostModels                 CostModels
	ExecutionCosts             ExUnitPrices
	MaxTxExUnits               ExUnits
	MaxBlockExUnits            ExUnits
	MaxValueSize               uint64
	CollateralPercentage       uint64
	MaxCollateralInputs        uint64
	PoolVotingThresholds       PoolVotingThresholds
	DRepVotingThresholds       DRepVotingThresholds
	MinCommitteeSize           uint64
	CommitteeTermLimit         uint64
	GovActionValidityPeriod    uint64
	GovActionDeposit           uint64
	DRepDeposit                uint64
	DRepInactivityPeriod       uint64
	MinFeeRefScriptCostPerByte UnitInterval
}

// Apply overlays an update onto the parameters, replacing only the
// fields the update carries
func (p *ProtocolParams) Apply(update *ProtocolParamUpdate) {
	if update.MinFeeA != nil {
		p.MinFeeA = *update.MinFeeA
	}
	if update.MinFeeB != nil {
		p.MinFeeB = *update.MinFeeB
	}
	if update.MaxBlockBodySize != nil {
		p.MaxBlockBodySize = *update.MaxBlockBodySize
	}
	if update.MaxTxSize != nil {
		p.MaxTxSize = *update.MaxTxSize
	}
	if update.MaxBlockHeaderSize != nil {
		p.MaxBlockHeaderSize = *update.MaxBlockHeaderSize
	}
	if update.KeyDeposit != nil {
		p.KeyDeposit = *update.KeyDeposit
	}
	if update.PoolDeposit != nil {
		p.PoolDeposit = *update.PoolDeposit
	}
	if update.MaxEpoch != nil {
		p.MaxEpoch = *update.MaxEpoch
	}
	if update.NOpt != nil {
		p.NOpt = *update.NOpt
	}
	if update.A0 != nil {
		p.A0 = *update.A0
	}
	if update.Rho != nil {
		p.Rho = *update.Rho
	}
	if update.Tau != nil {
		p.Tau = *update.Tau
	}
	if update.ProtocolVersion != nil {
		p.ProtocolVersion = *update.ProtocolVersion
	}
	if update.MinPoolCost != nil {
		p.MinPoolCost = *update.MinPoolCost
	}
	if update.AdaPerUtxoByte != nil {
		p.AdaPerUtxoByte = *update.AdaPerUtxoByte
	}
	if update.CostModels != nil {
		p.CostModels = update.CostModels
	}
	if update.ExecutionCosts != nil {
		p.ExecutionCosts = *update.ExecutionCosts
	}
	if update.MaxTxExUnits != nil {
		p.MaxTxExUnits = *update.MaxTxExUnits
	}
	if update.MaxBlockExUnits != nil {
		p.MaxBlockExUnits = *update.MaxBlockExUnits
	}
	if update.MaxValueSize != nil {
		p.MaxValueSize = *update.MaxValueSize
	}
	if update.CollateralPercentage != nil {
		p.CollateralPercentage = *update.CollateralPercentage
	}
	if update.MaxCollateralInputs != nil {
		p.MaxCollateralInputs = *update.MaxCollateralInputs
	}
	if update.PoolVotingThresholds != nil {
		p.PoolVotingThresholds = *update.PoolVotingThresholds
	}
	if update.DRepVotingThresholds != nil {
		p.DRepVotingThresholds = *update.DRepVotingThresholds
	}
	if update.MinCommitteeSize != nil {
		p.MinCommitteeSize = *update.MinCommitteeSize
	}
	if update.CommitteeTermLimit != nil {
		p.CommitteeTermLimit = *update.CommitteeTermLimit
	}
	if update.GovActionValidityPeriod != nil {
		p.GovActionValidityPeriod = *update.GovActionValidityPeriod
	}
	if update.GovActionDeposit != nil {
		p.GovActionDeposit = *update.GovActionDeposit
	}
	if update.DRepDeposit != nil {
		p.DRepDeposit = *update.DRepDeposit
	}
	if update.DRepInactivityPeriod != nil {
		p.DRepInactivityPeriod = *update.DRepInactivityPeriod
	}
	if update.MinFeeRefScriptCostPerByte != nil {
		p.MinFeeRefScriptCostPerByte = *update.MinFeeRefScriptCostPerByte
	}
}

// Copy returns a deep copy of the parameters
func (p *ProtocolParams) Copy() (*ProtocolParams, error) {
	ret := &ProtocolParams{}
	if err := copier.CopyWithOption(
		ret,
		p,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, fmt.Errorf("failed to copy protocol params: %w", err)
	}
	return ret, nil
}
