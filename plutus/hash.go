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

package plutus

import (
	"github.com/blinklabs-io/cardano-codec/ledger"
)

// Hash returns the Blake2b-256 hash of a value's CBOR encoding. Because
// unmodified values replay their captured encoding, hashing a decoded
// datum always reproduces the on-chain hash regardless of how the
// original was framed.
func Hash(d Data) (ledger.Blake2b256, error) {
	cborData, err := Encode(d)
	if err != nil {
		return ledger.Blake2b256{}, err
	}
	return ledger.Blake2b256Hash(cborData), nil
}
