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

const (
	// Useful tag numbers
	TagUnsignedBignum uint64 = 2
	TagNegativeBignum uint64 = 3
	TagCbor           uint64 = 24
	TagRational       uint64 = 30
	TagSet            uint64 = 258

	// Tag ranges for Plutus constructor "alternatives"
	TagAlternative1Min uint64 = 121
	TagAlternative1Max uint64 = 127
	TagAlternative2Min uint64 = 1280
	TagAlternative2Max uint64 = 1400

	// General-form constructor tag: content is [alternative, fields]
	TagGeneralConstr uint64 = 102
)
