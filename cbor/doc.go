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

// Package cbor implements the CBOR (RFC 8949) encoding primitives used by
// Cardano wire types.
//
// Unlike reflection-based codecs, this package exposes an explicit
// forward-only Writer and a pull-parser Reader. Typed objects serialize
// their fields in a fixed order against the Writer and read them back in
// the same order from the Reader, matching the fixed-shape CDDL schemas
// used on chain.
//
// The Writer always produces the smallest header encoding that can
// represent a value. The Reader accepts any legal encoding, and its
// ReadEncodedValue operation captures the exact input bytes of a value so
// that callers can replay non-canonical encodings verbatim when
// re-serializing (see the plutus package for how this is used).
//
// Writers and Readers are not safe for concurrent use. A Reader and any
// value decoded from it must be confined to a single goroutine unless
// externally synchronized.
package cbor
