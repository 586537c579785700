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

// Plutus constructor values are encoded as tagged lists, with the
// constructor alternative folded into the tag number where it fits:
//
//	alternatives 0-6    tags 121-127
//	alternatives 7-127  tags 1280-1400
//	anything larger     tag 102 wrapping [alternative, fields]

// AlternativeToCompactTag returns the compact tag for a constructor
// alternative. The second return is false when the alternative has no
// compact form and must use the general encoding under TagGeneralConstr.
func AlternativeToCompactTag(alternative uint64) (uint64, bool) {
	if alternative <= TagAlternative1Max-TagAlternative1Min {
		return TagAlternative1Min + alternative, true
	}
	if alternative <= 127 {
		return TagAlternative2Min + alternative - 7, true
	}
	return 0, false
}

// CompactTagToAlternative returns the constructor alternative for a
// compact tag. The second return is false for tags outside both compact
// ranges (including TagGeneralConstr, whose alternative is carried in the
// content rather than the tag).
func CompactTagToAlternative(tag uint64) (uint64, bool) {
	if tag >= TagAlternative1Min && tag <= TagAlternative1Max {
		return tag - TagAlternative1Min, true
	}
	if tag >= TagAlternative2Min && tag <= TagAlternative2Max {
		return tag - TagAlternative2Min + 7, true
	}
	return 0, false
}

// IsConstrTag reports whether tag marks a constructor value in either the
// compact or general form
func IsConstrTag(tag uint64) bool {
	if tag == TagGeneralConstr {
		return true
	}
	_, ok := CompactTagToAlternative(tag)
	return ok
}
