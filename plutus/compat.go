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
	"errors"
	"fmt"
	"math"

	"github.com/blinklabs-io/plutigo/data"
)

// ToPlutigo converts a value to the plutigo representation for use with
// its CEK evaluator
func ToPlutigo(d Data) (data.PlutusData, error) {
	switch v := d.(type) {
	case *Integer:
		return data.NewInteger(v.Value()), nil
	case *ByteString:
		return data.NewByteString(v.Value()), nil
	case *List:
		items := make([]data.PlutusData, len(v.items))
		for i, item := range v.items {
			converted, err := ToPlutigo(item)
			if err != nil {
				return nil, err
			}
			items[i] = converted
		}
		return data.NewList(items...), nil
	case *Map:
		pairs := make([][2]data.PlutusData, len(v.pairs))
		for i, pair := range v.pairs {
			key, err := ToPlutigo(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := ToPlutigo(pair.Value)
			if err != nil {
				return nil, err
			}
			pairs[i] = [2]data.PlutusData{key, value}
		}
		return data.NewMap(pairs), nil
	case *Constr:
		if v.alternative > math.MaxUint32 {
			return nil, fmt.Errorf(
				"constructor alternative %d out of range",
				v.alternative,
			)
		}
		fields := make([]data.PlutusData, len(v.fields))
		for i, field := range v.fields {
			converted, err := ToPlutigo(field)
			if err != nil {
				return nil, err
			}
			fields[i] = converted
		}
		return data.NewConstr(uint(v.alternative), fields...), nil
	default:
		return nil, errors.New("unsupported Plutus data value")
	}
}

// FromPlutigo converts a plutigo value to our representation. The
// conversion goes through the CBOR encoding, which both libraries treat
// as the canonical contract, so the result carries a captured encoding
// just like a decoded value.
func FromPlutigo(pd data.PlutusData) (Data, error) {
	cborData, err := data.Encode(pd)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(cborData)
}
