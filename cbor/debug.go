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

import (
	"fmt"
	"strings"
)

// DumpStructure returns a multi-line description of the CBOR structure in
// data. It's meant for debugging malformed or unexpected encodings, not
// for machine consumption.
func DumpStructure(data []byte) (string, error) {
	var sb strings.Builder
	r := NewReader(data)
	if err := dumpValue(r, &sb, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func dumpValue(r *Reader, sb *strings.Builder, indent int) error {
	state, err := r.PeekState()
	if err != nil {
		return err
	}
	prefix := strings.Repeat("  ", indent)
	switch state {
	case ReaderStateUnsignedInteger:
		value, err := r.ReadUint()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%d\n", prefix, value)
	case ReaderStateNegativeInteger:
		value, err := r.ReadBigInt()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%s\n", prefix, value.String())
	case ReaderStateByteString, ReaderStateStartIndefiniteByteString:
		value, err := r.ReadByteString()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%sh'%x'\n", prefix, value)
	case ReaderStateTextString, ReaderStateStartIndefiniteTextString:
		value, err := r.ReadTextString()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%q\n", prefix, value)
	case ReaderStateStartArray:
		size, err := r.ReadStartArray()
		if err != nil {
			return err
		}
		if size < 0 {
			fmt.Fprintf(sb, "%sarray(indefinite) [\n", prefix)
		} else {
			fmt.Fprintf(sb, "%sarray(%d) [\n", prefix, size)
		}
		if err := dumpContainerItems(r, sb, indent+1); err != nil {
			return err
		}
		if err := r.ReadEndArray(); err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s]\n", prefix)
	case ReaderStateStartMap:
		size, err := r.ReadStartMap()
		if err != nil {
			return err
		}
		if size < 0 {
			fmt.Fprintf(sb, "%smap(indefinite) {\n", prefix)
		} else {
			fmt.Fprintf(sb, "%smap(%d) {\n", prefix, size)
		}
		if err := dumpContainerItems(r, sb, indent+1); err != nil {
			return err
		}
		if err := r.ReadEndMap(); err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s}\n", prefix)
	case ReaderStateTag:
		tag, err := r.ReadTag()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%stag(%d)\n", prefix, tag)
		return dumpValue(r, sb, indent+1)
	case ReaderStateBoolean:
		value, err := r.ReadBool()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%t\n", prefix, value)
	case ReaderStateNull:
		if err := r.ReadNull(); err != nil {
			return err
		}
		fmt.Fprintf(sb, "%snull\n", prefix)
	case ReaderStateHalfFloat, ReaderStateSingleFloat, ReaderStateDoubleFloat:
		value, err := r.ReadFloat()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%g\n", prefix, value)
	case ReaderStateSimpleValue:
		value, err := r.ReadSimpleValue()
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%ssimple(%d)\n", prefix, value)
	default:
		return decodeErrorf("unexpected %s while dumping structure", state)
	}
	return nil
}

func dumpContainerItems(r *Reader, sb *strings.Builder, indent int) error {
	for {
		state, err := r.PeekState()
		if err != nil {
			return err
		}
		if state == ReaderStateEndArray || state == ReaderStateEndMap {
			return nil
		}
		if err := dumpValue(r, sb, indent); err != nil {
			return err
		}
	}
}
