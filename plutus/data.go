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

// Package plutus models Plutus data values: integers, byte strings,
// lists, maps, and constructor applications. Values decoded from CBOR
// remember their exact original encoding and replay it byte-for-byte
// when re-encoded, so datum and redeemer hashes survive round-trips
// through encodings that differ from ours.
package plutus

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/blinklabs-io/cardano-codec/cbor"
)

// Data is a Plutus data value: *Integer, *ByteString, *List, *Map, or
// *Constr
type Data interface {
	isData()
	cachedCbor() []byte
	clearCache()
	encode(w *cbor.Writer) error
}

// cborCache holds the verbatim encoding captured at decode time.
// Mutating a value through its methods drops the cache so the next
// encode reflects the change.
type cborCache struct {
	cborData []byte
}

func (c *cborCache) cachedCbor() []byte {
	return c.cborData
}

func (c *cborCache) clearCache() {
	c.cborData = nil
}

func (c *cborCache) setCbor(data []byte) {
	c.cborData = data
}

// Integer is an arbitrary-precision Plutus integer
type Integer struct {
	cborCache
	value *big.Int
}

// NewInteger creates an Integer from a big.Int, copying the value
func NewInteger(value *big.Int) *Integer {
	return &Integer{value: new(big.Int).Set(value)}
}

// NewIntegerFromInt64 creates an Integer from an int64
func NewIntegerFromInt64(value int64) *Integer {
	return &Integer{value: big.NewInt(value)}
}

func (*Integer) isData() {}

// Value returns a copy of the integer value
func (d *Integer) Value() *big.Int {
	return new(big.Int).Set(d.value)
}

// SetValue replaces the integer value
func (d *Integer) SetValue(value *big.Int) {
	d.value = new(big.Int).Set(value)
	d.clearCache()
}

func (d *Integer) encode(w *cbor.Writer) error {
	if d.value.IsInt64() {
		return w.WriteInt(d.value.Int64())
	}
	if d.value.IsUint64() {
		return w.WriteUint(d.value.Uint64())
	}
	return w.WriteBigInt(d.value)
}

// ByteString is a Plutus byte string
type ByteString struct {
	cborCache
	value []byte
}

// NewByteString creates a ByteString, copying the bytes
func NewByteString(value []byte) *ByteString {
	return &ByteString{value: bytes.Clone(value)}
}

func (*ByteString) isData() {}

// Value returns a copy of the bytes
func (d *ByteString) Value() []byte {
	return bytes.Clone(d.value)
}

// SetValue replaces the bytes
func (d *ByteString) SetValue(value []byte) {
	d.value = bytes.Clone(value)
	d.clearCache()
}

func (d *ByteString) encode(w *cbor.Writer) error {
	return w.WriteBytes(d.value)
}

// List is an ordered sequence of Plutus data values
type List struct {
	cborCache
	items []Data
}

// NewList creates a List from the given items
func NewList(items ...Data) *List {
	return &List{items: items}
}

func (*List) isData() {}

// Len returns the number of items
func (d *List) Len() int {
	return len(d.items)
}

// Get returns the item at index i
func (d *List) Get(i int) Data {
	return d.items[i]
}

// Add appends an item
func (d *List) Add(item Data) {
	d.items = append(d.items, item)
	d.clearCache()
}

// Set replaces the item at index i
func (d *List) Set(i int, item Data) {
	d.items[i] = item
	d.clearCache()
}

// Remove deletes the item at index i, shifting later items down
func (d *List) Remove(i int) {
	d.items = append(d.items[:i], d.items[i+1:]...)
	d.clearCache()
}

func (d *List) encode(w *cbor.Writer) error {
	return encodeItems(w, d.items)
}

// MapPair is a single key/value entry of a Map
type MapPair struct {
	Key   Data
	Value Data
}

// Map is a sequence of key/value pairs. Entry order is preserved from
// construction or decoding; keys are compared structurally.
type Map struct {
	cborCache
	pairs []MapPair
}

// NewMap creates a Map from the given pairs
func NewMap(pairs ...MapPair) *Map {
	return &Map{pairs: pairs}
}

func (*Map) isData() {}

// Len returns the number of entries
func (d *Map) Len() int {
	return len(d.pairs)
}

// Pair returns the entry at index i
func (d *Map) Pair(i int) MapPair {
	return d.pairs[i]
}

// Get returns the value for a structurally equal key
func (d *Map) Get(key Data) (Data, bool) {
	for _, pair := range d.pairs {
		if Equal(pair.Key, key) {
			return pair.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for a structurally equal key, or appends a new
// entry if none matches
func (d *Map) Set(key Data, value Data) {
	defer d.clearCache()
	for i, pair := range d.pairs {
		if Equal(pair.Key, key) {
			d.pairs[i].Value = value
			return
		}
	}
	d.pairs = append(d.pairs, MapPair{Key: key, Value: value})
}

// Delete removes the entry with a structurally equal key, reporting
// whether one was found
func (d *Map) Delete(key Data) bool {
	for i, pair := range d.pairs {
		if Equal(pair.Key, key) {
			d.pairs = append(d.pairs[:i], d.pairs[i+1:]...)
			d.clearCache()
			return true
		}
	}
	return false
}

func (d *Map) encode(w *cbor.Writer) error {
	if err := w.WriteStartMap(0); err != nil {
		return err
	}
	for _, pair := range d.pairs {
		if err := encodeData(w, pair.Key); err != nil {
			return err
		}
		if err := encodeData(w, pair.Value); err != nil {
			return err
		}
	}
	return w.WriteEndMap()
}

// Constr is a constructor application: an alternative number and a list
// of field values
type Constr struct {
	cborCache
	alternative uint64
	fields      []Data
}

// NewConstr creates a Constr for the given alternative and fields
func NewConstr(alternative uint64, fields ...Data) *Constr {
	return &Constr{
		alternative: alternative,
		fields:      fields,
	}
}

func (*Constr) isData() {}

// Alternative returns the constructor alternative number
func (d *Constr) Alternative() uint64 {
	return d.alternative
}

// SetAlternative replaces the alternative number
func (d *Constr) SetAlternative(alternative uint64) {
	d.alternative = alternative
	d.clearCache()
}

// NumFields returns the number of constructor fields
func (d *Constr) NumFields() int {
	return len(d.fields)
}

// Field returns the field at index i
func (d *Constr) Field(i int) Data {
	return d.fields[i]
}

// AddField appends a field
func (d *Constr) AddField(field Data) {
	d.fields = append(d.fields, field)
	d.clearCache()
}

// SetField replaces the field at index i
func (d *Constr) SetField(i int, field Data) {
	d.fields[i] = field
	d.clearCache()
}

func (d *Constr) encode(w *cbor.Writer) error {
	if tag, ok := cbor.AlternativeToCompactTag(d.alternative); ok {
		if err := w.WriteTag(tag); err != nil {
			return err
		}
		return encodeItems(w, d.fields)
	}
	// General form: tag 102 wrapping [alternative, fields]
	if err := w.WriteTag(cbor.TagGeneralConstr); err != nil {
		return err
	}
	if err := w.WriteStartArray(2); err != nil {
		return err
	}
	if err := w.WriteUint(d.alternative); err != nil {
		return err
	}
	return encodeItems(w, d.fields)
}

// encodeData writes a value, replaying its captured encoding when one is
// cached
func encodeData(w *cbor.Writer, d Data) error {
	if cached := d.cachedCbor(); cached != nil {
		return w.WriteEncoded(cached)
	}
	return d.encode(w)
}

// encodeItems writes a list of values with indefinite-length framing
func encodeItems(w *cbor.Writer, items []Data) error {
	if err := w.WriteStartArray(0); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeData(w, item); err != nil {
			return err
		}
	}
	return w.WriteEndArray()
}

// Encode returns the CBOR encoding of a value. Values decoded from CBOR
// and not modified since then encode to their exact original bytes.
func Encode(d Data) ([]byte, error) {
	w := cbor.NewWriter()
	if err := encodeData(w, d); err != nil {
		return nil, err
	}
	return w.Encode(), nil
}

// EncodeTo writes the CBOR encoding of a value to an existing Writer
func EncodeTo(d Data, w *cbor.Writer) error {
	return encodeData(w, d)
}

// DecodeBytes decodes a single Plutus data value from data, rejecting
// trailing bytes
func DecodeBytes(data []byte) (Data, error) {
	r := cbor.NewReader(data)
	d, err := Decode(r)
	if err != nil {
		return nil, err
	}
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	if state != cbor.ReaderStateFinished {
		return nil, errors.New("trailing data after Plutus data value")
	}
	return d, nil
}

// Decode reads the next Plutus data value from r. Containers and
// constructors capture their exact encoded span for later replay; the
// spans alias the Reader's input buffer, which must stay unmodified for
// the life of the decoded value.
func Decode(r *cbor.Reader) (Data, error) {
	state, err := r.PeekState()
	if err != nil {
		return nil, err
	}
	switch state {
	case cbor.ReaderStateUnsignedInteger, cbor.ReaderStateNegativeInteger:
		value, err := r.ReadBigInt()
		if err != nil {
			return nil, err
		}
		return &Integer{value: value}, nil
	case cbor.ReaderStateByteString,
		cbor.ReaderStateStartIndefiniteByteString:
		value, err := r.ReadByteString()
		if err != nil {
			return nil, err
		}
		return &ByteString{value: value}, nil
	case cbor.ReaderStateStartArray:
		raw, err := r.Clone().ReadEncodedValue()
		if err != nil {
			return nil, err
		}
		items, err := decodeItems(r)
		if err != nil {
			return nil, err
		}
		ret := &List{items: items}
		ret.setCbor(raw)
		return ret, nil
	case cbor.ReaderStateStartMap:
		raw, err := r.Clone().ReadEncodedValue()
		if err != nil {
			return nil, err
		}
		ret, err := decodeMap(r)
		if err != nil {
			return nil, err
		}
		ret.setCbor(raw)
		return ret, nil
	case cbor.ReaderStateTag:
		tag, err := r.PeekTag()
		if err != nil {
			return nil, err
		}
		switch {
		case tag == cbor.TagUnsignedBignum || tag == cbor.TagNegativeBignum:
			value, err := r.ReadBigInt()
			if err != nil {
				return nil, err
			}
			return &Integer{value: value}, nil
		case cbor.IsConstrTag(tag):
			raw, err := r.Clone().ReadEncodedValue()
			if err != nil {
				return nil, err
			}
			ret, err := decodeConstr(r)
			if err != nil {
				return nil, err
			}
			ret.setCbor(raw)
			return ret, nil
		default:
			return nil, &cbor.DecodeError{
				Message: "unsupported tag in Plutus data",
			}
		}
	default:
		return nil, &cbor.DecodeError{
			Message: "unsupported item in Plutus data: " + state.String(),
		}
	}
}

func decodeItems(r *cbor.Reader) ([]Data, error) {
	if _, err := r.ReadStartArray(); err != nil {
		return nil, err
	}
	var items []Data
	for {
		state, err := r.PeekState()
		if err != nil {
			return nil, err
		}
		if state == cbor.ReaderStateEndArray {
			break
		}
		item, err := Decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeMap(r *cbor.Reader) (*Map, error) {
	if _, err := r.ReadStartMap(); err != nil {
		return nil, err
	}
	var pairs []MapPair
	for {
		state, err := r.PeekState()
		if err != nil {
			return nil, err
		}
		if state == cbor.ReaderStateEndMap {
			break
		}
		key, err := Decode(r)
		if err != nil {
			return nil, err
		}
		value, err := Decode(r)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MapPair{Key: key, Value: value})
	}
	if err := r.ReadEndMap(); err != nil {
		return nil, err
	}
	return &Map{pairs: pairs}, nil
}

func decodeConstr(r *cbor.Reader) (*Constr, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}
	if alternative, ok := cbor.CompactTagToAlternative(tag); ok {
		fields, err := decodeItems(r)
		if err != nil {
			return nil, err
		}
		return &Constr{alternative: alternative, fields: fields}, nil
	}
	// General form content is [alternative, fields]
	if err := cbor.ValidateArrayOfNElements(r, "Constr", 2); err != nil {
		return nil, err
	}
	alternative, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	fields, err := decodeItems(r)
	if err != nil {
		return nil, err
	}
	if err := r.ReadEndArray(); err != nil {
		return nil, err
	}
	return &Constr{alternative: alternative, fields: fields}, nil
}

// ClearCache drops the captured encodings of a value and everything
// nested inside it, forcing a full re-encode. Use it after mutating
// values reached through container accessors.
func ClearCache(d Data) {
	d.clearCache()
	switch v := d.(type) {
	case *List:
		for _, item := range v.items {
			ClearCache(item)
		}
	case *Map:
		for _, pair := range v.pairs {
			ClearCache(pair.Key)
			ClearCache(pair.Value)
		}
	case *Constr:
		for _, field := range v.fields {
			ClearCache(field)
		}
	}
}

// Equal reports whether two values are structurally equal. Map entries
// are compared in order.
func Equal(a Data, b Data) bool {
	switch av := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.value.Cmp(bv.value) == 0
	case *ByteString:
		bv, ok := b.(*ByteString)
		return ok && bytes.Equal(av.value, bv.value)
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || len(av.pairs) != len(bv.pairs) {
			return false
		}
		for i := range av.pairs {
			if !Equal(av.pairs[i].Key, bv.pairs[i].Key) ||
				!Equal(av.pairs[i].Value, bv.pairs[i].Value) {
				return false
			}
		}
		return true
	case *Constr:
		bv, ok := b.(*Constr)
		if !ok || av.alternative != bv.alternative ||
			len(av.fields) != len(bv.fields) {
			return false
		}
		for i := range av.fields {
			if !Equal(av.fields[i], bv.fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
