// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package messages

import trunnel "github.com/rl1987/trunnel"

// RestrictedTriple is the restricted-scalar half of scenario S3: three
// one-byte fields, each confined to its own closed set
// (i1 in {1}, i2 in {1,5,10}, i3 in {1,2,3}), per §4.4's "restricted
// scalar" rule.
type RestrictedTriple struct {
	trunnel.ErrorWord

	i1, i2, i3 uint8
}

var (
	restrictedI1 = []uint8{1}
	restrictedI2 = []uint8{1, 5, 10}
	restrictedI3 = []uint8{1, 2, 3}
)

// NewRestrictedTriple returns a zeroed triple. Note that the zero value
// (0, 0, 0) is itself outside every one of the three restricted sets;
// callers must set all three fields before the triple will Check/Encode
// successfully, matching "a message may be BUILDING but not yet READY"
// (§4.7).
func NewRestrictedTriple() *RestrictedTriple { return &RestrictedTriple{} }

func inSet(v uint8, set []uint8) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// I1 returns the i1 field.
func (m *RestrictedTriple) I1() uint8 { return m.i1 }

// SetI1 sets i1, rejecting any value outside {1}.
func (m *RestrictedTriple) SetI1(v uint8) int {
	if !inSet(v, restrictedI1) {
		m.ErrorWord.Set()
		return -1
	}
	m.i1 = v
	return 0
}

// I2 returns the i2 field.
func (m *RestrictedTriple) I2() uint8 { return m.i2 }

// SetI2 sets i2, rejecting any value outside {1,5,10}.
func (m *RestrictedTriple) SetI2(v uint8) int {
	if !inSet(v, restrictedI2) {
		m.ErrorWord.Set()
		return -1
	}
	m.i2 = v
	return 0
}

// I3 returns the i3 field.
func (m *RestrictedTriple) I3() uint8 { return m.i3 }

// SetI3 sets i3, rejecting any value outside {1,2,3}.
func (m *RestrictedTriple) SetI3(v uint8) int {
	if !inSet(v, restrictedI3) {
		m.ErrorWord.Set()
		return -1
	}
	m.i3 = v
	return 0
}

// ParseRestrictedTriple implements §4.4: each byte is read then checked
// against its set immediately, so that a disallowed value is reported as
// Malformed at the offset of the offending byte rather than after
// reading ahead.
func ParseRestrictedTriple(buf []byte) (*RestrictedTriple, int, error) {
	c := trunnel.NewCursor(buf)
	m := &RestrictedTriple{}

	i1Off := c.Pos()
	i1, err := c.U8()
	if err != nil {
		return nil, 0, err
	}
	if !inSet(i1, restrictedI1) {
		return nil, 0, trunnel.RestrictedU8(i1Off, "i1", i1, restrictedI1...)
	}

	i2Off := c.Pos()
	i2, err := c.U8()
	if err != nil {
		return nil, 0, err
	}
	if !inSet(i2, restrictedI2) {
		return nil, 0, trunnel.RestrictedU8(i2Off, "i2", i2, restrictedI2...)
	}

	i3Off := c.Pos()
	i3, err := c.U8()
	if err != nil {
		return nil, 0, err
	}
	if !inSet(i3, restrictedI3) {
		return nil, 0, trunnel.RestrictedU8(i3Off, "i3", i3, restrictedI3...)
	}

	m.i1, m.i2, m.i3 = i1, i2, i3
	return m, c.Pos(), nil
}

// Check reports why Encode would fail: either the deferred error word is
// set, or a stored field lies outside its set (§4.5 "a declared
// restriction is violated by a stored value"). The setters never store
// such a value, but a field that was never set still holds the zero
// value from NewRestrictedTriple, which is outside every set.
func (m *RestrictedTriple) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if !inSet(m.i1, restrictedI1) {
		return trunnel.ErrFieldRestricted("i1", int64(m.i1))
	}
	if !inSet(m.i2, restrictedI2) {
		return trunnel.ErrFieldRestricted("i2", int64(m.i2))
	}
	if !inSet(m.i3, restrictedI3) {
		return trunnel.ErrFieldRestricted("i3", int64(m.i3))
	}
	return nil
}

// Encode implements §4.5.
func (m *RestrictedTriple) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	if err := w.U8(m.i1); err != nil {
		return 0, err
	}
	if err := w.U8(m.i2); err != nil {
		return 0, err
	}
	if err := w.U8(m.i3); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}

// NestedRecord is the scenario-S3 fixture: two IntegerRecords, a
// StringsRecord, and a RestrictedTriple, one after another with no
// framing between them. It demonstrates owned sub-messages (§3
// "Message", "Ownership"): NestedRecord exclusively owns all four
// children, and freeing it (conceptually; this runtime relies on the
// garbage collector — see DESIGN.md) would recursively free them.
type NestedRecord struct {
	trunnel.ErrorWord

	first, second *IntegerRecord
	strs          *StringsRecord
	triple        *RestrictedTriple
}

// NewNestedRecord returns a zeroed record with all four sub-message
// pointers nil (an empty variable-length sub-message is represented as a
// nil pointer until set, per §4.3's sub-message accessor contract).
func NewNestedRecord() *NestedRecord { return &NestedRecord{} }

// First returns the first nested integer record (borrowed).
func (m *NestedRecord) First() *IntegerRecord { return m.first }

// SetFirst takes ownership of child, freeing any previous value.
func (m *NestedRecord) SetFirst(child *IntegerRecord) { m.first = child }

// Second returns the second nested integer record (borrowed).
func (m *NestedRecord) Second() *IntegerRecord { return m.second }

// SetSecond takes ownership of child, freeing any previous value.
func (m *NestedRecord) SetSecond(child *IntegerRecord) { m.second = child }

// Strs returns the nested strings record (borrowed).
func (m *NestedRecord) Strs() *StringsRecord { return m.strs }

// SetStrs takes ownership of child, freeing any previous value.
func (m *NestedRecord) SetStrs(child *StringsRecord) { m.strs = child }

// Triple returns the nested restricted triple (borrowed).
func (m *NestedRecord) Triple() *RestrictedTriple { return m.triple }

// SetTriple takes ownership of child, freeing any previous value.
func (m *NestedRecord) SetTriple(child *RestrictedTriple) { m.triple = child }

// ParseNestedRecord implements §4.4 for a record built entirely out of
// nested sub-parses: it delegates to each child's Parse in turn, and any
// error from a child (Truncated or Malformed) propagates unchanged,
// since NestedRecord itself adds no new constraints.
func ParseNestedRecord(buf []byte) (*NestedRecord, int, error) {
	pos := 0
	m := &NestedRecord{}

	first, n, err := ParseIntegerRecord(buf[pos:])
	if err != nil {
		return nil, 0, reoffset(err, pos)
	}
	pos += n

	second, n, err := ParseIntegerRecord(buf[pos:])
	if err != nil {
		return nil, 0, reoffset(err, pos)
	}
	pos += n

	strs, n, err := ParseStringsRecord(buf[pos:])
	if err != nil {
		return nil, 0, reoffset(err, pos)
	}
	pos += n

	triple, n, err := ParseRestrictedTriple(buf[pos:])
	if err != nil {
		return nil, 0, reoffset(err, pos)
	}
	pos += n

	m.first, m.second, m.strs, m.triple = first, second, strs, triple
	return m, pos, nil
}

// Check implements §4.5: a required sub-message pointer that is nil is
// Malformed ("a required sub-message pointer is null"); otherwise
// NestedRecord defers to each child's own Check.
func (m *NestedRecord) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if m.first == nil || m.second == nil || m.strs == nil || m.triple == nil {
		return trunnel.ErrFieldRestricted("nested sub-message", 0)
	}
	if err := m.first.Check(); err != nil {
		return err
	}
	if err := m.second.Check(); err != nil {
		return err
	}
	if err := m.strs.Check(); err != nil {
		return err
	}
	return m.triple.Check()
}

// Encode implements §4.5.
func (m *NestedRecord) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	pos := 0
	for _, child := range []interface {
		Encode([]byte) (int, error)
	}{m.first, m.second, m.strs, m.triple} {
		n, err := child.Encode(buf[pos:])
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}

// reoffset rewrites a *trunnel.ParseError's offset to be relative to the
// start of the outer buffer rather than the inner sub-slice a nested
// Parse call was given, so error offsets are always absolute.
func reoffset(err error, base int) error {
	pe, ok := err.(*trunnel.ParseError)
	if !ok {
		return err
	}
	shifted := *pe
	shifted.Offset += base
	return &shifted
}
