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

import (
	"bytes"

	trunnel "github.com/rl1987/trunnel"
)

// PositionRecord is the position-marker fixture recovered from
// original_source's positions regression test: two required
// NUL-terminated strings, each followed by a position marker capturing
// the cursor offset at that point in the buffer (§4.4 "Position
// markers... occupy zero bytes on the wire"), then a trailing u32.
//
// Wire layout: s1, NUL, [pos1 marker], s2, NUL, [pos2 marker], x (u32
// big-endian). s1 and s2 are required: unlike IntegerRecord's scalars,
// an unset string here is absent (not merely zero-length), so Encode
// fails until both have been explicitly set at least once, matching the
// original fixture's "new() then encode -> -1; set s1 then encode ->
// -1; set s2 then encode -> succeeds" sequence.
type PositionRecord struct {
	trunnel.ErrorWord

	s1    trunnel.String
	s1Set bool
	pos1  int

	s2    trunnel.String
	s2Set bool
	pos2  int

	x uint32
}

// NewPositionRecord returns a zeroed record with both strings unset.
func NewPositionRecord() *PositionRecord { return &PositionRecord{} }

// S1 returns the first string field's content.
func (m *PositionRecord) S1() string { return string(m.s1.Bytes()) }

// SetS1 sets the first string field, rejecting embedded zero bytes.
func (m *PositionRecord) SetS1(v string) int {
	if bytes.IndexByte([]byte(v), 0) >= 0 {
		m.ErrorWord.Set()
		return -1
	}
	if !m.s1.SetBytes([]byte(v)) {
		m.ErrorWord.Set()
		return -1
	}
	m.s1Set = true
	return 0
}

// Pos1 returns the byte offset captured immediately after s1 on the most
// recent Parse; it is meaningless (zero) on a record that was built
// rather than parsed, since position markers carry no data of their own
// to reconstruct from mutator calls.
func (m *PositionRecord) Pos1() int { return m.pos1 }

// S2 returns the second string field's content.
func (m *PositionRecord) S2() string { return string(m.s2.Bytes()) }

// SetS2 sets the second string field, rejecting embedded zero bytes.
func (m *PositionRecord) SetS2(v string) int {
	if bytes.IndexByte([]byte(v), 0) >= 0 {
		m.ErrorWord.Set()
		return -1
	}
	if !m.s2.SetBytes([]byte(v)) {
		m.ErrorWord.Set()
		return -1
	}
	m.s2Set = true
	return 0
}

// Pos2 returns the byte offset captured immediately after s2 on the most
// recent Parse.
func (m *PositionRecord) Pos2() int { return m.pos2 }

// X returns the trailing u32 field.
func (m *PositionRecord) X() uint32 { return m.x }

// SetX sets the trailing u32 field.
func (m *PositionRecord) SetX(v uint32) int { m.x = v; return 0 }

// ParsePositionRecord implements §4.4, capturing pos1 and pos2 as the
// cursor's position at the moment each preceding string finishes
// parsing, before any bytes of the next field are read.
func ParsePositionRecord(buf []byte) (*PositionRecord, int, error) {
	c := trunnel.NewCursor(buf)
	m := &PositionRecord{}

	s1, err := c.NulTerminated()
	if err != nil {
		return nil, 0, err
	}
	if !m.s1.SetBytes(s1) {
		return nil, 0, c.Malformed("allocation failed while storing s1")
	}
	m.s1Set = true
	m.pos1 = c.Pos()

	s2, err := c.NulTerminated()
	if err != nil {
		return nil, 0, err
	}
	if !m.s2.SetBytes(s2) {
		return nil, 0, c.Malformed("allocation failed while storing s2")
	}
	m.s2Set = true
	m.pos2 = c.Pos()

	x, err := c.U32()
	if err != nil {
		return nil, 0, err
	}
	m.x = x

	return m, c.Pos(), nil
}

// Check reports why Encode would fail: the deferred error word, or
// either required string never having been set.
func (m *PositionRecord) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if !m.s1Set {
		return trunnel.ErrFieldRestricted("s1", 0)
	}
	if !m.s2Set {
		return trunnel.ErrFieldRestricted("s2", 0)
	}
	return nil
}

// Encode implements §4.5. The position markers themselves occupy zero
// wire bytes and so contribute nothing here; Pos1/Pos2 only become
// meaningful again after the encoded bytes are re-parsed.
func (m *PositionRecord) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	if err := w.NulTerminated(m.s1.Bytes()); err != nil {
		return 0, err
	}
	if err := w.NulTerminated(m.s2.Bytes()); err != nil {
		return 0, err
	}
	if err := w.U32(m.x); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}
