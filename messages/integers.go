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

// Package messages contains hand-written message types that follow the
// uniform parse/encode/accessor protocol from §4.3 of the runtime
// specification. They stand in for code a schema compiler would
// otherwise generate; each is grounded in one of the worked scenarios
// S1-S7 and in the regression fixtures recovered from original_source/.
package messages

import trunnel "github.com/rl1987/trunnel"

// IntegerRecord is the scenario-S1 fixture: a flat record of the four
// unsigned integer widths the wire format supports, in order i8, i16,
// i32, i64. Wire layout is 1+2+4+8 = 15 bytes, big-endian, no framing.
type IntegerRecord struct {
	trunnel.ErrorWord

	i8  uint8
	i16 uint16
	i32 uint32
	i64 uint64
}

// NewIntegerRecord returns a zeroed record, matching the new() contract
// (all scalars zero, error word clear).
func NewIntegerRecord() *IntegerRecord { return &IntegerRecord{} }

// I8 returns the i8 field.
func (m *IntegerRecord) I8() uint8 { return m.i8 }

// SetI8 sets the i8 field. It always succeeds: i8 carries no
// restriction.
func (m *IntegerRecord) SetI8(v uint8) int { m.i8 = v; return 0 }

// I16 returns the i16 field.
func (m *IntegerRecord) I16() uint16 { return m.i16 }

// SetI16 sets the i16 field.
func (m *IntegerRecord) SetI16(v uint16) int { m.i16 = v; return 0 }

// I32 returns the i32 field.
func (m *IntegerRecord) I32() uint32 { return m.i32 }

// SetI32 sets the i32 field.
func (m *IntegerRecord) SetI32(v uint32) int { m.i32 = v; return 0 }

// I64 returns the i64 field.
func (m *IntegerRecord) I64() uint64 { return m.i64 }

// SetI64 sets the i64 field.
func (m *IntegerRecord) SetI64(v uint64) int { m.i64 = v; return 0 }

// ParseIntegerRecord implements §4.4 parse for a flat integer record: it
// reads the four scalars in order, returning Truncated the moment any
// one of them runs off the end of buf, and the total bytes consumed on
// success. Trailing bytes beyond the 15 consumed are not an error (this
// type is not exact-length).
func ParseIntegerRecord(buf []byte) (*IntegerRecord, int, error) {
	c := trunnel.NewCursor(buf)
	m := &IntegerRecord{}

	i8, err := c.U8()
	if err != nil {
		return nil, 0, err
	}
	i16, err := c.U16()
	if err != nil {
		return nil, 0, err
	}
	i32, err := c.U32()
	if err != nil {
		return nil, 0, err
	}
	i64, err := c.U64()
	if err != nil {
		return nil, 0, err
	}

	m.i8, m.i16, m.i32, m.i64 = i8, i16, i32, i64
	return m, c.Pos(), nil
}

// Check reports why Encode would fail without encoding; an IntegerRecord
// with no restricted fields can only fail via the deferred error word.
func (m *IntegerRecord) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	return m.ErrorWord.Check()
}

// Encode implements §4.5: writes the canonical 15-byte encoding.
func (m *IntegerRecord) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	if err := w.U8(m.i8); err != nil {
		return 0, err
	}
	if err := w.U16(m.i16); err != nil {
		return 0, err
	}
	if err := w.U32(m.i32); err != nil {
		return 0, err
	}
	if err := w.U64(m.i64); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}
