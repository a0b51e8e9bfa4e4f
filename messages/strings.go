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

// fixedFieldLen is the wire width of StringsRecord's fixed byte field
// (§6 "Fixed-length byte strings (size N)").
const fixedFieldLen = 10

// StringsRecord is the scenario-S2 fixture: a fixed[10] byte field
// followed by a NUL-terminated string. Wire layout is 10 bytes of fixed
// content followed by the string's bytes and a single zero terminator.
type StringsRecord struct {
	trunnel.ErrorWord

	fixed [fixedFieldLen]byte
	nt    trunnel.String
}

// NewStringsRecord returns a zeroed record.
func NewStringsRecord() *StringsRecord { return &StringsRecord{} }

// Fixed returns a copy of the fixed-length field.
func (m *StringsRecord) Fixed() [fixedFieldLen]byte { return m.fixed }

// SetFixed overwrites the fixed-length field in full; fixed-length byte
// strings have no length accessor to set independently (§4.3 "Fixed
// arrays").
func (m *StringsRecord) SetFixed(v [fixedFieldLen]byte) int {
	m.fixed = v
	return 0
}

// Nt returns the NUL-terminated string field's content (not including
// the terminator).
func (m *StringsRecord) Nt() string { return string(m.nt.Bytes()) }

// SetNt sets the NUL-terminated string field. It rejects (-1, deferred
// error word set) any value containing an embedded zero byte, since that
// would be indistinguishable from the terminator on the wire (§6).
func (m *StringsRecord) SetNt(v string) int {
	if bytes.IndexByte([]byte(v), 0) >= 0 {
		m.ErrorWord.Set()
		return -1
	}
	if !m.nt.SetBytes([]byte(v)) {
		m.ErrorWord.Set()
		return -1
	}
	return 0
}

// ParseStringsRecord implements §4.4 parse for StringsRecord. Per S2, a
// buffer that is truncated inside the fixed field is Truncated; once the
// fixed field has been fully read, a truncated or missing terminator in
// the NUL-terminated field is also Truncated (more bytes could still
// supply the terminator) — parse never turns this into Malformed, since
// there is no restriction to violate here.
func ParseStringsRecord(buf []byte) (*StringsRecord, int, error) {
	c := trunnel.NewCursor(buf)
	m := &StringsRecord{}

	fixed, err := c.Bytes(fixedFieldLen)
	if err != nil {
		return nil, 0, err
	}
	copy(m.fixed[:], fixed)

	nt, err := c.NulTerminated()
	if err != nil {
		return nil, 0, err
	}
	if !m.nt.SetBytes(nt) {
		return nil, 0, c.Malformed("allocation failed while storing nt")
	}

	return m, c.Pos(), nil
}

// Check reports why Encode would fail.
func (m *StringsRecord) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if bytes.IndexByte(m.nt.Bytes(), 0) >= 0 {
		return trunnel.ErrFieldRestricted("nt", 0)
	}
	return nil
}

// Encode implements §4.5.
func (m *StringsRecord) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	if err := w.Bytes(m.fixed[:]); err != nil {
		return 0, err
	}
	if err := w.NulTerminated(m.nt.Bytes()); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}
