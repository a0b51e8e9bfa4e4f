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

// TagOneByteLen is UnionWithLen's recognized tag: its arm is a single
// content byte, regardless of how many bytes the length field frames it
// with (see below).
const TagOneByteLen uint8 = 0x02

// UnionWithLen is the scenario-S5 fixture: tag byte, u16 length field,
// then exactly length bytes of arm body (§4.4 "framed by a per-message
// length"), followed by a trailing NUL-terminated field.
//
// Both the recognized arm and the unrecognized-tag default arm are
// "ignore remainder" arms (§4.4): each reads only as much of the framed
// region as it needs and discards any padding out to length. This is
// what lets a sender over-frame a one-byte arm with padding, and is also
// what a default arm for a tag nobody recognizes must do, since it has
// no structure to parse at all. On re-encode, the length field is always
// rewritten to the minimal canonical value for what ended up stored
// (§4.5 "Canonical length-field rewriting"), which collapses any
// observed padding.
type UnionWithLen struct {
	trunnel.ErrorWord

	tag  uint8
	body uint8  // meaningful when tag == TagOneByteLen
	raw  []byte // meaningful when tag != TagOneByteLen: the absorbed default-arm bytes

	trailer trunnel.String
}

// NewUnionWithLen returns a zeroed union.
func NewUnionWithLen() *UnionWithLen { return &UnionWithLen{} }

// Tag returns the union's discriminant.
func (m *UnionWithLen) Tag() uint8 { return m.tag }

// Body returns the one-byte arm's content; only meaningful when Tag() ==
// TagOneByteLen.
func (m *UnionWithLen) Body() uint8 { return m.body }

// Raw returns the default arm's absorbed bytes; only meaningful when
// Tag() != TagOneByteLen.
func (m *UnionWithLen) Raw() []byte { return m.raw }

// SetOneByteArm sets the union to the recognized one-byte arm.
func (m *UnionWithLen) SetOneByteArm(body uint8) {
	m.tag, m.body, m.raw = TagOneByteLen, body, nil
}

// SetDefaultArm sets the union to an unrecognized tag whose body is
// exactly raw, the "ignore remainder" default arm (§4.4(a)).
func (m *UnionWithLen) SetDefaultArm(tag uint8, raw []byte) {
	if tag == TagOneByteLen {
		tag = TagOneByteLen + 1 // keep SetDefaultArm honest: never collide with the recognized tag.
	}
	m.tag, m.raw = tag, append([]byte(nil), raw...)
}

// Trailer returns the trailing NUL-terminated field that follows the
// union.
func (m *UnionWithLen) Trailer() string { return string(m.trailer.Bytes()) }

// SetTrailer sets the trailing field, rejecting embedded zero bytes.
func (m *UnionWithLen) SetTrailer(v string) int {
	if bytes.IndexByte([]byte(v), 0) >= 0 {
		m.ErrorWord.Set()
		return -1
	}
	if !m.trailer.SetBytes([]byte(v)) {
		m.ErrorWord.Set()
		return -1
	}
	return 0
}

// ParseUnionWithLen implements §4.4's framed-union rule: read the tag,
// read the u16 length, carve exactly that many bytes as a sub-buffer,
// dispatch on tag within the sub-buffer, then unconditionally advance
// past the whole frame (both arms here are ignore-remainder), then parse
// the trailing field.
func ParseUnionWithLen(buf []byte) (*UnionWithLen, int, error) {
	c := trunnel.NewCursor(buf)
	m := &UnionWithLen{}

	tag, err := c.U8()
	if err != nil {
		return nil, 0, err
	}

	length, err := c.U16()
	if err != nil {
		return nil, 0, err
	}

	frame, err := c.Sub(int(length))
	if err != nil {
		return nil, 0, err
	}

	switch tag {
	case TagOneByteLen:
		if len(frame) < 1 {
			return nil, 0, c.Malformed("one-byte arm needs at least 1 framed byte, got %d", len(frame))
		}
		m.tag, m.body = tag, frame[0]
	default:
		// Default arm: absorb the whole frame verbatim, however long it is.
		m.tag = tag
		m.raw = append([]byte(nil), frame...)
	}
	c.Advance(int(length))

	trailer, err := c.NulTerminated()
	if err != nil {
		return nil, 0, err
	}
	if !m.trailer.SetBytes(trailer) {
		return nil, 0, c.Malformed("allocation failed while storing trailer")
	}

	return m, c.Pos(), nil
}

// canonicalArmBytes returns the canonical (minimal) encoding of the
// union body, used both by Check's length-overflow test and by Encode.
func (m *UnionWithLen) canonicalArmBytes() []byte {
	if m.tag == TagOneByteLen {
		return []byte{m.body}
	}
	return m.raw
}

// Check reports why Encode would fail: a trailer containing an embedded
// zero byte, or a canonical arm length that would overflow the u16
// length field (§4.5 "If the derived value does not fit in the length
// field's wire width, encode returns -1").
func (m *UnionWithLen) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if bytes.IndexByte(m.trailer.Bytes(), 0) >= 0 {
		return trunnel.ErrFieldRestricted("trailer", 0)
	}
	if len(m.canonicalArmBytes()) > 0xFFFF {
		return trunnel.ErrFieldRestricted("length", int64(len(m.canonicalArmBytes())))
	}
	return nil
}

// Encode implements §4.5, including canonical length-field rewriting:
// the length written is always len(canonicalArmBytes()), never whatever
// framing length the value may have been parsed with.
func (m *UnionWithLen) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	arm := m.canonicalArmBytes()

	w := trunnel.NewWriter(buf)
	if err := w.U8(m.tag); err != nil {
		return 0, err
	}
	if err := w.U16(uint16(len(arm))); err != nil {
		return 0, err
	}
	if err := w.Bytes(arm); err != nil {
		return 0, err
	}
	if err := w.NulTerminated(m.trailer.Bytes()); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}
