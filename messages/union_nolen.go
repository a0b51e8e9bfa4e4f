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

// Union tags for UnionNoLen (scenario S4).
const (
	TagOneByte uint8 = 0x02
)

// UnionNoLen is the scenario-S4 fixture: a tag byte selects an arm whose
// body has its own fixed shape, with no length field framing the body
// (§4.4 "Parsing a union", §6 "Unions ... unframed"). There is no
// default arm: an unrecognized tag is Malformed ("unknown tag"), per
// §4.4(a).
type UnionNoLen struct {
	trunnel.ErrorWord

	tag  uint8
	body uint8 // meaningful only when tag == TagOneByte
}

// NewUnionNoLen returns a zeroed union (tag 0, which is itself not a
// recognized arm until set).
func NewUnionNoLen() *UnionNoLen { return &UnionNoLen{} }

// Tag returns the union's discriminant.
func (m *UnionNoLen) Tag() uint8 { return m.tag }

// Body returns the one-byte body; only meaningful when Tag() ==
// TagOneByte.
func (m *UnionNoLen) Body() uint8 { return m.body }

// SetOneByteArm sets the union to the one-byte-body arm with the given
// body value.
func (m *UnionNoLen) SetOneByteArm(body uint8) {
	m.tag = TagOneByte
	m.body = body
}

// ParseUnionNoLen implements §4.4's union-dispatch rule: read the tag,
// then dispatch. Because there is no length field framing the body, an
// unrecognized tag must fail before any attempt is made to guess how
// many bytes it "would have" consumed.
func ParseUnionNoLen(buf []byte) (*UnionNoLen, int, error) {
	c := trunnel.NewCursor(buf)
	m := &UnionNoLen{}

	tag, err := c.U8()
	if err != nil {
		return nil, 0, err
	}

	switch tag {
	case TagOneByte:
		body, err := c.U8()
		if err != nil {
			return nil, 0, err
		}
		m.tag, m.body = tag, body
	default:
		return nil, 0, c.Malformed("unknown union tag %#x and no default arm", tag)
	}

	return m, c.Pos(), nil
}

// Check reports why Encode would fail: an unrecognized tag is Malformed,
// per §4.5 "a union's tag is not a recognized value AND no default arm
// exists".
func (m *UnionNoLen) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	switch m.tag {
	case TagOneByte:
		return nil
	default:
		return trunnel.ErrFieldRestricted("tag", int64(m.tag))
	}
}

// Encode implements §4.5.
func (m *UnionNoLen) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	if err := w.U8(m.tag); err != nil {
		return 0, err
	}
	if err := w.U8(m.body); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}
