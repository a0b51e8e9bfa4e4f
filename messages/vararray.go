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

// u32Size is the wire width of one ToEndArray element.
const u32Size = 4

// ToEndArray is the scenario-S6 fixture: a variable-length array of u32
// elements that runs to the end of the buffer rather than being
// length-prefixed or count-prefixed (§4.4 "Arrays that run to the end of
// the input"). The element count is derived from how many bytes remain,
// so the remaining byte count must be an exact multiple of the element
// width; any remainder is Malformed, since no amount of additional input
// fixes a misaligned trailing partial element (it is already fully
// present, just the wrong size).
type ToEndArray struct {
	trunnel.ErrorWord

	elems trunnel.Seq[uint32]
}

// NewToEndArray returns a zeroed, empty array.
func NewToEndArray() *ToEndArray { return &ToEndArray{} }

// Len returns the number of elements currently stored.
func (m *ToEndArray) Len() int { return m.elems.Len() }

// Get returns the element at index i.
func (m *ToEndArray) Get(i int) uint32 { return m.elems.Get(i) }

// Set overwrites the element at index i.
func (m *ToEndArray) Set(i int, v uint32) { m.elems.Set(i, v) }

// Add appends an element, reporting -1 if the underlying dynamic array
// could not grow (§4.1 "a caller-visible allocation failure").
func (m *ToEndArray) Add(v uint32) int {
	if !m.elems.Add(v) {
		m.ErrorWord.Set()
		return -1
	}
	return 0
}

// ParseToEndArray implements §4.4's to-end array rule: every remaining
// byte belongs to the array, so parsing always consumes to the end of
// buf on success. A remaining length that isn't a multiple of 4 is
// Malformed — the trailing bytes are fully present in buf, there's just
// no way to carve a whole element out of them, which more input could
// never fix.
func ParseToEndArray(buf []byte) (*ToEndArray, int, error) {
	c := trunnel.NewCursor(buf)
	m := &ToEndArray{}

	if c.Remaining()%u32Size != 0 {
		return nil, 0, c.Malformed("to-end array length %d is not a multiple of %d", c.Remaining(), u32Size)
	}

	for !c.AtEnd() {
		v, err := c.U32()
		if err != nil {
			return nil, 0, err
		}
		if !m.elems.Add(v) {
			return nil, 0, c.Malformed("allocation failed while growing array")
		}
	}

	return m, c.Pos(), nil
}

// Check reports why Encode would fail.
func (m *ToEndArray) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	return m.ErrorWord.Check()
}

// Encode implements §4.5: it writes every element in order and, being a
// to-end array, writes no count or length field of its own — callers
// that embed a ToEndArray as a message's final field get the to-end
// semantics on the wire for free.
func (m *ToEndArray) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	w := trunnel.NewWriter(buf)
	for i := 0; i < m.elems.Len(); i++ {
		if err := w.U32(m.elems.Get(i)); err != nil {
			return 0, err
		}
	}
	return w.Pos(), nil
}
