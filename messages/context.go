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

// FlagCountContext is the scenario-S7 context (§3 "Context"): a
// read-only auxiliary message passed alongside ContextRecord's parse and
// encode calls, never owned by the record it informs. It carries a
// restricted flag and an element count that together determine how wide
// each of ContextRecord's body chunks is and how many of them there are.
type FlagCountContext struct {
	trunnel.ContextBase

	flag  uint8
	count uint32
}

// NewFlagCountContext builds a context, rejecting a flag outside {0,1}.
func NewFlagCountContext(flag uint8, count uint32) (*FlagCountContext, error) {
	if flag != 0 && flag != 1 {
		return nil, trunnel.ErrFieldRestricted("flag", int64(flag))
	}
	return &FlagCountContext{flag: flag, count: count}, nil
}

// Flag returns the context's flag value (0 or 1).
func (c *FlagCountContext) Flag() uint8 { return c.flag }

// Count returns the element count.
func (c *FlagCountContext) Count() uint32 { return c.count }

// chunkWidth returns the wire width of one ContextRecord body chunk for
// this context's flag: 4 bytes when flag is 0, 3 bytes when flag is 1.
// This is the context-dependent field referenced by §4.4 "Parsing a
// variable array whose length comes from ... a context field"; here the
// context drives both the element width and (via Count) the element
// count, rather than just the count alone.
func (c *FlagCountContext) chunkWidth() int {
	if c.flag == 1 {
		return 3
	}
	return 4
}

// contextRecordMagic is ContextRecord's fixed 2-byte header field.
var contextRecordMagic = [2]byte{0xC0, 0x7E}

// ContextRecord is the scenario-S7 fixture: a fixed 2-byte header
// followed by a variable array of opaque chunks whose width and count
// are both supplied by a [FlagCountContext] rather than appearing on the
// wire. With flag=0, count=4 the encoded body is 2+4*4 = 18 bytes; with
// flag=1, count=6 it is 2+6*3 = 20 bytes, matching the worked scenario.
// Re-encoding requires the same context the value was parsed with, since
// nothing in the stored bytes alone says how to re-derive flag or count.
type ContextRecord struct {
	trunnel.ErrorWord

	magic  [2]byte
	chunks trunnel.Seq[[]byte]
}

// NewContextRecord returns a zeroed record (no chunks, magic unset).
func NewContextRecord() *ContextRecord { return &ContextRecord{} }

// Chunks returns the number of stored chunks.
func (m *ContextRecord) Chunks() int { return m.chunks.Len() }

// Chunk returns a copy of the chunk at index i.
func (m *ContextRecord) Chunk(i int) []byte {
	return append([]byte(nil), m.chunks.Get(i)...)
}

// AddChunk appends a chunk. The caller is responsible for making every
// chunk the width that ctx.chunkWidth() will demand at encode time;
// Check rejects a mismatch.
func (m *ContextRecord) AddChunk(chunk []byte) int {
	if !m.chunks.Add(append([]byte(nil), chunk...)) {
		m.ErrorWord.Set()
		return -1
	}
	return 0
}

// ParseContextRecord implements §4.4's context-dependent parsing rule: a
// nil ctx fails immediately with Malformed ("Context validation"). The
// element width and count are both taken from ctx rather than the wire;
// only the header and count*width chunk bytes are read from buf.
func ParseContextRecord(buf []byte, ctx *FlagCountContext) (*ContextRecord, int, error) {
	if ctx == nil {
		return nil, 0, trunnel.ErrNilContext()
	}

	c := trunnel.NewCursor(buf)
	m := &ContextRecord{}

	magic, err := c.Bytes(2)
	if err != nil {
		return nil, 0, err
	}
	copy(m.magic[:], magic)

	width := ctx.chunkWidth()
	for i := uint32(0); i < ctx.Count(); i++ {
		chunk, err := c.Bytes(width)
		if err != nil {
			return nil, 0, err
		}
		if !m.chunks.Add(append([]byte(nil), chunk...)) {
			return nil, 0, c.Malformed("allocation failed while growing chunks")
		}
	}

	return m, c.Pos(), nil
}

// Check reports why Encode would fail independent of any context: the
// deferred error word, or a stored chunk whose length cannot possibly be
// uniform (chunks of differing lengths can never agree with a single
// ctx.chunkWidth() at encode time). Agreement with a specific context's
// flag/count is instead checked inside Encode, per §4.5 "Disagreement
// with a context field is -1".
func (m *ContextRecord) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if m.chunks.Len() == 0 {
		return nil
	}
	width := len(m.chunks.Get(0))
	for i := 1; i < m.chunks.Len(); i++ {
		if len(m.chunks.Get(i)) != width {
			return trunnel.ErrFieldRestricted("chunks", int64(i))
		}
	}
	return nil
}

// Encode implements §4.5's context validation and variable-array length
// consistency rules: a nil ctx is -1; a stored chunk count or width that
// disagrees with ctx is also -1, since encode has no way to resolve the
// conflict in the context's favor or the record's.
func (m *ContextRecord) Encode(buf []byte, ctx *FlagCountContext) (int, error) {
	if ctx == nil {
		return 0, trunnel.ErrNilContext()
	}
	if err := m.Check(); err != nil {
		return 0, err
	}
	if uint32(m.chunks.Len()) != ctx.Count() {
		return 0, trunnel.ErrFieldRestricted("chunks.count", int64(m.chunks.Len()))
	}
	width := ctx.chunkWidth()
	for i := 0; i < m.chunks.Len(); i++ {
		if len(m.chunks.Get(i)) != width {
			return 0, trunnel.ErrFieldRestricted("chunks.width", int64(len(m.chunks.Get(i))))
		}
	}

	w := trunnel.NewWriter(buf)
	if err := w.Bytes(m.magic[:]); err != nil {
		return 0, err
	}
	for i := 0; i < m.chunks.Len(); i++ {
		if err := w.Bytes(m.chunks.Get(i)); err != nil {
			return 0, err
		}
	}
	return w.Pos(), nil
}
