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

package trunnel

import "encoding/binary"

// Cursor reads big-endian scalars out of a fixed buffer while tracking
// position, giving generated Parse methods a single place to get the
// truncated-vs-malformed distinction right (§4.4, §7).
//
// A Cursor never panics on short input: every read method reports
// truncation via its own return rather than slicing out of bounds.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor over buf, positioned at offset 0.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Pos returns the current byte offset, used both for position-marker
// fields (§4.4 "Position markers") and for error offsets.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// need reports whether at least n more bytes are available, returning a
// Truncated error positioned at the start of the short read if not. This
// is the single chokepoint that realizes the truncation-monotonicity
// property (§8.1): any length short of what's needed here returns -2.
func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return truncated(c.pos, "need %d more byte(s), have %d", n, c.Remaining())
	}
	return nil
}

// U8 reads one big-endian byte.
func (c *Cursor) U8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// U16 reads a big-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// U32 reads a big-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// U64 reads a big-endian uint64.
func (c *Cursor) U64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// Bytes reads exactly n raw bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

// NulTerminated reads bytes up to (and consuming) the first zero byte,
// per §6 "Nul-terminated strings": the content is everything before the
// terminator. Running off the end of the buffer before seeing a zero
// byte is truncation, not malformed, because more bytes could still
// complete the string (§4.4's ordering rule between -2 and -1).
func (c *Cursor) NulTerminated() ([]byte, error) {
	for i := c.pos; i < len(c.buf); i++ {
		if c.buf[i] == 0 {
			content := c.buf[c.pos:i]
			c.pos = i + 1
			return content, nil
		}
	}
	return nil, truncated(c.pos, "no NUL terminator found in remaining %d byte(s)", c.Remaining())
}

// Sub carves out a fixed-size sub-buffer of exactly n bytes starting at
// the cursor, for length-framed regions (§4.4 "a sub-buffer of exactly
// length bytes"). It does not advance the outer cursor; call Advance(n)
// once the sub-parse has validated how many bytes it actually consumed.
func (c *Cursor) Sub(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	return c.buf[c.pos : c.pos+n], nil
}

// Advance moves the cursor forward by n bytes, used after Sub or after a
// nested Parse call run against c.Bytes(...)/c.Sub(...) reports how many
// bytes it consumed.
func (c *Cursor) Advance(n int) { c.pos += n }

// AtEnd reports whether every byte has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos == len(c.buf) }

// Malformed builds a Malformed ParseError positioned at the cursor.
func (c *Cursor) Malformed(reason string, args ...any) error {
	return malformed(c.pos, reason, args...)
}

// Truncated builds a Truncated ParseError positioned at the cursor.
func (c *Cursor) Truncated(reason string, args ...any) error {
	return truncated(c.pos, reason, args...)
}

// RestrictedU8 parses a byte already known to be restricted to the
// values in allowed (§4.4 "if the field is marked restricted ... it is
// compared against that set; a violation is -1"). The value has already
// been read off the wire by the time this is called; on violation, the
// error offset points at the start of the field that was just consumed.
func RestrictedU8(fieldOffset int, field string, v uint8, allowed ...uint8) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return malformed(fieldOffset, "field %s: value %d is not in the restricted set %v", field, v, allowed)
}
