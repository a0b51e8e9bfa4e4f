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

// ExactFrame is a uses-end-of-stream root message (§6 "Messages marked
// uses-end-of-stream refuse to parse unless the buffer length is exactly
// the message's declared size"): it wraps a single IntegerRecord, but
// unlike IntegerRecord parsed on its own, trailing bytes left over after
// the inner record are a parse error rather than being silently ignored.
//
// This is grounded in original_source's EOS fixture: a message whose
// root parser is only ever invoked with parse_exact (the whole-buffer
// entry point), never the partial-buffer one, so any leftover is a
// structural defect in the input, not a property of running out of
// room — hence Malformed, not Truncated.
type ExactFrame struct {
	trunnel.ErrorWord

	inner *IntegerRecord
}

// NewExactFrame returns a zeroed frame.
func NewExactFrame() *ExactFrame { return &ExactFrame{} }

// Inner returns the wrapped record (borrowed).
func (m *ExactFrame) Inner() *IntegerRecord { return m.inner }

// SetInner takes ownership of inner.
func (m *ExactFrame) SetInner(inner *IntegerRecord) { m.inner = inner }

// ParseExactFrame implements the uses-end-of-stream rule: it parses the
// inner record and then additionally requires that doing so consumed
// every byte of buf. A short buffer is still Truncated (the inner parse
// reports that on its own); a buffer with bytes left over after a
// successful inner parse is Malformed, since the declared exact size has
// already been violated by data that is fully present.
func ParseExactFrame(buf []byte) (*ExactFrame, int, error) {
	inner, n, err := ParseIntegerRecord(buf)
	if err != nil {
		return nil, 0, err
	}
	if n != len(buf) {
		return nil, 0, trunnel.NewCursor(buf[n:]).Malformed(
			"uses-end-of-stream message has %d trailing byte(s) after its declared size", len(buf)-n)
	}
	return &ExactFrame{inner: inner}, n, nil
}

// Check reports why Encode would fail.
func (m *ExactFrame) Check() error {
	if m == nil {
		return trunnel.ErrNilMessage()
	}
	if err := m.ErrorWord.Check(); err != nil {
		return err
	}
	if m.inner == nil {
		return trunnel.ErrFieldRestricted("inner", 0)
	}
	return m.inner.Check()
}

// Encode implements §4.5. Because ExactFrame owns no additional fields
// of its own, its encoding is exactly its inner record's encoding; the
// uses-end-of-stream property is a parse-time constraint, not something
// that changes the bytes produced.
func (m *ExactFrame) Encode(buf []byte) (int, error) {
	if err := m.Check(); err != nil {
		return 0, err
	}
	return m.inner.Encode(buf)
}
