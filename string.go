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

// String is a Seq[byte] that additionally upholds the trailing-NUL
// invariant from §3/§4.2: whenever a caller asks for a C-string view, the
// sequence is (minimally) grown so that a zero byte is reachable at index
// n, without that byte being counted as part of the logical content.
//
// A zero String is empty and ready to use.
type String struct {
	seq Seq[byte]
}

// Len returns the number of content bytes (not counting any terminator).
func (s *String) Len() int { return s.seq.Len() }

// Bytes returns the content bytes [0, n). The returned slice must not be
// retained past the next mutating call on s.
func (s *String) Bytes() []byte { return s.seq.Raw() }

// SetBytes implements §4.2 set_bytes: copies buf, sets n = len(buf), and
// writes a terminator at index len(buf). len(buf) must be < maxSize (the
// runtime's overflow boundary); violating that, like any allocation
// failure here, leaves the string unchanged and reports false.
func (s *String) SetBytes(buf []byte) bool {
	if len(buf) >= maxSize {
		return false
	}
	if !s.seq.ensureCap(len(buf) + 1) {
		return false
	}
	storage := s.seq.Raw()[:cap(s.seq.Raw())]
	copy(storage, buf)
	s.seq.SetRaw(storage[:len(buf)])
	s.writeTerminatorAt(len(buf))
	return true
}

// SetLength implements §4.2 set_length: grows or shrinks to exactly
// newLen content bytes, zero-filling any newly exposed region, and
// writes a terminator at index newLen. Shrinking a string never needs a
// free callback: bytes do not own resources.
func (s *String) SetLength(newLen int) bool {
	if newLen < 0 || newLen >= maxSize {
		return false
	}
	if !s.seq.ensureCap(newLen + 1) {
		return false
	}
	if !s.seq.SetLen(newLen, nil) {
		return false
	}
	s.writeTerminatorAt(newLen)
	return true
}

// CStr implements §4.2 c_str(): guarantees a zero byte at index n and
// returns the content plus terminator (n+1 bytes). Storage is grown only
// when the sequence is exactly full, matching the C runtime's
// trunnel_string_getstr threshold check ("allocated_ == n_"); the growth
// asks expand for one more byte, so the new capacity follows expand's
// policy (at least 8, at least double).
func (s *String) CStr() []byte {
	if s.seq.Cap() == s.seq.Len() {
		if !s.seq.expandCap(1) {
			// Matches the C API's NULL-on-failure escape hatch: callers
			// that need the zero-alloc fast path should use Bytes()
			// instead and accept there may be no terminator reachable.
			return nil
		}
	}
	n := s.seq.Len()
	full := s.seq.Raw()[:n+1]
	full[n] = 0
	s.seq.SetRaw(full[:n])
	return full
}

// writeTerminatorAt writes a 0 byte at index n into storage without
// changing the logical length, assuming capacity already covers n+1 (the
// callers above ensure this via ensureCap before calling).
func (s *String) writeTerminatorAt(n int) {
	raw := s.seq.Raw()
	full := raw[:cap(raw)][:n+1]
	full[n] = 0
}
