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

import "github.com/rl1987/trunnel/internal/dbg"

// Seq is the dynamic array described in §3/§4.1: a triple of logical
// length, capacity, and contiguous storage. It is the element on which
// the variable-length fields (variable arrays, string byte-buffers) of
// the message types are built; fixed-length fields use plain Go arrays.
//
// A zero Seq is empty and ready to use, matching the zero-initialized
// constructor contract in §4.3.
//
// Seq is not safe for concurrent use; see §5.
type Seq[T any] struct {
	elts []T
}

// Len returns the logical element count (n in §3).
func (s *Seq[T]) Len() int { return len(s.elts) }

// Cap returns the current capacity. Capacity only ever grows except via
// Clear, matching "capacity never decreases due to shrink operations"
// (§4.1 Properties).
func (s *Seq[T]) Cap() int { return cap(s.elts) }

// Clear frees storage and resets the sequence to empty. It is the only
// operation that releases capacity.
func (s *Seq[T]) Clear() { s.elts = nil }

// Get returns the element at index i. The caller must have already
// checked 0 <= i < Len(); out-of-range access is a programmer error in
// generated code (fixed-array accessors document this as "aborts"), so
// this deliberately panics rather than returning an error, matching the
// C runtime's trunnel_assert semantics for fixed-length accessors.
func (s *Seq[T]) Get(i int) T { return s.elts[i] }

// Set overwrites the element at index i. Like Get, it performs no bounds
// check of its own and panics if i is out of range; the caller is
// responsible for checking 0 <= i < Len() first.
func (s *Seq[T]) Set(i int, v T) { s.elts[i] = v }

// expandCap grows the backing array so that it can hold at least
// needMore more elements than are currently stored, preserving existing
// element bytes. It reports false (leaving s untouched) if growth would
// overflow or if the allocator's fault-injection counter fires.
func (s *Seq[T]) expandCap(needMore int) bool {
	oldCap := cap(s.elts)
	if shouldFailAlloc() {
		dbg.Log("fail-alloc", "seq cap=%d needMore=%d", oldCap, needMore)
		return false
	}
	newCap, ok := expand(oldCap, needMore)
	if !ok {
		dbg.Log("overflow", "seq cap=%d needMore=%d", oldCap, needMore)
		return false
	}
	grown := make([]T, len(s.elts), newCap)
	copy(grown, s.elts)
	s.elts = grown
	dbg.Log("grow", "seq cap %d->%d", oldCap, newCap)
	return true
}

// Add appends x. If the sequence is at capacity it first asks expand for
// room for one more element, which under expand's policy grows the
// capacity to at least 8 and at least double. It reports false (and leaves the sequence exactly as it
// was) on allocation failure, for the caller to surface through the
// deferred error word (§4.1 add, §4.6).
func (s *Seq[T]) Add(x T) bool {
	if len(s.elts) == cap(s.elts) {
		if !s.expandCap(1) {
			return false
		}
	}
	s.elts = append(s.elts, x)
	return true
}

// SetLen grows or shrinks the sequence to exactly newLen elements,
// per §4.1 setlen:
//   - growing zero-fills (for scalar T) or null-initializes (for pointer
//     T) the newly exposed region, via T's zero value;
//   - shrinking invokes free on every element being vacated, in order,
//     before the slot is considered gone, then zeroes the slot, matching
//     "elements are released before the slot is considered vacated" (§3)
//     and the C runtime's free-then-zero ordering in trunnel_dynarray_setlen;
//   - free may be nil when T does not own a resource.
//
// It reports false (leaving the sequence untouched) on allocation
// failure.
func (s *Seq[T]) SetLen(newLen int, free func(T)) bool {
	oldLen := len(s.elts)
	if newLen < 0 {
		return false
	}
	if newLen > cap(s.elts) {
		if !s.expandCap(newLen - cap(s.elts)) {
			return false
		}
	}
	if free != nil && oldLen > newLen {
		for i := newLen; i < oldLen; i++ {
			free(s.elts[i])
			var zero T
			s.elts[i] = zero
		}
	}
	s.elts = s.elts[:newLen]
	if oldLen < newLen {
		var zero T
		for i := oldLen; i < newLen; i++ {
			s.elts[i] = zero
		}
	}
	return true
}

// ensureCap ensures the backing array's capacity is at least required,
// preserving existing element bytes. Used by String, which reasons about
// absolute capacity (content length + terminator) rather than "room
// beyond the current length".
func (s *Seq[T]) ensureCap(required int) bool {
	if cap(s.elts) >= required {
		return true
	}
	return s.expandCap(required - cap(s.elts))
}

// ExpandBy ensures the sequence has room for at least needMore additional
// elements without changing its logical length, for callers that need to
// reserve capacity ahead of writing into it directly. It reports false on
// allocation failure.
func (s *Seq[T]) ExpandBy(needMore int) bool {
	if needMore <= 0 {
		return true
	}
	if cap(s.elts)-len(s.elts) >= needMore {
		return true
	}
	return s.expandCap(needMore - (cap(s.elts) - len(s.elts)))
}

// Raw returns the backing slice directly, for use by String and by
// generated code that needs to bulk-copy into the sequence. The returned
// slice must not be retained past the next mutating call on s.
func (s *Seq[T]) Raw() []T { return s.elts }

// SetRaw replaces the backing slice wholesale. Used by String.SetBytes,
// which computes its own capacity/zero-fill policy.
func (s *Seq[T]) SetRaw(elts []T) { s.elts = elts }
