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

// ErrorWord is the deferred error word every generated message embeds
// (§3 "Message", §4.6). It starts zero/unset. Any mutator that cannot
// complete sets it with Set; Encode consults IsSet first and refuses
// while it is set; ClearErrors resets it and reports whether it had been
// set, exactly matching the clear_errors(m) -> was_set? contract in
// §4.3.
//
// ErrorWord is embedded by value in every generated message struct, so
// the zero value of a message already has a cleared error word, matching
// the constructor contract "error word 0" (§4.3 new()).
type ErrorWord struct {
	set bool
}

// Set marks the error word as set. Generated field setters call this
// whenever they reject a value (restriction violation, overflow) or hit
// an allocation failure, in lieu of returning an error from accessors
// that the spec defines as returning only 0|-1 (the -1 itself already
// signals the caller; ErrorWord.Set is what makes the failure "sticky"
// for a later Encode, per §4.6).
func (e *ErrorWord) Set() { e.set = true }

// IsSet reports whether the error word is currently set.
func (e *ErrorWord) IsSet() bool { return e.set }

// Check returns [ErrDeferred] if the error word is set, else nil. Every
// generated Encode calls this first, per §4.6 "encode inspects this word
// first and refuses (-1) while it is non-zero".
func (e *ErrorWord) Check() error {
	if e.set {
		return ErrDeferred()
	}
	return nil
}

// ClearErrors resets the error word and reports whether it had been set,
// matching clear_errors(m) -> was_set? (§4.3).
func (e *ErrorWord) ClearErrors() (wasSet bool) {
	wasSet = e.set
	e.set = false
	return wasSet
}

// Protocol documents (for generated/hand-written message types; it is
// not used for dynamic dispatch — §9 "Deep inheritance" notes dispatch is
// always static) the methods a message type M without context arguments
// exposes per §4.3. Out names the message type itself; the interface
// does not otherwise use it.
//
// Parse is not part of the interface: it is logically a constructor
// (`func ParseM(buf []byte[, ctx]) (*M, int, error)`), a package-level
// function rather than a method. A message that takes a context, such as
// messages.ContextRecord, takes it as an extra Encode argument and so
// does not satisfy this interface literally. Protocol exists purely so
// this contract has one place to read; see messages/*.go for the
// concrete instantiations.
type Protocol[Out any] interface {
	// Check reports why Encode would fail without encoding, or nil.
	Check() error
	// Encode writes the canonical encoding to buf, returning the number
	// of bytes written, or an error wrapping Truncated/Malformed.
	Encode(buf []byte) (int, error)
	// ClearErrors resets the deferred error word and reports whether it
	// had been set.
	ClearErrors() bool
}
