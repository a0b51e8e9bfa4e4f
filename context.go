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

// Context marks a type as eligible to be passed as a parse/encode context
// argument (§3 "Context", §4.4, §4.5). A context is an ordinary message
// consulted read-only by another message's parse/encode to resolve a
// union tag, a variable-array length, or a conditional field; it is never
// owned by the message that consults it, so implementations of Context
// need no lifecycle methods beyond being a plain struct pointer.
//
// The interface exists so that generated Parse/Encode signatures can
// require "some context, possibly nil" uniformly and reject a nil context
// with [ErrNilContext] (§4.4 "Context validation") without needing a type
// switch per message.
type Context interface {
	// isTrunnelContext is unexported so that only types that explicitly
	// opt in can satisfy Context: outside this package that means
	// embedding [ContextBase], since an unexported method can only be
	// defined here. This mirrors the teacher's pattern of
	// sealed marker interfaces for capability-gated types (see e.g.
	// hyperpb's protoreflect.Message wrapper types).
	isTrunnelContext()
}

// ContextBase is embedded by generated context message types to satisfy
// [Context] without boilerplate.
type ContextBase struct{}

func (ContextBase) isTrunnelContext() {}

// RequireContext rejects a nil context per §4.4/§4.5's "Context
// validation": any declared context argument that is nil fails parsing
// or encoding immediately with Malformed, without touching the
// caller's out-pointer or buffer.
func RequireContext(ctx Context) error {
	if ctx == nil {
		return ErrNilContext()
	}
	return nil
}
