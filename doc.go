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

// Package trunnel is the runtime support for a code-generated
// binary-message codec framework. It does not generate code; it provides
// the primitives that generated (or hand-written, as in ./messages) code
// calls into:
//
//   - [Seq], an overflow-safe dynamic array, and [String], a NUL-terminated
//     byte string built on top of it.
//   - [Cursor] and [Writer], which turn a byte slice into a
//     position-tracking reader/writer that distinguishes truncation from
//     malformed input at every scalar read and write.
//   - [ErrorWord], the per-message deferred error word every generated
//     message type embeds, and [Context], the marker interface for
//     read-only auxiliary messages passed into Parse/Encode.
//
// Every parse and encode operation in this repository returns an error
// that is nil on success or wraps exactly one of [Truncated] (not enough
// bytes were available, and more bytes could fix it) or [Malformed] (the
// input or message state is invalid regardless of how many more bytes
// arrive). These two taxa are never collapsed into one error type; see
// [ParseError].
//
// See ./messages for worked examples of the uniform parse/encode/accessor
// protocol (integer records, strings, nested and restricted fields,
// tagged unions with and without length framing, to-end variable arrays,
// context-dependent parsing, and position markers).
package trunnel
