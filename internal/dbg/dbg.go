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

// Package dbg provides a process-global, build-tag-gated trace logger
// for the runtime's allocation and dispatch decisions. It is never used
// for ordinary control flow, only for diagnosing test failures: the
// [Enabled] constant is false (and every call site dead-code-eliminated)
// unless the binary is built with -tags trunneldebug.
package dbg

import (
	"fmt"
	"os"
)

// Log writes a formatted trace line to stderr when Enabled is true, and
// does nothing (and is expected to be inlined away) otherwise. op is a
// short verb ("grow", "fail-alloc", "dispatch"); format/args describe the
// specifics.
func Log(op, format string, args ...any) {
	if !Enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "trunnel: %s: "+format+"\n", append([]any{op}, args...)...)
}
