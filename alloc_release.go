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

//go:build !trunneldebug

package trunnel

// SetAllocFailureCountdown is a no-op outside of builds tagged
// "trunneldebug". Production binaries never link the fault-injection
// counter at all, so this call costs nothing and fails nothing.
func SetAllocFailureCountdown(int) {}

func shouldFailAllocImpl() bool { return false }
