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

import "math"

// maxSize is the largest element count this runtime will ever try to
// allocate for, mirroring the C runtime's SIZE_MAX-based overflow guard
// (§4.1 realloc_checked). Go slices are already capped well below this,
// but the explicit guard keeps the growth arithmetic identical to the
// reference semantics regardless of GOARCH.
const maxSize = math.MaxInt

// checkedMul reports whether count*size would overflow, mirroring
// trunnel_reallocarray's "x > SIZE_MAX / y" guard, computed before the
// multiplication is ever performed.
func checkedMul(count, size int) (product int, ok bool) {
	if size == 0 {
		return 0, true
	}
	if count > maxSize/size {
		return 0, false
	}
	return count * size, true
}

// expand computes the new capacity for a dynamic array that needs room
// for at least needMore additional elements beyond cap, per §4.1:
//
//	new_cap >= cap + need_more
//	new_cap >= 8
//	new_cap >= 2*cap
//
// and rejects (ok=false) if the addition overflows or the computed
// capacity does not strictly exceed cap. This is trunnel_dynarray_expand's
// exact arithmetic, not an approximation: TestExpandGrowthFormula pins the
// resulting capacities.
func expand(cap, needMore int) (newCap int, ok bool) {
	if needMore < 0 || cap < 0 {
		return 0, false
	}
	sum := cap + needMore
	if sum < cap || sum < needMore {
		// Overflowed.
		return 0, false
	}
	newCap = sum
	if newCap < 8 {
		newCap = 8
	}
	if newCap < cap*2 {
		newCap = cap * 2
	}
	if newCap <= cap || newCap < needMore {
		return 0, false
	}
	return newCap, true
}

// shouldFailAlloc is swapped out by alloc_debug.go/alloc_release.go: the
// debug build decrements a process-global countdown and reports true when
// it reaches zero, exercising the allocation-failure-invariance property
// (§8.5); the release build is an inlined constant false.
var shouldFailAlloc = shouldFailAllocImpl
