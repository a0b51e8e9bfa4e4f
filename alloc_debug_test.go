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

//go:build trunneldebug

package trunnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trunnel "github.com/rl1987/trunnel"
)

// TestAllocFailureCountdownFailsExactlyOneAllocation exercises §8.5's
// allocation-failure-invariance property directly against Seq, which is
// every generated dynamic field's shared foundation: arming the counter
// for n must fail exactly the n-th checked allocation and leave the
// sequence exactly as it was.
//
// This test is not t.Parallel(): the countdown is process-global.
func TestAllocFailureCountdownFailsExactlyOneAllocation(t *testing.T) {
	defer trunnel.SetAllocFailureCountdown(0)

	var s trunnel.Seq[int]
	trunnel.SetAllocFailureCountdown(1)

	ok := s.Add(1)
	require.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())

	ok = s.Add(1)
	require.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestAllocFailureCountdownDisarmedByZero(t *testing.T) {
	defer trunnel.SetAllocFailureCountdown(0)

	trunnel.SetAllocFailureCountdown(0)

	var s trunnel.Seq[int]
	require.True(t, s.Add(1))
}
