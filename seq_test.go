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

package trunnel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trunnel "github.com/rl1987/trunnel"
)

func TestSeqAddGrows(t *testing.T) {
	t.Parallel()

	var s trunnel.Seq[int]
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.Cap())

	for i := 0; i < 100; i++ {
		require.True(t, s.Add(i))
	}
	assert.Equal(t, 100, s.Len())
	assert.GreaterOrEqual(t, s.Cap(), 100)
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, s.Get(i))
	}
}

func TestSeqSetLenGrowZeroes(t *testing.T) {
	t.Parallel()

	var s trunnel.Seq[int]
	require.True(t, s.Add(7))
	require.True(t, s.SetLen(5, nil))

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 7, s.Get(0))
	for i := 1; i < 5; i++ {
		assert.Equal(t, 0, s.Get(i))
	}
}

func TestSeqSetLenShrinkFreesVacatedElements(t *testing.T) {
	t.Parallel()

	var s trunnel.Seq[*int]
	var freed []int

	vals := []int{1, 2, 3, 4}
	for i := range vals {
		require.True(t, s.Add(&vals[i]))
	}

	free := func(p *int) {
		if p != nil {
			freed = append(freed, *p)
		}
	}
	require.True(t, s.SetLen(2, free))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{3, 4}, freed)
}

func TestSeqClearResetsCapacity(t *testing.T) {
	t.Parallel()

	var s trunnel.Seq[int]
	require.True(t, s.Add(1))
	require.True(t, s.Add(2))
	require.Positive(t, s.Cap())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Cap())
}

func TestSeqRawSetRawRoundTrip(t *testing.T) {
	t.Parallel()

	var s trunnel.Seq[byte]
	require.True(t, s.Add('a'))
	require.True(t, s.Add('b'))

	raw := s.Raw()
	assert.Equal(t, []byte{'a', 'b'}, raw)

	var s2 trunnel.Seq[byte]
	s2.SetRaw([]byte{'x', 'y', 'z'})
	assert.Equal(t, 3, s2.Len())
	assert.Equal(t, byte('z'), s2.Get(2))
}
