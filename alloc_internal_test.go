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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedMul(t *testing.T) {
	t.Parallel()

	product, ok := checkedMul(4, 8)
	assert.True(t, ok)
	assert.Equal(t, 32, product)

	_, ok = checkedMul(math.MaxInt, 2)
	assert.False(t, ok)

	_, ok = checkedMul(10, 0)
	assert.True(t, ok)
}

func TestExpandGrowthFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		cap, needMore  int
		wantCap        int
		wantOK         bool
	}{
		{"empty grows to minimum 8", 0, 1, 8, true},
		{"small need still floors at 8", 3, 1, 8, true},
		{"need larger than floor", 0, 20, 20, true},
		{"doubling dominates small need", 10, 1, 20, true},
		{"need dominates doubling", 10, 30, 40, true},
		{"negative needMore rejected", 5, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := expand(tt.cap, tt.needMore)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCap, got)
			}
		})
	}
}

func TestExpandRejectsOverflow(t *testing.T) {
	t.Parallel()

	_, ok := expand(math.MaxInt-1, math.MaxInt-1)
	assert.False(t, ok)
}
