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

package messages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trunnel "github.com/rl1987/trunnel"
	"github.com/rl1987/trunnel/messages"
)

func TestRestrictedTripleAcceptsSetValues(t *testing.T) {
	t.Parallel()

	m, n, err := messages.ParseRestrictedTriple([]byte{1, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint8(1), m.I1())
	assert.Equal(t, uint8(5), m.I2())
	assert.Equal(t, uint8(2), m.I3())
}

func TestRestrictedTripleRejectsOutOfSetValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wire []byte
	}{
		{"i1 not 1", []byte{2, 1, 1}},
		{"i2 not in {1,5,10}", []byte{1, 7, 1}},
		{"i3 not in {1,2,3}", []byte{1, 1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := messages.ParseRestrictedTriple(tt.wire)
			require.Error(t, err)
			assert.True(t, errors.Is(err, trunnel.Malformed))
		})
	}
}

func TestRestrictedTripleSetterRejectsOutOfSetValue(t *testing.T) {
	t.Parallel()

	m := messages.NewRestrictedTriple()
	assert.Equal(t, -1, m.SetI2(99))

	buf := make([]byte, 8)
	_, err := m.Encode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, trunnel.Malformed))
}

func buildNestedRecordWire(t *testing.T) []byte {
	t.Helper()

	first := messages.NewIntegerRecord()
	first.SetI8(1)
	second := messages.NewIntegerRecord()
	second.SetI8(2)
	strs := messages.NewStringsRecord()
	strs.SetNt("child")
	triple := messages.NewRestrictedTriple()
	triple.SetI1(1)
	triple.SetI2(5)
	triple.SetI3(3)

	m := messages.NewNestedRecord()
	m.SetFirst(first)
	m.SetSecond(second)
	m.SetStrs(strs)
	m.SetTriple(triple)

	buf := make([]byte, 128)
	n, err := m.Encode(buf)
	require.NoError(t, err)
	return buf[:n]
}

func TestNestedRecordEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	wire := buildNestedRecordWire(t)

	m, n, err := messages.ParseNestedRecord(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, uint8(1), m.First().I8())
	assert.Equal(t, uint8(2), m.Second().I8())
	assert.Equal(t, "child", m.Strs().Nt())
	assert.Equal(t, uint8(5), m.Triple().I2())
}

func TestNestedRecordCheckRejectsMissingChild(t *testing.T) {
	t.Parallel()

	m := messages.NewNestedRecord()
	err := m.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, trunnel.Malformed))
}

func TestNestedRecordNestedErrorOffsetIsAbsolute(t *testing.T) {
	t.Parallel()

	wire := buildNestedRecordWire(t)
	// Corrupt a byte inside the RestrictedTriple (the last 3 bytes) so
	// that the inner parse fails and the outer offset must reflect the
	// corruption's true position in the full buffer, not an offset
	// relative to the RestrictedTriple's own sub-slice.
	corrupted := append([]byte(nil), wire...)
	corrupted[len(corrupted)-3] = 0xff // i1 no longer 1

	_, _, err := messages.ParseNestedRecord(corrupted)
	require.Error(t, err)

	var pe *trunnel.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, len(corrupted)-3, pe.Offset)
}
