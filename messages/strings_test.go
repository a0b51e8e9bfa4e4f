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

func stringsRecordWire(fixed [10]byte, nt string) []byte {
	buf := append([]byte(nil), fixed[:]...)
	buf = append(buf, []byte(nt)...)
	return append(buf, 0)
}

func TestStringsRecordParse(t *testing.T) {
	t.Parallel()

	var fixed [10]byte
	copy(fixed[:], "0123456789")
	wire := stringsRecordWire(fixed, "hi")

	m, n, err := messages.ParseStringsRecord(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, fixed, m.Fixed())
	assert.Equal(t, "hi", m.Nt())
}

func TestStringsRecordRejectsEmbeddedZero(t *testing.T) {
	t.Parallel()

	m := messages.NewStringsRecord()
	ret := m.SetNt("a\x00b")
	assert.Equal(t, -1, ret)

	buf := make([]byte, 32)
	_, err := m.Encode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, trunnel.Malformed))
}

func TestStringsRecordEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	m := messages.NewStringsRecord()
	var fixed [10]byte
	copy(fixed[:], "abcdefghij")
	m.SetFixed(fixed)
	m.SetNt("hello")

	buf := make([]byte, 64)
	n, err := m.Encode(buf)
	require.NoError(t, err)

	m2, n2, err := messages.ParseStringsRecord(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	assert.Equal(t, "hello", m2.Nt())
	assert.Equal(t, fixed, m2.Fixed())
}

func TestStringsRecordTruncationMonotonicity(t *testing.T) {
	t.Parallel()

	var fixed [10]byte
	copy(fixed[:], "0123456789")
	wire := stringsRecordWire(fixed, "ok")

	for k := 0; k < len(wire); k++ {
		_, _, err := messages.ParseStringsRecord(wire[:k])
		require.Error(t, err, "length %d", k)
		assert.True(t, errors.Is(err, trunnel.Truncated), "length %d", k)
	}
}
