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

func TestUnionNoLenRecognizedArm(t *testing.T) {
	t.Parallel()

	m, n, err := messages.ParseUnionNoLen([]byte{0x02, 0x2a})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, messages.TagOneByte, m.Tag())
	assert.Equal(t, uint8(0x2a), m.Body())
}

func TestUnionNoLenUnknownTagIsMalformed(t *testing.T) {
	t.Parallel()

	_, _, err := messages.ParseUnionNoLen([]byte{0xff, 0x00})
	require.Error(t, err)
	assert.True(t, errors.Is(err, trunnel.Malformed))
}

func TestUnionNoLenEncodeRejectsUnrecognizedTag(t *testing.T) {
	t.Parallel()

	m := messages.NewUnionNoLen()
	buf := make([]byte, 8)
	_, err := m.Encode(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, trunnel.Malformed))
}

func TestUnionNoLenEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	m := messages.NewUnionNoLen()
	m.SetOneByteArm(0x7a)

	buf := make([]byte, 8)
	n, err := m.Encode(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	m2, n2, err := messages.ParseUnionNoLen(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	assert.Equal(t, uint8(0x7a), m2.Body())
}
