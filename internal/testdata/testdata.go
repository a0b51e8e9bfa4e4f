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

// Package testdata loads the wire-format fixture corpus used by the
// message-type tests from embedded YAML files, rather than inlining hex
// literals into every test function.
package testdata

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var fixtures embed.FS

// Harness is a generalization of [testing.TB] that also includes
// [testing.T.Run], so [RunAll] works the same under *testing.T and
// *testing.B.
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// WantError names the parse outcome a fixture's specimens are expected
// to produce, beyond plain success.
type WantError string

const (
	// WantNone means every specimen must parse successfully.
	WantNone WantError = ""
	// WantTruncated means every specimen must fail with [trunnel.Truncated].
	WantTruncated WantError = "truncated"
	// WantMalformed means every specimen must fail with [trunnel.Malformed].
	WantMalformed WantError = "malformed"
)

// Case is one fixture loaded from the embedded corpus: a named message
// type together with hex-encoded wire specimens and the outcome they're
// expected to produce.
type Case struct {
	Name string `yaml:"-"`

	Message   string    `yaml:"message"`
	Hex       []string  `yaml:"hex"`
	WantError WantError `yaml:"want_error"`

	// Flag and Count are only meaningful for ContextRecord fixtures, which
	// need an out-of-band context to parse at all (§3 "Context").
	Flag  *uint8  `yaml:"flag,omitempty"`
	Count *uint32 `yaml:"count,omitempty"`

	Specimens [][]byte `yaml:"-"`
}

// RunAll walks every embedded *.yaml fixture and invokes f once per case
// under a subtest named after the fixture's file path.
func RunAll[T Harness[T]](t T, f func(T, *Case)) {
	t.Helper()

	var failed atomic.Bool
	err := fs.WalkDir(fixtures, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "walking fixture %q", path)
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimSuffix(path, ".yaml"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}
			defer failed.CompareAndSwap(false, t.Failed())

			data, err := fs.ReadFile(fixtures, path)
			require.NoError(t, err, "loading fixture %q", path)

			c := parseCase(t, path, data)
			f(t, c)
		})
		return nil
	})
	require.NoError(t, err)
}

// parseCase decodes a single fixture file and hex-decodes its specimens.
func parseCase(t testing.TB, path string, file []byte) *Case {
	t.Helper()

	c := new(Case)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(c), "decoding fixture %q", path)

	c.Name = strings.TrimSuffix(path, ".yaml")

	replacer := strings.NewReplacer(" ", "", "\t", "", "\n", "")
	for _, raw := range c.Hex {
		b, err := hex.DecodeString(replacer.Replace(raw))
		require.NoError(t, err, "decoding hex specimen in %q", path)
		c.Specimens = append(c.Specimens, b)
	}

	return c
}
