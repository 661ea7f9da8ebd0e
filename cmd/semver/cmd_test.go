// Copyright 2025 The Mixtools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given arguments and
// returns what it wrote to stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	argparser.SetIn(strings.NewReader(stdin))
	argparser.SetOut(&out)
	argparser.SetErr(io.Discard)
	argparser.SetArgs(args)
	err := argparser.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompareCmd(t *testing.T) {
	out, err := runCLI(t, "", "compare", "1.0.0-alpha", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)

	out, err = runCLI(t, "", "compare", "2.0.0+a", "2.0.0+b")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = runCLI(t, "", "compare", "bogus", "1.0.0")
	assert.Error(t, err)
}

func TestDiffCmd(t *testing.T) {
	out, err := runCLI(t, "", "diff", "1.2.3", "1.3.0")
	require.NoError(t, err)
	assert.Equal(t, "Minor\n", out)

	out, err = runCLI(t, "", "diff", "1.2.3", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "Same\n", out)
}

func TestValidateCmd(t *testing.T) {
	out, err := runCLI(t, "", "validate", "--requirement=false", "1.2.3-rc.1+build.5")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc.1+build.5\n", out)

	_, err = runCLI(t, "", "validate", "--requirement=false", "1.2.3", "1.2")
	assert.Error(t, err)

	out, err = runCLI(t, "", "validate", "--requirement", ">= 1.0.0 and < 2.0.0")
	require.NoError(t, err)
	assert.Equal(t, ">= 1.0.0 and < 2.0.0\n", out)

	_, err = runCLI(t, "", "validate", "--requirement", "1.0.0 and")
	assert.Error(t, err)
}

func TestSortCmd(t *testing.T) {
	out, err := runCLI(t, "", "sort", "2.0.0", "1.0.0-rc.1", "1.0.0", "10.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-rc.1\n1.0.0\n2.0.0\n10.0.0\n", out)

	// From stdin, skipping invalid lines.
	out, err = runCLI(t, "0.2.0\nnot-a-version\n0.10.0\n\n0.1.0\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n0.2.0\n0.10.0\n", out)
}

func TestMatchCmd(t *testing.T) {
	out, err := runCLI(t, "", "match", "--pre=true", "~> 2.1.2", "2.1.3", "2.1.10")
	require.NoError(t, err)
	assert.Equal(t, "2.1.3\ttrue\n2.1.10\ttrue\n", out)

	out, err = runCLI(t, "", "match", "--pre=true", "~> 2.1.2", "2.1.3", "2.2.0")
	assert.Error(t, err)
	assert.Equal(t, "2.1.3\ttrue\n2.2.0\tfalse\n", out)

	// Pre-release gating.
	out, err = runCLI(t, "", "match", "--pre=false", ">= 2.0.0", "2.1.0-dev")
	assert.Error(t, err)
	assert.Equal(t, "2.1.0-dev\tfalse\n", out)

	out, err = runCLI(t, "", "match", "--pre=true", ">= 2.0.0", "2.1.0-dev")
	require.NoError(t, err)
	assert.Equal(t, "2.1.0-dev\ttrue\n", out)

	_, err = runCLI(t, "", "match", "--pre=true", "== ==", "1.0.0")
	assert.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	_, err := runCLI(t, "", "no-such-subcommand")
	assert.Error(t, err)
}
