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

package semver

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

// matchVersions is the universe of candidates every requirement in
// matchTests is evaluated against.
var matchVersions = []string{
	"0.1.0",
	"1.0.0-alpha",
	"1.0.0",
	"2.0.0",
	"2.0.5",
	"2.1.0-dev",
	"2.1.0",
	"2.1.2",
	"2.1.3",
	"2.1.10",
	"2.2.0-rc.1",
	"2.2.0",
	"2.9.9",
	"3.0.0-dev",
	"3.0.0",
	"3.0.1",
}

// m builds the expected-match set from a space-separated list of
// versions drawn from matchVersions.
func m(list string) map[string]bool {
	set := make(map[string]bool)
	for _, v := range strings.Fields(list) {
		set[v] = true
	}
	return set
}

var matchTests = []struct {
	req     string
	matches map[string]bool
}{
	{"== 2.1.2", m("2.1.2")},
	{"2.1.2", m("2.1.2")}, // Bare version means equality.
	{"== 1.0.0-alpha", m("1.0.0-alpha")},
	{"> 2.2.0", m("2.9.9 3.0.0-dev 3.0.0 3.0.1")},
	{">= 2.2.0", m("2.2.0 2.9.9 3.0.0-dev 3.0.0 3.0.1")},
	{"< 1.0.0", m("0.1.0 1.0.0-alpha")},
	{"<= 1.0.0", m("0.1.0 1.0.0-alpha 1.0.0")},

	// A plain '<' bound admits pre-releases of the bound itself; only
	// the synthesized '~>' bound does not.
	{">= 2.0.0 and < 2.1.0", m("2.0.0 2.0.5 2.1.0-dev")},
	{">= 2.0.0 and < 2.1.0 or == 3.0.0", m("2.0.0 2.0.5 2.1.0-dev 3.0.0")},
	{"< 1.0.0 or > 3.0.0", m("0.1.0 1.0.0-alpha 3.0.1")},

	{"~> 2.1.2", m("2.1.2 2.1.3 2.1.10")},
	{"~> 2.1", m("2.1.0 2.1.2 2.1.3 2.1.10 2.2.0-rc.1 2.2.0 2.9.9")},
	{"~> 2", m("2.0.0 2.0.5 2.1.0-dev 2.1.0 2.1.2 2.1.3 2.1.10 2.2.0-rc.1 2.2.0 2.9.9")},
	{"~> 1.0.0-alpha", m("1.0.0-alpha 1.0.0")},
	{"~> 2.1.2 or ~> 3.0", m("2.1.2 2.1.3 2.1.10 3.0.0 3.0.1")},
}

func TestMatch(t *testing.T) {
	for _, test := range matchTests {
		c := compileRequirement(t, test.req)
		for _, vs := range matchVersions {
			want := test.matches[vs]
			if got := c.Match(vs); got != want {
				t.Errorf("%q.Match(%q) = %t; expect %t", test.req, vs, got, want)
			}
			if got := c.MatchVersion(parseVersion(t, vs)); got != want {
				t.Errorf("%q.MatchVersion(%q) = %t; expect %t", test.req, vs, got, want)
			}
		}
	}
}

func TestMatchNotEqual(t *testing.T) {
	c := compileRequirement(t, "!= 2.1.2")
	for _, vs := range matchVersions {
		want := vs != "2.1.2"
		if got := c.Match(vs); got != want {
			t.Errorf("%q.Match(%q) = %t; expect %t", "!= 2.1.2", vs, got, want)
		}
	}
	// Build metadata is ignored, so a build variant is still equal.
	if c.Match("2.1.2+build.9") {
		t.Error("!= 2.1.2 matched 2.1.2+build.9")
	}
}

// TestMatchWith exercises the pre-release policy: with AllowPrerelease
// false, a pre-release candidate is invisible unless the requirement
// itself names a pre-release operand, and the pessimistic upper bound
// never admits pre-releases of its own release triple regardless.
func TestMatchWith(t *testing.T) {
	tests := []struct {
		req      string
		version  string
		allowPre bool
		want     bool
	}{
		{">= 2.0.0", "2.1.0-dev", false, false},
		{">= 2.0.0", "2.1.0-dev", true, true},
		{">= 2.0.0", "2.1.0", false, true},
		{">= 2.0.0-rc.0", "2.1.0-dev", false, true},
		{"== 1.0.0-alpha or >= 2.0.0", "3.0.0-dev", false, true},
		{"~> 2.1.2", "2.1.3-rc.1", false, false},
		{"~> 2.1.2", "2.1.3-rc.1", true, true},
		{"~> 2.1.2-dev", "2.1.3-rc.1", false, true},
		{"~> 2.1.2-dev", "2.2.0-rc.1", false, false},
		{"~> 2.1.2-dev", "2.2.0-rc.1", true, false},
		{"< 3.0.0", "1.0.0-alpha", false, false},
		{"< 3.0.0", "1.0.0-alpha", true, true},
	}
	for _, test := range tests {
		c := compileRequirement(t, test.req)
		v := parseVersion(t, test.version)
		opts := MatchOptions{AllowPrerelease: test.allowPre}
		if got := c.MatchWith(v, opts); got != test.want {
			t.Errorf("%q.MatchWith(%q, allowPre=%t) = %t; expect %t",
				test.req, test.version, test.allowPre, got, test.want)
		}
	}
}

// TestMatchMaxedNumbers verifies that a pessimistic range whose upper
// bound would need to increment a 2^64-1 number still admits everything
// the lower bound admits within the pinned numbers.
func TestMatchMaxedNumbers(t *testing.T) {
	const max = "18446744073709551615"
	tests := []struct {
		req     string
		version string
		want    bool
	}{
		{"~> 1." + max + ".0", "1." + max + ".1", true},
		{"~> 1." + max + ".0", "1." + max + "." + max, true},
		{"~> 1." + max + ".0", "2.0.0", false},
		{"~> 1." + max + ".0", "2.0.0-rc.1", false},
		{"~> " + max + ".2.3", max + ".2.9", true},
		{"~> " + max + ".2.3", max + ".3.0", false},
		{"~> " + max + "." + max + ".0", max + "." + max + "." + max, true},
		{"~> " + max + "." + max + ".0", max + ".0.0", false},
		{"~> " + max, max + ".5.0", true},
		{"~> " + max, "1.0.0", false},
	}
	for _, test := range tests {
		c := compileRequirement(t, test.req)
		if got := c.MatchVersion(parseVersion(t, test.version)); got != test.want {
			t.Errorf("%q.MatchVersion(%q) = %t; expect %t", test.req, test.version, got, test.want)
		}
	}
}

// The zero value of MatchOptions is the restrictive policy.
func TestMatchOptionsZeroValue(t *testing.T) {
	c := compileRequirement(t, ">= 2.0.0")
	v := parseVersion(t, "2.1.0-dev")
	if c.MatchWith(v, MatchOptions{}) {
		t.Error("zero-value MatchOptions admitted a pre-release candidate")
	}
	if !c.MatchVersion(v) {
		t.Error("MatchVersion rejected a pre-release candidate")
	}
}

func TestMatchInvalidVersion(t *testing.T) {
	c := compileRequirement(t, ">= 0.0.0")
	for _, vs := range []string{"", "bogus", "1.0", "1.0.0.0"} {
		if c.Match(vs) {
			t.Errorf(">= 0.0.0 matched invalid version %q", vs)
		}
	}
}

// A golden file keeps the larger requirement/candidate grids out of
// the source.
type goldenMatchTest struct {
	Requirement     string   `yaml:"requirement"`
	AllowPrerelease bool     `yaml:"allowPrerelease"`
	Matches         []string `yaml:"matches"`
	Rejects         []string `yaml:"rejects"`
}

func TestMatchGolden(t *testing.T) {
	data, err := os.ReadFile("testdata/match.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var tests []goldenMatchTest
	if err := yaml.Unmarshal(data, &tests); err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatal("no golden match tests")
	}
	for _, test := range tests {
		c := compileRequirement(t, test.Requirement)
		opts := MatchOptions{AllowPrerelease: test.AllowPrerelease}
		for _, vs := range test.Matches {
			if !c.MatchWith(parseVersion(t, vs), opts) {
				t.Errorf("%q.MatchWith(%q, allowPre=%t) = false; expect true",
					test.Requirement, vs, test.AllowPrerelease)
			}
		}
		for _, vs := range test.Rejects {
			if c.MatchWith(parseVersion(t, vs), opts) {
				t.Errorf("%q.MatchWith(%q, allowPre=%t) = true; expect false",
					test.Requirement, vs, test.AllowPrerelease)
			}
		}
	}
}
