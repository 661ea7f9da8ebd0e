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

// Diff characterizes the most significant manner in which two versions
// differ: by major number, by minor number, and so on.
type Diff int

// Possible differences between versions, from most to least significant.
const (
	Same           Diff = iota // No difference.
	DiffMajor                  // Difference in major number.
	DiffMinor                  // Difference in minor number.
	DiffPatch                  // Difference in patch number.
	DiffPrerelease             // Difference in pre-release tag.
	DiffBuild                  // Difference in build tag.
)

var diffNames = [...]string{
	Same:           "Same",
	DiffMajor:      "Major",
	DiffMinor:      "Minor",
	DiffPatch:      "Patch",
	DiffPrerelease: "Prerelease",
	DiffBuild:      "Build",
}

func (d Diff) String() string {
	if d < 0 || int(d) >= len(diffNames) {
		return "Unknown"
	}
	return diffNames[d]
}

// Difference parses a and b and, if there is no error, returns the
// result of a.Difference(b).
func Difference(a, b string) (int, Diff, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, Same, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, Same, err
	}
	c, d := av.Difference(bv)
	return c, d, nil
}

// Difference reports the level of the most significant difference
// between v and u. The return values are the result of v.Compare(u) and
// the type of difference. For example, the difference between 1.2.3 and
// 1.3.4 is DiffMinor.
// Note that since build tags are ignored by Compare, Difference can
// return (0, DiffBuild).
func (v *Version) Difference(u *Version) (int, Diff) {
	c := v.Compare(u)
	if c == 0 && v.build == u.build { // Build differences are ignored in Compare.
		return c, Same
	}

	switch {
	case v.major != u.major:
		return c, DiffMajor
	case v.minor != u.minor:
		return c, DiffMinor
	case v.patch != u.patch:
		return c, DiffPatch
	case !equalPrerelease(v, u):
		return c, DiffPrerelease
	}
	return c, DiffBuild
}
