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
	"sort"
	"strings"
)

// Compare compares two versions. It returns -1 if a represents an
// earlier version, +1 a later version, and 0 if they are equal.
// The ordering is total: exactly one of a<b, a==b, a>b holds, and it is
// transitive, so Compare is usable directly as a sort key.
// A nil version compares below a non-nil version.
// Pre-release versions compare earlier than otherwise equal
// non-pre-release versions.
// Build metadata is ignored: versions differing only in build tags are
// equal here and everywhere equality is derived from Compare.
// Comparison ordering is defined by semver.org Version 2.0.0.
func Compare(a, b *Version) int {
	return compare(a, b)
}

// Compare compares v and u. See the Compare function for the semantics.
func (v *Version) Compare(u *Version) int { return compare(v, u) }

func compare(v1, v2 *Version) int {
	if v1 == v2 {
		return 0
	}
	if v1 == nil || v2 == nil {
		if v1 == nil {
			return -1
		}
		return 1
	}

	if s := sgnu64(v1.major, v2.major); s != 0 {
		return s
	}
	if s := sgnu64(v1.minor, v2.minor); s != 0 {
		return s
	}
	if s := sgnu64(v1.patch, v2.patch); s != 0 {
		return s
	}

	// Version numbers match. Check pre-release, elementwise.
	// Build metadata is ignored.

	// A version with no pre-release dominates any that has one.
	switch {
	case len(v1.pre) == 0 && len(v2.pre) == 0:
		return 0
	case len(v1.pre) == 0:
		return 1
	case len(v2.pre) == 0:
		return -1
	}

	return comparePrerelease(v1, v2)
}

// comparePrerelease compares the two versions' pre-release tags.
// Both must be non-empty.
func comparePrerelease(v1, v2 *Version) int {
	// Longer tags dominate shorter tags when they share a prefix.
	for i, p1 := range v1.pre {
		if i >= len(v2.pre) {
			return 1
		}
		c := compareID(p1, v2.pre[i])
		if c != 0 {
			return c
		}
	}
	if len(v1.pre) < len(v2.pre) {
		return -1
	}
	return 0
}

// compareID compares two pre-release identifiers.
// Numbers sort before non-numbers; non-numbers compare byte-wise.
func compareID(a, b preID) int {
	switch {
	case a.numeric && b.numeric:
		return sgnu64(a.num, b.num)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	}
	return strings.Compare(a.str, b.str)
}

// equalPrerelease reports whether the two versions have the same
// pre-release tags.
func equalPrerelease(v1, v2 *Version) bool {
	if len(v1.pre) != len(v2.pre) {
		return false
	}
	for i, p1 := range v1.pre {
		if compareID(p1, v2.pre[i]) != 0 {
			return false
		}
	}
	return true
}

// sgnu64 returns the signum of (unsigned) a-b.
func sgnu64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort sorts a slice of versions in increasing precedence order.
// The sort is not guaranteed to be stable across versions that differ
// only in build metadata, which compare equal.
func Sort(list []*Version) {
	sort.Slice(list, func(i, j int) bool {
		return compare(list[i], list[j]) < 0
	})
}
