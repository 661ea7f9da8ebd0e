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

// This file contains the implementation of requirement matching. A
// compiled requirement is evaluated bottom-up over its expression tree:
// 'and' and 'or' short-circuit with the usual boolean semantics, and a
// comparison clause admits the candidate when Compare puts it in the
// operator's allowed set (for instance '>=' admits Equal and Greater).
//
// Pre-release visibility is a policy applied once per match call, at
// the top level, not per clause: a candidate that carries a pre-release
// tag is invisible to a match with AllowPrerelease false unless the
// requirement itself names a pre-release operand, which opts the whole
// requirement in. The "names a pre-release operand" predicate is
// order-independent and computed once, at compile time.

// MatchOptions adjusts the pre-release policy of a match.
// The zero value disallows pre-release candidates; callers who want the
// permissive default should call MatchVersion instead.
type MatchOptions struct {
	// AllowPrerelease reports whether pre-release versions may match.
	// When it is false, a pre-release candidate matches only if some
	// operand written in the requirement is itself a pre-release.
	AllowPrerelease bool
}

// Match reports whether the version represented by the argument string
// satisfies the requirement. It returns false if the argument is not a
// valid version. Pre-release versions may match; use MatchWith to
// exclude them.
func (c *CompiledRequirement) Match(version string) bool {
	v, err := Parse(version)
	if err != nil {
		return false
	}
	return c.MatchVersion(v)
}

// MatchVersion is like Match but it takes a *Version.
func (c *CompiledRequirement) MatchVersion(v *Version) bool {
	return c.MatchWith(v, MatchOptions{AllowPrerelease: true})
}

// MatchWith reports whether the version satisfies the requirement under
// the given options.
func (c *CompiledRequirement) MatchWith(v *Version, opts MatchOptions) bool {
	if !opts.AllowPrerelease && v.IsPrerelease() && !c.hasPre {
		return false
	}
	return c.tree.match(v)
}

func (m *andMatcher) match(v *Version) bool {
	return m.left.match(v) && m.right.match(v)
}

func (m *orMatcher) match(v *Version) bool {
	return m.left.match(v) || m.right.match(v)
}

func (m *cmpMatcher) match(v *Version) bool {
	s := compare(v, m.operand)
	switch m.op {
	case tokEqual:
		return s == 0
	case tokNotEqual:
		return s != 0
	case tokGreater:
		return s > 0
	case tokGreaterEqual:
		return s >= 0
	case tokLess:
		if s >= 0 {
			return false
		}
		// The upper bound of a pessimistic range excludes pre-releases
		// of the bound itself.
		if m.nextRelease && v.IsPrerelease() && sameRelease(v, m.operand) {
			return false
		}
		return true
	case tokLessEqual:
		return s <= 0
	}
	return false
}

// sameRelease reports whether the two versions have the same major,
// minor and patch numbers, ignoring tags.
func sameRelease(a, b *Version) bool {
	return a.major == b.major && a.minor == b.minor && a.patch == b.patch
}
