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

import "math"

// CompiledRequirement is the evaluable form of a Requirement: the same
// expression tree with every pessimistic clause expanded into its
// equivalent '>='/'<' pair, plus a precomputed flag recording whether
// any operand carries a pre-release tag. Compiling is a one-time, pure
// transform; the result is immutable and safe to share across any
// number of concurrent Match calls.
type CompiledRequirement struct {
	str    string
	hasPre bool // Some operand written in the requirement is a pre-release.
	tree   matcher
}

// matcher is a node of the compiled tree. Unlike reqNode it never
// contains a pessimistic clause.
type matcher interface {
	match(v *Version) bool
}

type andMatcher struct{ left, right matcher }

type orMatcher struct{ left, right matcher }

// cmpMatcher evaluates one comparison against a fixed operand.
type cmpMatcher struct {
	op      tokType
	operand *Version
	// nextRelease marks the synthesized upper bound of a pessimistic
	// range. Such a bound must not admit pre-releases of its own
	// release triple: "~> 2.1.2" does not match "2.2.0-rc.1" even
	// though that candidate sorts below 2.2.0.
	nextRelease bool
}

// Compile lowers the requirement into its evaluable form, expanding
// each '~>' clause:
//
//	~> M.m.p[-pre]    becomes    >= M.m.p[-pre] and < M.(m+1).0
//	~> M.m            becomes    >= M.m.0 and < (M+1).0.0
//	~> M              becomes    >= M.0.0 and < (M+1).0.0
//
// The upper bound is always a plain release, never a pre-release, and
// never admits a pre-release of itself, so a pessimistic requirement
// cannot match a pre-release of the next minor or major release.
// A number at the top of the uint64 range cannot be incremented; the
// bound then saturates to the next coarser number, or disappears when
// the major number is itself maxed out.
//
// The "mentions a pre-release" flag consumed by the matcher's gating
// policy is computed here, over the operands as the user wrote them,
// and cached in the result.
func (r *Requirement) Compile() *CompiledRequirement {
	hasPre := false
	r.tree.eachClause(func(c *clause) {
		if c.operand.IsPrerelease() {
			hasPre = true
		}
	})
	return &CompiledRequirement{
		str:    r.str,
		hasPre: hasPre,
		tree:   compileNode(r.tree),
	}
}

// String returns the string the requirement was parsed from.
func (c *CompiledRequirement) String() string {
	return c.str
}

// HasPrerelease reports whether any operand written in the requirement
// carries a pre-release tag. The value is computed at compile time.
func (c *CompiledRequirement) HasPrerelease() bool {
	return c.hasPre
}

func compileNode(n reqNode) matcher {
	switch n := n.(type) {
	case *andNode:
		return &andMatcher{left: compileNode(n.left), right: compileNode(n.right)}
	case *orNode:
		return &orMatcher{left: compileNode(n.left), right: compileNode(n.right)}
	case *clause:
		if n.op == tokBacon {
			lo, hi := pessimisticBounds(n.operand)
			lower := &cmpMatcher{op: tokGreaterEqual, operand: lo}
			if hi == nil {
				return lower
			}
			return &andMatcher{
				left:  lower,
				right: &cmpMatcher{op: tokLess, operand: hi, nextRelease: true},
			}
		}
		return &cmpMatcher{op: n.op, operand: n.operand}
	}
	panic("semver: unknown requirement node")
}

// pessimisticBounds returns the half-open range equivalent to applying
// '~>' to the operand. The significance of the bound follows the count
// of numbers the user actually wrote, not the zero-filled values.
// A maxed-out component has no successor: the bound saturates to the
// next coarser component, and with nothing left to increment hi is nil,
// meaning the range has no upper end.
func pessimisticBounds(operand *Version) (lo, hi *Version) {
	lo = operand
	hi = &Version{numCount: 3}
	switch {
	case operand.numCount >= 3 && operand.minor < math.MaxUint64:
		hi.major = operand.major
		hi.minor = operand.minor + 1
	case operand.major < math.MaxUint64:
		hi.major = operand.major + 1
	default:
		return lo, nil
	}
	hi.str = hi.Canon(false)
	return lo, hi
}
