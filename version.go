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

/*
Package semver handles versions as defined by semver.org Version 2.0.0
as well as requirements applied to them.

No spaces may appear in a version string, and version strings are
entirely printable ASCII from the set:

	0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.+-

A version string is parsed as follows.

  - There must be exactly three dot-separated components.
  - Those components must be unsigned decimal integers with no
    leading zeros (the literal value 0 is of course fine).
  - Following those may appear zero, one or two types of alphanumeric
    suffixes. If present (either may be absent) they are, in this order:
  - A hyphen followed by a dot-punctuated pre-release tag.
  - A plus sign followed by a dot-punctuated build tag.

Pre-release and build identifiers are non-empty strings of letters,
digits and hyphens. A pre-release identifier that consists entirely of
digits, with no leading zero, is a numeric identifier; all others are
alphanumeric. The distinction matters for comparison only.

Comparisons between versions match the semver.org specification:
  - Corresponding version numbers in order are compared numerically.
  - Any pre-release tagged version compares earlier than an equivalent
    non-pre-release.
  - Pre-release tags are compared identifier by identifier: numeric
    identifiers compare numerically and always sort below alphanumeric
    ones; alphanumeric identifiers compare byte-wise; a strict prefix
    sorts first.
  - Build tags are ignored in comparison. Two versions that differ only
    in build metadata are equal and therefore interchangeable, for
    instance as keys in a map keyed by version.

A requirement is a boolean expression of comparison clauses that a
version may or may not satisfy, in the grammar used by Hex and Mix.
Items within a requirement are separated by spaces. The grammar is
written assuming VERSION and PARTIAL as terminals, where VERSION is the
version syntax above (pre-release and build optional) and PARTIAL may
additionally omit the patch number, or both the minor and patch
numbers:

	requirement = andList
		| requirement 'or' andList

	andList = clause
		| andList 'and' clause

	clause = VERSION        // Equivalent to '==' VERSION.
		| unop VERSION
		| '~>' PARTIAL

	unop = '=='
		| '!='
		| '>'
		| '>='
		| '<'
		| '<='

'and' binds tighter than 'or', so "a and b or c" means "(a and b) or c".

The '~>' operator (pessimistic, a.k.a. compatible-with) pins the most
significant number the operand provides:

	~> 2.1.2    means    >= 2.1.2 and < 2.2.0
	~> 2.1      means    >= 2.1.0 and < 3.0.0
	~> 2        means    >= 2.0.0 and < 3.0.0

See the Compile documentation for how pre-releases interact with the
upper bound of the expansion.
*/
package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The two kinds of parse failure. Errors returned by Parse wrap
// ErrInvalidVersion; errors returned by ParseRequirement, including
// those for malformed operands, wrap ErrInvalidRequirement.
var (
	ErrInvalidVersion     = errors.New("invalid version")
	ErrInvalidRequirement = errors.New("invalid requirement")
)

// Version represents a specific semantic version. A Version is
// constructed only by parsing and is immutable afterwards; it is safe
// to share between goroutines.
type Version struct {
	str      string // Original representation.
	major    uint64
	minor    uint64
	patch    uint64
	numCount int // Numbers provided by the user; below 3 only in '~>' operands.
	pre      []preID
	build    string // Build tag with its leading '+'; empty if absent.
}

// A preID is a single dot-separated pre-release identifier. It is
// classified as numeric or alphanumeric exactly once, at parse time, so
// comparison is a field check rather than a re-parse.
type preID struct {
	str     string
	num     uint64 // Value if numeric.
	numeric bool
}

// newPreID classifies and stores one pre-release identifier. An
// all-digit identifier with a leading zero (such as "01") is legal but
// is an alphanumeric identifier, not a number; so is a run of digits
// too large for 64 bits.
func newPreID(s string) preID {
	if len(s) > 1 && s[0] == '0' {
		return preID{str: s}
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return preID{str: s}
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return preID{str: s}
	}
	return preID{str: s, num: n, numeric: true}
}

type versionParser struct {
	*Version // Accumulator for result.
	lex      lexer
}

// Parse returns the result of parsing the version string.
// The returned error wraps ErrInvalidVersion.
func Parse(str string) (*Version, error) {
	return parse(str, false, ErrInvalidVersion)
}

// MustParse is like Parse but panics if the string is not a valid
// version. It is intended for initializing version values known to be
// well formed; everywhere else, handle the error.
func MustParse(str string) *Version {
	v, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return v
}

// parse parses a version string. If partial is true the minor and
// patch numbers may be omitted (they are taken to be zero) and build
// metadata is rejected; that form appears only as a '~>' operand.
// kind is the sentinel the first error is wrapped in.
func parse(str string, partial bool, kind error) (*Version, error) {
	version := &Version{str: str}
	parser := versionParser{
		Version: version,
		lex: lexer{
			str:  str,
			kind: kind,
		},
	}
	return parser.version(partial)
}

// version
//
//	1.2.3
//	1.2.3-alpha
//	1.2.3+build.2
//	1.2.3-alpha.3+build.2
//	1.2 or 1, but only when partial.
func (p *versionParser) version(partial bool) (*Version, error) {
	if !p.number() {
		p.lex.setErr("no number in version string")
		return nil, p.lex.err
	}
	r := p.lex.next()
	for r == '.' && p.number() {
		r = p.lex.next()
	}
	if r == '.' && p.lex.err == nil {
		switch p.lex.peek() {
		case '.', eof:
			p.lex.setErr("empty component")
		}
		p.lex.setErr("non-numeric version")
		return nil, p.lex.err
	}
	if !partial && p.numCount < 3 {
		p.lex.setErr("version requires 3 numbers")
		return nil, p.lex.err
	}
	if r == '-' {
		r = p.metadata(&p.pre, "pre-release")
	}
	if r == '+' {
		if partial {
			p.lex.setErr("build metadata in partial version")
			return nil, p.lex.err
		}
		start := p.lex.pos - 1
		r = p.metadata(nil, "build")
		p.build = p.lex.str[start:p.lex.pos]
	}
	if r != eof {
		p.lex.setErr("invalid text in version string")
	}
	if p.lex.err != nil {
		return nil, p.lex.err
	}
	return p.Version, nil
}

// metadata parses a pre-release or build metadata list and, for
// pre-release, stores the classified identifiers in its slice argument.
// The typ identifies the metadata variety for error messages:
// "pre-release" or "build". The return value is the rune that stopped
// the parse.
func (p *versionParser) metadata(sp *[]preID, typ string) rune {
	var r rune
	var n int
	for {
		elem, ok := p.elem()
		if !ok {
			break
		}
		if sp != nil {
			*sp = append(*sp, newPreID(elem))
		}
		n++
		r = p.lex.next()
		if r != '.' {
			break
		}
	}
	if n == 0 {
		p.lex.setErr("empty " + typ + " metadata")
	}
	return r
}

// elem reports whether the next item is an alphanumeric identifier, and
// returns it.
func (p *versionParser) elem() (string, bool) {
	start := p.lex.pos
	for p.lex.alphanumericOrHyphen() {
	}
	if p.lex.pos == start {
		if p.lex.peek() == '.' {
			p.lex.setErr("empty component")
		}
		return "", false
	}
	return p.lex.str[start:p.lex.pos], true
}

// number reports whether the next token is a number.
// If it is, the value is remembered.
func (p *versionParser) number() bool {
	start := p.lex.pos
	for p.lex.digit() {
	}
	if p.lex.pos == start {
		return false
	}
	// No leading zero allowed, but of course just plain 0 is OK.
	if p.lex.pos > start+1 && p.lex.str[start] == '0' {
		p.lex.setErr("number has leading zero")
		return false
	}
	val, err := strconv.ParseUint(p.lex.str[start:p.lex.pos], 10, 64)
	if err != nil {
		p.lex.setError(err)
		return false
	}
	return p.addNum(val)
}

func (p *versionParser) addNum(val uint64) bool {
	switch p.numCount {
	case 0:
		p.major = val
	case 1:
		p.minor = val
	case 2:
		p.patch = val
	default:
		p.lex.setErr("more than 3 numbers present")
		return false
	}
	p.numCount++
	return true
}

// String returns the string the version was parsed from.
func (v *Version) String() string {
	return v.str
}

// Canon returns the canonical string representation of the version:
// MAJOR.MINOR.PATCH, the pre-release identifiers joined by dots after a
// hyphen, and, if showBuild is set, the build tag after a plus sign.
// Parsing the result of Canon yields a version equal to v field-wise,
// except that Canon(false) drops build metadata.
func (v *Version) Canon(showBuild bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
	for i, pre := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(pre.str)
	}
	if showBuild {
		b.WriteString(v.build)
	}
	return b.String()
}

// Major returns the major number of the version.
func (v *Version) Major() uint64 { return v.major }

// Minor returns the minor number of the version.
func (v *Version) Minor() uint64 { return v.minor }

// Patch returns the patch number of the version.
func (v *Version) Patch() uint64 { return v.patch }

// IsPrerelease reports whether the version contains a pre-release tag.
func (v *Version) IsPrerelease() bool {
	return v != nil && len(v.pre) > 0
}

// HasBuild reports whether the version contains a build tag.
func (v *Version) HasBuild() bool {
	return len(v.build) > 0
}

// Prerelease returns the pre-release tag, if any, including the leading
// hyphen.
func (v *Version) Prerelease() string {
	if len(v.pre) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pre := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(pre.str)
	}
	return b.String()
}

// Build returns the build tag, if any, without the leading plus sign.
// Build metadata carries no ordering weight; see Compare.
func (v *Version) Build() string {
	return strings.TrimPrefix(v.build, "+")
}
