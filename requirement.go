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
	"fmt"
	"strings"
)

// Requirement holds a parsed requirement expression: a tree of
// comparison clauses joined by 'and' and 'or' connectives. It is the
// syntactic form only; call Compile to obtain an evaluable
// CompiledRequirement.
type Requirement struct {
	str  string // Trimmed input to ParseRequirement.
	tree reqNode
}

// String returns the string used to create the Requirement, trimmed of
// leading and trailing space.
func (r *Requirement) String() string {
	return r.str
}

// reqNode is a node of the requirement expression tree.
type reqNode interface {
	// eachClause calls f for every comparison clause in the tree,
	// left to right.
	eachClause(f func(*clause))
}

// A clause is a single comparison: an operator token and its operand.
// The operand always carries three numbers; its numCount field records
// how many the user wrote, which matters only for tokBacon.
type clause struct {
	op      tokType
	operand *Version
}

type andNode struct{ left, right reqNode }

type orNode struct{ left, right reqNode }

func (c *clause) eachClause(f func(*clause)) { f(c) }

func (n *andNode) eachClause(f func(*clause)) {
	n.left.eachClause(f)
	n.right.eachClause(f)
}

func (n *orNode) eachClause(f func(*clause)) {
	n.left.eachClause(f)
	n.right.eachClause(f)
}

type requirementParser struct {
	str string // Trimmed input.
	pos int
}

// ParseRequirement returns the result of parsing the requirement
// string. The syntax is defined in the package comment.
// The returned error wraps ErrInvalidRequirement.
func ParseRequirement(str string) (*Requirement, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, fmt.Errorf("%w: empty requirement", ErrInvalidRequirement)
	}
	p := &requirementParser{str: str}
	tree, err := p.orList()
	if err != nil {
		return nil, err
	}
	// Never silently ignore trailing input.
	if typ, tok := p.next(); typ != tokEOF {
		return nil, p.errorf("unexpected %s %#q after requirement", typ, tok)
	}
	return &Requirement{str: str, tree: tree}, nil
}

// MustParseRequirement is like ParseRequirement but panics if the
// string is not a valid requirement.
func MustParseRequirement(str string) *Requirement {
	r, err := ParseRequirement(str)
	if err != nil {
		panic(err)
	}
	return r
}

func (p *requirementParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s in %#q", ErrInvalidRequirement, fmt.Sprintf(format, args...), p.str)
}

// next returns the next token and advances past it.
func (p *requirementParser) next() (tokType, string) {
	typ, tok, n := token(p.str[p.pos:])
	p.pos += n
	return typ, tok
}

// peek returns the next token without advancing.
func (p *requirementParser) peek() tokType {
	typ, _, _ := token(p.str[p.pos:])
	return typ
}

/*
orList = andList

	| orList 'or' andList
*/
func (p *requirementParser) orList() (reqNode, error) {
	left, err := p.andList()
	if err != nil {
		return nil, err
	}
	for p.peek() == tokOr {
		p.next()
		right, err := p.andList()
		if err != nil {
			return nil, err
		}
		left = &orNode{left: left, right: right}
	}
	return left, nil
}

/*
andList = clause

	| andList 'and' clause
*/
func (p *requirementParser) andList() (reqNode, error) {
	left, err := p.clause()
	if err != nil {
		return nil, err
	}
	for p.peek() == tokAnd {
		p.next()
		right, err := p.clause()
		if err != nil {
			return nil, err
		}
		left = &andNode{left: left, right: right}
	}
	return left, nil
}

/*
clause = VERSION

	| unop VERSION
	| '~>' PARTIAL
*/
func (p *requirementParser) clause() (reqNode, error) {
	typ, tok := p.next()
	switch typ {
	case tokEOF:
		return nil, p.errorf("missing version")
	case tokInvalid:
		return nil, p.errorf("invalid %#q", tok)
	case tokAnd, tokOr:
		return nil, p.errorf("unexpected %s", typ)
	case tokVersion:
		// A bare version means equality.
		operand, err := parse(tok, false, ErrInvalidRequirement)
		if err != nil {
			return nil, err
		}
		return &clause{op: tokEqual, operand: operand}, nil
	case tokEqual, tokNotEqual, tokGreater, tokGreaterEqual, tokLess, tokLessEqual, tokBacon:
		typ2, tok2 := p.next()
		if typ2 != tokVersion {
			return nil, p.errorf("expected version after %s, found %s", typ, typ2)
		}
		// Only the pessimistic operator may omit numbers.
		operand, err := parse(tok2, typ == tokBacon, ErrInvalidRequirement)
		if err != nil {
			return nil, err
		}
		return &clause{op: typ, operand: operand}, nil
	}
	return nil, p.errorf("unexpected %s", typ)
}
