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
	"unicode/utf8"
)

// The requirement language has the property that the various tokens are
// _almost_ identified by distinct character sets, which lets us tokenize
// the input without parsing tricky things like versions, treating
// version strings as terminals in the grammar. The "almost" refers to
// two cases:
// 1. Hyphen introduces a pre-release tag and is also an identifier
// character, but it never starts a token, so it is simply a version
// character here.
// 2. The boolean connectives 'and' and 'or' scan exactly like the start
// of a version string. We handle this by scanning the token and then
// checking it against the two keywords.

// tokType classifies the tokens according to the characters within.
// The parser uses the type to guide the parse.
type tokType int

// Token types.
const (
	tokInvalid tokType = iota
	tokEqual
	tokNotEqual
	tokGreater
	tokGreaterEqual
	tokLess
	tokLessEqual
	tokBacon // The pessimistic operator, '~>'.
	tokAnd
	tokOr
	tokVersion
	tokEOF
)

var tokTypeNames = [...]string{
	tokInvalid:      "invalid token",
	tokEqual:        `"=="`,
	tokNotEqual:     `"!="`,
	tokGreater:      `">"`,
	tokGreaterEqual: `">="`,
	tokLess:         `"<"`,
	tokLessEqual:    `"<="`,
	tokBacon:        `"~>"`,
	tokAnd:          `"and"`,
	tokOr:           `"or"`,
	tokVersion:      "version",
	tokEOF:          "end of requirement",
}

func (t tokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return "unknown token"
	}
	return tokTypeNames[t]
}

const (
	tXX = iota // Unknown/illegal char.
	tWS        // Space.
	tVS        // Can be in a version string or a boolean keyword.
	tOP        // Part of an operator like '>=' or '~>'.
)

var byteType = [...]uint8{
	tXX, tXX, tXX, tXX, tXX, tXX, tXX, tXX, // 0x00-0x07
	tXX, tWS, tXX, tXX, tXX, tXX, tXX, tXX, // 0x08-0x0f
	tXX, tXX, tXX, tXX, tXX, tXX, tXX, tXX, // 0x10-0x17
	tXX, tXX, tXX, tXX, tXX, tXX, tXX, tXX, // 0x18-0x1f
	tWS, tOP, tXX, tXX, tXX, tXX, tXX, tXX, // ⎵ ! " # $ % & '
	tXX, tXX, tXX, tVS, tXX, tVS, tVS, tXX, // ( ) * + , - . /
	tVS, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // 0 1 2 3 4 5 6 7
	tVS, tVS, tXX, tXX, tOP, tOP, tOP, tXX, // 8 9 : ; < = > ?
	tXX, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // @ A B C D E F G
	tVS, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // H I J K L M N O
	tVS, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // P Q R S T U V W
	tVS, tVS, tVS, tXX, tXX, tXX, tXX, tXX, // X Y Z [ \ ] ^ _
	tXX, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // ` a b c d e f g
	tVS, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // h i j k l m n o
	tVS, tVS, tVS, tVS, tVS, tVS, tVS, tVS, // p q r s t u v w
	tVS, tVS, tVS, tXX, tXX, tXX, tOP, tXX, // x y z { | } ~ del
}

// The comparison operators of the requirement grammar. A bare version
// with no operator is treated as tokEqual by the parser.
var operators = map[string]tokType{
	"==": tokEqual,
	"!=": tokNotEqual,
	">":  tokGreater,
	">=": tokGreaterEqual,
	"<":  tokLess,
	"<=": tokLessEqual,
	"~>": tokBacon,
}

func typeOf(r rune) uint8 {
	if r < 0 || r >= 0x7F {
		return tXX
	}
	return byteType[r]
}

// token scans for the token starting the string. It skips leading
// space and returns the token's type, its contents, and the number
// of bytes consumed to the end of the token.
// If the token is of type tokVersion, it still needs to be checked for
// correctness.
func token(str string) (tokType, string, int) {
	// Skip spaces.
	var i int
	for i = 0; i < len(str) && str[i] < 0x7F && byteType[str[i]] == tWS; i++ {
	}
	if i == len(str) {
		return tokEOF, "", i
	}
	start := i
	r, wid := utf8.DecodeRuneInString(str[start:])
	i += wid
	typ := typeOf(r)
	if typ == tXX {
		return tokInvalid, str[start:i], i
	}
	// Loop as long as the type of the rune matches what we started with.
	for ; ; i += wid {
		r, wid = utf8.DecodeRuneInString(str[i:])
		if typeOf(r) != typ {
			break
		}
		// If an operator, take the longest valid operator.
		if typ == tOP {
			if operators[str[start:i+wid]] == tokInvalid {
				break
			}
		}
	}
	// We have the token. Discover the token type.
	tok := str[start:i]
	switch typ {
	case tOP:
		// A single '=', '!' or '~' scans as a token but is not an
		// operator; the map then yields tokInvalid.
		return operators[tok], tok, i
	case tVS:
		switch tok {
		case "and":
			return tokAnd, tok, i
		case "or":
			return tokOr, tok, i
		}
		return tokVersion, tok, i
	}
	return tokInvalid, tok, i
}
