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

import "testing"

func TestToken(t *testing.T) {
	tests := []struct {
		str   string
		typ   tokType
		token string
		next  int
	}{
		{"", tokEOF, "", 0},
		{"     ", tokEOF, "", 5},

		// Versions.
		{"1", tokVersion, "1", 1},
		{"1 ", tokVersion, "1", 1},
		{"  1  ", tokVersion, "1", 3},
		{"  1.2.3-alpha  ", tokVersion, "1.2.3-alpha", 13},
		{"  1.2.3-alpha+beta.2  ", tokVersion, "1.2.3-alpha+beta.2", 20},
		{"  1.2.3.4.5.6.7  ", tokVersion, "1.2.3.4.5.6.7", 15}, // Invalid version, but the token function doesn't check that.

		// Keywords.
		{"  and  ", tokAnd, "and", 5},
		{"  or  ", tokOr, "or", 4},
		// Keyword-lookalikes scan as versions; the parser rejects them.
		{"andor", tokVersion, "andor", 5},
		{"ore", tokVersion, "ore", 3},
		{"and1", tokVersion, "and1", 4},

		// Operators.
		{"  ==  ", tokEqual, "==", 4},
		{"  !=  ", tokNotEqual, "!=", 4},
		{"  >  ", tokGreater, ">", 3},
		{"  >=  ", tokGreaterEqual, ">=", 4},
		{"  <  ", tokLess, "<", 3},
		{"  <=  ", tokLessEqual, "<=", 4},
		{"  ~>  ", tokBacon, "~>", 4},
		{">=1.0.0", tokGreaterEqual, ">=", 2},
		{"~>2.1", tokBacon, "~>", 2},

		// Invalid things.
		{" =  ", tokInvalid, "=", 2},
		{" !  ", tokInvalid, "!", 2},
		{" ~  ", tokInvalid, "~", 2},
		{" ~~>  ", tokInvalid, "~", 2},
		{" |  ", tokInvalid, "|", 2},
		{" ,  ", tokInvalid, ",", 2},
		{" [  ", tokInvalid, "[", 2},
		{" (  ", tokInvalid, "(", 2},
	}
	for _, test := range tests {
		typ, token, next := token(test.str)
		if typ != test.typ || token != test.token || next != test.next {
			t.Errorf("token(%q) = %s %q %d; expect %s %q %d", test.str,
				typ, token, next,
				test.typ, test.token, test.next)
		}
	}
}
