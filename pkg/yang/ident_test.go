// Copyright 2015 Google Inc.
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

package yang

import "testing"

func TestNewIdentifier(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want Identifier
		err  bool
	}{
		{line: line(), in: "foo", want: Identifier{Name: "foo", Kind: PlainIdent}},
		{line: line(), in: "foo-bar.baz", want: Identifier{Name: "foo-bar.baz", Kind: PlainIdent}},
		{line: line(), in: "if:interfaces", want: Identifier{Prefix: "if", Name: "interfaces", Kind: PrefixedIdent}},
		{line: line(), in: "", err: true},
		{line: line(), in: "1foo", err: true},
		{line: line(), in: ":foo", err: true},
		{line: line(), in: "foo:", err: true},
		{line: line(), in: "foo:bar:baz", err: true},
	} {
		got, err := NewIdentifier(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("%d: NewIdentifier(%q): got no error, want one", tt.line, tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: NewIdentifier(%q): unexpected error: %v", tt.line, tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%d: NewIdentifier(%q) = %+v, want %+v", tt.line, tt.in, got, tt.want)
		}
	}
}

func TestIdentifierString(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   Identifier
		want string
	}{
		{line: line(), in: Identifier{Name: "foo"}, want: "foo"},
		{line: line(), in: Identifier{Prefix: "if", Name: "interfaces"}, want: "if:interfaces"},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMustIdentifierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustIdentifier on malformed input: did not panic")
		}
	}()
	MustIdentifier(":bad")
}

func TestIsValidIdentifier(t *testing.T) {
	if !IsValidIdentifier("foo") {
		t.Error(`IsValidIdentifier("foo") = false, want true`)
	}
	if IsValidIdentifier("1foo") {
		t.Error(`IsValidIdentifier("1foo") = true, want false`)
	}
}
