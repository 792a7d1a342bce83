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

import "strings"

// IdentKind distinguishes the three identifier shapes RFC 7950 %6.2 allows.
type IdentKind int

const (
	// PlainIdent is a bare identifier, e.g. "foo".
	PlainIdent IdentKind = iota
	// PrefixedIdent is "prefix:name".
	PrefixedIdent
	// ReferenceIdent is either of the above, used where the grammar does
	// not itself distinguish which is meant (e.g. a type's argument).
	ReferenceIdent
)

// Identifier is a YANG identifier, optionally prefixed by a module prefix.
type Identifier struct {
	Prefix string // empty for a plain identifier
	Name   string
	Kind   IdentKind
}

// String renders id in its source form.
func (id Identifier) String() string {
	if id.Prefix == "" {
		return id.Name
	}
	return id.Prefix + ":" + id.Name
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}

// isPlainIdentifier reports whether s is a valid, unprefixed identifier.
func isPlainIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentCont(s[i]) {
			return false
		}
	}
	return true
}

// NewIdentifier is the checked constructor: it rejects malformed input with
// an InvalidIdentifier error.
func NewIdentifier(s string) (Identifier, error) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		prefix, name := s[:i], s[i+1:]
		if !isPlainIdentifier(prefix) || !isPlainIdentifier(name) || strings.IndexByte(name, ':') >= 0 {
			return Identifier{}, &Error{Kind: InvalidIdentifier, Message: "malformed prefixed identifier: " + s}
		}
		return Identifier{Prefix: prefix, Name: name, Kind: PrefixedIdent}, nil
	}
	if !isPlainIdentifier(s) {
		return Identifier{}, &Error{Kind: InvalidIdentifier, Message: "malformed identifier: " + s}
	}
	return Identifier{Name: s, Kind: PlainIdent}, nil
}

// MustIdentifier is the unchecked constructor, for callers that already know
// s is well-formed (e.g. values already validated by the lexer's unquoted
// token rules). It panics on malformed input, so it must never be used on
// unvalidated external data.
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValidIdentifier reports whether s would be accepted by NewIdentifier.
func IsValidIdentifier(s string) bool {
	_, err := NewIdentifier(s)
	return err == nil
}
