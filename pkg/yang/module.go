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

import (
	"errors"
	"fmt"
	"strings"
)

// section identifies which of the five RFC 7950 %7.1 groups a module's
// top-level statement belongs to.
type section int

const (
	sectionHeader section = iota
	sectionLinkage
	sectionMeta
	sectionRevision
	sectionBody
)

func (s section) String() string {
	switch s {
	case sectionHeader:
		return "header"
	case sectionLinkage:
		return "linkage"
	case sectionMeta:
		return "meta"
	case sectionRevision:
		return "revision"
	}
	return "body"
}

// sectionOf classifies a top-level module/submodule statement keyword.
// A keyword with no entry is either an ordinary body statement or an
// unknown/extension statement; checkSectionOrder tells the two apart since
// only the latter is exempt from section ordering.
var sectionOf = map[string]section{
	"yang-version": sectionHeader,
	"namespace":    sectionHeader,
	"prefix":       sectionHeader,
	"belongs-to":   sectionHeader,
	"import":       sectionLinkage,
	"include":      sectionLinkage,
	"organization": sectionMeta,
	"contact":      sectionMeta,
	"description":  sectionMeta,
	"reference":    sectionMeta,
	"revision":     sectionRevision,
}

// ParseModule parses text as a top-level "module" statement: it strips
// comments, parses the generic grammar, builds the typed AST, and checks
// that header, linkage, meta, and revision statements precede the body in
// source order (RFC 7950 %7.1).  opts governs lenient behaviors for this
// call only; ParseModule mutates no package-level state, so concurrent
// calls with different opts never race with each other.
func ParseModule(text string, opts Options) (*Module, error) {
	return parseModule(text, "module", opts)
}

// ParseSubmodule parses text as a top-level "submodule" statement.
func ParseSubmodule(text string, opts Options) (*Module, error) {
	return parseModule(text, "submodule", opts)
}

func parseModule(text, want string, opts Options) (*Module, error) {
	stripped, err := StripComments(text)
	if err != nil && !errors.Is(err, ErrUnterminatedBlockComment) {
		return nil, err
	}

	stmts, perr := Parse(stripped, "")
	if perr != nil {
		return nil, perr
	}
	if len(stmts) != 1 {
		return nil, fmt.Errorf("expected exactly one top-level statement, got %d", len(stmts))
	}
	s := stmts[0]
	kind := s.Keyword
	if k := aliases[kind]; k != "" {
		kind = k
	}
	if kind != "module" {
		return nil, fmt.Errorf("%s: top-level statement is %q, want %q or %q", s.Location(), s.Keyword, "module", "submodule")
	}
	if s.Keyword != want {
		return nil, fmt.Errorf("%s: top-level statement is %q, want %q", s.Location(), s.Keyword, want)
	}

	n, berr := BuildAST(s)
	if berr != nil {
		return nil, berr
	}
	m, ok := n.(*Module)
	if !ok {
		return nil, fmt.Errorf("%s: internal error: BuildAST(%q) returned %T", s.Location(), s.Keyword, n)
	}

	if err := checkSectionOrder(m); err != nil {
		if !opts.LenientSectionOrder {
			return nil, err
		}
		m.Diagnostics = append(m.Diagnostics, err)
	}

	return m, nil
}

// checkSectionOrder walks m's original source children (in source order,
// which the typed Module struct itself does not preserve across sections)
// and verifies that header statements precede linkage, linkage precedes
// meta, meta precedes revisions, and revisions precede the body.
//
// A "prefix:name" statement is an unknown/extension statement (see ast.go's
// build), not a body statement, and per RFC 7950 %7.1 it may appear
// anywhere; it is attached to whatever section is current without itself
// advancing it, so it never causes a legitimate statement right after it to
// look out of order.
func checkSectionOrder(m *Module) error {
	high := sectionHeader
	for _, ss := range m.Source.SubStatements() {
		if strings.Contains(ss.Keyword, ":") {
			continue
		}
		sec, ok := sectionOf[ss.Keyword]
		if !ok {
			sec = sectionBody
		}
		if sec < high {
			return newError(InvalidArgument, ss, "%s statement %q out of order after %s section began", sec, ss.Keyword, high)
		}
		high = sec
	}
	return nil
}
