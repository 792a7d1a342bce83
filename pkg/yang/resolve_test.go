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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParseModule(t *testing.T, text string) *Module {
	t.Helper()
	m, err := ParseModule(text, Options{})
	if err != nil {
		t.Fatalf("ParseModule: unexpected error: %v", err)
	}
	return m
}

func TestCollectDefinitions(t *testing.T) {
	m := mustParseModule(t, `
module base {
  namespace "urn:mod";
  prefix "base";

  typedef top-type { type int32; }

  grouping top-group {
    leaf x { type top-type; }
  }

  container c {
    uses top-group;
    leaf y { type top-type; }
  }
}
`)

	nodes := CollectDefinitions(m, nil)

	var kinds []NodeKind
	for _, n := range nodes {
		kinds = append(kinds, n.Kind)
	}
	// A typedef's own "type" substatement is itself a TypeUse (of the
	// builtin "int32" here), so it shows up between the two definitions.
	want := []NodeKind{TypeDefinition, TypeUse, GroupingDefinition, TypeUse, GroupingUse, TypeUse}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	// The typedef and grouping definitions get sequence 1 immediately.
	for _, n := range nodes {
		if n.Kind.isDefinition() && (n.Sequence == nil || *n.Sequence != 1) {
			t.Errorf("definition %s: got sequence %v, want 1", n.Name, n.Sequence)
		}
	}
}

func TestResolveNearestEnclosing(t *testing.T) {
	// Scenario F: two typedefs sharing the name "foo" in disjoint sibling
	// scopes.  A "type foo" inside one container must resolve to the
	// typedef declared in that container, never to its sibling's.
	m := mustParseModule(t, `
module base {
  namespace "urn:mod";
  prefix "base";

  container a {
    typedef foo { type int32; }
    leaf x { type foo; }
  }

  container b {
    typedef foo { type string; }
    leaf y { type foo; }
  }
}
`)

	nodes := Resolve(CollectDefinitions(m, nil))

	var defs, uses []*ResolvedNode
	for _, n := range nodes {
		switch {
		case n.Kind == TypeDefinition:
			defs = append(defs, n)
		case n.Kind == TypeUse && n.Name == "foo":
			uses = append(uses, n)
		}
	}
	if len(defs) != 2 || len(uses) != 2 {
		t.Fatalf("got %d definitions and %d uses, want 2 and 2", len(defs), len(uses))
	}

	for _, u := range uses {
		if u.Sequence == nil {
			t.Errorf("use at path %v: got unresolved reference, want a match", u.Path)
			continue
		}
		// The use's path shares its first segment ("a" or "b") with
		// exactly one of the two definitions; that's the one it must
		// resolve to.
		var want *ResolvedNode
		for _, d := range defs {
			if len(d.scope) > 0 && len(u.Path) > 0 && d.scope[0] == u.Path[0] {
				want = d
			}
		}
		if want == nil {
			t.Fatalf("test setup error: no matching definition for use at %v", u.Path)
		}
		if *u.Sequence != *want.Sequence {
			t.Errorf("use at path %v: resolved to sequence %d, want %d (definition scoped under %v)", u.Path, *u.Sequence, *want.Sequence, want.scope)
		}
	}
}

func TestResolveUnresolvedReference(t *testing.T) {
	m := mustParseModule(t, `
module base {
  namespace "urn:mod";
  prefix "base";

  leaf x { type nonexistent; }
}
`)

	nodes := Resolve(CollectDefinitions(m, nil))
	var use *ResolvedNode
	for _, n := range nodes {
		if n.Kind == TypeUse {
			use = n
		}
	}
	if use == nil {
		t.Fatal("did not find the type use")
	}
	if use.Sequence != nil {
		t.Errorf("got resolved sequence %d for a nonexistent typedef, want nil", *use.Sequence)
	}
}

func TestResolveShadowingSequence(t *testing.T) {
	// Two typedefs with the same name in the SAME scope: a later use must
	// resolve to the most recently declared one (highest sequence).
	m := mustParseModule(t, `
module base {
  namespace "urn:mod";
  prefix "base";

  typedef foo { type int32; }
  typedef foo { type string; }

  leaf x { type foo; }
}
`)

	nodes := Resolve(CollectDefinitions(m, nil))
	var defs []*ResolvedNode
	var use *ResolvedNode
	for _, n := range nodes {
		switch {
		case n.Kind == TypeDefinition:
			defs = append(defs, n)
		case n.Kind == TypeUse && n.Name == "foo":
			use = n
		}
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	if use == nil || use.Sequence == nil {
		t.Fatal("use did not resolve")
	}
	if *use.Sequence != 2 {
		t.Errorf("got sequence %d, want 2 (the later declaration)", *use.Sequence)
	}
}

func TestPathArgumentSegments(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want []string
	}{
		{line: line(), in: "/if:interfaces/if:interface", want: []string{"if:interfaces", "if:interface"}},
		{line: line(), in: "../sibling", want: []string{"sibling"}},
		{line: line(), in: "./leaf", want: []string{"leaf"}},
		{line: line(), in: "", want: nil},
	} {
		got := pathArgumentSegments(tt.in)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%d: pathArgumentSegments(%q) mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestAugmentPathSegments(t *testing.T) {
	m := mustParseModule(t, `
module base {
  namespace "urn:mod";
  prefix "base";

  augment /a/b {
    leaf x { type string; }
  }
}
`)

	nodes := CollectDefinitions(m, nil)
	var use *ResolvedNode
	for _, n := range nodes {
		if n.Kind == TypeUse {
			use = n
		}
	}
	if use == nil {
		t.Fatal("did not find the type use under the augment")
	}
	want := []string{"a", "b", "x"}
	if diff := cmp.Diff(want, use.Path); diff != "" {
		t.Errorf("augment path mismatch (-want +got):\n%s", diff)
	}
}
