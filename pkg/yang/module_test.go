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
	"strings"
	"testing"
)

func TestParseModule(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		name string
		kind string
		err  string
	}{
		{
			line: line(),
			in: `
module base {
  namespace "urn:mod";
  prefix "base";
  organization "Acme";
  revision 2020-01-01;

  typedef base-type { type int32; }
}
`,
			name: "base",
			kind: "module",
		},
		{
			line: line(),
			in: `
submodule sub {
  belongs-to base { prefix "base"; }
  revision 2020-01-01;
}
`,
			name: "sub",
			kind: "submodule",
		},
		{
			line: line(),
			in: `
container foo { leaf bar { type string; } }
`,
			err: `want`,
		},
	} {
		if tt.err != "" {
			_, err := ParseModule(tt.in, Options{})
			if err == nil {
				t.Errorf("%d: did not get expected error containing %q", tt.line, tt.err)
				continue
			}
			if !strings.Contains(err.Error(), tt.err) {
				t.Errorf("%d: got error %v, want it to contain %q", tt.line, err, tt.err)
			}
			continue
		}

		var m *Module
		var err error
		if tt.kind == "submodule" {
			m, err = ParseSubmodule(tt.in, Options{})
		} else {
			m, err = ParseModule(tt.in, Options{})
		}
		if err != nil {
			t.Errorf("%d: unexpected error: %v", tt.line, err)
			continue
		}
		if m.NName() != tt.name {
			t.Errorf("%d: got name %s, want %s", tt.line, m.NName(), tt.name)
		}
		if m.Kind() != tt.kind {
			t.Errorf("%d: got kind %s, want %s", tt.line, m.Kind(), tt.kind)
		}
		if len(m.Diagnostics) != 0 {
			t.Errorf("%d: unexpected diagnostics: %v", tt.line, m.Diagnostics)
		}
	}
}

func TestParseModuleWrongKind(t *testing.T) {
	in := `
module base {
  namespace "urn:mod";
  prefix "base";
}
`
	if _, err := ParseSubmodule(in, Options{}); err == nil {
		t.Error("ParseSubmodule on a module: got no error, want one")
	}
}

func TestSectionOrder(t *testing.T) {
	// import (linkage) after organization (meta) is out of order.
	in := `
module base {
  namespace "urn:mod";
  prefix "base";
  organization "Acme";
  import other { prefix "o"; }
}
`
	if _, err := ParseModule(in, Options{}); err == nil {
		t.Error("strict section order: got no error, want one")
	}

	m, err := ParseModule(in, Options{LenientSectionOrder: true})
	if err != nil {
		t.Fatalf("lenient section order: unexpected error: %v", err)
	}
	if len(m.Diagnostics) != 1 {
		t.Fatalf("lenient section order: got %d diagnostics, want 1: %v", len(m.Diagnostics), m.Diagnostics)
	}
}

func TestSectionOrderUnknownStatementIsExempt(t *testing.T) {
	// A prefixed vendor extension between yang-version and namespace must
	// not itself count as an out-of-order body statement, nor advance the
	// section high-water mark past header.
	in := `
module base {
  yang-version "1.1";
  ex:vendor-flag "on";
  namespace "urn:mod";
  prefix "base";
}
`
	m, err := ParseModule(in, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Diagnostics) != 0 {
		t.Fatalf("got %d diagnostics, want 0: %v", len(m.Diagnostics), m.Diagnostics)
	}
}
