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
	"testing"
)

func TestStripComments(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		out  string
		err  error
	}{
		{line: line(), in: "foo bar;", out: "foo bar;"},
		{
			line: line(),
			in:   "foo // a trailing comment\nbar;",
			out:  "foo \nbar;",
		},
		{
			line: line(),
			in:   "foo /* a block comment */ bar;",
			out:  "foo  bar;",
		},
		{
			line: line(),
			in:   "foo /* multi\nline\ncomment */ bar;",
			out:  "foo  bar;",
		},
		{
			line: line(),
			in:   `foo "// not a comment" bar;`,
			out:  `foo "// not a comment" bar;`,
		},
		{
			line: line(),
			in:   `foo '/* not a comment */' bar;`,
			out:  `foo '/* not a comment */' bar;`,
		},
		{
			line: line(),
			in:   `foo "a \" quote // still a string" bar;`,
			out:  `foo "a \" quote // still a string" bar;`,
		},
		{
			line: line(),
			in:   "foo /* unterminated",
			out:  "foo ",
			err:  ErrUnterminatedBlockComment,
		},
	} {
		got, err := StripComments(tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%d: got error %v, want %v", tt.line, err, tt.err)
			}
		} else if err != nil {
			t.Errorf("%d: unexpected error: %v", tt.line, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%d: got %q, want %q", tt.line, got, tt.out)
		}
	}
}

func TestStripCommentsEmptyInput(t *testing.T) {
	if _, err := StripComments(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got error %v, want %v", err, ErrEmptyInput)
	}
}
