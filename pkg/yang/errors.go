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
)

// ErrUnterminatedBlockComment is returned (alongside the best-effort output)
// when a block comment is still open at end of input.  It is a warning, not
// a fatal parse error: the reference behavior recovers cleanly.
var ErrUnterminatedBlockComment = errors.New("yang: unterminated block comment at EOF")

// ErrKind classifies the errors produced across the front end, matching the
// taxonomy callers use to decide whether a failure is fatal.
type ErrKind int

const (
	// LexicalError is the kind for malformed escapes and unterminated
	// strings.  The lexer itself reports those as plain "file:line:col:
	// message" text in the error returned by Parse, not as *Error values.
	LexicalError ErrKind = iota
	// InvalidIdentifier is returned by checked identifier construction.
	InvalidIdentifier
	// InvalidDate is returned when a (year, month, day) triple is not a
	// real calendar date.
	InvalidDate
	// InvalidArgument is returned when an argument fails its typed parser.
	InvalidArgument
	// UnexpectedStatement is returned when a keyword has no matching
	// alternative in a typed body.
	UnexpectedStatement
	// DuplicateStatement is a non-fatal diagnostic surfaced by Validate.
	DuplicateStatement
	// UnresolvedReference is the kind for a use with no matching definition
	// in scope.  Resolve returns no errors: it leaves such a use's Sequence
	// nil and produces no UnresolvedReference value.
	UnresolvedReference
)

func (k ErrKind) String() string {
	switch k {
	case LexicalError:
		return "LexicalError"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case InvalidDate:
		return "InvalidDate"
	case InvalidArgument:
		return "InvalidArgument"
	case UnexpectedStatement:
		return "UnexpectedStatement"
	case DuplicateStatement:
		return "DuplicateStatement"
	case UnresolvedReference:
		return "UnresolvedReference"
	}
	return "UnknownError"
}

// Error is a structured error carrying the taxonomy kind and, where known,
// the source location of the failure.
type Error struct {
	Kind    ErrKind
	File    string
	Line    int
	Col     int
	Message string
}

func (e *Error) Error() string {
	if e.File == "" && e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Col, e.Kind, e.Message)
}

// newError builds an *Error, defaulting the source location from s when s is
// non-nil.
func newError(kind ErrKind, s *Statement, format string, v ...interface{}) *Error {
	e := &Error{Kind: kind, Message: fmt.Sprintf(format, v...)}
	if s != nil {
		e.File, e.Line, e.Col = s.file, s.line, s.col
	}
	return e
}
