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

// Package yang parses the YANG data modeling language (RFC 7950) as a
// front end: it turns source text into a typed abstract syntax tree and
// stops there, leaving schema-tree construction (type restriction
// satisfiability, augment/deviate application, cross-module import
// resolution) to a caller that wants it.
//
// A generic yang statement takes one of the forms:
//
//	keyword [argument] ;
//	keyword [argument] { [statement [...]] }
//
// At the lowest level, Parse and ParseStatement return a generic tree of
// *Statement values.  They make no attempt to determine the validity of the
// source beyond generic lexical and grammatical syntax errors.
//
// ParseModule builds on top of that: it strips comments, parses the text,
// and walks the result into the typed AST defined in this package (Module,
// Container, Leaf, and so on, all implementing the Node interface), while
// checking the header/linkage/meta/revision section ordering described in
// RFC 7950 %7.1.
//
// Keywords this package does not recognize are not a parse error: if they
// carry a "prefix:name" form they are kept as Unknown nodes, nested exactly
// as found in the source, so that vendor extensions round-trip through the
// tree even though their own grammar is opaque to this package.
package yang
