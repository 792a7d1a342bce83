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

// NodeKind classifies a ResolvedNode as a definition or a use of either a
// typedef or a grouping.
type NodeKind int

const (
	TypeDefinition NodeKind = iota
	GroupingDefinition
	TypeUse
	GroupingUse
)

func (k NodeKind) String() string {
	switch k {
	case TypeDefinition:
		return "TypeDefinition"
	case GroupingDefinition:
		return "GroupingDefinition"
	case TypeUse:
		return "TypeUse"
	case GroupingUse:
		return "GroupingUse"
	}
	return "UnknownNodeKind"
}

func (k NodeKind) isDefinition() bool { return k == TypeDefinition || k == GroupingDefinition }

// ResolvedNode is one entry produced by CollectDefinitions: the definition
// or use of a typedef or grouping, tagged with its path from the module
// root.  Sequence is always set on a definition; on a use it starts nil and
// is filled in by Resolve once the nearest enclosing definition is found.
type ResolvedNode struct {
	Path     []string
	Kind     NodeKind
	Name     string
	Sequence *int

	// scope is the path a definition was declared under, i.e. Path minus
	// the definition's own trailing name segment. It is what makes a
	// definition "lexically enclosing" a use: the use's path must start
	// with scope, not with the definition's full Path (which includes a
	// segment, the definition's own name, that only the definition's own
	// body is nested under).
	scope []string
	stmt  *Statement
}

// Statement returns the source statement this entry was produced from.
func (n *ResolvedNode) Statement() *Statement { return n.stmt }

// CollectDefinitions walks m's statement tree in depth-first source order
// and produces a TypeDefinition, GroupingDefinition, TypeUse, or GroupingUse
// entry for every typedef, grouping, type, and uses statement for which
// predicate returns true.  predicate is consulted for every statement in
// the tree, not just the four kinds above: a statement it rejects is never
// itself emitted, but the statement's children are still visited under the
// unchanged path, so a caller may cheaply skip uninteresting subtrees (e.g.
// description) without disturbing the path the resolver builds for
// everything else.  A nil predicate emits every candidate.
func CollectDefinitions(m *Module, predicate func(*Statement) bool) []*ResolvedNode {
	if predicate == nil {
		predicate = func(*Statement) bool { return true }
	}
	c := &collector{seq: map[string]int{}, predicate: predicate}
	for _, ss := range m.Source.SubStatements() {
		c.walk(ss, nil)
	}
	return c.out
}

type collector struct {
	seq       map[string]int
	predicate func(*Statement) bool
	out       []*ResolvedNode
}

// appendPath returns a fresh slice with seg appended to path, never aliasing
// path's backing array (callers push distinct children from the same
// parent path concurrently in recursion, via separate stack frames).
func appendPath(path []string, seg string) []string {
	np := make([]string, len(path)+1)
	copy(np, path)
	np[len(path)] = seg
	return np
}

func (c *collector) walk(s *Statement, path []string) {
	emit := c.predicate(s)

	switch s.Keyword {
	case "typedef":
		name := s.Argument
		c.seq[name]++
		seq := c.seq[name]
		np := appendPath(path, name)
		if emit {
			c.out = append(c.out, &ResolvedNode{Path: np, Kind: TypeDefinition, Name: name, Sequence: &seq, scope: path, stmt: s})
		}
		for _, ss := range s.statements {
			c.walk(ss, np)
		}
		return

	case "grouping":
		name := s.Argument
		key := "grouping:" + name
		c.seq[key]++
		seq := c.seq[key]
		np := appendPath(path, name)
		if emit {
			c.out = append(c.out, &ResolvedNode{Path: np, Kind: GroupingDefinition, Name: name, Sequence: &seq, scope: path, stmt: s})
		}
		for _, ss := range s.statements {
			c.walk(ss, np)
		}
		return

	case "type":
		if emit {
			c.out = append(c.out, &ResolvedNode{Path: path, Kind: TypeUse, Name: s.Argument, stmt: s})
		}
		for _, ss := range s.statements {
			c.walk(ss, path)
		}
		return

	case "uses":
		if emit {
			c.out = append(c.out, &ResolvedNode{Path: path, Kind: GroupingUse, Name: s.Argument, stmt: s})
		}
		for _, ss := range s.statements {
			c.walk(ss, path)
		}
		return

	case "augment", "deviation":
		// Per the label-less-statement decision (see DESIGN.md): the
		// argument of augment/deviation is itself a schema node path, so
		// it contributes one path segment per path component instead of
		// a single label.
		np := path
		for _, seg := range pathArgumentSegments(s.Argument) {
			np = appendPath(np, seg)
		}
		for _, ss := range s.statements {
			c.walk(ss, np)
		}
		return

	default:
		np := path
		if s.HasArgument {
			np = appendPath(path, s.Argument)
		}
		for _, ss := range s.statements {
			c.walk(ss, np)
		}
	}
}

// pathArgumentSegments splits a schema node identifier path argument (as
// used by augment and deviation) into its non-empty identifier segments,
// discarding "." and ".." components. Each segment retains any module
// prefix it carries ("if:interfaces"), matching how a plain label push
// keeps a statement's raw argument text.
func pathArgumentSegments(arg string) []string {
	var segs []string
	for _, p := range strings.Split(arg, "/") {
		if p == "" || p == "." || p == ".." {
			continue
		}
		segs = append(segs, p)
	}
	return segs
}

// Resolve fills in the Sequence of every TypeUse and GroupingUse in nodes
// whose Sequence is nil, matching it to the sequence of the nearest
// lexically enclosing definition of the same name and kind (the
// definition whose declaring scope, its Path without its own name, is the
// longest prefix of the use's Path; ties go to the highest sequence). Uses with
// no matching definition in scope are left with a nil Sequence; they are
// not an error, per spec: unresolved references are a non-fatal condition.
// Resolve mutates and returns nodes.
func Resolve(nodes []*ResolvedNode) []*ResolvedNode {
	defsByName := map[string][]*ResolvedNode{}
	for _, n := range nodes {
		if n.Kind.isDefinition() {
			defsByName[n.Name] = append(defsByName[n.Name], n)
		}
	}

	for _, n := range nodes {
		if n.Sequence != nil {
			continue
		}
		wantKind := TypeDefinition
		if n.Kind == GroupingUse {
			wantKind = GroupingDefinition
		} else if n.Kind != TypeUse {
			continue
		}
		if best := nearestEnclosing(defsByName[n.Name], wantKind, n.Path); best != nil {
			seq := *best.Sequence
			n.Sequence = &seq
		}
	}
	return nodes
}

// nearestEnclosing returns the candidate of kind wantKind whose declaring
// scope is the longest prefix of path (the use's path); ties are broken by
// the largest sequence number, i.e. the most recently declared definition
// at that scope.
func nearestEnclosing(candidates []*ResolvedNode, wantKind NodeKind, path []string) *ResolvedNode {
	var best *ResolvedNode
	bestLen := -1
	for _, d := range candidates {
		if d.Kind != wantKind || !isPathPrefix(d.scope, path) {
			continue
		}
		switch {
		case len(d.scope) > bestLen:
			best, bestLen = d, len(d.scope)
		case len(d.scope) == bestLen && best != nil && *d.Sequence > *best.Sequence:
			best = d
		}
	}
	return best
}

// isPathPrefix reports whether prefix is a prefix of (or equal to) path.
func isPathPrefix(prefix, path []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, p := range prefix {
		if path[i] != p {
			return false
		}
	}
	return true
}
