// Copyright 2021 Google Inc.
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

// Package ast defines the statement tree that programmatically built
// YANG models are assembled from.  A generic YANG statement takes one
// of the forms:
//
//	keyword [argument] ;
//	keyword [argument] { [statement [...]] }
//
// A Statement holds one such statement: its keyword, optional argument,
// and ordered substatements.  Statements are created and attached under
// the rules of a schema.Oracle, so a tree is structurally legal at
// every point during its construction.  Cardinality rules that can only
// be judged on a finished tree (a required child added later, for
// example) are left to the validator package.
package ast

import (
	"fmt"
	"strings"

	"github.com/openconfig/yangbuilder/pkg/schema"
)

// A Statement is one node of a YANG statement tree.  The keyword is
// fixed at creation.  Children are appended in order and never
// reordered; statement order is semantically meaningful in YANG.  A
// parent exclusively owns its children.
type Statement struct {
	keyword  string
	argument string
	hasArg   bool

	parent   *Statement
	children []*Statement

	// sealed is set once the statement's scope has been closed by the
	// builder.  A sealed statement accepts no further children.
	sealed bool
}

// New creates a detached statement with the given keyword and optional
// argument, checking the argument against o's rules.  Unknown prefixed
// keywords (vendor extensions) are accepted with any argument.
func New(o schema.Oracle, keyword string, arg ...string) (*Statement, error) {
	if len(arg) > 1 {
		return nil, &ArgumentError{
			Keyword: keyword,
			Reason:  fmt.Errorf("at most one argument permitted, got %d", len(arg)),
		}
	}
	s := &Statement{keyword: keyword}
	if len(arg) > 0 {
		s.argument = arg[0]
		s.hasArg = true
	}
	if err := schema.CheckArgument(o, keyword, s.argument, s.hasArg); err != nil {
		return nil, &ArgumentError{Keyword: keyword, Argument: s.argument, Reason: err}
	}
	return s, nil
}

// Keyword returns the statement's keyword.
func (s *Statement) Keyword() string { return s.keyword }

// Arg returns the statement's argument.  It returns false if the
// statement has no argument.
func (s *Statement) Arg() (string, bool) { return s.argument, s.hasArg }

// Argument returns the statement's argument, or "" if it has none.
func (s *Statement) Argument() string { return s.argument }

// Parent returns the statement's parent, or nil at the root.
func (s *Statement) Parent() *Statement { return s.parent }

// Children returns the statement's substatements in the order they were
// appended.  The returned slice must be treated as read-only.
func (s *Statement) Children() Statements { return s.children }

// Sealed reports whether the statement's scope has been closed.
func (s *Statement) Sealed() bool { return s.sealed }

// Root returns the outermost statement of the tree containing s.
func (s *Statement) Root() *Statement {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// IsComment reports whether s is a comment or blank-line pseudo
// statement.
func (s *Statement) IsComment() bool { return s.keyword == schema.CommentKeyword }

// SetArg sets or overwrites the statement's argument after checking it
// against o's rules.  A sealed statement rejects the change with
// ErrSealed.  The statement is unchanged on error.
func (s *Statement) SetArg(o schema.Oracle, arg string) error {
	if s.sealed {
		return ErrSealed
	}
	if err := schema.CheckArgument(o, s.keyword, arg, true); err != nil {
		return &ArgumentError{Keyword: s.keyword, Argument: arg, Reason: err}
	}
	s.argument = arg
	s.hasArg = true
	return nil
}

// Append attaches child as the last substatement of s, first checking
// that o permits child's keyword under s.  Cardinality is enforced
// eagerly only where the permitted maximum is 1; larger limits are the
// validator's concern.  Neither statement is modified on error.
func (s *Statement) Append(o schema.Oracle, child *Statement) error {
	if s.sealed {
		return ErrSealed
	}
	if child.parent != nil {
		return ErrHasParent
	}
	if err := s.checkChild(o, child.keyword); err != nil {
		return err
	}
	child.parent = s
	s.children = append(s.children, child)
	return nil
}

func (s *Statement) checkChild(o schema.Oracle, keyword string) error {
	// Comments may appear anywhere; anything may appear under an
	// extension keyword.
	if keyword == schema.CommentKeyword || schema.IsExtension(s.keyword) {
		return nil
	}
	rules := o.ChildRules(s.keyword)
	c, ok := rules[keyword]
	if !ok {
		// Extension keywords are permitted under any parent unless
		// the oracle says otherwise.
		if schema.IsExtension(keyword) {
			return nil
		}
		return &NestingError{Parent: s.keyword, Child: keyword}
	}
	if c.Unbounded() {
		return nil
	}
	n := 0
	for _, cs := range s.children {
		if cs.keyword == keyword {
			n++
		}
	}
	if n >= c.Max {
		return &CardinalityError{Parent: s.keyword, Child: keyword, Max: c.Max}
	}
	return nil
}

// Seal marks the statement's construction complete.  A sealed statement
// rejects further Append and SetArg calls.
func (s *Statement) Seal() { s.sealed = true }

// Path returns the statement's location in its tree as a sequence of
// keyword(argument) steps from the root, e.g.
// "/module(test)/container(c)/leaf(x)".
func (s *Statement) Path() string {
	var steps []string
	for n := s; n != nil; n = n.parent {
		step := n.keyword
		if n.hasArg {
			step += "(" + n.argument + ")"
		}
		steps = append(steps, step)
	}
	var b strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(steps[i])
	}
	return b.String()
}
