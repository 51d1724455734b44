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

// Package schema answers grammar questions about YANG statements: which
// keywords may nest under which parents, with what cardinality, and what
// argument each keyword takes.  The rules are kept in read-only tables,
// one per YANG language version, built once at init time and never
// mutated afterwards.
package schema

import (
	"fmt"
	"strings"
)

// A Cardinality is the permitted number of occurrences of a child keyword
// under a particular parent keyword.  Max < 0 means unbounded.
type Cardinality struct {
	Min, Max int
}

// Common cardinalities used throughout the grammar tables.
var (
	One        = Cardinality{1, 1}  // exactly one
	OptOne     = Cardinality{0, 1}  // zero or one
	Any        = Cardinality{0, -1} // zero or more
	AtLeastOne = Cardinality{1, -1} // one or more
)

// Unbounded reports whether c has no upper limit.
func (c Cardinality) Unbounded() bool { return c.Max < 0 }

func (c Cardinality) String() string {
	if c.Unbounded() {
		return fmt.Sprintf("%d..n", c.Min)
	}
	return fmt.Sprintf("%d..%d", c.Min, c.Max)
}

// An ArgKind describes whether a keyword takes an argument.
type ArgKind int

const (
	// ArgNone means the keyword must not have an argument (input, output).
	ArgNone ArgKind = iota
	// ArgRequired means the keyword must have an argument.
	ArgRequired
	// ArgOptional means the argument may be omitted.  Only registered
	// extensions use this; every builtin keyword either requires or
	// forbids its argument.
	ArgOptional
)

// An ArgDescriptor describes the argument of a keyword: whether one is
// taken, the format it must conform to, and how it is rendered in YIN
// (the XML form of YANG), where an argument appears either as an XML
// attribute or as a child element.
type ArgDescriptor struct {
	Kind       ArgKind
	Format     ArgFormat
	YinName    string
	YinElement bool
}

// An Oracle answers the two questions the builder and validator ask of a
// grammar: what may nest under a keyword, and what argument a keyword
// takes.  *Grammar is the standard implementation; tests substitute
// their own.
type Oracle interface {
	// ChildRules returns the map of child keyword to cardinality for
	// the given parent keyword.  A nil map means the keyword is not
	// known to take substatements (unknown keywords included).  The
	// returned map must be treated as read-only.
	ChildRules(parent string) map[string]Cardinality

	// ArgumentRule returns the argument descriptor for keyword.  The
	// second return is false if the keyword is unknown.
	ArgumentRule(keyword string) (ArgDescriptor, bool)

	// SectionOrder returns ordering metadata for the given parent, or
	// nil if the grammar imposes no statement ordering there.  Keywords
	// map to a section index; statements must appear in non-decreasing
	// section order.  Keywords absent from the map belong to the final
	// (body) section.
	SectionOrder(parent string) map[string]int
}

// CommentKeyword is the pseudo-keyword used for comments and blank lines
// inserted into a tree.  It is always legal, takes a free-form argument,
// and is invisible to validation.
const CommentKeyword = "_comment"

// A Version selects a YANG language version, which determines the
// grammar rules in effect.
type Version int

const (
	// YANG1 is YANG version 1 as defined by RFC 6020.
	YANG1 Version = iota
	// YANG1_1 is YANG version 1.1 as defined by RFC 7950.
	YANG1_1
)

func (v Version) String() string {
	if v == YANG1_1 {
		return "1.1"
	}
	return "1"
}

// An Extension registers a vendor extension keyword (in prefix:name form)
// with the grammar so that its argument can be checked and its presence
// counted during validation.  Unregistered prefixed keywords are accepted
// anywhere and never checked.
type Extension struct {
	// Keyword is the prefixed keyword, e.g. "oc-ext:openconfig-version".
	Keyword string
	// Arg describes the extension's argument.
	Arg ArgDescriptor
}

// A Grammar is an immutable rule table for one YANG version, optionally
// augmented with registered extensions.  Grammars are safe for
// concurrent use.
type Grammar struct {
	version    Version
	children   map[string]map[string]Cardinality
	args       map[string]ArgDescriptor
	sections   map[string]map[string]int
	extensions map[string]ArgDescriptor
}

var (
	yang1  = build(YANG1)
	yang11 = build(YANG1_1)
)

// For returns the process-wide grammar for the given YANG version.
func For(v Version) *Grammar {
	if v == YANG1_1 {
		return yang11
	}
	return yang1
}

// ForName returns the grammar whose version is named by s ("1" or "1.1").
func ForName(s string) (*Grammar, error) {
	switch s {
	case "1":
		return yang1, nil
	case "1.1":
		return yang11, nil
	}
	return nil, fmt.Errorf("unknown yang version %q", s)
}

// New returns a grammar for version v with the provided extensions
// registered.  The returned grammar shares the builtin rule tables,
// which are never mutated.
func New(v Version, exts ...Extension) *Grammar {
	base := For(v)
	if len(exts) == 0 {
		return base
	}
	g := &Grammar{
		version:    base.version,
		children:   base.children,
		args:       base.args,
		sections:   base.sections,
		extensions: make(map[string]ArgDescriptor, len(exts)),
	}
	for _, e := range exts {
		g.extensions[e.Keyword] = e.Arg
	}
	return g
}

// Version returns the YANG version g implements.
func (g *Grammar) Version() Version { return g.version }

// IsExtension reports whether keyword is a prefixed (vendor extension)
// keyword.
func IsExtension(keyword string) bool {
	return strings.Index(keyword, ":") > 0
}

// Known reports whether g has rules for keyword, either as a builtin
// or as a registered extension.
func (g *Grammar) Known(keyword string) bool {
	if _, ok := g.args[keyword]; ok {
		return true
	}
	_, ok := g.extensions[keyword]
	return ok
}

// ChildRules implements Oracle.  Extension keywords have no child rules;
// anything may nest beneath them.
func (g *Grammar) ChildRules(parent string) map[string]Cardinality {
	return g.children[parent]
}

// ArgumentRule implements Oracle.
func (g *Grammar) ArgumentRule(keyword string) (ArgDescriptor, bool) {
	if d, ok := g.args[keyword]; ok {
		return d, true
	}
	d, ok := g.extensions[keyword]
	return d, ok
}

// SectionOrder implements Oracle.  Only module and submodule carry
// ordering rules (header, linkage, meta, revision, body sections per
// RFC 6020 section 7.1).
func (g *Grammar) SectionOrder(parent string) map[string]int {
	return g.sections[parent]
}

// CheckArgument checks the argument of keyword against o's rules.
// present distinguishes an absent argument from an empty one.  A nil
// error is returned for unknown keywords: the builder accepts them
// (extensions) and the validator reports them.
func CheckArgument(o Oracle, keyword, arg string, present bool) error {
	if keyword == CommentKeyword {
		return nil
	}
	d, ok := o.ArgumentRule(keyword)
	if !ok {
		return nil
	}
	switch d.Kind {
	case ArgNone:
		if present {
			return fmt.Errorf("%s takes no argument", keyword)
		}
		return nil
	case ArgRequired:
		if !present {
			return fmt.Errorf("%s requires an argument", keyword)
		}
	case ArgOptional:
		if !present {
			return nil
		}
	}
	if err := d.Format.Check(arg); err != nil {
		return fmt.Errorf("%s: %v", keyword, err)
	}
	return nil
}
