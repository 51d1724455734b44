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

// Package builder assembles YANG statement trees incrementally.  A
// Builder is a cursor-based session: Begin creates a statement, attaches
// it under the cursor and descends into it; End ascends back to the
// parent, closing the scope just left.  Every attachment is checked
// against the grammar at the moment it happens, so structural mistakes
// surface at the offending call rather than at the end.
//
//	b := builder.New(schema.For(schema.YANG1))
//	b.Begin("module", "test")
//	b.Begin("namespace", "urn:yang:test")
//	b.End()
//	b.Begin("prefix", "test")
//	b.End()
//	root, err := b.Root()
//
// A Builder is stateful and must not be shared between goroutines or
// used to assemble more than one tree at a time.  Finished trees are
// immutable once every scope is closed and may be shared freely.
package builder

import (
	"errors"
	"strings"

	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/schema"
)

// Cursor misuse errors.
var (
	// ErrNoOpenScope is returned by End when the cursor is already at
	// the root and has no parent to ascend to, and by Argument,
	// Comment and Blankline before the first Begin.
	ErrNoOpenScope = errors.New("no open scope")
	// ErrEmptyTree is returned by Root before the first Begin.
	ErrEmptyTree = errors.New("empty tree")
)

// A Builder assembles one statement tree under the rules of an oracle.
type Builder struct {
	oracle schema.Oracle

	root *ast.Statement
	// stack holds the open scopes, outermost first.  The cursor is the
	// final element.
	stack []*ast.Statement
}

// New returns a Builder that checks statements against o.  A nil o
// selects the YANG 1 grammar.
func New(o schema.Oracle) *Builder {
	if o == nil {
		o = schema.For(schema.YANG1)
	}
	return &Builder{oracle: o}
}

// Oracle returns the oracle the builder checks against.
func (b *Builder) Oracle() schema.Oracle { return b.oracle }

// Begin creates a statement with the given keyword and optional
// argument, appends it under the cursor (or establishes it as the tree
// root if nothing has been built yet) and moves the cursor to it.  On
// error the tree is unchanged and the cursor does not move.
func (b *Builder) Begin(keyword string, arg ...string) error {
	s, err := ast.New(b.oracle, keyword, arg...)
	if err != nil {
		return err
	}
	if cur := b.Current(); cur != nil {
		if err := cur.Append(b.oracle, s); err != nil {
			return err
		}
	} else {
		b.root = s
	}
	b.stack = append(b.stack, s)
	return nil
}

// End closes the current scope and moves the cursor to its parent.  The
// closed statement accepts no further children.  End fails with
// ErrNoOpenScope when the cursor is at the root, and the cursor does
// not move.
func (b *Builder) End() error {
	if len(b.stack) <= 1 {
		return ErrNoOpenScope
	}
	cur := b.stack[len(b.stack)-1]
	cur.Seal()
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Argument sets or overwrites the argument of the statement at the
// cursor, subject to the grammar's argument checks.
func (b *Builder) Argument(value string) error {
	cur := b.Current()
	if cur == nil {
		return ErrNoOpenScope
	}
	return cur.SetArg(b.oracle, value)
}

// Root returns the top-level statement, or ErrEmptyTree if nothing has
// been built.
func (b *Builder) Root() (*ast.Statement, error) {
	if b.root == nil {
		return nil, ErrEmptyTree
	}
	return b.root, nil
}

// Current returns the statement at the cursor, or nil before the first
// Begin.
func (b *Builder) Current() *ast.Statement {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// Depth returns the number of open scopes.
func (b *Builder) Depth() int { return len(b.stack) }

// Comment appends a comment under the cursor without moving it.  A
// single line becomes a "// ..." comment, multiple lines a block
// comment.
func (b *Builder) Comment(text string) error {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 1 {
		return b.appendComment("// " + lines[0])
	}
	for i, line := range lines {
		lines[i] = " * " + line
	}
	return b.appendComment("/*\n" + strings.Join(lines, "\n") + "\n */")
}

// Blankline appends an empty line under the cursor without moving it.
func (b *Builder) Blankline() error {
	return b.appendComment("")
}

func (b *Builder) appendComment(text string) error {
	cur := b.Current()
	if cur == nil {
		return ErrNoOpenScope
	}
	s, err := ast.New(b.oracle, schema.CommentKeyword, text)
	if err != nil {
		return err
	}
	return cur.Append(b.oracle, s)
}
