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

package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/yangbuilder/pkg/schema"
)

var g1 = schema.For(schema.YANG1)

// mustNew builds a detached statement or fails the test.
func mustNew(t *testing.T, keyword string, arg ...string) *Statement {
	t.Helper()
	s, err := New(g1, keyword, arg...)
	if err != nil {
		t.Fatalf("New(%s): %v", keyword, err)
	}
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		desc    string
		keyword string
		arg     []string
		wantErr bool
	}{{
		desc:    "leaf with name",
		keyword: "leaf",
		arg:     []string{"mtu"},
	}, {
		desc:    "leaf without required argument",
		keyword: "leaf",
		wantErr: true,
	}, {
		desc:    "input with unexpected argument",
		keyword: "input",
		arg:     []string{"x"},
		wantErr: true,
	}, {
		desc:    "input without argument",
		keyword: "input",
	}, {
		desc:    "malformed identifier",
		keyword: "container",
		arg:     []string{"not valid"},
		wantErr: true,
	}, {
		desc:    "extension keyword with free argument",
		keyword: "ext:c-define",
		arg:     []string{"INTERFACES"},
	}, {
		desc:    "more than one argument",
		keyword: "leaf",
		arg:     []string{"a", "b"},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			s, err := New(g1, tt.keyword, tt.arg...)
			if tt.wantErr {
				var ae *ArgumentError
				if !errors.As(err, &ae) {
					t.Fatalf("got error %v, want *ArgumentError", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Keyword() != tt.keyword {
				t.Errorf("got keyword %q, want %q", s.Keyword(), tt.keyword)
			}
			arg, has := s.Arg()
			if has != (len(tt.arg) > 0) {
				t.Fatalf("has argument = %v, want %v", has, len(tt.arg) > 0)
			}
			if has && arg != tt.arg[0] {
				t.Errorf("got argument %q, want %q", arg, tt.arg[0])
			}
		})
	}
}

func TestAppend(t *testing.T) {
	t.Run("legal nesting", func(t *testing.T) {
		leaf := mustNew(t, "leaf", "mtu")
		typ := mustNew(t, "type", "uint16")
		if err := leaf.Append(g1, typ); err != nil {
			t.Fatal(err)
		}
		if typ.Parent() != leaf {
			t.Error("child's parent not set")
		}
		if got := len(leaf.Children()); got != 1 {
			t.Errorf("got %d children, want 1", got)
		}
	})

	t.Run("illegal nesting", func(t *testing.T) {
		leaf := mustNew(t, "leaf", "mtu")
		con := mustNew(t, "container", "c")
		err := leaf.Append(g1, con)
		var ne *NestingError
		if !errors.As(err, &ne) {
			t.Fatalf("got error %v, want *NestingError", err)
		}
		if ne.Parent != "leaf" || ne.Child != "container" {
			t.Errorf("got %+v, want parent leaf, child container", ne)
		}
		if len(leaf.Children()) != 0 {
			t.Error("tree modified by failed append")
		}
		if con.Parent() != nil {
			t.Error("child's parent set by failed append")
		}
	})

	t.Run("eager singleton cardinality", func(t *testing.T) {
		leaf := mustNew(t, "leaf", "mtu")
		if err := leaf.Append(g1, mustNew(t, "type", "uint16")); err != nil {
			t.Fatal(err)
		}
		err := leaf.Append(g1, mustNew(t, "type", "uint32"))
		var ce *CardinalityError
		if !errors.As(err, &ce) {
			t.Fatalf("got error %v, want *CardinalityError", err)
		}
		if ce.Max != 1 {
			t.Errorf("got max %d, want 1", ce.Max)
		}
		if got := len(leaf.Children()); got != 1 {
			t.Errorf("got %d children after failed append, want 1", got)
		}
	})

	t.Run("unbounded not checked eagerly", func(t *testing.T) {
		con := mustNew(t, "container", "c")
		for _, name := range []string{"a", "b", "c"} {
			if err := con.Append(g1, mustNew(t, "leaf", name)); err != nil {
				t.Fatal(err)
			}
		}
	})

	t.Run("sealed statement", func(t *testing.T) {
		con := mustNew(t, "container", "c")
		con.Seal()
		if err := con.Append(g1, mustNew(t, "leaf", "x")); !errors.Is(err, ErrSealed) {
			t.Errorf("got error %v, want ErrSealed", err)
		}
	})

	t.Run("reparenting", func(t *testing.T) {
		a := mustNew(t, "container", "a")
		b := mustNew(t, "container", "b")
		leaf := mustNew(t, "leaf", "x")
		if err := a.Append(g1, leaf); err != nil {
			t.Fatal(err)
		}
		if err := b.Append(g1, leaf); !errors.Is(err, ErrHasParent) {
			t.Errorf("got error %v, want ErrHasParent", err)
		}
	})

	t.Run("comment anywhere", func(t *testing.T) {
		leaf := mustNew(t, "leaf", "mtu")
		c, err := New(g1, schema.CommentKeyword, "// a comment")
		if err != nil {
			t.Fatal(err)
		}
		if err := leaf.Append(g1, c); err != nil {
			t.Errorf("comment rejected: %v", err)
		}
	})

	t.Run("extension child anywhere", func(t *testing.T) {
		leaf := mustNew(t, "leaf", "mtu")
		if err := leaf.Append(g1, mustNew(t, "ext:c-define", "X")); err != nil {
			t.Errorf("extension child rejected: %v", err)
		}
	})

	t.Run("anything under extension", func(t *testing.T) {
		ext := mustNew(t, "ext:c-define", "X")
		if err := ext.Append(g1, mustNew(t, "if-feature", "local-storage")); err != nil {
			t.Errorf("child under extension rejected: %v", err)
		}
	})
}

func TestSetArg(t *testing.T) {
	leaf := mustNew(t, "leaf", "old")
	if err := leaf.SetArg(g1, "not valid"); err == nil {
		t.Error("malformed argument accepted")
	}
	if got := leaf.Argument(); got != "old" {
		t.Errorf("argument changed by failed SetArg: %q", got)
	}
	if err := leaf.SetArg(g1, "new"); err != nil {
		t.Fatal(err)
	}
	if got := leaf.Argument(); got != "new" {
		t.Errorf("got argument %q, want %q", got, "new")
	}

	// A sealed statement is frozen, argument included.
	leaf.Seal()
	if err := leaf.SetArg(g1, "later"); !errors.Is(err, ErrSealed) {
		t.Errorf("got error %v, want ErrSealed", err)
	}
	if got := leaf.Argument(); got != "new" {
		t.Errorf("argument changed on sealed statement: %q", got)
	}
}

func TestPath(t *testing.T) {
	mod := mustNew(t, "module", "test")
	con := mustNew(t, "container", "c")
	leaf := mustNew(t, "leaf", "x")
	input := mustNew(t, "input")
	if err := mod.Append(g1, con); err != nil {
		t.Fatal(err)
	}
	if err := con.Append(g1, leaf); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in   *Statement
		want string
	}{
		{mod, "/module(test)"},
		{con, "/module(test)/container(c)"},
		{leaf, "/module(test)/container(c)/leaf(x)"},
		{input, "/input"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.in.Path(), tt.want); diff != "" {
			t.Errorf("Path (-got, +want):\n%s", diff)
		}
	}

	if leaf.Root() != mod {
		t.Error("Root did not return the tree root")
	}
}
