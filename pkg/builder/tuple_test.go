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

package builder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/yangbuilder/pkg/ast"
)

func TestFromTuple(t *testing.T) {
	b := New(nil)
	err := b.FromTuple(Tuple{"container", "error", []Tuple{
		{Keyword: "leaf", Argument: "code", Children: []Tuple{{Keyword: "type", Argument: "int32"}}},
		{Keyword: "leaf", Argument: "message", Children: []Tuple{{Keyword: "type", Argument: "string"}}},
	}})
	if err != nil {
		t.Fatal(err)
	}

	root, err := b.Root()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"container error",
		"leaf code",
		"type int32",
		"leaf message",
		"type string",
	}
	if diff := cmp.Diff(dfs(root), want); diff != "" {
		t.Errorf("depth-first sequence (-got, +want):\n%s", diff)
	}

	// The subtree's scopes are closed again.
	if got := len(root.Find("leaf", "")); got != 2 {
		t.Fatalf("got %d leaves, want 2", got)
	}
	if !root.Find("leaf", "code")[0].Sealed() {
		t.Error("tuple subtree left open")
	}
}

func TestFromTupleWithoutArgument(t *testing.T) {
	b := New(nil)
	err := b.FromTuple(Tuple{"rpc", "activate", []Tuple{
		{Keyword: "input", Children: []Tuple{
			{Keyword: "leaf", Argument: "slot", Children: []Tuple{{Keyword: "type", Argument: "string"}}},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	root, _ := b.Root()
	in := root.Find("input", "")
	if len(in) != 1 {
		t.Fatalf("got %d input statements, want 1", len(in))
	}
	if _, has := in[0].Arg(); has {
		t.Error("input statement has an argument")
	}
}

func TestFromTupleIllegal(t *testing.T) {
	b := New(nil)
	err := b.FromTuple(Tuple{"leaf", "x", []Tuple{
		{Keyword: "container", Argument: "c"},
	}})
	var ne *ast.NestingError
	if !errors.As(err, &ne) {
		t.Fatalf("got error %v, want *NestingError", err)
	}
}

func TestFromTupleUnderCursor(t *testing.T) {
	b := New(nil)
	if err := b.Begin("module", "m"); err != nil {
		t.Fatal(err)
	}
	cursor := b.Current()
	if err := b.FromTuple(Tuple{Keyword: "leaf", Argument: "x",
		Children: []Tuple{{Keyword: "type", Argument: "string"}}}); err != nil {
		t.Fatal(err)
	}
	if b.Current() != cursor {
		t.Error("cursor moved by FromTuple")
	}
	root, _ := b.Root()
	if got := countNodes(root); got != 3 {
		t.Errorf("got %d nodes, want 3", got)
	}
}
