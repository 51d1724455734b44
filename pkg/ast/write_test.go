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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/yangbuilder/pkg/schema"
)

// buildTree assembles a statement from (keyword, argument, children)
// triples without grammar enforcement shortcuts: every edge still goes
// through Append.
type triple struct {
	keyword, arg string
	children     []triple
}

func buildTriple(t *testing.T, tr triple) *Statement {
	t.Helper()
	var s *Statement
	if tr.arg == "" && (tr.keyword == "input" || tr.keyword == "output") {
		s = mustNew(t, tr.keyword)
	} else {
		s = mustNew(t, tr.keyword, tr.arg)
	}
	for _, c := range tr.children {
		if err := s.Append(g1, buildTriple(t, c)); err != nil {
			t.Fatalf("append %s under %s: %v", c.keyword, tr.keyword, err)
		}
	}
	return s
}

func TestWrite(t *testing.T) {
	tests := []struct {
		desc string
		in   triple
		want string
	}{{
		desc: "leaf statement without substatements",
		in:   triple{keyword: "prefix", arg: "test"},
		want: "prefix test;\n",
	}, {
		desc: "quoted argument class",
		in:   triple{keyword: "namespace", arg: "urn:yang:test"},
		want: "namespace \"urn:yang:test\";\n",
	}, {
		desc: "extension argument quoted",
		in:   triple{keyword: "ext:c-define", arg: "INTERFACES"},
		want: "ext:c-define \"INTERFACES\";\n",
	}, {
		desc: "nested statements",
		in: triple{keyword: "module", arg: "test", children: []triple{
			{keyword: "namespace", arg: "urn:yang:test"},
			{keyword: "prefix", arg: "test"},
			{keyword: "leaf", arg: "data", children: []triple{
				{keyword: "type", arg: "string"},
			}},
		}},
		want: "module test {\n" +
			"  namespace \"urn:yang:test\";\n" +
			"  prefix test;\n" +
			"  leaf data {\n" +
			"    type string;\n" +
			"  }\n" +
			"}\n",
	}, {
		desc: "escaped quotes in argument",
		in:   triple{keyword: "description", arg: `say "hi"`},
		want: "description \"say \\\"hi\\\"\";\n",
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := buildTriple(t, tt.in).Write(&buf, g1); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(buf.String(), tt.want); diff != "" {
				t.Errorf("(-got, +want):\n%s", diff)
			}
		})
	}
}

func TestWriteComment(t *testing.T) {
	mod := mustNew(t, "module", "test")
	comment, err := New(g1, schema.CommentKeyword, "// a comment")
	if err != nil {
		t.Fatal(err)
	}
	blank, err := New(g1, schema.CommentKeyword, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []*Statement{comment, blank} {
		if err := mod.Append(g1, c); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := mod.Write(&buf, g1); err != nil {
		t.Fatal(err)
	}
	want := "module test {\n" +
		"  // a comment\n" +
		"\n" +
		"}\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("(-got, +want):\n%s", diff)
	}
}
