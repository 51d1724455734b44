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

import "strings"

// Statements is an ordered list of statements.  Its methods allow
// chained selection, e.g. root.Find("leaf", "").Find("type", "").
type Statements []*Statement

// Find returns the direct substatements of s matching keyword and
// argument.  An empty keyword or argument matches anything.
func (s *Statement) Find(keyword, arg string) Statements {
	return find(s.children, keyword, arg, false)
}

// FindIgnorePrefix is Find with any "prefix:" qualifier on both the
// candidate keywords and arguments stripped before matching.
func (s *Statement) FindIgnorePrefix(keyword, arg string) Statements {
	return find(s.children, keyword, arg, true)
}

// Find returns the direct substatements of every statement in ss
// matching keyword and argument, in tree order.
func (ss Statements) Find(keyword, arg string) Statements {
	var out Statements
	for _, s := range ss {
		out = append(out, s.Find(keyword, arg)...)
	}
	return out
}

func find(in []*Statement, keyword, arg string, ignorePrefix bool) Statements {
	var out Statements
	for _, c := range in {
		kw, a := c.keyword, c.argument
		if ignorePrefix {
			kw = trimPrefix(kw)
			a = trimPrefix(a)
		}
		if keyword != "" && kw != keyword {
			continue
		}
		if arg != "" && a != arg {
			continue
		}
		out = append(out, c)
	}
	return out
}

func trimPrefix(s string) string {
	if i := strings.Index(s, ":"); i > 0 {
		return s[i+1:]
	}
	return s
}
