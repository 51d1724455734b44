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

package main

import (
	"fmt"
	"io"

	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/indent"
	"github.com/openconfig/yangbuilder/pkg/schema"
	"github.com/openconfig/yangbuilder/pkg/validator"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the statement tree in debug form",
	})
}

func doTree(w io.Writer, root *ast.Statement, _ schema.Oracle, _ validator.Report) error {
	return writeTree(w, root)
}

// writeTree writes s, formatted, and all of its substatements to w.
func writeTree(w io.Writer, s *ast.Statement) error {
	if s.IsComment() {
		return nil
	}
	label := s.Keyword()
	if arg, ok := s.Arg(); ok {
		label = fmt.Sprintf("%s %q", label, arg)
	}
	if _, err := fmt.Fprintf(w, "%s\n", label); err != nil {
		return err
	}
	cw := indent.NewWriter(w, "  ")
	for _, c := range s.Children() {
		if err := writeTree(cw, c); err != nil {
			return err
		}
	}
	return nil
}
