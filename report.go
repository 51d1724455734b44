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
	"github.com/openconfig/yangbuilder/pkg/schema"
	"github.com/openconfig/yangbuilder/pkg/validator"
	"github.com/pborman/getopt"
)

var reportJSON bool

func init() {
	getopt.CommandLine.BoolVarLong(&reportJSON, "json", 0, "emit the validation report as JSON")
	register(&formatter{
		name: "report",
		f:    doReport,
		help: "display the validation report",
	})
}

func doReport(w io.Writer, _ *ast.Statement, _ schema.Oracle, rep validator.Report) error {
	if reportJSON {
		out, err := rep.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	if rep.OK() {
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
	_, err := io.WriteString(w, rep.String())
	return err
}
