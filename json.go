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

	json "github.com/goccy/go-json"
	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/schema"
	"github.com/openconfig/yangbuilder/pkg/validator"
)

func init() {
	register(&formatter{
		name: "json",
		f:    doJSON,
		help: "render the tree as JSON",
	})
}

func doJSON(w io.Writer, root *ast.Statement, _ schema.Oracle, _ validator.Report) error {
	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
