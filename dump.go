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
	"io"

	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/schema"
	"github.com/openconfig/yangbuilder/pkg/validator"
)

func init() {
	register(&formatter{
		name: "yang",
		f:    doYang,
		help: "render the tree as YANG source",
	})
}

func doYang(w io.Writer, root *ast.Statement, o schema.Oracle, _ validator.Report) error {
	return root.Write(w, o)
}
