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

// Program yangbuild builds YANG statement trees from YAML tuple
// documents, validates them, and renders the result.
//
// Usage: yangbuild [--format FORMAT] [--yang-version VERSION] [FILE ...]
//
// Each FILE is a YAML document describing one statement tree as nested
// (keyword, argument, children) tuples:
//
//	- module
//	- test
//	- - [namespace, "urn:yang:test"]
//	  - [prefix, test]
//	  - [leaf, x, [[type, string]]]
//
// If no FILEs are given, standard input is read.  Every tree is checked
// against the grammar selected by VERSION ("1", the default, or "1.1");
// structural errors are written to standard error and abort the run,
// except with --format report, where the report itself is the output.
//
// FORMAT, which defaults to "yang", selects the output produced.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/builder"
	"github.com/openconfig/yangbuilder/pkg/schema"
	"github.com/openconfig/yangbuilder/pkg/validator"
	"github.com/pborman/getopt"
)

// A formatter renders one built tree with its validation report.
type formatter struct {
	name string
	f    func(io.Writer, *ast.Statement, schema.Oracle, validator.Report) error
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

func main() {
	format := "yang"
	version := "1"
	getopt.CommandLine.StringVarLong(&format, "format", 0, "format to produce: "+formatterNames())
	getopt.CommandLine.StringVarLong(&version, "yang-version", 0, "yang language version: 1 or 1.1")
	getopt.Parse()
	files := getopt.Args()

	g, err := schema.ForName(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmtr := formatters[format]
	if fmtr == nil {
		fmt.Fprintf(os.Stderr, "unknown format: %s\n", format)
		os.Exit(1)
	}

	if len(files) == 0 {
		run(fmtr, g, "<STDIN>", os.Stdin)
		return
	}
	for _, name := range files {
		fd, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		run(fmtr, g, name, fd)
		fd.Close()
	}
}

func run(fmtr *formatter, g *schema.Grammar, name string, r io.Reader) {
	b := builder.New(g)
	if err := b.DecodeYAML(r); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
	root, err := b.Root()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}

	rep := validator.Validate(g, root)
	if fmtr.name != "report" && rep.HasErrors() {
		fmt.Fprint(os.Stderr, rep.Errors().String())
		os.Exit(1)
	}
	if err := fmtr.f(os.Stdout, root, g, rep); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

func formatterNames() string {
	var names []string
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
