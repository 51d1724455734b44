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

// This file renders a statement tree as YANG source text.  Arguments
// are double-quoted unless the oracle says the keyword's argument class
// never needs quoting (identifiers, booleans, integers, dates and the
// small enumerated classes).

import (
	"fmt"
	"io"
	"strings"

	"github.com/openconfig/yangbuilder/pkg/schema"
)

const indentString = "  "

// Write writes s and all of its substatements to w as YANG source.
// The oracle supplies the argument classes used to decide quoting.
func (s *Statement) Write(w io.Writer, o schema.Oracle) error {
	return s.write(w, o, "")
}

func (s *Statement) write(w io.Writer, o schema.Oracle, indent string) error {
	if s.IsComment() {
		return s.writeComment(w, indent)
	}

	head := indent + s.keyword
	if s.hasArg {
		head += " " + formatArg(o, s.keyword, s.argument)
	}
	if len(s.children) == 0 {
		_, err := fmt.Fprintf(w, "%s;\n", head)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s {\n", head); err != nil {
		return err
	}
	for _, c := range s.children {
		if err := c.write(w, o, indent+indentString); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s}\n", indent)
	return err
}

func (s *Statement) writeComment(w io.Writer, indent string) error {
	if strings.TrimSpace(s.argument) == "" {
		_, err := fmt.Fprintln(w)
		return err
	}
	for _, line := range strings.Split(s.argument, "\n") {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
			return err
		}
	}
	return nil
}

// unquotedFormats are the argument classes whose values never need
// quoting in YANG source.
var unquotedFormats = map[schema.ArgFormat]bool{
	schema.FormatIdentifier:     true,
	schema.FormatIdentifierRef:  true,
	schema.FormatBoolean:        true,
	schema.FormatInteger:        true,
	schema.FormatNonNegInteger:  true,
	schema.FormatDate:           true,
	schema.FormatStatus:         true,
	schema.FormatOrderedBy:      true,
	schema.FormatDeviate:        true,
	schema.FormatModifier:       true,
	schema.FormatVersion:        true,
	schema.FormatFractionDigits: true,
}

func formatArg(o schema.Oracle, keyword, arg string) string {
	if d, ok := o.ArgumentRule(keyword); ok && unquotedFormats[d.Format] && arg != "" {
		return arg
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\t", `\t`)
	return `"` + r.Replace(arg) + `"`
}
