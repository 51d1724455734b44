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

// Package validator checks a finished statement tree against the
// grammar and collects every violation into a report.  Unlike the
// builder, which fails fast on the constraints it can judge
// incrementally, the validator never stops early: a single pass
// surfaces every structural problem in the tree.  Validation never
// mutates the tree, and validating the same tree twice yields an
// identical report.
package validator

import (
	"fmt"
	"sort"

	"github.com/openconfig/yangbuilder/pkg/ast"
	"github.com/openconfig/yangbuilder/pkg/schema"
)

// Validate walks the tree rooted at root depth first and reports every
// rule of o the tree does not satisfy.  Violations appear in
// depth-first path order; the order is reproducible.
func Validate(o schema.Oracle, root *ast.Statement) Report {
	v := &visitor{oracle: o}
	v.visit(root)
	return v.report
}

type visitor struct {
	oracle schema.Oracle
	report Report
}

func (v *visitor) add(s *ast.Statement, code Code, sev Severity, format string, args ...interface{}) {
	v.report = append(v.report, Violation{
		Path:     s.Path(),
		Keyword:  s.Keyword(),
		Code:     code,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *visitor) visit(s *ast.Statement) {
	if s.IsComment() {
		return
	}
	kw := s.Keyword()

	if schema.IsExtension(kw) {
		// Extension keywords are always structurally valid.  A
		// registered extension still gets its argument checked;
		// extension content is opaque either way.
		if _, registered := v.oracle.ArgumentRule(kw); registered {
			v.checkArgument(s)
		}
		return
	}

	if _, known := v.oracle.ArgumentRule(kw); !known {
		v.add(s, CodeUnknownKeyword, SeverityError, "unknown keyword %s", kw)
		return
	}

	v.checkArgument(s)
	v.checkChildren(s)
	v.checkOrder(s)

	for _, c := range s.Children() {
		v.visit(c)
	}
}

func (v *visitor) checkArgument(s *ast.Statement) {
	arg, has := s.Arg()
	if err := schema.CheckArgument(v.oracle, s.Keyword(), arg, has); err != nil {
		v.add(s, CodeBadArgument, SeverityError, "%v", err)
	}
}

func (v *visitor) checkChildren(s *ast.Statement) {
	rules := v.oracle.ChildRules(s.Keyword())

	counts := make(map[string]int)
	for _, c := range s.Children() {
		ckw := c.Keyword()
		if c.IsComment() || schema.IsExtension(ckw) {
			continue
		}
		if _, ok := rules[ckw]; !ok {
			v.add(c, CodeBadChild, SeverityError,
				"%s cannot appear under %s", ckw, s.Keyword())
			continue
		}
		counts[ckw]++
	}

	kws := make([]string, 0, len(rules))
	for ckw := range rules {
		kws = append(kws, ckw)
	}
	sort.Strings(kws)
	for _, ckw := range kws {
		c, n := rules[ckw], counts[ckw]
		switch {
		case n < c.Min:
			v.add(s, CodeMissingChild, SeverityError,
				"%s requires %s %s substatement%s, has %d",
				s.Keyword(), minWord(c), ckw, plural(c.Min), n)
		case !c.Unbounded() && n > c.Max:
			v.add(s, CodeTooMany, SeverityError,
				"%s permits at most %d %s substatement%s, has %d",
				s.Keyword(), c.Max, ckw, plural(c.Max), n)
		}
	}
}

// checkOrder applies the oracle's optional ordering metadata: where a
// section order is exposed, statements must appear in non-decreasing
// section order.  No ordering is inferred for keywords without rules.
func (v *visitor) checkOrder(s *ast.Statement) {
	sections := v.oracle.SectionOrder(s.Keyword())
	if sections == nil {
		return
	}
	section := func(kw string) int {
		if i, ok := sections[kw]; ok {
			return i
		}
		return schema.BodySection
	}
	last := 0
	for _, c := range s.Children() {
		// Extension statements may appear anywhere, like comments.
		if c.IsComment() || schema.IsExtension(c.Keyword()) {
			continue
		}
		cur := section(c.Keyword())
		if cur < last {
			v.add(c, CodeOutOfOrder, SeverityWarning,
				"%s appears out of section order under %s", c.Keyword(), s.Keyword())
			continue
		}
		last = cur
	}
}

func minWord(c schema.Cardinality) string {
	if c.Min == 1 && c.Max == 1 {
		return "exactly 1"
	}
	return fmt.Sprintf("at least %d", c.Min)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
