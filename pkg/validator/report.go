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

package validator

import (
	"strings"

	json "github.com/goccy/go-json"
)

// A Code identifies the rule a violation breaks.
type Code string

const (
	// CodeMissingChild reports a required substatement that is absent.
	CodeMissingChild Code = "missing-child"
	// CodeTooMany reports a substatement that occurs more often than
	// permitted.
	CodeTooMany Code = "too-many"
	// CodeBadChild reports a substatement that is never permitted
	// under its parent.
	CodeBadChild Code = "bad-child"
	// CodeBadArgument reports a missing, unexpected or malformed
	// argument.
	CodeBadArgument Code = "bad-argument"
	// CodeOutOfOrder reports a statement violating an ordering rule
	// exposed by the oracle.
	CodeOutOfOrder Code = "out-of-order"
	// CodeUnknownKeyword reports a keyword the grammar does not know.
	CodeUnknownKeyword Code = "unknown-keyword"
)

// A Severity distinguishes structural problems from advisory ones.
type Severity int

const (
	// SeverityError marks a structural violation.
	SeverityError Severity = iota
	// SeverityWarning marks an advisory violation.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// A Violation is one broken rule, located by the depth-first path of
// the offending statement.
type Violation struct {
	Path     string   `json:"path"`
	Keyword  string   `json:"keyword"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Severity.String() + ": " + v.Message
}

// A Report is the ordered list of violations found in one validation
// pass.  An empty report means the tree is structurally well formed.
type Report []Violation

// OK reports whether the report is empty.
func (r Report) OK() bool { return len(r) == 0 }

// HasErrors reports whether any violation is of error severity.
func (r Report) HasErrors() bool {
	for _, v := range r {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns the violations of error severity, in order.
func (r Report) Errors() Report {
	var out Report
	for _, v := range r {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

func (r Report) String() string {
	var b strings.Builder
	for _, v := range r {
		b.WriteString(v.String())
		b.WriteString("\n")
	}
	return b.String()
}

// JSON renders the report as a JSON array.
func (r Report) JSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Violation(r))
}
