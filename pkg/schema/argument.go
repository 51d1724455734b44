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

package schema

// This file defines the argument formats accepted by YANG keywords and
// the per-keyword argument table, including the YIN rendering metadata
// (argument name, and whether the argument is emitted as an XML element
// rather than an attribute).

import (
	"fmt"
	"regexp"
	"strconv"
)

// An ArgFormat names the syntactic class an argument must belong to.
type ArgFormat int

const (
	// FormatString accepts any string.
	FormatString ArgFormat = iota
	// FormatIdentifier accepts a YANG identifier.
	FormatIdentifier
	// FormatIdentifierRef accepts an identifier with an optional
	// "prefix:" qualifier.
	FormatIdentifierRef
	// FormatURI accepts a namespace URI.
	FormatURI
	// FormatInteger accepts a decimal integer.
	FormatInteger
	// FormatNonNegInteger accepts a non-negative decimal integer.
	FormatNonNegInteger
	// FormatMaxElements accepts a positive integer or "unbounded".
	FormatMaxElements
	// FormatBoolean accepts "true" or "false".
	FormatBoolean
	// FormatDate accepts a revision date (YYYY-MM-DD).
	FormatDate
	// FormatStatus accepts "current", "deprecated" or "obsolete".
	FormatStatus
	// FormatOrderedBy accepts "system" or "user".
	FormatOrderedBy
	// FormatDeviate accepts "not-supported", "add", "replace" or
	// "delete".
	FormatDeviate
	// FormatModifier accepts "invert-match" (YANG 1.1 pattern modifier).
	FormatModifier
	// FormatVersion accepts a YANG version label ("1" or "1.1").
	FormatVersion
	// FormatFractionDigits accepts an integer in [1..18].
	FormatFractionDigits
)

var (
	identifierRE    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
	identifierRefRE = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.-]*:)?[A-Za-z_][A-Za-z0-9_.-]*$`)
	dateRE          = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Check checks s against the format.
func (f ArgFormat) Check(s string) error {
	switch f {
	case FormatString:
		return nil
	case FormatIdentifier:
		if !identifierRE.MatchString(s) {
			return fmt.Errorf("%q is not a valid identifier", s)
		}
	case FormatIdentifierRef:
		if !identifierRefRE.MatchString(s) {
			return fmt.Errorf("%q is not a valid identifier reference", s)
		}
	case FormatURI:
		if s == "" {
			return fmt.Errorf("namespace uri must not be empty")
		}
	case FormatInteger:
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
	case FormatNonNegInteger:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%q is not a non-negative integer", s)
		}
	case FormatMaxElements:
		if s == "unbounded" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 {
			return fmt.Errorf("%q is neither a positive integer nor %q", s, "unbounded")
		}
	case FormatBoolean:
		if s != "true" && s != "false" {
			return fmt.Errorf("%q is not a boolean", s)
		}
	case FormatDate:
		if !dateRE.MatchString(s) {
			return fmt.Errorf("%q is not a date (YYYY-MM-DD)", s)
		}
	case FormatStatus:
		switch s {
		case "current", "deprecated", "obsolete":
		default:
			return fmt.Errorf("%q is not a valid status", s)
		}
	case FormatOrderedBy:
		if s != "system" && s != "user" {
			return fmt.Errorf("%q is not a valid ordered-by value", s)
		}
	case FormatDeviate:
		switch s {
		case "not-supported", "add", "replace", "delete":
		default:
			return fmt.Errorf("%q is not a valid deviate value", s)
		}
	case FormatModifier:
		if s != "invert-match" {
			return fmt.Errorf("%q is not a valid pattern modifier", s)
		}
	case FormatVersion:
		if s != "1" && s != "1.1" {
			return fmt.Errorf("%q is not a valid yang version", s)
		}
	case FormatFractionDigits:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 || n > 18 {
			return fmt.Errorf("%q is not in the range 1..18", s)
		}
	}
	return nil
}

// arg is a shorthand constructor used by the table below.
func arg(f ArgFormat, yinName string) ArgDescriptor {
	return ArgDescriptor{Kind: ArgRequired, Format: f, YinName: yinName}
}

func argElem(f ArgFormat, yinName string) ArgDescriptor {
	return ArgDescriptor{Kind: ArgRequired, Format: f, YinName: yinName, YinElement: true}
}

var noArg = ArgDescriptor{Kind: ArgNone}

// argumentTable maps every builtin keyword to its argument descriptor.
// The YIN names follow RFC 7950 section 13.
var argumentTable = map[string]ArgDescriptor{
	"action":           arg(FormatIdentifier, "name"),
	"anydata":          arg(FormatIdentifier, "name"),
	"anyxml":           arg(FormatIdentifier, "name"),
	"argument":         arg(FormatIdentifier, "name"),
	"augment":          arg(FormatString, "target-node"),
	"base":             arg(FormatIdentifierRef, "name"),
	"belongs-to":       arg(FormatIdentifier, "module"),
	"bit":              arg(FormatIdentifier, "name"),
	"case":             arg(FormatIdentifier, "name"),
	"choice":           arg(FormatIdentifier, "name"),
	"config":           arg(FormatBoolean, "value"),
	"contact":          argElem(FormatString, "text"),
	"container":        arg(FormatIdentifier, "name"),
	"default":          arg(FormatString, "value"),
	"description":      argElem(FormatString, "text"),
	"deviate":          arg(FormatDeviate, "value"),
	"deviation":        arg(FormatString, "target-node"),
	"enum":             arg(FormatString, "name"),
	"error-app-tag":    arg(FormatString, "value"),
	"error-message":    argElem(FormatString, "value"),
	"extension":        arg(FormatIdentifier, "name"),
	"feature":          arg(FormatIdentifier, "name"),
	"fraction-digits":  arg(FormatFractionDigits, "value"),
	"grouping":         arg(FormatIdentifier, "name"),
	"identity":         arg(FormatIdentifier, "name"),
	"if-feature":       arg(FormatString, "name"),
	"import":           arg(FormatIdentifier, "module"),
	"include":          arg(FormatIdentifier, "module"),
	"input":            noArg,
	"key":              arg(FormatString, "value"),
	"leaf":             arg(FormatIdentifier, "name"),
	"leaf-list":        arg(FormatIdentifier, "name"),
	"length":           arg(FormatString, "value"),
	"list":             arg(FormatIdentifier, "name"),
	"mandatory":        arg(FormatBoolean, "value"),
	"max-elements":     arg(FormatMaxElements, "value"),
	"min-elements":     arg(FormatNonNegInteger, "value"),
	"modifier":         arg(FormatModifier, "value"),
	"module":           arg(FormatIdentifier, "name"),
	"must":             arg(FormatString, "condition"),
	"namespace":        arg(FormatURI, "uri"),
	"notification":     arg(FormatIdentifier, "name"),
	"ordered-by":       arg(FormatOrderedBy, "value"),
	"organization":     argElem(FormatString, "text"),
	"output":           noArg,
	"path":             arg(FormatString, "value"),
	"pattern":          arg(FormatString, "value"),
	"position":         arg(FormatNonNegInteger, "value"),
	"prefix":           arg(FormatIdentifier, "value"),
	"presence":         arg(FormatString, "value"),
	"range":            arg(FormatString, "value"),
	"reference":        argElem(FormatString, "text"),
	"refine":           arg(FormatString, "target-node"),
	"require-instance": arg(FormatBoolean, "value"),
	"revision":         arg(FormatDate, "date"),
	"revision-date":    arg(FormatDate, "date"),
	"rpc":              arg(FormatIdentifier, "name"),
	"status":           arg(FormatStatus, "value"),
	"submodule":        arg(FormatIdentifier, "name"),
	"type":             arg(FormatIdentifierRef, "name"),
	"typedef":          arg(FormatIdentifier, "name"),
	"unique":           arg(FormatString, "tag"),
	"units":            arg(FormatString, "name"),
	"uses":             arg(FormatIdentifierRef, "name"),
	"value":            arg(FormatInteger, "value"),
	"when":             arg(FormatString, "condition"),
	"yang-version":     arg(FormatVersion, "value"),
	"yin-element":      arg(FormatBoolean, "value"),
}

// yang11OnlyKeywords are keywords absent from the YANG 1 grammar.
var yang11OnlyKeywords = map[string]bool{
	"action":   true,
	"anydata":  true,
	"modifier": true,
}
