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

// This file builds the child-rule tables for YANG 1 (RFC 6020) and
// YANG 1.1 (RFC 7950).  The tables are derived from the substatement
// cardinality tables in the RFCs, sections 7.x.  Keywords that take no
// substatements (prefix, namespace, description, ...) have no entry.

// rules merges any number of child-rule maps into a fresh map.  Later
// maps override earlier ones.
func rules(ms ...map[string]Cardinality) map[string]Cardinality {
	out := make(map[string]Cardinality)
	for _, m := range ms {
		for k, c := range m {
			out[k] = c
		}
	}
	return out
}

func crd(pairs map[string]Cardinality) map[string]Cardinality { return pairs }

// Common substatement groups.
var (
	docStmts = crd(map[string]Cardinality{
		"description": OptOne,
		"reference":   OptOne,
	})
	// The data definition statements allowed in most schema nodes.
	dataDefStmts = crd(map[string]Cardinality{
		"anyxml":    Any,
		"choice":    Any,
		"container": Any,
		"leaf":      Any,
		"leaf-list": Any,
		"list":      Any,
		"uses":      Any,
	})
	errStmts = crd(map[string]Cardinality{
		"error-app-tag": OptOne,
		"error-message": OptOne,
	})
)

// yang1Children returns a freshly built child-rule table for YANG 1.
func yang1Children() map[string]map[string]Cardinality {
	moduleBody := rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
		"augment":      Any,
		"contact":      OptOne,
		"deviation":    Any,
		"extension":    Any,
		"feature":      Any,
		"grouping":     Any,
		"identity":     Any,
		"import":       Any,
		"include":      Any,
		"notification": Any,
		"organization": OptOne,
		"revision":     Any,
		"rpc":          Any,
		"typedef":      Any,
		"yang-version": OptOne,
	}))

	return map[string]map[string]Cardinality{
		"module": rules(moduleBody, crd(map[string]Cardinality{
			"namespace": One,
			"prefix":    One,
		})),
		"submodule": rules(moduleBody, crd(map[string]Cardinality{
			"belongs-to": One,
		})),
		"container": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"config":     OptOne,
			"grouping":   Any,
			"if-feature": Any,
			"must":       Any,
			"presence":   OptOne,
			"status":     OptOne,
			"typedef":    Any,
			"when":       OptOne,
		})),
		"leaf": rules(docStmts, crd(map[string]Cardinality{
			"config":     OptOne,
			"default":    OptOne,
			"if-feature": Any,
			"mandatory":  OptOne,
			"must":       Any,
			"status":     OptOne,
			"type":       One,
			"units":      OptOne,
			"when":       OptOne,
		})),
		"leaf-list": rules(docStmts, crd(map[string]Cardinality{
			"config":       OptOne,
			"if-feature":   Any,
			"max-elements": OptOne,
			"min-elements": OptOne,
			"must":         Any,
			"ordered-by":   OptOne,
			"status":       OptOne,
			"type":         One,
			"units":        OptOne,
			"when":         OptOne,
		})),
		"list": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"config":       OptOne,
			"grouping":     Any,
			"if-feature":   Any,
			"key":          OptOne,
			"max-elements": OptOne,
			"min-elements": OptOne,
			"must":         Any,
			"ordered-by":   OptOne,
			"status":       OptOne,
			"typedef":      Any,
			"unique":       Any,
			"when":         OptOne,
		})),
		"typedef": rules(docStmts, crd(map[string]Cardinality{
			"default": OptOne,
			"status":  OptOne,
			"type":    One,
			"units":   OptOne,
		})),
		"type": crd(map[string]Cardinality{
			"base":             OptOne,
			"bit":              Any,
			"enum":             Any,
			"fraction-digits":  OptOne,
			"length":           OptOne,
			"path":             OptOne,
			"pattern":          Any,
			"range":            OptOne,
			"require-instance": OptOne,
			"type":             Any,
		}),
		"choice": rules(docStmts, crd(map[string]Cardinality{
			"anyxml":     Any,
			"case":       Any,
			"config":     OptOne,
			"container":  Any,
			"default":    OptOne,
			"if-feature": Any,
			"leaf":       Any,
			"leaf-list":  Any,
			"list":       Any,
			"mandatory":  OptOne,
			"status":     OptOne,
			"when":       OptOne,
		})),
		"case": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"if-feature": Any,
			"status":     OptOne,
			"when":       OptOne,
		})),
		"grouping": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"grouping": Any,
			"status":   OptOne,
			"typedef":  Any,
		})),
		"uses": rules(docStmts, crd(map[string]Cardinality{
			"augment":    OptOne,
			"if-feature": Any,
			"refine":     Any,
			"status":     OptOne,
			"when":       OptOne,
		})),
		"refine": rules(docStmts, crd(map[string]Cardinality{
			"config":       OptOne,
			"default":      OptOne,
			"mandatory":    OptOne,
			"max-elements": OptOne,
			"min-elements": OptOne,
			"must":         Any,
			"presence":     OptOne,
		})),
		"augment": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"case":       Any,
			"if-feature": Any,
			"status":     OptOne,
			"when":       OptOne,
		})),
		"rpc": rules(docStmts, crd(map[string]Cardinality{
			"grouping":   Any,
			"if-feature": Any,
			"input":      OptOne,
			"output":     OptOne,
			"status":     OptOne,
			"typedef":    Any,
		})),
		"input": rules(dataDefStmts, crd(map[string]Cardinality{
			"grouping": Any,
			"typedef":  Any,
		})),
		"output": rules(dataDefStmts, crd(map[string]Cardinality{
			"grouping": Any,
			"typedef":  Any,
		})),
		"notification": rules(dataDefStmts, docStmts, crd(map[string]Cardinality{
			"grouping":   Any,
			"if-feature": Any,
			"status":     OptOne,
			"typedef":    Any,
		})),
		"anyxml": rules(docStmts, crd(map[string]Cardinality{
			"config":     OptOne,
			"if-feature": Any,
			"mandatory":  OptOne,
			"must":       Any,
			"status":     OptOne,
			"when":       OptOne,
		})),
		"import": crd(map[string]Cardinality{
			"prefix":        One,
			"revision-date": OptOne,
		}),
		"include": crd(map[string]Cardinality{
			"revision-date": OptOne,
		}),
		"belongs-to": crd(map[string]Cardinality{
			"prefix": One,
		}),
		"revision": rules(docStmts),
		"extension": rules(docStmts, crd(map[string]Cardinality{
			"argument": OptOne,
			"status":   OptOne,
		})),
		"argument": crd(map[string]Cardinality{
			"yin-element": OptOne,
		}),
		"feature": rules(docStmts, crd(map[string]Cardinality{
			"if-feature": Any,
			"status":     OptOne,
		})),
		"identity": rules(docStmts, crd(map[string]Cardinality{
			"base":   OptOne,
			"status": OptOne,
		})),
		"deviation": rules(docStmts, crd(map[string]Cardinality{
			"deviate": AtLeastOne,
		})),
		"deviate": crd(map[string]Cardinality{
			"config":       OptOne,
			"default":      OptOne,
			"mandatory":    OptOne,
			"max-elements": OptOne,
			"min-elements": OptOne,
			"must":         Any,
			"type":         OptOne,
			"unique":       Any,
			"units":        OptOne,
		}),
		"must":    rules(docStmts, errStmts),
		"when":    rules(docStmts),
		"range":   rules(docStmts, errStmts),
		"length":  rules(docStmts, errStmts),
		"pattern": rules(docStmts, errStmts),
		"enum": rules(docStmts, crd(map[string]Cardinality{
			"status": OptOne,
			"value":  OptOne,
		})),
		"bit": rules(docStmts, crd(map[string]Cardinality{
			"position": OptOne,
			"status":   OptOne,
		})),
	}
}

// apply11 mutates a freshly built YANG 1 table into the YANG 1.1 table.
// The changes follow RFC 7950: the action and anydata statements, the
// pattern modifier, multiple base and default statements, if-feature
// under enum/bit/identity, description and reference under import and
// include, must under input/output/notification, and a mandatory
// yang-version statement.
func apply11(t map[string]map[string]Cardinality) {
	add := func(parent string, kw string, c Cardinality) {
		t[parent][kw] = c
	}

	for _, parent := range []string{"module", "submodule"} {
		add(parent, "anydata", Any)
		add(parent, "yang-version", One)
	}
	for _, parent := range []string{"container", "list", "grouping", "augment"} {
		add(parent, "action", Any)
		add(parent, "anydata", Any)
		add(parent, "notification", Any)
	}
	for _, parent := range []string{"case", "input", "output", "notification"} {
		add(parent, "anydata", Any)
	}
	add("choice", "anydata", Any)
	add("choice", "choice", Any)
	for _, parent := range []string{"input", "output", "notification"} {
		add(parent, "must", Any)
	}
	for _, parent := range []string{"import", "include"} {
		add(parent, "description", OptOne)
		add(parent, "reference", OptOne)
	}
	for _, parent := range []string{"enum", "bit", "identity", "refine"} {
		add(parent, "if-feature", Any)
	}
	add("identity", "base", Any)
	add("type", "base", Any)
	add("leaf-list", "default", Any)
	add("deviate", "default", Any)
	add("pattern", "modifier", OptOne)

	// action takes the same substatements as rpc; anydata the same as
	// anyxml.
	t["action"] = rules(t["rpc"])
	t["anydata"] = rules(t["anyxml"])
}

// moduleSections assigns header, linkage, meta and revision keywords to
// their section index.  Keywords not listed belong to the body section.
func moduleSections(header ...string) map[string]int {
	s := map[string]int{
		"import":       linkageSection,
		"include":      linkageSection,
		"organization": metaSection,
		"contact":      metaSection,
		"description":  metaSection,
		"reference":    metaSection,
		"revision":     revisionSection,
	}
	for _, kw := range header {
		s[kw] = headerSection
	}
	return s
}

// Section indices used by SectionOrder maps.
const (
	headerSection = iota
	linkageSection
	metaSection
	revisionSection
	// BodySection is the index of the final section, holding every
	// keyword absent from a SectionOrder map.
	BodySection
)

func build(v Version) *Grammar {
	g := &Grammar{
		version:  v,
		children: yang1Children(),
		args:     make(map[string]ArgDescriptor, len(argumentTable)),
		sections: map[string]map[string]int{
			"module":    moduleSections("yang-version", "namespace", "prefix"),
			"submodule": moduleSections("yang-version", "belongs-to"),
		},
	}
	if v == YANG1_1 {
		apply11(g.children)
	}
	for kw, d := range argumentTable {
		if v == YANG1 && yang11OnlyKeywords[kw] {
			continue
		}
		g.args[kw] = d
	}
	return g
}
