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

package builder

// This file reads tuple expressions from YAML documents.  Two spellings
// are accepted and may be mixed freely:
//
//	keyword: leaf
//	argument: code
//	children:
//	  - [type, int32]
//
// The flow-sequence form is [keyword], [keyword, argument] or
// [keyword, argument, [children...]]; the argument may be omitted when
// the final element is a sequence.

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes either tuple spelling into t.
func (t *Tuple) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		var aux struct {
			Keyword  string  `yaml:"keyword"`
			Argument string  `yaml:"argument"`
			Children []Tuple `yaml:"children"`
		}
		if err := n.Decode(&aux); err != nil {
			return err
		}
		if aux.Keyword == "" {
			return fmt.Errorf("line %d: tuple mapping is missing a keyword", n.Line)
		}
		t.Keyword, t.Argument, t.Children = aux.Keyword, aux.Argument, aux.Children
		return nil

	case yaml.SequenceNode:
		items := n.Content
		if len(items) == 0 || len(items) > 3 {
			return fmt.Errorf("line %d: tuple must have 1 to 3 elements", n.Line)
		}
		if err := items[0].Decode(&t.Keyword); err != nil {
			return fmt.Errorf("line %d: tuple keyword: %v", items[0].Line, err)
		}
		rest := items[1:]
		if len(rest) > 0 && rest[0].Kind == yaml.ScalarNode {
			if err := rest[0].Decode(&t.Argument); err != nil {
				return err
			}
			rest = rest[1:]
		}
		switch {
		case len(rest) == 0:
			return nil
		case rest[0].Kind == yaml.SequenceNode:
			return rest[0].Decode(&t.Children)
		}
		return fmt.Errorf("line %d: tuple children must be a sequence", rest[0].Line)
	}
	return fmt.Errorf("line %d: tuple must be a mapping or a sequence", n.Line)
}

// DecodeYAML reads one tuple-expression document from r and builds it
// through the builder.
func (b *Builder) DecodeYAML(r io.Reader) error {
	var t Tuple
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return err
	}
	return b.FromTuple(t)
}
