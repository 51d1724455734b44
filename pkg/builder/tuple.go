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

// A Tuple is a literal representation of a statement subtree, mirroring
// the (keyword, argument, children) shape trees are naturally written
// in.  The statement
//
//	container error {
//	  leaf code { type int32; }
//	  leaf message { type string; }
//	}
//
// is written as
//
//	Tuple{"container", "error", []Tuple{
//		{"leaf", "code", []Tuple{{Keyword: "type", Argument: "int32"}}},
//		{"leaf", "message", []Tuple{{Keyword: "type", Argument: "string"}}},
//	}}
//
// An empty Argument means the statement has none (input, output).
type Tuple struct {
	Keyword  string
	Argument string
	Children []Tuple
}

// FromTuple builds the subtree described by t through the builder, so
// every grammar rule applies as if the statements had been built with
// Begin and End.  The cursor finishes where it started, except when the
// tuple establishes the tree root, in which case the cursor finishes at
// the root.  On error the already-attached portion of the subtree
// remains; discard the builder.
func (b *Builder) FromTuple(t Tuple) error {
	if err := b.beginTuple(t); err != nil {
		return err
	}
	for _, c := range t.Children {
		if err := b.FromTuple(c); err != nil {
			return err
		}
	}
	if len(b.stack) > 1 {
		return b.End()
	}
	return nil
}

func (b *Builder) beginTuple(t Tuple) error {
	if t.Argument == "" {
		return b.Begin(t.Keyword)
	}
	return b.Begin(t.Keyword, t.Argument)
}
