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

import (
	json "github.com/goccy/go-json"
)

type jsonStatement struct {
	Keyword  string          `json:"keyword"`
	Argument *string         `json:"argument,omitempty"`
	Children []jsonStatement `json:"children,omitempty"`
}

func (s *Statement) toJSON() jsonStatement {
	j := jsonStatement{Keyword: s.keyword}
	if s.hasArg {
		arg := s.argument
		j.Argument = &arg
	}
	for _, c := range s.children {
		j.Children = append(j.Children, c.toJSON())
	}
	return j
}

// MarshalJSON renders the statement and its substatements as a JSON
// object tree of {keyword, argument, children}.
func (s *Statement) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toJSON())
}
