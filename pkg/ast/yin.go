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

// This file renders a statement tree as YIN, the XML form of YANG
// defined in RFC 7950 section 13.  The oracle's YIN metadata decides,
// per keyword, whether the argument becomes an XML attribute or a child
// element.

import (
	"encoding/xml"
	"io"

	"github.com/openconfig/yangbuilder/pkg/schema"
)

// YinNamespace is the XML namespace of YIN documents.
const YinNamespace = "urn:ietf:params:xml:ns:yang:yin:1"

// WriteYIN writes s and all of its substatements to w as a YIN
// document rooted at s.
func (s *Statement) WriteYIN(w io.Writer, o schema.Oracle) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", indentString)
	if err := s.encodeYIN(enc, o, true); err != nil {
		return err
	}
	return enc.Flush()
}

func (s *Statement) encodeYIN(enc *xml.Encoder, o schema.Oracle, root bool) error {
	if s.IsComment() {
		return enc.EncodeToken(xml.Comment(" " + s.argument + " "))
	}

	start := xml.StartElement{Name: xml.Name{Local: s.keyword}}
	if root {
		start.Attr = append(start.Attr, xml.Attr{
			Name: xml.Name{Local: "xmlns"}, Value: YinNamespace,
		})
	}

	d, known := o.ArgumentRule(s.keyword)
	argName := d.YinName
	if !known || argName == "" {
		argName = "value"
	}
	if s.hasArg && !d.YinElement {
		start.Attr = append(start.Attr, xml.Attr{
			Name: xml.Name{Local: argName}, Value: s.argument,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if s.hasArg && d.YinElement {
		inner := xml.StartElement{Name: xml.Name{Local: argName}}
		if err := enc.EncodeToken(inner); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(s.argument)); err != nil {
			return err
		}
		if err := enc.EncodeToken(inner.End()); err != nil {
			return err
		}
	}
	for _, c := range s.children {
		if err := c.encodeYIN(enc, o, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
