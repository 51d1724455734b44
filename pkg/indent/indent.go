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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
)

// String returns s with each line prefixed by indent.
func String(indent, s string) string {
	if indent == "" || s == "" {
		return s
	}
	return string(Bytes([]byte(indent), []byte(s)))
}

// Bytes returns b with each line prefixed by indent.
func Bytes(indent, b []byte) []byte {
	if len(indent) == 0 || len(b) == 0 {
		return b
	}
	lines := bytes.SplitAfter(b, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	out := make([]byte, 0, len(b)+len(indent)*len(lines))
	for _, line := range lines {
		out = append(out, indent...)
		out = append(out, line...)
	}
	return out
}

// NewWriter returns an io.Writer that indents each line written to it
// with indent before writing it to w.
func NewWriter(w io.Writer, indent string) io.Writer {
	if indent == "" {
		return w
	}
	if iw, ok := w.(*indenter); ok {
		return &indenter{w: iw.w, prefix: iw.prefix + indent, bol: true}
	}
	return &indenter{w: w, prefix: indent, bol: true}
}

type indenter struct {
	w      io.Writer
	prefix string
	// bol is true at the beginning of a line, before the prefix has
	// been written.
	bol bool
}

// Write writes buf with each line prefixed.  The underlying writer is
// called exactly once; the count returned is in terms of buf's bytes,
// with prefix bytes not charged to the caller.
func (in *indenter) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	// segments alternate between prefix bytes, which do not count
	// against buf, and content bytes, which do.
	type segment struct {
		olen, ilen int
	}
	var out bytes.Buffer
	var segs []segment
	for rest := buf; len(rest) > 0; {
		if in.bol {
			out.WriteString(in.prefix)
			segs = append(segs, segment{len(in.prefix), 0})
		}
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i < 0 {
			in.bol = false
			rest = nil
		} else {
			line = rest[:i+1]
			in.bol = true
			rest = rest[i+1:]
		}
		out.Write(line)
		segs = append(segs, segment{len(line), len(line)})
	}

	n, err := in.w.Write(out.Bytes())
	written := 0
	for _, seg := range segs {
		if n >= seg.olen {
			n -= seg.olen
			written += seg.ilen
			continue
		}
		written += min(n, seg.ilen)
		break
	}
	if err == nil && written < len(buf) {
		err = io.ErrShortWrite
	}
	return written, err
}
