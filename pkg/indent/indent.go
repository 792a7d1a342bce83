// Copyright 2015 Google Inc.
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

// Package indent prefixes every line of text written through it with a
// fixed string. It is used to pretty-print nested statement and resolver
// trees.
package indent

import (
	"bytes"
	"io"
)

// String returns in with prefix inserted at the start of every line.  A
// trailing newline in in is not followed by a prefix: the prefix is only
// written before a byte that starts a line.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is the []byte equivalent of String.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	var out bytes.Buffer
	atStart := true
	for _, c := range in {
		if atStart {
			out.Write(prefix)
			atStart = false
		}
		out.WriteByte(c)
		if c == '\n' {
			atStart = true
		}
	}
	return out.Bytes()
}

// A writer indents every line written to it with prefix before passing it
// along to the underlying io.Writer.
type writer struct {
	w         io.Writer
	prefix    []byte
	atLineStart bool
}

// NewWriter returns an io.Writer that writes to w, prefixing every line with
// prefix.
func NewWriter(w io.Writer, prefix string) io.Writer {
	return &writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer.  It reports the number of bytes of p that were
// consumed, which, in the presence of a short write or error from the
// underlying writer, may be fewer than len(p) (the partially-written prefix
// bytes are never counted against p).
func (w *writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	// consumed[i] is the count of bytes of p accounted for once buf's
	// first i+1 bytes have been written.
	consumed := make([]int, 0, len(p)+len(p)/4+2)

	atStart := w.atLineStart
	n := 0
	for _, c := range p {
		if atStart {
			buf.Write(w.prefix)
			for range w.prefix {
				consumed = append(consumed, n)
			}
			atStart = false
		}
		buf.WriteByte(c)
		n++
		consumed = append(consumed, n)
		if c == '\n' {
			atStart = true
		}
	}

	data := buf.Bytes()
	m, err := w.w.Write(data)
	switch {
	case m <= 0:
		return 0, err
	case m >= len(data):
		w.atLineStart = atStart
		return n, err
	}

	written := consumed[m-1]
	for i := 0; i < written; i++ {
		w.atLineStart = p[i] == '\n'
	}
	return written, err
}
