// Copyright © 2025 The Homeport Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package difftree

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// CountDiff is the exported form of the line-diff primitive: given the
// "from" and "to" content of a single file, it returns the number of
// inserted and deleted lines. It is a secondary utility for hosts doing
// their own file-level rendering; BuildDiffTree uses the unexported
// countDiff directly.
func CountDiff(from, to string) (added, removed int) {
	return countDiff(from, to)
}

// GetDiffContent renders a unified-style patch for a single file: a
// "--- from/<filename>" / "+++ to/<filename>" header followed by one
// "<sign> <line>" row per change fragment, sign being '-', '+' or ' '. This
// is a single-pair text-diff formatter kept outside the tree builder's own
// path, reusing the same line-diff primitive; BuildDiffTree never calls it.
func GetDiffContent(filename, from, to string) string {
	var b strings.Builder
	b.WriteString("--- from/")
	b.WriteString(filename)
	b.WriteString("\n+++ to/")
	b.WriteString(filename)

	for _, d := range lineDiff(from, to) {
		sign := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sign = '-'
		case diffmatchpatch.DiffInsert:
			sign = '+'
		}

		for _, line := range splitDiffFragment(d.Text) {
			b.WriteByte('\n')
			b.WriteByte(sign)
			b.WriteByte(' ')
			b.WriteString(line)
		}
	}

	return b.String()
}

// splitDiffFragment splits a diff fragment's text back into individual
// lines, dropping the trailing empty element a terminal "\n" would
// otherwise produce, so each source line becomes exactly one output row.
func splitDiffFragment(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
