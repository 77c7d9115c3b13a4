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

// lineDiff runs a line-granularity diff between from and to, using the
// classic DiffLinesToChars/DiffMain/DiffCharsToLines trick: each distinct
// line is mapped to a single rune so the general-purpose DiffMain edit
// script operates on lines instead of characters.
func lineDiff(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	aChars, bChars, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(aChars, bChars, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// countDiff returns the number of inserted and deleted lines between from
// and to. Equal lines are not counted. Empty inputs yield (0, 0).
func countDiff(from, to string) (added, removed int) {
	if from == "" && to == "" {
		return 0, 0
	}

	for _, d := range lineDiff(from, to) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return added, removed
}

// countLines counts the lines in a diff fragment, so a multi-line
// insert/delete fragment contributes one count per line rather than one
// count per fragment. Unlike lineCount, an empty fragment counts as 0 and a
// trailing "\n" ends the last line instead of starting an empty one.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

// similarity estimates how much of the combined line content of from and to
// is unchanged, as a fraction in [0, 1]. It is defined as
// unchanged / max(1, added + removed + unchanged) over a line-level diff.
func similarity(from, to string) float64 {
	if from == to {
		return 1.0
	}
	if from == "" || to == "" {
		return 0.0
	}

	var added, removed, unchanged int
	for _, d := range lineDiff(from, to) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		case diffmatchpatch.DiffEqual:
			unchanged += countLines(d.Text)
		}
	}

	total := added + removed + unchanged
	if total < 1 {
		total = 1
	}
	return float64(unchanged) / float64(total)
}

// lineCount counts the lines produced by splitting s on "\n", consistent
// with the line splitting used by the rest of this package. An empty string
// counts as a single (empty) line.
func lineCount(s string) int {
	return len(strings.Split(s, "\n"))
}
