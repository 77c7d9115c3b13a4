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

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/bunt"
	"github.com/gonvenience/term"
	"github.com/gonvenience/text"

	"github.com/homeport/difftree/pkg/difftree"
)

// treeReport renders a DiffFileEntry tree to out, one line per changed node,
// plus a summary banner counting each status encountered.
type treeReport struct {
	root       *difftree.DiffFileEntry
	plainMode  bool
	omitHeader bool
}

func (r *treeReport) WriteReport(out io.Writer) error {
	var counts = map[difftree.Status]int{}
	var lines []string

	var walk func(node *difftree.DiffFileEntry, depth int)
	walk = func(node *difftree.DiffFileEntry, depth int) {
		if node.Path != "/" && node.Status != difftree.Unchanged {
			counts[node.Status]++
			lines = append(lines, r.renderLine(node, depth))
		}

		for _, child := range node.Children {
			childDepth := depth
			if node.Path != "/" {
				childDepth++
			}
			walk(child, childDepth)
		}
	}
	walk(r.root, 0)

	if !r.omitHeader {
		fmt.Fprintln(out, r.banner(counts))
		fmt.Fprintln(out)
	}

	if len(lines) == 0 {
		fmt.Fprintln(out, "No differences found.")
		return nil
	}

	width := term.GetTerminalWidth()
	for _, line := range lines {
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		fmt.Fprintln(out, line)
	}

	return nil
}

func (r *treeReport) renderLine(node *difftree.DiffFileEntry, depth int) string {
	indent := strings.Repeat("  ", depth)
	glyph := statusGlyph(node.Status)
	path := node.Path

	var suffix string
	switch {
	case node.IsRenamed():
		suffix = fmt.Sprintf(" (was %s)", node.OldPath)
	case node.Status == difftree.Modified || node.Status == difftree.Renamed:
		suffix = fmt.Sprintf(" (+%d/-%d)", node.Added, node.Removed)
	}

	line := fmt.Sprintf("%s%s %s%s", indent, glyph, path, suffix)

	if r.plainMode {
		return line
	}

	return colored(statusColor(node.Status), line)
}

func (r *treeReport) banner(counts map[difftree.Status]int) string {
	parts := []string{
		text.Plural(counts[difftree.Added], "addition"),
		text.Plural(counts[difftree.Removed], "removal"),
		text.Plural(counts[difftree.Modified], "modification"),
		text.Plural(counts[difftree.Renamed], "rename"),
	}

	summary := fmt.Sprintf("%s between the two trees", strings.Join(parts, ", "))
	if r.plainMode {
		return summary
	}

	return bunt.Style(summary, bunt.Bold())
}
