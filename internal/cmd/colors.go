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
	"github.com/gonvenience/bunt"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/homeport/difftree/pkg/difftree"
)

var (
	addedGreen     = hexColor("#58BF38")
	removedRed     = hexColor("#B9311B")
	modifiedYellow = hexColor("#C7C43F")
	renamedBlue    = hexColor("#3C78D8")
)

func hexColor(hex string) colorful.Color {
	c, _ := colorful.Hex(hex)
	return c
}

func colored(color colorful.Color, text string) string {
	return bunt.Style(text,
		bunt.EachLine(),
		bunt.Foreground(color),
	)
}

// statusColor returns the color bunt uses to render a path with the given
// status in the tree listing.
func statusColor(status difftree.Status) colorful.Color {
	switch status {
	case difftree.Added:
		return addedGreen
	case difftree.Removed:
		return removedRed
	case difftree.Renamed:
		return renamedBlue
	case difftree.Modified:
		return modifiedYellow
	default:
		return bunt.DimGray
	}
}

// statusGlyph returns the single-character marker printed in front of a path,
// mirroring the +/-/~ convention used by most line-oriented diff tools.
func statusGlyph(status difftree.Status) string {
	switch status {
	case difftree.Added:
		return "+"
	case difftree.Removed:
		return "-"
	case difftree.Renamed:
		return "→"
	case difftree.Modified:
		return "~"
	default:
		return " "
	}
}
