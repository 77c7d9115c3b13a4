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

// Package rename detects file renames between two snapshots of a file tree
// by content hash and content similarity.
//
// The detector is deliberately decoupled from difftree's own FileMap type:
// it only asks its caller for the content of a given path on either side,
// through a ContentLookup function, a narrow-interface shape that keeps it
// independent of any one document representation.
package rename

// ContentLookup returns the text content of path on one side of a
// comparison, and whether that path exists as a File entry on that side at
// all. It must return ok == false for directories and for paths absent
// from that side.
type ContentLookup func(path string) (content string, ok bool)

// DetectOptions configures the rename detector.
type DetectOptions struct {
	// Threshold is the similarity acceptance bound, already clamped to
	// [0, 1] by the caller (see difftree.BuildDiffTree).
	Threshold float64
}

// name returns the substring of p after its last '/', or p itself if there
// is none.
func name(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
