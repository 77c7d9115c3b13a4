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

import "strings"

// directorySet is the set of directory paths a FileMap implies: every entry
// explicitly typed Directory, plus every proper ancestor of every entry's
// path. The root ("/") is never a member; a top-level directory such as
// "src" is.
type directorySet map[string]struct{}

func (s directorySet) has(path string) bool {
	_, ok := s[path]
	return ok
}

// deriveDirectories computes the directorySet implied by a FileMap.
func deriveDirectories(files FileMap) directorySet {
	dirs := make(directorySet)

	for path, entry := range files {
		if entry.FileType == Directory {
			dirs[path] = struct{}{}
		}

		segments := strings.Split(path, "/")
		for i := 1; i < len(segments); i++ {
			dirs[strings.Join(segments[:i], "/")] = struct{}{}
		}
	}

	return dirs
}
