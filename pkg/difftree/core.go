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
	"sort"

	"github.com/homeport/difftree/pkg/difftree/rename"
)

// BuildDiffTree is the core entry point: given two snapshots of a file
// tree, it derives deleted/added file sets, detects renames, derives each
// side's directory set, assembles the merged tree, and annotates every node
// with a Status and line counts. The result is deterministic for fixed
// inputs and threshold, provided the host materializes fromFiles/toFiles
// deterministically.
//
// similarityThreshold is clamped to [0, 1]; a typical caller value is 0.7.
func BuildDiffTree(fromFiles, toFiles FileMap, similarityThreshold float64) *DiffFileEntry {
	threshold := clamp(similarityThreshold)

	deletedSet := collectFilePaths(fromFiles)
	addedSet := collectFilePaths(toFiles)

	deleted := sortedSetDifference(deletedSet, addedSet)
	added := sortedSetDifference(addedSet, deletedSet)

	renames := rename.Detect(
		deleted, added,
		contentLookup(fromFiles), contentLookup(toFiles),
		similarity,
		rename.DetectOptions{Threshold: threshold},
	)

	fromDirs := deriveDirectories(fromFiles)
	toDirs := deriveDirectories(toFiles)

	// A deleted path matched as a rename source is represented by its
	// Renamed counterpart and gets no node of its own.
	renamedFrom := make(map[string]struct{}, len(renames))
	for _, oldPath := range renames {
		renamedFrom[oldPath] = struct{}{}
	}

	allPaths := unionKeys(fromFiles, toFiles, fromDirs, toDirs)
	treePaths := allPaths[:0]
	for _, p := range allPaths {
		if _, ok := renamedFrom[p]; ok && !toDirs.has(p) {
			continue
		}
		treePaths = append(treePaths, p)
	}
	root := assembleTree(treePaths, fromFiles, toFiles, fromDirs, toDirs)

	annotate(root, &annotationContext{
		renames:   renames,
		fromFiles: fromFiles,
		toFiles:   toFiles,
		fromDirs:  fromDirs,
		toDirs:    toDirs,
	})

	return root
}

// clamp bounds t to [0, 1].
func clamp(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// collectFilePaths returns the set of paths in files whose entry is a File
// (directories are excluded).
func collectFilePaths(files FileMap) map[string]struct{} {
	set := make(map[string]struct{}, len(files))
	for path, entry := range files {
		if entry.FileType == File {
			set[path] = struct{}{}
		}
	}
	return set
}

// sortedSetDifference returns the elements of a not present in b, sorted
// ascending. The orchestrator relies on this ascending order to make the
// rename detector's "first candidate in iteration order" tie-break
// deterministic.
func sortedSetDifference(a, b map[string]struct{}) []string {
	out := make([]string, 0, len(a))
	for p := range a {
		if _, ok := b[p]; !ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// contentLookup adapts a FileMap into a rename.ContentLookup.
func contentLookup(files FileMap) rename.ContentLookup {
	return func(path string) (string, bool) {
		entry, ok := fileEntry(files, path)
		if !ok {
			return "", false
		}
		return entry.Content, true
	}
}

// unionKeys merges every key of fromFiles and toFiles with every path in
// fromDirs and toDirs into one path list, from which BuildDiffTree drops the
// rename sources before handing it to the tree assembler.
func unionKeys(fromFiles, toFiles FileMap, fromDirs, toDirs directorySet) []string {
	seen := make(map[string]struct{}, len(fromFiles)+len(toFiles)+len(fromDirs)+len(toDirs))
	for p := range fromFiles {
		seen[p] = struct{}{}
	}
	for p := range toFiles {
		seen[p] = struct{}{}
	}
	for p := range fromDirs {
		seen[p] = struct{}{}
	}
	for p := range toDirs {
		seen[p] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	return out
}
