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
	"strings"
)

// assembleTree merges the union of paths from both snapshots into a sorted
// hierarchical tree rooted at "/". Paths are sorted ascending before
// insertion so that binary-search insertion keeps each directory's children
// sorted and deduplicated without a second sort pass.
func assembleTree(paths []string, fromFiles, toFiles FileMap, fromDirs, toDirs directorySet) *DiffFileEntry {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	root := &DiffFileEntry{
		Path:     "/",
		FileType: Directory,
		Status:   Unchanged,
		Children: []*DiffFileEntry{},
	}

	for _, path := range sorted {
		insertNode(root, path, resolveFileType(path, fromFiles, toFiles, fromDirs, toDirs))
	}

	return root
}

// insertNode descends from root following path's segments, creating any
// missing intermediate directory nodes, and sets the leaf's FileType to
// leafType. Each level uses binary search over the already-sorted Children
// slice to find the existing node or the correct insertion point.
func insertNode(root *DiffFileEntry, path string, leafType FileType) {
	segments := strings.Split(path, "/")
	current := root

	for i, segment := range segments {
		_ = segment
		childPath := strings.Join(segments[:i+1], "/")
		isLeaf := i == len(segments)-1

		children := current.Children
		pos := sort.Search(len(children), func(j int) bool {
			return children[j].Path >= childPath
		})

		if pos < len(children) && children[pos].Path == childPath {
			current = children[pos]
			continue
		}

		nodeType := Directory
		if isLeaf {
			nodeType = leafType
		}

		newNode := &DiffFileEntry{
			Path:     childPath,
			FileType: nodeType,
			Status:   Unchanged,
		}
		if nodeType == Directory {
			newNode.Children = []*DiffFileEntry{}
		}

		current.Children = append(current.Children, nil)
		copy(current.Children[pos+1:], current.Children[pos:])
		current.Children[pos] = newNode

		current = newNode
	}
}

// resolveFileType decides whether path is a File or a Directory in the
// assembled tree: an entry's own type wins if present on either side,
// otherwise the derived directory sets decide.
func resolveFileType(path string, fromFiles, toFiles FileMap, fromDirs, toDirs directorySet) FileType {
	if entry, ok := fromFiles[path]; ok {
		return entry.FileType
	}
	if entry, ok := toFiles[path]; ok {
		return entry.FileType
	}
	if fromDirs.has(path) || toDirs.has(path) {
		return Directory
	}

	// Every path fed to assembleTree comes from the union of both maps'
	// keys and both derived directory sets (see BuildDiffTree), so one of
	// the branches above always applies. Reaching here means that
	// invariant was violated by the caller.
	panic("difftree: path " + path + " is neither a file nor a derived directory")
}

// annotationContext bundles the read-only state the annotator needs at
// every node so annotateNode doesn't have to thread five parameters through
// every recursive call.
type annotationContext struct {
	renames            map[string]string
	fromFiles, toFiles FileMap
	fromDirs, toDirs   directorySet
}

// annotate performs a post-order traversal assigning Status, OldPath, Added
// and Removed to every node in the tree.
func annotate(root *DiffFileEntry, ctx *annotationContext) {
	annotateNode(root, ctx)
}

func annotateNode(node *DiffFileEntry, ctx *annotationContext) (added, removed int) {
	if node.FileType == File {
		return annotateFile(node, ctx)
	}
	return annotateDirectory(node, ctx)
}

func annotateFile(node *DiffFileEntry, ctx *annotationContext) (added, removed int) {
	if oldPath, ok := ctx.renames[node.Path]; ok {
		fromEntry := ctx.fromFiles[oldPath]
		toEntry := ctx.toFiles[node.Path]

		node.Status = Renamed
		node.OldPath = oldPath
		node.Added, node.Removed = countDiff(fromEntry.Content, toEntry.Content)
		return node.Added, node.Removed
	}

	fromEntry, fromOk := fileEntry(ctx.fromFiles, node.Path)
	toEntry, toOk := fileEntry(ctx.toFiles, node.Path)

	switch {
	case fromOk && toOk:
		if fromEntry.Content == toEntry.Content {
			node.Status = Unchanged
			node.Added, node.Removed = 0, 0
		} else {
			node.Status = Modified
			node.Added, node.Removed = countDiff(fromEntry.Content, toEntry.Content)
		}

	case fromOk && !toOk:
		node.Status = Removed
		node.Added = 0
		node.Removed = lineCount(fromEntry.Content)

	case !fromOk && toOk:
		node.Status = Added
		node.Added = lineCount(toEntry.Content)
		node.Removed = 0

	default:
		// Neither side has this path as a File entry: unreachable for a
		// path that reached the tree as a file leaf in the first place.
		node.Status = Unchanged
		node.Added, node.Removed = 0, 0
	}

	return node.Added, node.Removed
}

func annotateDirectory(node *DiffFileEntry, ctx *annotationContext) (added, removed int) {
	allUnchanged := true

	for _, child := range node.Children {
		childAdded, childRemoved := annotateNode(child, ctx)
		added += childAdded
		removed += childRemoved

		if child.Status != Unchanged {
			allUnchanged = false
		}
	}

	node.Added = added
	node.Removed = removed

	inFrom := node.Path == "/" || ctx.fromDirs.has(node.Path)
	inTo := node.Path == "/" || ctx.toDirs.has(node.Path)

	switch {
	case !inFrom && inTo:
		node.Status = Added
	case inFrom && !inTo:
		node.Status = Removed
	case allUnchanged:
		node.Status = Unchanged
	default:
		node.Status = Modified
	}

	return added, removed
}

// fileEntry fetches path from files, returning ok only if it exists and is
// a File entry (never a Directory).
func fileEntry(files FileMap, path string) (FileMapEntry, bool) {
	entry, ok := files[path]
	if !ok || entry.FileType != File {
		return FileMapEntry{}, false
	}
	return entry, true
}
