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

// Package difftree compares two snapshots of a file tree and produces a
// hierarchical diff tree classifying every file and directory as Added,
// Removed, Modified, Renamed, or Unchanged, with line insertion/deletion
// counts aggregated up the tree.
//
// The package is meant to be embedded: it performs no I/O and keeps no
// global mutable state, so a host application (a CLI, a WASM boundary, a
// service) can materialize two FileMaps in memory and call BuildDiffTree
// any number of times, on disjoint inputs, without synchronization.
package difftree

// FileType distinguishes a plain file from a directory entry in a FileMap or
// DiffFileEntry.
type FileType int

const (
	// File is a regular file; FileMapEntry.Content holds its text content.
	File FileType = iota
	// Directory is a directory entry; FileMapEntry.Content is empty.
	Directory
)

// String renders the FileType the way it is serialized to hosts.
func (t FileType) String() string {
	switch t {
	case File:
		return "File"
	case Directory:
		return "Directory"
	default:
		return "Unknown"
	}
}

// Status classifies how a DiffFileEntry changed between the "from" and "to"
// snapshots.
type Status int

const (
	// Unchanged means the node is identical (by content, for files; by
	// having only Unchanged children, for directories) in both snapshots.
	Unchanged Status = iota
	// Added means the node is present only in the "to" snapshot.
	Added
	// Removed means the node is present only in the "from" snapshot.
	Removed
	// Modified means the node is present in both snapshots with different
	// content (file) or at least one non-Unchanged child (directory).
	Modified
	// Renamed means the node is a file matched to a deleted path in the
	// "from" snapshot by the rename detector; OldPath is set.
	Renamed
)

// String renders the Status the way it is serialized to hosts.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "Unchanged"
	case Added:
		return "Added"
	case Removed:
		return "Removed"
	case Modified:
		return "Modified"
	case Renamed:
		return "Renamed"
	default:
		return "Unknown"
	}
}

// FileMapEntry is one element of a FileMap: the input unit the core consumes.
//
// Paths are normalized by the host before they ever reach this package: `/`
// separators, no leading `/`, no `.` or `..` components, no trailing `/`.
type FileMapEntry struct {
	FileType FileType
	// Content holds the textual content of the file when FileType == File.
	// It is empty for directories.
	Content string
}

// FileMap is an unordered mapping from a normalized path to its entry.
// Directories may be implicit (absent as a key, only reachable as an
// ancestor of some file path) or explicit (present with FileType ==
// Directory).
type FileMap map[string]FileMapEntry

// DiffFileEntry is one node of the output diff tree.
//
// The root node always has Path == "/". Children is present (possibly
// empty) on directory nodes and nil on file nodes. Children is kept sorted
// ascending by Path with no duplicates.
type DiffFileEntry struct {
	Path     string
	OldPath  string // set only when Status == Renamed
	FileType FileType
	Status   Status

	// Added and Removed are line counts: for files, lines inserted/deleted
	// against the paired version; for directories, the sum over all File
	// descendants. Both are meaningful (and consulted) regardless of
	// Status, including Unchanged where they are always 0.
	Added   int
	Removed int

	// Children is non-nil on directories (even when empty) and nil on
	// files.
	Children []*DiffFileEntry
}

// IsRenamed reports whether this node was matched to a deleted path by the
// rename detector.
func (e *DiffFileEntry) IsRenamed() bool {
	return e.Status == Renamed
}
