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
	"os"
	"path/filepath"
	"strings"

	"github.com/homeport/difftree/pkg/difftree"
)

// ignoredTopLevelDirs are directory names walkDirectory never descends into,
// matching the set of directories that would never legitimately be part of a
// reviewable tree-diff input.
var ignoredTopLevelDirs = map[string]bool{
	".git": true,
}

// walkDirectory reads root recursively and builds a difftree.FileMap keyed
// by slash-separated paths relative to root. Directory entries are recorded
// explicitly so that an empty directory still shows up as a node.
func walkDirectory(root string) (difftree.FileMap, error) {
	files := make(difftree.FileMap)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if ignoredTopLevelDirs[info.Name()] {
				return filepath.SkipDir
			}
			files[rel] = difftree.FileMapEntry{FileType: difftree.Directory}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		files[rel] = difftree.FileMapEntry{
			FileType: difftree.File,
			Content:  string(content),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// isDirectory reports whether location names an existing directory, the
// signal compare uses to decide between walkDirectory and a single in-memory
// FileMap entry for a lone file argument.
func isDirectory(location string) bool {
	info, err := os.Stat(location)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// singleFileMap wraps a single file argument in a FileMap keyed by its base
// name, letting compare accept two plain files in addition to two directory
// trees.
func singleFileMap(location string) (difftree.FileMap, error) {
	content, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	name := strings.TrimPrefix(filepath.ToSlash(filepath.Base(location)), "/")
	return difftree.FileMap{
		name: {FileType: difftree.File, Content: string(content)},
	}, nil
}
