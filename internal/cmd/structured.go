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

	"github.com/gonvenience/neat"
	yaml "gopkg.in/yaml.v3"

	"github.com/homeport/difftree/pkg/difftree"
)

// entryView is the shape difftree.DiffFileEntry is projected into for
// structured (YAML/JSON) output: the public struct itself carries no
// serialization tags, so marshaling it directly would render an empty
// Children entry for leaf files; the CLI therefore uses its own view type with
// omitempty tags instead of marshaling the library type directly.
type entryView struct {
	Path     string       `yaml:"path" json:"path"`
	OldPath  string       `yaml:"oldPath,omitempty" json:"oldPath,omitempty"`
	Type     string       `yaml:"type" json:"type"`
	Status   string       `yaml:"status" json:"status"`
	Added    int          `yaml:"added" json:"added"`
	Removed  int          `yaml:"removed" json:"removed"`
	Children []*entryView `yaml:"children,omitempty" json:"children,omitempty"`
}

func toEntryView(node *difftree.DiffFileEntry) *entryView {
	view := &entryView{
		Path:    node.Path,
		OldPath: node.OldPath,
		Type:    node.FileType.String(),
		Status:  node.Status.String(),
		Added:   node.Added,
		Removed: node.Removed,
	}

	for _, child := range node.Children {
		view.Children = append(view.Children, toEntryView(child))
	}

	return view
}

// writeStructuredReport renders the diff tree as YAML or JSON. In plain
// mode it writes YAML with a direct yaml.v3 marshal and JSON through neat's
// compact JSON output, both with no ANSI decoration; otherwise it goes
// through neat for colorized, indent-guided rendering.
func writeStructuredReport(out io.Writer, root *difftree.DiffFileEntry, style string, plain bool) error {
	view := toEntryView(root)

	switch {
	case plain && style == "json":
		output, err := neat.NewOutputProcessor(false, false, &neat.DefaultColorSchema).ToCompactJSON(view)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, output)
		return err

	case plain && style == "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(view); err != nil {
			return err
		}
		return encoder.Close()

	case style == "json":
		output, err := neat.NewOutputProcessor(true, true, &neat.DefaultColorSchema).ToJSON(view)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, output)
		return err

	default: // "yaml"
		output, err := neat.NewOutputProcessor(true, true, &neat.DefaultColorSchema).ToYAML(view)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, output)
		return err
	}
}
