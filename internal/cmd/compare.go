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

	"github.com/spf13/cobra"

	"github.com/homeport/difftree/pkg/difftree"
)

var similarityThreshold float64
var outputStyle string
var plainMode bool
var omitHeader bool
var exitWithCount bool
var swapSides bool

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:     "compare [flags] <from> <to>",
	Short:   "Compare two file trees and report the differences",
	Aliases: []string{"cmp"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromLocation, toLocation := args[0], args[1]
		if swapSides {
			fromLocation, toLocation = toLocation, fromLocation
		}

		fromFiles, err := loadTree(fromLocation)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", fromLocation, err)
		}
		debugLogger.Printf("loaded %d entries from %s", len(fromFiles), fromLocation)

		toFiles, err := loadTree(toLocation)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", toLocation, err)
		}
		debugLogger.Printf("loaded %d entries from %s", len(toFiles), toLocation)

		root := difftree.BuildDiffTree(fromFiles, toFiles, similarityThreshold)
		debugLogger.Printf("built diff tree with root status %s (similarity threshold %.2f)", root.Status, similarityThreshold)

		switch outputStyle {
		case "yaml", "json":
			if err := writeStructuredReport(os.Stdout, root, outputStyle, plainMode); err != nil {
				return fmt.Errorf("failed to print report: %w", err)
			}

		default:
			report := &treeReport{
				root:       root,
				plainMode:  plainMode,
				omitHeader: omitHeader,
			}
			if err := report.WriteReport(os.Stdout); err != nil {
				return fmt.Errorf("failed to print report: %w", err)
			}
		}

		if exitWithCount && root.Status != difftree.Unchanged {
			return errorWithExitCode{value: 1}
		}

		return nil
	},
}

// loadTree reads location from disk into a difftree.FileMap, treating it as
// a directory tree if it is one, or as a single file otherwise.
func loadTree(location string) (difftree.FileMap, error) {
	if isDirectory(location) {
		return walkDirectory(location)
	}
	return singleFileMap(location)
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().SortFlags = false
	compareCmd.Flags().Float64VarP(&similarityThreshold, "similarity", "s", 0.7, "similarity threshold used to detect renames, between 0 and 1")
	compareCmd.Flags().StringVarP(&outputStyle, "output", "o", "human", "specify the output style, supported styles: human, yaml, json")
	compareCmd.Flags().BoolVar(&plainMode, "plain", false, "disable color output")
	compareCmd.Flags().BoolVar(&omitHeader, "omit-header", false, "omit the summary banner")
	compareCmd.Flags().BoolVar(&exitWithCount, "set-exit-code", false, "set exit status to 1 if differences were found")
	compareCmd.Flags().BoolVar(&swapSides, "swap", false, "swap 'from' and 'to' for the comparison")
}
