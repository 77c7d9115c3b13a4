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

	"github.com/gonvenience/bunt"
	"github.com/gonvenience/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var colormode string
var truecolormode string
var debugMode bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "difftree",
	Long: `
difftree builds a structured diff of two file trees, annotating every
changed file and directory with its status and line-level change counts,
and detecting files that were renamed or moved between the two snapshots.
`,
}

// NewRootCmd returns the root cobra command, for hosts that want to
// inspect or render it (e.g. documentation generation) without invoking it.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd. The returned error is either nil, an ExitCode value
// for a subcommand that finished with a specific status, or a plain error
// for anything cobra itself rejected (bad flags, unknown subcommand) or a
// subcommand failure such as an input that could not be loaded.
func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.Flags().SortFlags = false
	rootCmd.PersistentFlags().SortFlags = false

	rootCmd.PersistentFlags().StringVarP(&colormode, "color", "c", "auto", "specify color usage: on, off, or auto")
	rootCmd.PersistentFlags().StringVarP(&truecolormode, "truecolor", "t", "auto", "specify true color usage: on, off, or auto")
	rootCmd.PersistentFlags().IntVarP(&term.FixedTerminalWidth, "fixed-width", "w", -1, "disable terminal width detection and use provided fixed value")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug mode")

	viper.SetEnvPrefix("DIFFTREE")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("truecolor", rootCmd.PersistentFlags().Lookup("truecolor"))
}

func initSettings() {
	var err error

	colormode = viper.GetString("color")
	truecolormode = viper.GetString("truecolor")

	bunt.ColorSetting, err = bunt.ParseSetting(colormode)
	if err != nil {
		exitWithError("Invalid color setting", err)
	}

	bunt.TrueColorSetting, err = bunt.ParseSetting(truecolormode)
	if err != nil {
		exitWithError("Invalid true color setting", err)
	}

	if debugMode {
		enableDebugLogging()
	}
}

// exitWithError prints text and the error message, then exits the program
// with a non-zero status.
func exitWithError(text string, err error) {
	if err != nil {
		fmt.Printf("%s: %s\n", text, bunt.Colorize(err.Error(), bunt.Red))
	} else {
		fmt.Print(text)
	}

	os.Exit(1)
}
