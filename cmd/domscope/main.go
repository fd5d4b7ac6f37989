// Command domscope visualizes the element tree of an HTML document as
// an interactive diagram in the terminal.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootSelector string

var rootCmd = &cobra.Command{
	Use:   "domscope",
	Short: "Interactive DOM tree visualizer",
	Long: `Domscope fetches an HTML document and draws its element tree as a
layered node diagram. Click a node to drill down into its subtree, click
the corner glyph to navigate back, hover to inspect.`,
	SilenceUsage: true,
}

var viewCmd = &cobra.Command{
	Use:   "view [url-or-file]",
	Short: "Explore a document interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := ""
		if len(args) > 0 {
			location = args[0]
		}
		return runTUI(location, rootSelector)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree <url-or-file>",
	Short: "Print the layout-annotated element tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd, args[0], rootSelector)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <url-or-file>",
	Short: "Print a summary of the document index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootSelector, "root", "",
		"CSS selector picking the subtree to visualize")
	rootCmd.AddCommand(viewCmd, treeCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
