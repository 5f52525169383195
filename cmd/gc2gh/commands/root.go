// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package commands implements the gc2gh command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gc2gh",
	Short: "Migrate Google Code issues to GitHub",
	Long: `gc2gh converts an exported Google Code issue snapshot into GitHub's
issue import format. Issues keep their ids (shifted by the starting id),
metadata changes become readable comments, and milestones are carried over.

Use "migrate" to write the import bundle, "import" to push it to a
repository, and "close-old" to build the comments that close the source issues.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .gc2gh.yaml or .github/gc2gh.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
