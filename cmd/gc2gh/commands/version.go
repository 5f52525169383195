// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../commands.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gc2gh version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gc2gh %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
