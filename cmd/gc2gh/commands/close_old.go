// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/similigh/gc2gh/internal/core/pipeline"
)

var closeOldOpts runOptions

// closeOldCmd represents the close-old command
var closeOldCmd = &cobra.Command{
	Use:   "close-old",
	Short: "Build the comments that close the source issues",
	Long: `Build one closing comment per source issue pointing at its new GitHub
location, and write them to closing-plan.json in the output directory.

Issues that are still open are also moved to the closing status
(default WontFix); issues already closed only get the pointer.

Example:
  gc2gh close-old --file issues.json --repo ariya/phantomjs \
    --starting-issue-id 10001 --username owner@example.com`,
	RunE: runCloseOld,
}

func init() {
	rootCmd.AddCommand(closeOldCmd)

	bindSourceFlags(closeOldCmd, &closeOldOpts)
	closeOldCmd.Flags().StringVar(&closeOldOpts.outDir, "out-dir", "", "Output directory (default: out/github-import)")
	closeOldCmd.Flags().StringVar(&closeOldOpts.username, "username", "", "Author of the closing comments")
	closeOldCmd.Flags().StringVar(&closeOldOpts.closingStatus, "closing-status", "", "Status for issues that are still open (default: WontFix)")
}

func runCloseOld(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := prepareConfig(ctx, &closeOldOpts)
	if err != nil {
		return err
	}
	if _, err := cfg.Target.FullName(); err != nil {
		return err
	}

	deps := &pipeline.Dependencies{
		Logger: commandLogger(),
		DryRun: closeOldOpts.dryRun,
		Now:    time.Now,
	}

	stepNames := pipeline.ResolveSteps(cfg.Steps, workflowOr(cfg, "close-old"))
	result, err := executeWorkflow(ctx, "gc2gh close-old", cfg, deps, stepNames)
	if err != nil {
		return err
	}

	if result.ClosingPlanPath != "" {
		fmt.Printf("\n✓ Closing plan written to %s\n", result.ClosingPlanPath)
	}
	return nil
}
