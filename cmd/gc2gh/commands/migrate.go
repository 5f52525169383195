// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/logger"
)

var migrateOpts runOptions

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Transform a Google Code snapshot into a GitHub import bundle",
	Long: `Transform an exported Google Code issue snapshot into GitHub's issue
import format and write it to the output directory:

  milestones/<number>.json
  issues/<number>.json
  issues/<number>.comments.json
  manifest.json

Records that fail validation are excluded and listed in the manifest.
With --tar the directory is also packaged into a single archive.

Example:
  gc2gh migrate --file issues.json --project phantomjs \
    --repo ariya/phantomjs --starting-issue-id 10001 --tar`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	bindSourceFlags(migrateCmd, &migrateOpts)
	migrateCmd.Flags().StringVar(&migrateOpts.outDir, "out-dir", "", "Output directory (default: out/github-import)")
	migrateCmd.Flags().StringVar(&migrateOpts.tar, "tar", "", "Also write the bundle as a tar archive at this path")
	migrateCmd.Flags().IntVar(&migrateOpts.workers, "workers", 0, "Number of concurrent transform workers")
	migrateCmd.Flags().StringVar(&migrateOpts.workflow, "workflow", "", "Workflow preset to run (default: migrate, or migrate-tar with --tar)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := prepareConfig(ctx, &migrateOpts)
	if err != nil {
		return err
	}

	stepNames := pipeline.ResolveSteps(cfg.Steps, migrateWorkflow(cfg))
	deps := &pipeline.Dependencies{
		Logger: commandLogger(),
		DryRun: migrateOpts.dryRun,
		Now:    time.Now,
	}
	if deps.DryRun && verbose {
		fmt.Println("✓ Dry-run mode enabled (nothing will be written)")
	}

	result, err := executeWorkflow(ctx, "gc2gh migrate", cfg, deps, stepNames)
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Migration completed: %d issues, %d milestones, %d excluded\n",
		result.Issues, result.Milestones, result.Failures)
	return nil
}

// migrateWorkflow picks migrate-tar when an archive path is configured.
func migrateWorkflow(cfg *config.Config) string {
	if cfg.Output.Tar != "" {
		return workflowOr(cfg, "migrate-tar")
	}
	return workflowOr(cfg, pipeline.DefaultWorkflow)
}

// commandLogger writes step diagnostics to stderr. While the TUI owns the
// terminal only warnings get through unless --verbose is set.
func commandLogger() zerolog.Logger {
	interactive := logger.IsInteractive(os.Stdout)
	log := logger.New(verbose, logger.IsInteractive(os.Stderr))
	if interactive && !verbose {
		log = log.Level(zerolog.WarnLevel)
	}
	return log
}
