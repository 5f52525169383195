// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/integrations/github"
)

var importOpts runOptions

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Push a migrated snapshot into a GitHub repository",
	Long: `Transform the snapshot and push it into the target repository through
GitHub's issue import API. Milestones are created first; each issue is then
submitted together with its comments, in order.

The token is read from target.token in the config or from GITHUB_TOKEN.
With --dry-run the milestones and issues are listed without calling GitHub.`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	bindSourceFlags(importCmd, &importOpts)
	importCmd.Flags().IntVar(&importOpts.workers, "workers", 0, "Number of concurrent transform workers")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := prepareConfig(ctx, &importOpts)
	if err != nil {
		return err
	}

	deps := &pipeline.Dependencies{
		Logger: commandLogger(),
		DryRun: importOpts.dryRun,
		Now:    time.Now,
	}
	if !deps.DryRun {
		importer, err := newGitHubImporter(ctx, cfg, deps)
		if err != nil {
			return err
		}
		deps.Importer = importer
	}

	stepNames := pipeline.ResolveSteps(cfg.Steps, workflowOr(cfg, "import"))
	result, err := executeWorkflow(ctx, "gc2gh import", cfg, deps, stepNames)
	if err != nil {
		return err
	}

	fmt.Printf("\n✓ Import completed: %d submitted, %d rejected, %d milestones\n",
		len(result.Imported), len(result.ImportFailures), len(result.MilestoneMap))
	if len(result.ImportFailures) > 0 {
		return fmt.Errorf("%d issues were rejected by GitHub", len(result.ImportFailures))
	}
	return nil
}

// newGitHubImporter builds an importer for the configured target repository.
func newGitHubImporter(ctx context.Context, cfg *config.Config, deps *pipeline.Dependencies) (*github.Importer, error) {
	owner, name, err := cfg.Target.Ref()
	if err != nil {
		return nil, err
	}
	token := githubToken(cfg)
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN or target.token required to import into %s/%s", owner, name)
	}
	client := github.NewClient(ctx, token)
	return github.NewImporter(client, owner, name, deps.Logger.With().Str("repo", owner+"/"+name).Logger()), nil
}

// workflowOr returns the configured workflow, or fallback when none is set.
func workflowOr(cfg *config.Config, fallback string) string {
	if cfg.Workflow != "" {
		return cfg.Workflow
	}
	return fallback
}
