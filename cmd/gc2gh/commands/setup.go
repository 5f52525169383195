// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/integrations/github"
)

// runOptions holds the flag values that override the config file.
type runOptions struct {
	issuesFile      string
	milestonesFile  string
	project         string
	repo            string
	owner           string
	startingIssueID int
	outDir          string
	tar             string
	workers         int
	workflow        string
	username        string
	closingStatus   string
	dryRun          bool
}

// bindSourceFlags registers the flags every command needs to read a snapshot
// and address the target repository.
func bindSourceFlags(cmd *cobra.Command, o *runOptions) {
	cmd.Flags().StringVar(&o.issuesFile, "file", "", "Path to the exported issue snapshot (JSON)")
	cmd.Flags().StringVar(&o.milestonesFile, "milestones", "", "Path to a JSON milestone list")
	cmd.Flags().StringVar(&o.project, "project", "", "Google Code project name")
	cmd.Flags().StringVar(&o.repo, "repo", "", "Target repository (owner/name, or name with --owner)")
	cmd.Flags().StringVar(&o.owner, "owner", "", "Target repository owner")
	cmd.Flags().IntVar(&o.startingIssueID, "starting-issue-id", 0, "Number the first source issue maps to on GitHub")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Report what would be written without writing it")
}

// githubToken returns the configured token, falling back to GITHUB_TOKEN.
func githubToken(cfg *config.Config) string {
	if cfg.Target.Token != "" {
		return cfg.Target.Token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// loadConfig resolves the config file, following any extends chain, and
// returns the defaults when no file is present.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		if cfgFile != "" {
			return nil, fmt.Errorf("config file not found: %s", cfgFile)
		}
		if verbose {
			fmt.Println("No configuration file found. Using defaults and flags.")
		}
		return config.Default(), nil
	}

	configToken := os.Getenv("GITHUB_TOKEN")
	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, path, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}
		if configToken == "" {
			return nil, fmt.Errorf("GITHUB_TOKEN required to fetch remote config %s", ref)
		}
		ghClient := github.NewClient(ctx, configToken)
		return ghClient.GetFileContent(ctx, org, repo, path, branch)
	}

	cfg, err := config.LoadWithInheritance(cfgPath, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}
	if verbose {
		fmt.Printf("Loaded config from %s\n", cfgPath)
	}
	return cfg, nil
}

// applyConfigOverrides applies command-line flag overrides to the configuration
func applyConfigOverrides(cfg *config.Config, o *runOptions) {
	override := func(name string, value interface{}) {
		if verbose {
			fmt.Printf("Override: %s = %v\n", name, value)
		}
	}

	if o.issuesFile != "" {
		cfg.Source.IssuesFile = o.issuesFile
		override("source.issues_file", o.issuesFile)
	}
	if o.milestonesFile != "" {
		cfg.Source.MilestonesFile = o.milestonesFile
		override("source.milestones_file", o.milestonesFile)
	}
	if o.project != "" {
		cfg.Source.Project = o.project
		override("source.project", o.project)
	}
	if o.username != "" {
		cfg.Source.Username = o.username
		override("source.username", o.username)
	}
	if o.closingStatus != "" {
		cfg.Source.ClosingStatus = o.closingStatus
		override("source.closing_status", o.closingStatus)
	}
	if o.repo != "" {
		cfg.Target.Repo = o.repo
		// A repo flag names its own owner unless one is given alongside it.
		cfg.Target.Owner = o.owner
		override("target.repo", o.repo)
	} else if o.owner != "" {
		cfg.Target.Owner = o.owner
		override("target.owner", o.owner)
	}
	if o.startingIssueID > 0 {
		cfg.Target.StartingIssueID = o.startingIssueID
		override("target.starting_issue_id", o.startingIssueID)
	}
	if o.outDir != "" {
		cfg.Output.Dir = o.outDir
		override("output.dir", o.outDir)
	}
	if o.tar != "" {
		cfg.Output.Tar = o.tar
		override("output.tar", o.tar)
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
		override("workers", o.workers)
	}
	if o.workflow != "" {
		cfg.Workflow = o.workflow
		cfg.Steps = nil
		override("workflow", o.workflow)
	}
}

// prepareConfig loads the config, applies flag overrides and validates the result.
func prepareConfig(ctx context.Context, o *runOptions) (*config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	applyConfigOverrides(cfg, o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
