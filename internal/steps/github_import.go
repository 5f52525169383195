// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
)

// GitHubImport pushes the transformed bundle into the target repository.
type GitHubImport struct {
	importer pipeline.BundleImporter
	log      zerolog.Logger
	dryRun   bool
}

// NewGitHubImport creates a new github_import step.
func NewGitHubImport(deps *pipeline.Dependencies) (*GitHubImport, error) {
	if deps.Importer == nil && !deps.DryRun {
		return nil, fmt.Errorf("github_import needs a GitHub importer (set target.token) or dry-run mode")
	}
	return &GitHubImport{
		importer: deps.Importer,
		log:      deps.Logger.With().Str("step", "github_import").Logger(),
		dryRun:   deps.DryRun,
	}, nil
}

// Name returns the step name.
func (s *GitHubImport) Name() string {
	return "github_import"
}

// Run creates milestones and submits every issue with its comments.
func (s *GitHubImport) Run(ctx *pipeline.Context) error {
	if ctx.Migration == nil {
		return fmt.Errorf("no transformed bundle to import (run the transform step first)")
	}
	bundle := ctx.Migration.Bundle

	if s.dryRun {
		for _, ms := range bundle.Milestones {
			s.log.Info().Int("milestone", ms.Number).Str("title", ms.Title).Msg("would create milestone")
		}
		for _, b := range bundle.Issues {
			s.log.Info().Int("issue", b.Issue.Number).Int("comments", len(b.Comments)).Str("title", b.Issue.Title).Msg("would import issue")
		}
		return nil
	}

	report, err := s.importer.Import(ctx.Ctx, bundle)
	if report != nil {
		ctx.Result.MilestoneMap = report.Milestones
		ctx.Result.Imported = report.Issues
		for _, f := range report.Failures {
			ctx.Result.ImportFailures = append(ctx.Result.ImportFailures, fmt.Sprintf("#%d: %v", f.Number, f.Err))
			ctx.Result.Errors = append(ctx.Result.Errors, f.Err)
		}
	}
	if err != nil {
		return err
	}

	s.log.Info().
		Int("imported", len(report.Issues)).
		Int("rejected", len(report.Failures)).
		Int("milestones", len(report.Milestones)).
		Msg("bundle submitted")
	return nil
}
