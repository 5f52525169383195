// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package steps contains the pipeline steps a migration run is assembled from.
// Each step implements the pipeline.Step interface.
package steps

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/migration"
	"github.com/similigh/gc2gh/internal/source"
)

// LoadSource reads the source snapshot and the milestone definitions.
type LoadSource struct {
	log zerolog.Logger
}

// NewLoadSource creates a new load_source step.
func NewLoadSource(deps *pipeline.Dependencies) *LoadSource {
	return &LoadSource{log: deps.Logger.With().Str("step", "load_source").Logger()}
}

// Name returns the step name.
func (s *LoadSource) Name() string {
	return "load_source"
}

// Run loads issues and milestones into the context.
// Issues already present in the context are kept.
func (s *LoadSource) Run(ctx *pipeline.Context) error {
	src := ctx.Config.Source

	if len(ctx.Issues) == 0 {
		if src.IssuesFile == "" {
			return fmt.Errorf("%w: source.issues_file is not set", migration.ErrConfiguration)
		}
		issues, rejected, err := source.LoadIssues(src.IssuesFile, src.Project)
		if err != nil {
			return err
		}
		for _, r := range rejected {
			s.log.Warn().Int("index", r.Index).Int("issue_id", r.ID).Err(r.Err).Msg("snapshot record does not decode, excluding it")
		}
		ctx.Issues = issues
		ctx.Rejected = rejected
	}

	if src.MilestonesFile != "" {
		milestones, err := source.LoadMilestones(src.MilestonesFile)
		if err != nil {
			return err
		}
		ctx.Milestones = milestones
	} else if len(ctx.Milestones) == 0 {
		ctx.Milestones = ctx.Config.Milestones
	}

	comments := 0
	for _, issue := range ctx.Issues {
		comments += len(issue.Comments)
	}
	s.log.Info().
		Str("run_id", ctx.RunID).
		Int("issues", len(ctx.Issues)).
		Int("rejected", len(ctx.Rejected)).
		Int("comments", comments).
		Int("milestones", len(ctx.Milestones)).
		Msg("source loaded")

	return nil
}
