// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/export"
	"github.com/similigh/gc2gh/internal/migration"
)

// ClosingPlanFile is written under the output directory.
const ClosingPlanFile = "closing-plan.json"

// ClosingPlan builds the comments that point every source issue at its new location.
type ClosingPlan struct {
	closer pipeline.ClosingPoster
	log    zerolog.Logger
	dryRun bool
}

// NewClosingPlan creates a new closing_plan step.
func NewClosingPlan(deps *pipeline.Dependencies) *ClosingPlan {
	return &ClosingPlan{
		closer: deps.Closer,
		log:    deps.Logger.With().Str("step", "closing_plan").Logger(),
		dryRun: deps.DryRun,
	}
}

// Name returns the step name.
func (s *ClosingPlan) Name() string {
	return "closing_plan"
}

// Run writes the plan and, when a poster is configured, posts each comment in order.
func (s *ClosingPlan) Run(ctx *pipeline.Context) error {
	cfg := ctx.Config

	repo, err := cfg.Target.FullName()
	if err != nil {
		return err
	}

	updates, err := migration.ClosingUpdates(ctx.Issues, migration.CloseOptions{
		Author:          cfg.Source.Username,
		Repo:            repo,
		StartingIssueID: cfg.Target.StartingIssueID,
		ClosingStatus:   cfg.Source.ClosingStatus,
	})
	if err != nil {
		return err
	}
	ctx.Closing = updates

	if s.dryRun {
		for _, u := range updates {
			s.log.Info().Int("issue_id", u.IssueID).Str("target", u.TargetURL).Bool("already_closed", u.AlreadyClosed).Msg("would close")
		}
		return nil
	}

	path := filepath.Join(cfg.Output.Dir, ClosingPlanFile)
	if err := export.WriteClosingPlan(path, updates); err != nil {
		return err
	}
	ctx.Result.ClosingPlanPath = path
	s.log.Info().Str("path", path).Int("updates", len(updates)).Msg("closing plan written")

	if s.closer == nil {
		return nil
	}
	for _, u := range updates {
		if err := ctx.Ctx.Err(); err != nil {
			return err
		}
		if err := s.closer.PostClosingUpdate(ctx.Ctx, u); err != nil {
			return fmt.Errorf("failed to close source issue #%d: %w", u.IssueID, err)
		}
		ctx.Result.ClosingPosted++
	}
	return nil
}
