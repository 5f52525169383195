// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/migration"
)

// Transform runs the migrator over the loaded snapshot.
type Transform struct {
	log zerolog.Logger
	now func() time.Time
}

// NewTransform creates a new transform step.
func NewTransform(deps *pipeline.Dependencies) *Transform {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Transform{
		log: deps.Logger.With().Str("step", "transform").Logger(),
		now: now,
	}
}

// Name returns the step name.
func (s *Transform) Name() string {
	return "transform"
}

// Run transforms every issue, comment and milestone.
// Per-record failures are logged and counted; configuration problems fail the step.
func (s *Transform) Run(ctx *pipeline.Context) error {
	m, err := migration.NewMigrator(migration.Options{
		StartingIssueID: ctx.Config.Target.StartingIssueID,
		Milestones:      ctx.Milestones,
		Workers:         ctx.Config.Workers,
		Now:             s.now,
		Logger:          &s.log,
	})
	if err != nil {
		return err
	}

	result := m.Run(ctx.Issues)
	if len(ctx.Rejected) > 0 {
		result.Processed += len(ctx.Rejected)
		result.Failures = append(migration.RejectedRecords(ctx.Rejected), result.Failures...)
	}
	ctx.Migration = result

	ctx.Result.Processed = result.Processed
	ctx.Result.Issues = len(result.Bundle.Issues)
	ctx.Result.Milestones = len(result.Bundle.Milestones)
	ctx.Result.Failures = len(result.Failures)
	for _, f := range result.Failures {
		ctx.Result.Errors = append(ctx.Result.Errors, f)
	}

	s.log.Info().
		Str("run_id", ctx.RunID).
		Int("offset", m.Offset()).
		Int("issues", len(result.Bundle.Issues)).
		Int("failures", len(result.Failures)).
		Int("unresolved_milestones", len(result.Unresolved)).
		Msg("batch transformed")

	if result.Processed == 0 {
		ctx.Result.Skipped = true
		ctx.Result.SkipReason = "no issues in source snapshot"
		return pipeline.ErrSkipPipeline
	}
	return nil
}
