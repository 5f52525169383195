// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/export"
)

// ExportFiles writes the transformed bundle and its manifest to the output directory.
type ExportFiles struct {
	log    zerolog.Logger
	now    func() time.Time
	dryRun bool
}

// NewExportFiles creates a new export_files step.
func NewExportFiles(deps *pipeline.Dependencies) *ExportFiles {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &ExportFiles{
		log:    deps.Logger.With().Str("step", "export_files").Logger(),
		now:    now,
		dryRun: deps.DryRun,
	}
}

// Name returns the step name.
func (s *ExportFiles) Name() string {
	return "export_files"
}

// Run writes milestones/, issues/ and manifest.json.
func (s *ExportFiles) Run(ctx *pipeline.Context) error {
	if ctx.Migration == nil {
		return fmt.Errorf("no transformed bundle to export (run the transform step first)")
	}

	dir := ctx.Config.Output.Dir
	ctx.Result.OutputDir = dir

	if s.dryRun {
		s.log.Info().Str("dir", dir).Int("issues", len(ctx.Migration.Bundle.Issues)).Msg("dry run, not writing bundle")
		return nil
	}

	files, err := export.WriteBundle(dir, ctx.Migration.Bundle)
	if err != nil {
		return err
	}
	ctx.Result.Files = files

	manifest := export.NewManifest(ctx.RunID, s.now(), ctx.Migration)
	manifest.Project = ctx.Config.Source.Project
	manifest.StartingIssueID = ctx.Config.Target.StartingIssueID
	if ctx.Config.Target.Repo != "" {
		if repo, err := ctx.Config.Target.FullName(); err == nil {
			manifest.Repo = repo
		}
	}
	manifest.Files = files
	if err := export.WriteManifest(dir, manifest); err != nil {
		return err
	}

	s.log.Info().Str("dir", dir).Int("documents", files.Total()).Msg("bundle written")
	return nil
}
