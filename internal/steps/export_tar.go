// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/export"
)

// DefaultTarName is the archive written next to the output directory when no path is configured.
const DefaultTarName = "github-importable-issues.tar"

// ExportTar packages the output directory into a tar archive.
type ExportTar struct {
	log    zerolog.Logger
	dryRun bool
}

// NewExportTar creates a new export_tar step.
func NewExportTar(deps *pipeline.Dependencies) *ExportTar {
	return &ExportTar{
		log:    deps.Logger.With().Str("step", "export_tar").Logger(),
		dryRun: deps.DryRun,
	}
}

// Name returns the step name.
func (s *ExportTar) Name() string {
	return "export_tar"
}

// Run writes the archive.
func (s *ExportTar) Run(ctx *pipeline.Context) error {
	dir := ctx.Config.Output.Dir
	tarPath := ctx.Config.Output.Tar
	if tarPath == "" {
		tarPath = filepath.Join(filepath.Dir(filepath.Clean(dir)), DefaultTarName)
		s.log.Warn().Str("tar", tarPath).Msg("no archive path configured, using default")
	}
	ctx.Result.TarPath = tarPath

	if s.dryRun {
		s.log.Info().Str("tar", tarPath).Msg("dry run, not writing archive")
		return nil
	}

	count, err := export.WriteTar(dir, tarPath)
	if err != nil {
		return err
	}

	s.log.Info().Str("tar", tarPath).Int("files", count).Msg("archive written")
	return nil
}
