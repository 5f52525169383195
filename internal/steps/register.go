// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package steps

import (
	"github.com/similigh/gc2gh/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("load_source", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewLoadSource(deps), nil
	})

	r.Register("transform", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewTransform(deps), nil
	})

	r.Register("export_files", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewExportFiles(deps), nil
	})

	r.Register("export_tar", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewExportTar(deps), nil
	})

	r.Register("github_import", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		step, err := NewGitHubImport(deps)
		if err != nil {
			return nil, err
		}
		return step, nil
	})

	r.Register("closing_plan", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewClosingPlan(deps), nil
	})
}
