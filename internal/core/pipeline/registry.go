// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/integrations/github"
	"github.com/similigh/gc2gh/internal/migration"
)

// DefaultWorkflow is used when neither steps nor a workflow are configured.
const DefaultWorkflow = "migrate"

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
// It receives dependencies (like clients, config) as parameters.
type StepFactory func(deps *Dependencies) (Step, error)

// BundleImporter pushes a bundle into the target tracker.
type BundleImporter interface {
	Import(ctx context.Context, bundle migration.Bundle) (*github.ImportReport, error)
}

// ClosingPoster posts a closing comment to the source tracker.
type ClosingPoster interface {
	PostClosingUpdate(ctx context.Context, update migration.ClosingUpdate) error
}

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	// Importer pushes bundles to the target tracker. Required by github_import unless DryRun.
	Importer BundleImporter

	// Closer posts closing comments. Optional; without it the plan is only written.
	Closer ClosingPoster

	// Logger receives step diagnostics.
	Logger zerolog.Logger

	// DryRun reports what would be written or pushed without doing it.
	DryRun bool

	// Now supplies the migration date. Defaults to time.Now.
	Now func() time.Time
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered step names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// migrate: transform the snapshot and write the bundle directory
	"migrate": {
		"load_source",
		"transform",
		"export_files",
	},

	// migrate-tar: same as migrate, then package the directory
	"migrate-tar": {
		"load_source",
		"transform",
		"export_files",
		"export_tar",
	},

	// import: transform and push straight to the target repository
	"import": {
		"load_source",
		"transform",
		"github_import",
	},

	// close-old: build the closing comments for the source tracker
	"close-old": {
		"load_source",
		"closing_plan",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// ResolveSteps determines the steps to use based on config.
// Priority: explicit steps > workflow preset > default
func ResolveSteps(explicitSteps []string, workflow string) []string {
	if len(explicitSteps) > 0 {
		return explicitSteps
	}
	if workflow != "" {
		if preset, ok := GetPreset(workflow); ok {
			return preset
		}
	}
	return Presets[DefaultWorkflow]
}
