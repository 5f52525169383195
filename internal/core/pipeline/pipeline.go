// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package pipeline provides the pipeline engine for gc2gh.
// It defines the Step interface and Context structure used by all pipeline steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/export"
	"github.com/similigh/gc2gh/internal/integrations/github"
	"github.com/similigh/gc2gh/internal/migration"
	"github.com/similigh/gc2gh/internal/source"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., nothing to migrate).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Result holds the accumulated results from pipeline execution.
type Result struct {
	RunID      string `json:"run_id"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`

	Processed  int `json:"processed"`
	Issues     int `json:"issues"`
	Milestones int `json:"milestones"`
	Failures   int `json:"failures"`

	OutputDir       string                 `json:"output_dir,omitempty"`
	Files           *export.Files          `json:"files,omitempty"`
	TarPath         string                 `json:"tar_path,omitempty"`
	ClosingPlanPath string                 `json:"closing_plan_path,omitempty"`
	ClosingPosted   int                    `json:"closing_posted,omitempty"`
	Imported        []github.ImportedIssue `json:"imported,omitempty"`
	ImportFailures  []string               `json:"import_failures,omitempty"`
	MilestoneMap    map[int]int            `json:"milestone_map,omitempty"`
	Errors          []error                `json:"-"`
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Config is the loaded configuration.
	Config *config.Config

	// RunID identifies this run in logs and the export manifest.
	RunID string

	// Issues is the loaded source snapshot.
	Issues []source.Issue

	// Rejected are snapshot elements that did not decode as issues.
	Rejected []*source.RecordError

	// Milestones are the milestone definitions of the batch.
	Milestones []source.Milestone

	// Migration holds the transformed bundle and its diagnostics.
	Migration *migration.Result

	// Closing holds the closing comments built for the source tracker.
	Closing []migration.ClosingUpdate

	// Result accumulates the processing results.
	Result *Result

	// Metadata allows steps to pass arbitrary data to subsequent steps.
	Metadata map[string]interface{}
}

// NewContext creates a new pipeline context for one run.
func NewContext(ctx context.Context, cfg *config.Config) *Context {
	runID := uuid.NewString()
	return &Context{
		Ctx:      ctx,
		Config:   cfg,
		RunID:    runID,
		Result:   &Result{RunID: runID},
		Metadata: make(map[string]interface{}),
	}
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful)
// and before any step once the context is cancelled.
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if ctx.Ctx != nil {
			if err := ctx.Ctx.Err(); err != nil {
				return fmt.Errorf("step '%s' not started: %w", step.Name(), err)
			}
		}
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				// Graceful early exit
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
