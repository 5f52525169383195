// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/logger"
	"github.com/similigh/gc2gh/internal/steps"
	"github.com/similigh/gc2gh/internal/tui"
)

// Wrapper step to send status updates
type statusReportingStep struct {
	inner  pipeline.Step
	report func(tui.PipelineStatusMsg)
}

func (s *statusReportingStep) Name() string {
	return s.inner.Name()
}

func (s *statusReportingStep) Run(ctx *pipeline.Context) error {
	s.report(tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusStarted, Message: "Starting..."})

	err := s.inner.Run(ctx)

	if err != nil {
		if errors.Is(err, pipeline.ErrSkipPipeline) {
			s.report(tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSkipped, Message: ctx.Result.SkipReason})
			return err
		}
		s.report(tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusError, Message: err.Error()})
		return err
	}

	s.report(tui.PipelineStatusMsg{Step: s.Name(), Status: tui.StatusSuccess, Message: "Completed"})
	return nil
}

// runPipeline builds the named steps and runs them, reporting every step transition.
func runPipeline(ctx context.Context, cfg *config.Config, deps *pipeline.Dependencies, stepNames []string, report func(tui.PipelineStatusMsg)) (*pipeline.Result, error) {
	pCtx := pipeline.NewContext(ctx, cfg)

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	builtSteps, err := registry.BuildFromNames(stepNames, deps)
	if err != nil {
		report(tui.PipelineStatusMsg{Step: "init", Status: tui.StatusError, Message: err.Error()})
		return pCtx.Result, err
	}

	var wrappedSteps []pipeline.Step
	for _, step := range builtSteps.Steps() {
		wrappedSteps = append(wrappedSteps, &statusReportingStep{inner: step, report: report})
	}

	if err := pipeline.New(wrappedSteps...).Run(pCtx); err != nil {
		return pCtx.Result, err
	}
	return pCtx.Result, nil
}

// executeWorkflow runs the workflow with the TUI on an interactive terminal
// and with plain progress lines everywhere else, then prints the result as JSON.
func executeWorkflow(ctx context.Context, title string, cfg *config.Config, deps *pipeline.Dependencies, stepNames []string) (*pipeline.Result, error) {
	if verbose {
		fmt.Printf("Pipeline steps: %v\n", stepNames)
	}

	var (
		result *pipeline.Result
		err    error
	)
	if logger.IsInteractive(os.Stdout) {
		result, err = runInteractive(ctx, title, cfg, deps, stepNames)
	} else {
		fmt.Println("[gc2gh] Running in non-interactive mode (no TUI)")
		result, err = runPipeline(ctx, cfg, deps, stepNames, plainReporter(os.Stdout))
	}
	if err != nil {
		return result, err
	}

	if err := printResult(os.Stdout, result); err != nil {
		return result, err
	}
	return result, nil
}

func runInteractive(ctx context.Context, title string, cfg *config.Config, deps *pipeline.Dependencies, stepNames []string) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	statusChan := make(chan tui.PipelineStatusMsg)
	p := tea.NewProgram(tui.NewModel(title, stepNames, statusChan))

	var (
		result *pipeline.Result
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		report := func(msg tui.PipelineStatusMsg) {
			select {
			case statusChan <- msg:
			case <-ctx.Done():
			}
		}
		result, runErr = runPipeline(ctx, cfg, deps, stepNames, report)
		close(statusChan)
		if runErr != nil {
			p.Send(tui.ResultMsg{Success: false, Output: runErr.Error()})
			return
		}
		p.Send(tui.ResultMsg{Success: true})
	}()

	_, tuiErr := p.Run()
	// Quitting the TUI cancels a run that is still going.
	cancel()
	<-done

	if tuiErr != nil {
		return result, fmt.Errorf("error running TUI: %w", tuiErr)
	}
	return result, runErr
}

// plainReporter prints one line per step transition.
func plainReporter(w io.Writer) func(tui.PipelineStatusMsg) {
	return func(msg tui.PipelineStatusMsg) {
		if msg.Message == "" {
			fmt.Fprintf(w, "[gc2gh] %s: %s\n", msg.Step, msg.Status)
			return
		}
		fmt.Fprintf(w, "[gc2gh] %s: %s (%s)\n", msg.Step, msg.Status, msg.Message)
	}
}

func printResult(w io.Writer, result *pipeline.Result) error {
	resultBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(resultBytes))
	return err
}
