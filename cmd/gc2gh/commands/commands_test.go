// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/core/config"
	"github.com/similigh/gc2gh/internal/core/pipeline"
	"github.com/similigh/gc2gh/internal/migration"
	"github.com/similigh/gc2gh/internal/tui"
)

const testSnapshot = `[
  {
    "id": 7,
    "title": "Render glitch",
    "content": "Text is clipped.",
    "labels": ["Type-Defect"],
    "state": "open",
    "published": "2012-06-21T07:08:09.000Z",
    "updated": "2012-06-21T07:08:09.000Z",
    "author": {"displayName": "ariya", "uri": "https://code.google.com/u/ariya/", "email": "ariya@example.com"},
    "comments": []
  }
]`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "issues.json")
	if err := os.WriteFile(path, []byte(testSnapshot), 0644); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	return path
}

func TestApplyConfigOverrides(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		opts runOptions
		want config.Config
	}{
		{
			name: "no flags keeps config",
			cfg: config.Config{
				Source:  config.SourceConfig{IssuesFile: "a.json", Project: "p"},
				Target:  config.TargetConfig{Repo: "o/r", StartingIssueID: 5},
				Workers: 2,
			},
			want: config.Config{
				Source:  config.SourceConfig{IssuesFile: "a.json", Project: "p"},
				Target:  config.TargetConfig{Repo: "o/r", StartingIssueID: 5},
				Workers: 2,
			},
		},
		{
			name: "flags win",
			cfg: config.Config{
				Source:  config.SourceConfig{IssuesFile: "a.json", Project: "p"},
				Target:  config.TargetConfig{Repo: "r", Owner: "o", StartingIssueID: 5},
				Output:  config.OutputConfig{Dir: "out"},
				Workers: 2,
				Steps:   []string{"load_source"},
			},
			opts: runOptions{
				issuesFile:      "b.json",
				project:         "q",
				repo:            "x/y",
				startingIssueID: 100,
				outDir:          "elsewhere",
				tar:             "bundle.tar",
				workers:         8,
				workflow:        "migrate-tar",
			},
			want: config.Config{
				Source:   config.SourceConfig{IssuesFile: "b.json", Project: "q"},
				Target:   config.TargetConfig{Repo: "x/y", StartingIssueID: 100},
				Output:   config.OutputConfig{Dir: "elsewhere", Tar: "bundle.tar"},
				Workers:  8,
				Workflow: "migrate-tar",
			},
		},
		{
			name: "owner alone",
			cfg:  config.Config{Target: config.TargetConfig{Repo: "r", Owner: "o"}},
			opts: runOptions{owner: "other", username: "me@example.com", closingStatus: "Migrated"},
			want: config.Config{
				Source: config.SourceConfig{Username: "me@example.com", ClosingStatus: "Migrated"},
				Target: config.TargetConfig{Repo: "r", Owner: "other"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			applyConfigOverrides(&cfg, &tt.opts)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMigrateWorkflow(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "default", want: "migrate"},
		{name: "tar path", cfg: config.Config{Output: config.OutputConfig{Tar: "x.tar"}}, want: "migrate-tar"},
		{name: "explicit workflow", cfg: config.Config{Workflow: "import", Output: config.OutputConfig{Tar: "x.tar"}}, want: "import"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := migrateWorkflow(&tt.cfg); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	oldCfg, oldVerbose := cfgFile, verbose
	t.Cleanup(func() { cfgFile, verbose = oldCfg, oldVerbose })
	verbose = false

	path := filepath.Join(t.TempDir(), "gc2gh.yaml")
	content := "source:\n  project: phantomjs\ntarget:\n  repo: ariya/phantomjs\n  starting_issue_id: 10001\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfgFile = path
	cfg, err := loadConfig(context.Background())
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Target.StartingIssueID != 10001 || cfg.Source.Project != "phantomjs" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Workers != config.DefaultWorkers {
		t.Errorf("Expected default workers, got %d", cfg.Workers)
	}

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadConfig(context.Background()); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestPrepareConfig_Invalid(t *testing.T) {
	oldCfg := cfgFile
	t.Cleanup(func() { cfgFile = oldCfg })
	cfgFile = ""
	oldWd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	_, err := prepareConfig(context.Background(), &runOptions{issuesFile: "x.json"})
	if !errors.Is(err, migration.ErrConfiguration) {
		t.Errorf("Expected configuration error for missing starting id, got %v", err)
	}
}

type failingStep struct{ err error }

func (s *failingStep) Name() string                    { return "failing" }
func (s *failingStep) Run(ctx *pipeline.Context) error { return s.err }

func TestStatusReportingStep(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
	}{
		{name: "success", wantStatus: tui.StatusSuccess},
		{name: "skip", err: pipeline.ErrSkipPipeline, wantStatus: tui.StatusSkipped},
		{name: "failure", err: errors.New("boom"), wantStatus: tui.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []tui.PipelineStatusMsg
			step := &statusReportingStep{
				inner:  &failingStep{err: tt.err},
				report: func(msg tui.PipelineStatusMsg) { got = append(got, msg) },
			}

			ctx := pipeline.NewContext(context.Background(), config.Default())
			if err := step.Run(ctx); !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}

			if len(got) != 2 {
				t.Fatalf("Expected 2 status messages, got %d", len(got))
			}
			if got[0].Status != tui.StatusStarted || got[1].Status != tt.wantStatus {
				t.Errorf("Unexpected statuses: %q, %q", got[0].Status, got[1].Status)
			}
		})
	}
}

func TestRunPipeline(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := config.Default()
	cfg.Source.IssuesFile = writeSnapshot(t)
	cfg.Source.Project = "phantomjs"
	cfg.Target.Repo = "ariya/phantomjs"
	cfg.Target.StartingIssueID = 100
	cfg.Output.Dir = outDir

	deps := &pipeline.Dependencies{
		Logger: zerolog.Nop(),
		Now:    func() time.Time { return time.Date(2015, time.March, 12, 0, 0, 0, 0, time.UTC) },
	}

	var statuses []string
	report := func(msg tui.PipelineStatusMsg) { statuses = append(statuses, msg.Step+":"+msg.Status) }

	result, err := runPipeline(context.Background(), cfg, deps, pipeline.ResolveSteps(nil, "migrate"), report)
	if err != nil {
		t.Fatalf("runPipeline failed: %v", err)
	}

	want := []string{
		"load_source:started", "load_source:success",
		"transform:started", "transform:success",
		"export_files:started", "export_files:success",
	}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
	if result.Issues != 1 || result.Failures != 0 {
		t.Errorf("Unexpected result: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(outDir, "issues", "106.json")); err != nil {
		t.Errorf("Expected issues/106.json: %v", err)
	}

	var buf bytes.Buffer
	if err := printResult(&buf, result); err != nil {
		t.Fatalf("printResult failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Result is not JSON: %v", err)
	}
	if decoded["run_id"] != result.RunID {
		t.Errorf("Expected run_id %q, got %v", result.RunID, decoded["run_id"])
	}
}

func TestRunPipeline_UnknownStep(t *testing.T) {
	var statuses []tui.PipelineStatusMsg
	report := func(msg tui.PipelineStatusMsg) { statuses = append(statuses, msg) }

	_, err := runPipeline(context.Background(), config.Default(), &pipeline.Dependencies{}, []string{"nope"}, report)
	if err == nil {
		t.Fatal("Expected error for unknown step")
	}
	if len(statuses) != 1 || statuses[0].Step != "init" || statuses[0].Status != tui.StatusError {
		t.Errorf("Expected init error status, got %+v", statuses)
	}
}

func TestPlainReporter(t *testing.T) {
	var buf bytes.Buffer
	report := plainReporter(&buf)
	report(tui.PipelineStatusMsg{Step: "transform", Status: tui.StatusStarted, Message: "Starting..."})
	report(tui.PipelineStatusMsg{Step: "transform", Status: tui.StatusSkipped})

	want := "[gc2gh] transform: started (Starting...)\n[gc2gh] transform: skipped\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestGitHubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	if got := githubToken(&config.Config{Target: config.TargetConfig{Token: "from-config"}}); got != "from-config" {
		t.Errorf("Expected config token, got %q", got)
	}
	if got := githubToken(&config.Config{}); got != "from-env" {
		t.Errorf("Expected env token, got %q", got)
	}
}

func TestNewGitHubImporter_NoToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	cfg := &config.Config{Target: config.TargetConfig{Repo: "ariya/phantomjs"}}

	if _, err := newGitHubImporter(context.Background(), cfg, &pipeline.Dependencies{}); err == nil {
		t.Error("Expected error without a token")
	}
}
