// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/similigh/gc2gh/internal/migration"
)

// Manifest summarizes one migration run.
type Manifest struct {
	RunID           string          `json:"run_id"`
	GeneratedAt     string          `json:"generated_at"`
	Project         string          `json:"project,omitempty"`
	Repo            string          `json:"repo,omitempty"`
	StartingIssueID int             `json:"starting_issue_id"`
	Processed       int             `json:"processed"`
	Issues          int             `json:"issues"`
	Comments        int             `json:"comments"`
	Milestones      int             `json:"milestones"`
	Failures        []Failure       `json:"failures"`
	Unresolved      []UnresolvedRef `json:"unresolved_milestones"`
	Files           *Files          `json:"files,omitempty"`
}

// Failure is an excluded record.
type Failure struct {
	IssueID   int    `json:"issue_id"`
	CommentID int    `json:"comment_id,omitempty"`
	Kind      string `json:"kind"`
	Error     string `json:"error"`
}

// UnresolvedRef is a milestone label with no matching milestone.
type UnresolvedRef struct {
	IssueID   int    `json:"issue_id"`
	Milestone string `json:"milestone"`
}

// NewManifest summarizes a migration result.
func NewManifest(runID string, generatedAt time.Time, result *migration.Result) Manifest {
	m := Manifest{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Processed:   result.Processed,
		Issues:      len(result.Bundle.Issues),
		Milestones:  len(result.Bundle.Milestones),
		Failures:    make([]Failure, 0, len(result.Failures)),
		Unresolved:  make([]UnresolvedRef, 0, len(result.Unresolved)),
	}

	for _, b := range result.Bundle.Issues {
		m.Comments += len(b.Comments)
	}
	for _, f := range result.Failures {
		m.Failures = append(m.Failures, Failure{
			IssueID:   f.IssueID,
			CommentID: f.CommentID,
			Kind:      errorKind(f),
			Error:     f.Err.Error(),
		})
	}
	for _, u := range result.Unresolved {
		m.Unresolved = append(m.Unresolved, UnresolvedRef{IssueID: u.IssueID, Milestone: u.Milestone})
	}

	return m
}

// WriteManifest writes manifest.json under dir.
func WriteManifest(dir string, m Manifest) error {
	if err := writeJSON(filepath.Join(dir, ManifestFile), m); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads manifest.json from dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, migration.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, migration.ErrConfiguration):
		return "configuration"
	case errors.Is(err, migration.ErrUnresolvedReference):
		return "unresolved_reference"
	default:
		return "unknown"
	}
}
