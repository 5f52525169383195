// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package github

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/migration"
)

// API is the part of the GitHub client the importer uses.
type API interface {
	CreateMilestone(ctx context.Context, owner, repo string, ms migration.Milestone) (int, error)
	ImportIssue(ctx context.Context, owner, repo string, b migration.IssueBundle, milestone *int) (*ImportStatus, error)
}

// Importer pushes a migration bundle into one repository.
type Importer struct {
	api   API
	owner string
	repo  string
	log   zerolog.Logger
}

// ImportedIssue is an issue the import API accepted.
type ImportedIssue struct {
	Number   int
	ImportID int
	Status   string
	Errors   []string
}

// ImportFailure is an issue the import API rejected.
type ImportFailure struct {
	Number int
	Err    error
}

// ImportReport is the outcome of one bundle import.
type ImportReport struct {
	// Milestones maps bundle milestone numbers to the numbers GitHub assigned.
	Milestones map[int]int
	Issues     []ImportedIssue
	Failures   []ImportFailure
}

// NewImporter creates an importer for owner/repo.
func NewImporter(api API, owner, repo string, log zerolog.Logger) *Importer {
	return &Importer{api: api, owner: owner, repo: repo, log: log}
}

// Import creates every milestone, then submits every issue in bundle order.
// A milestone that cannot be created stops the import; a rejected issue is
// recorded and the import continues.
func (im *Importer) Import(ctx context.Context, bundle migration.Bundle) (*ImportReport, error) {
	report := &ImportReport{Milestones: make(map[int]int, len(bundle.Milestones))}

	for _, ms := range bundle.Milestones {
		number, err := im.api.CreateMilestone(ctx, im.owner, im.repo, ms)
		if err != nil {
			return report, fmt.Errorf("milestone %d (%s): %w", ms.Number, ms.Title, err)
		}
		report.Milestones[ms.Number] = number
		if number != ms.Number {
			im.log.Warn().Int("milestone", ms.Number).Int("assigned", number).Msg("milestone created with a different number")
		}
	}

	for _, b := range bundle.Issues {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var milestone *int
		if b.Issue.Milestone != nil {
			if assigned, ok := report.Milestones[b.Issue.Milestone.Number]; ok {
				milestone = &assigned
			}
		}

		status, err := im.api.ImportIssue(ctx, im.owner, im.repo, b, milestone)
		if err != nil {
			im.log.Error().Int("issue", b.Issue.Number).Err(err).Msg("issue import rejected")
			report.Failures = append(report.Failures, ImportFailure{Number: b.Issue.Number, Err: err})
			continue
		}

		im.log.Debug().Int("issue", b.Issue.Number).Int("import_id", status.ID).Str("status", status.Status).Msg("issue submitted")
		report.Issues = append(report.Issues, ImportedIssue{
			Number:   b.Issue.Number,
			ImportID: status.ID,
			Status:   status.Status,
			Errors:   status.Errors,
		})
	}

	return report, nil
}
