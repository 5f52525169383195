// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"fmt"
	"strings"

	"github.com/similigh/gc2gh/internal/source"
)

// DefaultClosingStatus is applied to open source issues when no status is configured.
const DefaultClosingStatus = "WontFix"

// CloseOptions configures the closing comments posted back to the source tracker.
type CloseOptions struct {
	// Author is the source account that posts the comments.
	Author string

	// Repo is the target repository in owner/name form.
	Repo string

	// StartingIssueID is the target number of source issue #1.
	StartingIssueID int

	// ClosingStatus is set on issues that are still open. Defaults to DefaultClosingStatus.
	ClosingStatus string
}

// ClosingUpdate is the comment that points one source issue at its new location.
type ClosingUpdate struct {
	IssueID       int            `json:"issue_id"`
	Project       string         `json:"project"`
	TargetNumber  int            `json:"target_number"`
	TargetURL     string         `json:"target_url"`
	AlreadyClosed bool           `json:"already_closed"`
	Author        *UserRef       `json:"author"`
	Comment       source.Comment `json:"comment"`
	Preview       string         `json:"preview"`
}

// ClosingUpdates builds one closing comment per source issue, in input order.
func ClosingUpdates(issues []source.Issue, opts CloseOptions) ([]ClosingUpdate, error) {
	if opts.StartingIssueID < 1 {
		return nil, configError("starting issue id must be a positive integer, got %d", opts.StartingIssueID)
	}
	if opts.Author == "" {
		return nil, configError("closing comments need a source author")
	}
	owner, name, ok := strings.Cut(opts.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, configError("target repository must be owner/name, got %q", opts.Repo)
	}

	status := opts.ClosingStatus
	if status == "" {
		status = DefaultClosingStatus
	}
	offset := opts.StartingIssueID - 1

	updates := make([]ClosingUpdate, 0, len(issues))
	for _, issue := range issues {
		number := issue.ID + offset
		url := fmt.Sprintf("https://github.com/%s/%s/issues/%d", owner, name, number)
		closed := NormalizeState(issue.State) == StateClosed

		content := "This issue has been moved to GitHub: " + url
		var issueUpdates *source.IssueUpdates
		if !closed {
			content = "Closing. " + content
			issueUpdates = &source.IssueUpdates{Status: &status}
		}

		comment := source.Comment{
			IssueID:      issue.ID,
			Project:      issue.Project,
			Author:       &source.Person{Email: opts.Author},
			Content:      content,
			IssueUpdates: issueUpdates,
		}

		updates = append(updates, ClosingUpdate{
			IssueID:       issue.ID,
			Project:       issue.Project,
			TargetNumber:  number,
			TargetURL:     url,
			AlreadyClosed: closed,
			Author:        userRef(opts.Author),
			Comment:       comment,
			Preview:       FormatMetadataUpdates(issueUpdates, issue.Project, offset),
		})
	}
	return updates, nil
}
