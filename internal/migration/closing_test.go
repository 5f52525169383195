// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"errors"
	"testing"

	"github.com/similigh/gc2gh/internal/source"
)

func TestClosingUpdates(t *testing.T) {
	issues := []source.Issue{
		{ID: 1, Project: "phantomjs", State: "open"},
		{ID: 2, Project: "phantomjs", State: "closed"},
	}

	updates, err := ClosingUpdates(issues, CloseOptions{
		Author:          "migrator@example.com",
		Repo:            "ariya/phantomjs",
		StartingIssueID: 11,
	})
	if err != nil {
		t.Fatalf("ClosingUpdates() error = %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates, got %d", len(updates))
	}

	open := updates[0]
	if open.TargetNumber != 11 || open.TargetURL != "https://github.com/ariya/phantomjs/issues/11" {
		t.Errorf("Unexpected target %d %q", open.TargetNumber, open.TargetURL)
	}
	if open.AlreadyClosed {
		t.Error("Expected open issue to be reported as open")
	}
	if open.Comment.Content != "Closing. This issue has been moved to GitHub: https://github.com/ariya/phantomjs/issues/11" {
		t.Errorf("Unexpected content %q", open.Comment.Content)
	}
	if open.Comment.IssueUpdates == nil || *open.Comment.IssueUpdates.Status != DefaultClosingStatus {
		t.Errorf("Expected status %q, got %+v", DefaultClosingStatus, open.Comment.IssueUpdates)
	}
	if open.Preview != header+" - **Status updated:** WontFix\r\n" {
		t.Errorf("Unexpected preview %q", open.Preview)
	}
	if open.Author == nil || open.Author.Email != "migrator@example.com" {
		t.Errorf("Unexpected author %+v", open.Author)
	}

	closed := updates[1]
	if !closed.AlreadyClosed {
		t.Error("Expected closed issue to be reported as closed")
	}
	if closed.Comment.Content != "This issue has been moved to GitHub: https://github.com/ariya/phantomjs/issues/12" {
		t.Errorf("Unexpected content %q", closed.Comment.Content)
	}
	if closed.Comment.IssueUpdates != nil || closed.Preview != "" {
		t.Errorf("Expected no status change for a closed issue, got %+v %q", closed.Comment.IssueUpdates, closed.Preview)
	}
}

func TestClosingUpdates_CustomStatus(t *testing.T) {
	updates, err := ClosingUpdates([]source.Issue{{ID: 1, State: "open"}}, CloseOptions{
		Author:          "me",
		Repo:            "o/r",
		StartingIssueID: 1,
		ClosingStatus:   "Migrated",
	})
	if err != nil {
		t.Fatalf("ClosingUpdates() error = %v", err)
	}
	if got := *updates[0].Comment.IssueUpdates.Status; got != "Migrated" {
		t.Errorf("Expected Migrated, got %q", got)
	}
}

func TestClosingUpdates_Configuration(t *testing.T) {
	tests := []struct {
		name string
		opts CloseOptions
	}{
		{"zero start", CloseOptions{Author: "me", Repo: "o/r", StartingIssueID: 0}},
		{"no author", CloseOptions{Repo: "o/r", StartingIssueID: 1}},
		{"repo without owner", CloseOptions{Author: "me", Repo: "repo", StartingIssueID: 1}},
		{"repo with extra segment", CloseOptions{Author: "me", Repo: "o/r/x", StartingIssueID: 1}},
		{"empty repo name", CloseOptions{Author: "me", Repo: "o/", StartingIssueID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClosingUpdates(nil, tt.opts)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
		})
	}
}
