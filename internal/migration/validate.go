// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import "github.com/similigh/gc2gh/internal/source"

// validateIssue checks the fields the issue transformer depends on.
func validateIssue(issue *source.Issue) error {
	if issue == nil {
		return &RecordError{Err: invalidInput("issue is empty")}
	}
	if issue.ID <= 0 {
		return &RecordError{IssueID: issue.ID, Err: invalidInput("issue id must be positive, got %d", issue.ID)}
	}
	if issue.Author == nil {
		return &RecordError{IssueID: issue.ID, Err: invalidInput("issue has no author")}
	}
	return nil
}

// validateComment checks the fields the comment transformer depends on.
func validateComment(c *source.Comment) error {
	if c == nil {
		return &RecordError{Err: invalidInput("comment is empty")}
	}
	if c.Author == nil {
		return &RecordError{IssueID: c.IssueID, CommentID: c.ID, Err: invalidInput("comment has no author")}
	}
	if c.IssueUpdates != nil && c.IssueUpdates.MergedInto != nil && *c.IssueUpdates.MergedInto <= 0 {
		return &RecordError{IssueID: c.IssueID, CommentID: c.ID, Err: invalidInput("mergedInto must be a positive issue id, got %d", *c.IssueUpdates.MergedInto)}
	}
	return nil
}

// RejectedRecords turns snapshot elements that could not be decoded into
// batch failures, so they are reported like any other excluded issue.
func RejectedRecords(rejected []*source.RecordError) []*RecordError {
	out := make([]*RecordError, 0, len(rejected))
	for _, r := range rejected {
		out = append(out, &RecordError{IssueID: r.ID, Err: invalidInput("%v", r)})
	}
	return out
}
