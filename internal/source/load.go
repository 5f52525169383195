// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// RecordError is a snapshot element that does not decode as an issue.
// ID is zero when no numeric id could be read from the element.
type RecordError struct {
	Index int
	ID    int
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("record %d (issue #%d): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// LoadIssues reads a JSON array of issues, each carrying its comments.
// Project is applied to issues and comments that do not name one, and
// comments inherit their parent's id when it is missing.
// Elements that do not decode are returned as RecordErrors; only an
// unreadable file or a document that is not an array is fatal.
func LoadIssues(filePath, project string) ([]Issue, []*RecordError, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseIssues(data, project)
}

// ParseIssues decodes a JSON array of issues one element at a time, so a
// malformed issue is reported without losing the rest of the snapshot.
func ParseIssues(data []byte, project string) ([]Issue, []*RecordError, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	issues := make([]Issue, 0, len(raw))
	var rejected []*RecordError
	for i, element := range raw {
		var issue Issue
		if err := json.Unmarshal(element, &issue); err != nil {
			rejected = append(rejected, &RecordError{Index: i, ID: peekID(element), Err: err})
			continue
		}
		inherit(&issue, project)
		issues = append(issues, issue)
	}
	return issues, rejected, nil
}

// peekID reads a numeric id from an element that failed to decode, or 0.
func peekID(element json.RawMessage) int {
	var head struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(element, &head); err != nil {
		return 0
	}
	id, err := head.ID.Int64()
	if err != nil {
		return 0
	}
	return int(id)
}

func inherit(issue *Issue, project string) {
	if issue.Project == "" {
		issue.Project = project
	}
	for j := range issue.Comments {
		c := &issue.Comments[j]
		if c.IssueID == 0 {
			c.IssueID = issue.ID
		}
		if c.Project == "" {
			c.Project = issue.Project
		}
	}
}

// LoadMilestones reads a JSON array of milestone definitions.
// Order is preserved; it decides which entry wins on a title collision.
func LoadMilestones(filePath string) ([]Milestone, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var milestones []Milestone
	if err := json.Unmarshal(data, &milestones); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return milestones, nil
}
