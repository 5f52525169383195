// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/gc2gh/internal/migration"
)

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
	retry  RetryConfig
}

// ImportStatus is the state of one issue import request.
type ImportStatus struct {
	ID     int
	Status string
	URL    string
	Errors []string
}

// CreateMilestone creates a milestone and returns the number GitHub assigned to it.
func (c *Client) CreateMilestone(ctx context.Context, owner, repo string, ms migration.Milestone) (int, error) {
	if strings.TrimSpace(ms.Title) == "" {
		return 0, fmt.Errorf("milestone title cannot be empty")
	}

	dueOn, err := timestamp(ms.DueOn)
	if err != nil {
		return 0, fmt.Errorf("invalid due date for milestone %q: %w", ms.Title, err)
	}

	req := &github.Milestone{
		Title: github.String(ms.Title),
		State: github.String(ms.State),
		DueOn: dueOn,
	}
	if ms.Description != "" {
		req.Description = github.String(ms.Description)
	}

	created, err := withRetry(ctx, c.retry, "create milestone", func() (*github.Milestone, error) {
		m, _, err := c.client.Issues.CreateMilestone(ctx, owner, repo, req)
		return m, err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create milestone: %w", err)
	}
	return created.GetNumber(), nil
}

// ImportIssue submits an issue with its comments through the issue import API.
// milestone overrides the bundle's milestone number when not nil.
func (c *Client) ImportIssue(ctx context.Context, owner, repo string, b migration.IssueBundle, milestone *int) (*ImportStatus, error) {
	req, err := importRequest(b, milestone)
	if err != nil {
		return nil, err
	}

	resp, err := withRetry(ctx, c.retry, "import issue", func() (*github.IssueImportResponse, error) {
		r, _, err := c.client.IssueImport.Create(ctx, owner, repo, req)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import issue: %w", err)
	}
	return importStatus(resp), nil
}

// CheckImport fetches the status of an earlier import request.
func (c *Client) CheckImport(ctx context.Context, owner, repo string, id int) (*ImportStatus, error) {
	resp, _, err := c.client.IssueImport.CheckStatus(ctx, owner, repo, int64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to check import status: %w", err)
	}
	return importStatus(resp), nil
}

// GetFileContent fetches a file from a repository at the given ref.
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s is not a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []byte(content), nil
}

func importRequest(b migration.IssueBundle, milestone *int) (*github.IssueImportRequest, error) {
	issue := b.Issue
	if strings.TrimSpace(issue.Title) == "" {
		return nil, fmt.Errorf("issue #%d has an empty title", issue.Number)
	}

	createdAt, err := timestamp(issue.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("issue #%d created_at: %w", issue.Number, err)
	}
	updatedAt, err := timestamp(issue.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("issue #%d updated_at: %w", issue.Number, err)
	}
	closedAt, err := timestamp(issue.ClosedAt)
	if err != nil {
		return nil, fmt.Errorf("issue #%d closed_at: %w", issue.Number, err)
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.Name)
	}

	req := &github.IssueImportRequest{
		IssueImport: github.IssueImport{
			Title:     issue.Title,
			Body:      issue.Body,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			ClosedAt:  closedAt,
			Closed:    github.Bool(issue.State == migration.StateClosed),
			Labels:    labels,
		},
	}

	// The import API only assigns by login.
	if issue.Assignee != nil && issue.Assignee.Login != "" {
		req.IssueImport.Assignee = github.String(issue.Assignee.Login)
	}

	switch {
	case milestone != nil:
		req.IssueImport.Milestone = github.Int(*milestone)
	case issue.Milestone != nil:
		req.IssueImport.Milestone = github.Int(issue.Milestone.Number)
	}

	for _, comment := range b.Comments {
		commentCreated, err := timestamp(comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("issue #%d comment created_at: %w", issue.Number, err)
		}
		req.Comments = append(req.Comments, &github.Comment{
			CreatedAt: commentCreated,
			Body:      comment.Body,
		})
	}

	return req, nil
}

func importStatus(resp *github.IssueImportResponse) *ImportStatus {
	status := &ImportStatus{
		ID:     resp.GetID(),
		Status: resp.GetStatus(),
		URL:    resp.GetURL(),
	}
	for _, e := range resp.Errors {
		status.Errors = append(status.Errors, fmt.Sprintf("%s %s: %s", e.GetResource(), e.GetField(), e.GetCode()))
	}
	return status
}

// timestamp parses an RFC 3339 date. A nil date stays nil.
func timestamp(s *string) (*github.Timestamp, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &github.Timestamp{Time: t}, nil
}
