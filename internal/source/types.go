// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package source models the records exported from the Google Code issue tracker.
// Records are read-only inputs to the migration core.
package source

import "fmt"

// MilestonePrefix marks a label that denotes milestone membership.
const MilestonePrefix = "Milestone-"

// issueURLFormat is the permalink format of a Google Code issue.
const issueURLFormat = "https://code.google.com/p/%s/issues/detail?id=%d"

// Person identifies a user on the source tracker.
type Person struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	Email       string `json:"email"`
}

// Link is an entry of an issue's link list.
type Link struct {
	Rel  string `json:"rel"`
	Type string `json:"type"`
	Href string `json:"href"`
}

// Issue is a source issue together with its comments.
type Issue struct {
	ID         int       `json:"id"`
	Project    string    `json:"project,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Labels     []string  `json:"labels"`
	Status     string    `json:"status"`
	State      string    `json:"state"`
	Published  string    `json:"published"`
	Updated    string    `json:"updated"`
	ClosedDate string    `json:"closedDate"`
	Author     *Person   `json:"author"`
	Owner      *Person   `json:"owner,omitempty"`
	Stars      int       `json:"stars"`
	Links      []Link    `json:"links"`
	Comments   []Comment `json:"comments"`
}

// IDDelta lists issue ids added to and removed from a relation.
type IDDelta struct {
	Added   []int `json:"added"`
	Removed []int `json:"removed"`
}

// StringDelta lists values added to and removed from a set.
type StringDelta struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// IssueUpdates describes the field changes made to an issue when a comment was posted.
// A nil field means the key was absent from the update.
type IssueUpdates struct {
	Title      *string      `json:"title,omitempty"`
	Status     *string      `json:"status,omitempty"`
	Owner      *string      `json:"owner,omitempty"`
	MergedInto *int         `json:"mergedInto,omitempty"`
	Blocks     *IDDelta     `json:"blocks,omitempty"`
	CCs        *StringDelta `json:"ccs,omitempty"`
	Labels     *StringDelta `json:"labels,omitempty"`
}

// IsEmpty reports whether no recognized key is present.
func (u *IssueUpdates) IsEmpty() bool {
	return u == nil ||
		(u.Title == nil && u.Status == nil && u.Owner == nil && u.MergedInto == nil &&
			u.Blocks == nil && u.CCs == nil && u.Labels == nil)
}

// Comment is a comment posted on a source issue.
type Comment struct {
	ID           int           `json:"id"`
	IssueID      int           `json:"issueId,omitempty"`
	Project      string        `json:"project,omitempty"`
	Author       *Person       `json:"author"`
	Content      string        `json:"content"`
	Published    string        `json:"published"`
	Updated      string        `json:"updated"`
	IssueUpdates *IssueUpdates `json:"issueUpdates,omitempty"`
}

// Milestone is a milestone definition supplied alongside the snapshot.
type Milestone struct {
	Number      int    `json:"number" yaml:"number"`
	Title       string `json:"title" yaml:"title"`
	State       string `json:"state" yaml:"state"`
	Description string `json:"description" yaml:"description"`
	DueOn       string `json:"due_on,omitempty" yaml:"due_on,omitempty"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Creator     string `json:"creator" yaml:"creator"`
}

// IssueURL returns the permalink of a Google Code issue.
func IssueURL(project string, id int) string {
	return fmt.Sprintf(issueURLFormat, project, id)
}

// HTMLURL returns the first alternate text/html link of the issue,
// falling back to the permalink built from the project name.
func (i *Issue) HTMLURL() string {
	for _, link := range i.Links {
		if link.Rel == "alternate" && link.Type == "text/html" && link.Href != "" {
			return link.Href
		}
	}
	return IssueURL(i.Project, i.ID)
}
