// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package migration converts Google Code issue tracker records into GitHub's
// importable issue, comment and milestone records.
//
// All transformations are pure: they perform no I/O and the same input always
// yields byte-identical output.
package migration

// UserRef references a target user either by email or by login.
// Exactly one field is set.
type UserRef struct {
	Email string `json:"email,omitempty"`
	Login string `json:"login,omitempty"`
}

// Label is a target label reference.
type Label struct {
	Name string `json:"name"`
}

// MilestoneRef references a target milestone by number.
type MilestoneRef struct {
	Number int `json:"number"`
}

// Issue is a target issue record.
type Issue struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Labels    []Label       `json:"labels"`
	Milestone *MilestoneRef `json:"milestone"`
	State     string        `json:"state"`
	CreatedAt *string       `json:"created_at"`
	UpdatedAt *string       `json:"updated_at"`
	ClosedAt  *string       `json:"closed_at"`
	User      *UserRef      `json:"user"`
	Assignee  *UserRef      `json:"assignee"`
	ClosedBy  *UserRef      `json:"closed_by"`
}

// Comment is a target comment record.
type Comment struct {
	ID        *int     `json:"id,omitempty"`
	Body      string   `json:"body"`
	CreatedAt *string  `json:"created_at"`
	UpdatedAt *string  `json:"updated_at"`
	User      *UserRef `json:"user,omitempty"`
}

// Milestone is a target milestone record.
type Milestone struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	Description string   `json:"description"`
	DueOn       *string  `json:"due_on"`
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
	Creator     *UserRef `json:"creator"`
}

// IssueBundle groups a target issue with its comments.
type IssueBundle struct {
	Issue    Issue     `json:"issue"`
	Comments []Comment `json:"comments"`
}

// Bundle is the complete output of a migration batch.
type Bundle struct {
	Issues     []IssueBundle `json:"issues"`
	Milestones []Milestone   `json:"milestones"`
}
