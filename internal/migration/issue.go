// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/similigh/gc2gh/internal/source"
)

// ClosingStatuses are the source statuses that close an issue.
var ClosingStatuses = []string{"Fixed", "Invalid", "Duplicate", "WontFix", "Migrated"}

// Batch holds the parameters shared by every issue of one migration run.
type Batch struct {
	// Offset is added to every source issue id.
	Offset int

	// Milestones resolves milestone names to target numbers.
	Milestones MilestoneMap

	// MigratedOn is the date quoted in the issue disclaimer.
	MigratedOn time.Time
}

// TransformIssue builds a target issue from a source issue and its comments.
// Failures are returned as *RecordError carrying the issue id.
func TransformIssue(issue *source.Issue, batch Batch) (Issue, error) {
	if err := validateIssue(issue); err != nil {
		return Issue{}, err
	}

	plain, _ := partitionLabels(issue.Labels)
	labels := make([]Label, 0, len(plain)+1)
	for _, name := range plain {
		labels = append(labels, Label{Name: name})
	}
	if issue.Status != "" {
		labels = append(labels, Label{Name: "Status-" + issue.Status})
	}

	var milestone *MilestoneRef
	if name, ok := MilestoneName(issue); ok {
		if number, found := batch.Milestones.Resolve(name); found {
			milestone = &MilestoneRef{Number: number}
		}
	}

	state := NormalizeState(issue.State)

	out := Issue{
		Number:    issue.ID + batch.Offset,
		Title:     collapseSpace(issue.Title),
		Body:      issueBody(issue, batch.MigratedOn),
		Labels:    labels,
		Milestone: milestone,
		State:     state,
		CreatedAt: NormalizeDate(issue.Published),
		UpdatedAt: NormalizeDate(issue.Updated),
		ClosedAt:  NormalizeDate(issue.ClosedDate),
		User:      userRef(issue.Author.Email),
	}
	if issue.Owner != nil {
		out.Assignee = userRef(issue.Owner.Email)
	}
	if state == StateClosed {
		out.ClosedBy = userRef(closerEmail(issue.Comments))
	}
	return out, nil
}

// MilestoneName returns the name of the issue's last milestone label.
func MilestoneName(issue *source.Issue) (string, bool) {
	_, milestones := partitionLabels(issue.Labels)
	if len(milestones) == 0 {
		return "", false
	}
	return milestones[len(milestones)-1], true
}

// closerEmail returns the author email of the last comment that set a closing status.
func closerEmail(comments []source.Comment) string {
	for i := len(comments) - 1; i >= 0; i-- {
		c := comments[i]
		if c.IssueUpdates == nil || c.IssueUpdates.Status == nil {
			continue
		}
		if !slices.Contains(ClosingStatuses, *c.IssueUpdates.Status) {
			continue
		}
		if c.Author == nil {
			return ""
		}
		return c.Author.Email
	}
	return ""
}

func issueBody(issue *source.Issue, migratedOn time.Time) string {
	var sb strings.Builder
	sb.WriteString(attribution(issue.Author) + newline)
	sb.WriteString(blockquote(issue.Content) + newline)
	sb.WriteString(newline)
	sb.WriteString("**Disclaimer:**" + newline)
	fmt.Fprintf(&sb, "This issue was migrated on %s from the project's former issue tracker on Google Code, [Issue #%d](%s).%s",
		migratedOn.Format("2006-01-02"), issue.ID, issue.HTMLURL(), newline)
	fmt.Fprintf(&sb, ":star2: &nbsp; **%d** people had starred this issue at the time of migration.", issue.Stars)
	return sb.String()
}
