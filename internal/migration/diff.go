// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/similigh/gc2gh/internal/source"
)

// newline is the line terminator used in every rendered body.
const newline = "\r\n"

// noMilestone stands in for the missing side of a milestone change.
const noMilestone = "---"

const metadataHeader = "&nbsp;  " + newline + "_**Metadata Updates**_" + newline

// FormatMetadataUpdates renders a metadata update as markdown.
//
// Keys are rendered in a fixed order (title, status, owner, mergedInto, blocks,
// ccs, labels) so the output only depends on the update and the offset.
// Issue references are renumbered with offset and linked back to the source
// issue in project. An empty update renders as an empty string.
func FormatMetadataUpdates(updates *source.IssueUpdates, project string, offset int) string {
	if updates.IsEmpty() {
		return ""
	}

	w := &diffWriter{}
	w.sb.WriteString(metadataHeader)

	if updates.Title != nil {
		w.field("Title", *updates.Title)
	}
	if updates.Status != nil {
		w.field("Status", *updates.Status)
	}
	if updates.Owner != nil {
		w.field("Owner", *updates.Owner)
	}
	if updates.MergedInto != nil {
		fmt.Fprintf(&w.sb, " - **Merged into:** %s%s", issueRef(*updates.MergedInto, project, offset), newline)
	}
	if updates.Blocks != nil {
		w.list("Blocking issue(s) removed", issueRefs(updates.Blocks.Removed, project, offset))
		w.list("Blocking issue(s) added", issueRefs(updates.Blocks.Added, project, offset))
	}
	if updates.CCs != nil {
		w.list("CC(s) removed", updates.CCs.Removed)
		w.list("CC(s) added", updates.CCs.Added)
	}
	if updates.Labels != nil {
		w.labels(updates.Labels)
	}

	return w.sb.String()
}

type diffWriter struct {
	sb strings.Builder
}

func (w *diffWriter) field(name, value string) {
	fmt.Fprintf(&w.sb, " - **%s updated:** %s%s", name, value, newline)
}

// list writes a titled bullet list; nothing is written for an empty list.
func (w *diffWriter) list(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(&w.sb, " - **%s:**%s", title, newline)
	for _, item := range items {
		fmt.Fprintf(&w.sb, "    - %s%s", item, newline)
	}
}

// labels writes plain label changes followed by milestone changes.
// A single milestone replaced, set or cleared renders as one line. Any other
// combination cannot be expressed as a single target milestone, so both sides
// are listed verbatim instead of being dropped.
func (w *diffWriter) labels(delta *source.StringDelta) {
	addedLabels, addedMilestones := partitionLabels(delta.Added)
	removedLabels, removedMilestones := partitionLabels(delta.Removed)

	w.list("Label(s) removed", removedLabels)
	w.list("Label(s) added", addedLabels)

	switch {
	case len(removedMilestones) == 0 && len(addedMilestones) == 0:
	case len(removedMilestones) == 0 && len(addedMilestones) == 1:
		w.milestone(addedMilestones[0], noMilestone)
	case len(removedMilestones) == 1 && len(addedMilestones) == 1:
		w.milestone(addedMilestones[0], removedMilestones[0])
	case len(removedMilestones) == 1 && len(addedMilestones) == 0:
		w.milestone(noMilestone, removedMilestones[0])
	default:
		w.list("Milestone(s) removed", removedMilestones)
		w.list("Milestone(s) added", addedMilestones)
	}
}

func (w *diffWriter) milestone(current, previous string) {
	fmt.Fprintf(&w.sb, " - **Milestone updated:** %s (was: %s)%s", current, previous, newline)
}

// issueRef renders "#<target> ([GC-<source>](<permalink>))".
func issueRef(id int, project string, offset int) string {
	return "#" + strconv.Itoa(id+offset) + " ([GC-" + strconv.Itoa(id) + "](" + source.IssueURL(project, id) + "))"
}

func issueRefs(ids []int, project string, offset int) []string {
	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, issueRef(id, project, offset))
	}
	return refs
}
