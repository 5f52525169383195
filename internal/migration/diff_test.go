// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"strings"
	"testing"

	"github.com/similigh/gc2gh/internal/source"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

const header = "&nbsp;  \r\n_**Metadata Updates**_\r\n"

func TestFormatMetadataUpdates(t *testing.T) {
	tests := []struct {
		name    string
		updates *source.IssueUpdates
		offset  int
		want    string
	}{
		{
			name:    "nil update",
			updates: nil,
			want:    "",
		},
		{
			name:    "no recognized keys",
			updates: &source.IssueUpdates{},
			want:    "",
		},
		{
			name:    "milestone replaced",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{Added: []string{"Milestone-2.0"}, Removed: []string{"Milestone-1.0"}}},
			want:    header + " - **Milestone updated:** 2.0 (was: 1.0)\r\n",
		},
		{
			name:    "milestone set",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{Added: []string{"Milestone-2.0"}}},
			want:    header + " - **Milestone updated:** 2.0 (was: ---)\r\n",
		},
		{
			name:    "milestone cleared",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{Removed: []string{"Milestone-1.0"}}},
			want:    header + " - **Milestone updated:** --- (was: 1.0)\r\n",
		},
		{
			name:    "two milestones added",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{Added: []string{"Milestone-2.0", "Milestone-3.0"}, Removed: []string{}}},
			want:    header + " - **Milestone(s) added:**\r\n    - 2.0\r\n    - 3.0\r\n",
		},
		{
			name: "two removed one added",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{
				Added:   []string{"Milestone-3.0"},
				Removed: []string{"Milestone-1.0", "Milestone-2.0"},
			}},
			want: header +
				" - **Milestone(s) removed:**\r\n    - 1.0\r\n    - 2.0\r\n" +
				" - **Milestone(s) added:**\r\n    - 3.0\r\n",
		},
		{
			name: "plain labels before milestones",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{
				Added:   []string{"Type-Defect", "Milestone-2.0"},
				Removed: []string{"Type-Enhancement"},
			}},
			want: header +
				" - **Label(s) removed:**\r\n    - Type-Enhancement\r\n" +
				" - **Label(s) added:**\r\n    - Type-Defect\r\n" +
				" - **Milestone updated:** 2.0 (was: ---)\r\n",
		},
		{
			name: "empty label delta keeps header",
			updates: &source.IssueUpdates{Labels: &source.StringDelta{
				Added:   []string{},
				Removed: []string{},
			}},
			want: header,
		},
		{
			name:    "merged into with offset",
			updates: &source.IssueUpdates{MergedInto: intPtr(5)},
			offset:  100,
			want:    header + " - **Merged into:** #105 ([GC-5](https://code.google.com/p/phantomjs/issues/detail?id=5))\r\n",
		},
		{
			name: "blocking issues with offset",
			updates: &source.IssueUpdates{Blocks: &source.IDDelta{
				Added:   []int{7},
				Removed: []int{3, 4},
			}},
			offset: 10,
			want: header +
				" - **Blocking issue(s) removed:**\r\n" +
				"    - #13 ([GC-3](https://code.google.com/p/phantomjs/issues/detail?id=3))\r\n" +
				"    - #14 ([GC-4](https://code.google.com/p/phantomjs/issues/detail?id=4))\r\n" +
				" - **Blocking issue(s) added:**\r\n" +
				"    - #17 ([GC-7](https://code.google.com/p/phantomjs/issues/detail?id=7))\r\n",
		},
		{
			name: "ccs",
			updates: &source.IssueUpdates{CCs: &source.StringDelta{
				Added:   []string{"new@example.com"},
				Removed: []string{"old"},
			}},
			want: header +
				" - **CC(s) removed:**\r\n    - old\r\n" +
				" - **CC(s) added:**\r\n    - new@example.com\r\n",
		},
		{
			name: "fixed key order",
			updates: &source.IssueUpdates{
				Labels:     &source.StringDelta{Added: []string{"Priority-High"}},
				CCs:        &source.StringDelta{Added: []string{"cc"}},
				MergedInto: intPtr(2),
				Owner:      strPtr("owner@example.com"),
				Status:     strPtr("Duplicate"),
				Title:      strPtr("New title"),
			},
			want: header +
				" - **Title updated:** New title\r\n" +
				" - **Status updated:** Duplicate\r\n" +
				" - **Owner updated:** owner@example.com\r\n" +
				" - **Merged into:** #2 ([GC-2](https://code.google.com/p/phantomjs/issues/detail?id=2))\r\n" +
				" - **CC(s) added:**\r\n    - cc\r\n" +
				" - **Label(s) added:**\r\n    - Priority-High\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMetadataUpdates(tt.updates, "phantomjs", tt.offset)
			if got != tt.want {
				t.Errorf("FormatMetadataUpdates() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormatMetadataUpdates_Deterministic(t *testing.T) {
	updates := &source.IssueUpdates{
		Status: strPtr("Fixed"),
		Blocks: &source.IDDelta{Added: []int{1, 2, 3}},
		Labels: &source.StringDelta{Added: []string{"Milestone-1.0", "Milestone-2.0", "A"}, Removed: []string{"B"}},
	}

	first := FormatMetadataUpdates(updates, "p", 42)
	for i := 0; i < 20; i++ {
		if got := FormatMetadataUpdates(updates, "p", 42); got != first {
			t.Fatalf("Expected identical output on run %d, got\n%q\nwant\n%q", i, got, first)
		}
	}
}

func TestFormatMetadataUpdates_MilestoneLineCount(t *testing.T) {
	updates := &source.IssueUpdates{Labels: &source.StringDelta{Added: []string{"Milestone-2.0"}, Removed: []string{"Milestone-1.0"}}}
	got := FormatMetadataUpdates(updates, "p", 0)

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(got, header), "\r\n"), "\r\n")
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one rendered line, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Milestone updated:** 2.0 (was: 1.0)") {
		t.Errorf("Unexpected milestone line %q", lines[0])
	}
	if strings.Contains(got, "    - ") {
		t.Errorf("Expected no bulleted sub-list, got %q", got)
	}
}

func TestPartitionLabels(t *testing.T) {
	labels := []string{"Milestone-1.0", "Type-Defect", "milestone-lower", "Milestone-", "Milestone-Release-2", "Priority-Low"}
	plain, milestones := partitionLabels(labels)

	if len(plain)+len(milestones) != len(labels) {
		t.Fatalf("Expected a total partition, got %d plain + %d milestones for %d labels", len(plain), len(milestones), len(labels))
	}

	wantPlain := []string{"Type-Defect", "milestone-lower", "Priority-Low"}
	wantMilestones := []string{"1.0", "", "Release-2"}
	for i, want := range wantPlain {
		if plain[i] != want {
			t.Errorf("plain[%d] = %q, want %q", i, plain[i], want)
		}
	}
	for i, want := range wantMilestones {
		if milestones[i] != want {
			t.Errorf("milestones[%d] = %q, want %q", i, milestones[i], want)
		}
	}
}
