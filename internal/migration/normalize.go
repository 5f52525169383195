// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"regexp"
	"strings"

	"github.com/similigh/gc2gh/internal/source"
)

const (
	StateOpen   = "open"
	StateClosed = "closed"
)

var subSecondPattern = regexp.MustCompile(`\.\d+(Z|[+-]\d{2}:?\d{2})$`)

// NormalizeDate drops the sub-second part of a timestamp and keeps its zone designator.
// Empty input yields nil. Strings that do not match are returned unchanged.
func NormalizeDate(ts string) *string {
	if ts == "" {
		return nil
	}
	out := subSecondPattern.ReplaceAllString(ts, "$1")
	return &out
}

// NormalizeState maps any value other than "closed" (case-insensitive) to "open".
func NormalizeState(state string) string {
	if strings.EqualFold(state, StateClosed) {
		return StateClosed
	}
	return StateOpen
}

// collapseSpace replaces whitespace runs, Unicode spaces included, with a
// single space and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// partitionLabels splits labels into plain labels and milestone names.
// Milestone names have the prefix stripped.
func partitionLabels(labels []string) (plain, milestones []string) {
	for _, label := range labels {
		if name, ok := strings.CutPrefix(label, source.MilestonePrefix); ok {
			milestones = append(milestones, name)
			continue
		}
		plain = append(plain, label)
	}
	return plain, milestones
}

// optional returns nil for an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
