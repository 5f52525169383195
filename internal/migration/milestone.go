// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import "github.com/similigh/gc2gh/internal/source"

// MilestoneMap resolves milestone titles to target milestone numbers.
type MilestoneMap map[string]int

// NewMilestoneMap indexes milestones by title.
// When two milestones share a title the later one wins.
func NewMilestoneMap(milestones []source.Milestone) MilestoneMap {
	m := make(MilestoneMap, len(milestones))
	for _, ms := range milestones {
		m[ms.Title] = ms.Number
	}
	return m
}

// Resolve returns the number for a milestone name.
func (m MilestoneMap) Resolve(name string) (int, bool) {
	number, ok := m[name]
	return number, ok
}

// validate reports entries that cannot name a target milestone.
func (m MilestoneMap) validate() error {
	for name, number := range m {
		if name == "" {
			return configError("milestone map has an entry without a title")
		}
		if number <= 0 {
			return configError("milestone %q has non-positive number %d", name, number)
		}
	}
	return nil
}

// TransformMilestone builds a target milestone from a milestone definition.
func TransformMilestone(ms source.Milestone) (Milestone, error) {
	if ms.Number <= 0 {
		return Milestone{}, invalidInput("milestone %q has non-positive number %d", ms.Title, ms.Number)
	}

	updatedAt := ms.UpdatedAt
	if updatedAt == "" {
		updatedAt = ms.CreatedAt
	}

	return Milestone{
		Number:      ms.Number,
		Title:       ms.Title,
		State:       NormalizeState(ms.State),
		Description: ms.Description,
		DueOn:       optional(ms.DueOn),
		CreatedAt:   optional(ms.CreatedAt),
		UpdatedAt:   optional(updatedAt),
		Creator:     userRef(ms.Creator),
	}, nil
}
