// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/similigh/gc2gh/internal/source"
)

// Options configures a Migrator.
type Options struct {
	// StartingIssueID is the target number of source issue #1. Required, >= 1.
	StartingIssueID int

	// Milestones are transformed into the bundle and, unless MilestoneMap is
	// set, indexed by title for milestone label resolution.
	Milestones []source.Milestone

	// MilestoneMap overrides the map derived from Milestones.
	MilestoneMap MilestoneMap

	// Workers is the number of issues transformed concurrently. Defaults to 1.
	Workers int

	// Now supplies the migration date. Defaults to time.Now.
	Now func() time.Time

	// Logger receives one event per excluded record. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Migrator turns a source snapshot into a target bundle.
type Migrator struct {
	batch      Batch
	milestones []source.Milestone
	workers    int
	log        zerolog.Logger
}

// UnresolvedMilestone records an issue whose milestone label has no target milestone.
type UnresolvedMilestone struct {
	IssueID   int
	Milestone string
}

// Result is the outcome of a migration run.
type Result struct {
	Bundle     Bundle
	Processed  int
	Failures   []*RecordError
	Unresolved []UnresolvedMilestone
}

// NewMigrator validates the batch parameters.
// Any problem is reported as ErrConfiguration before work begins.
func NewMigrator(opts Options) (*Migrator, error) {
	if opts.StartingIssueID < 1 {
		return nil, configError("starting issue id must be a positive integer, got %d", opts.StartingIssueID)
	}

	milestoneMap := opts.MilestoneMap
	if milestoneMap == nil {
		milestoneMap = NewMilestoneMap(opts.Milestones)
	}
	if err := milestoneMap.validate(); err != nil {
		return nil, err
	}
	for _, ms := range opts.Milestones {
		if ms.Number <= 0 {
			return nil, configError("milestone %q has non-positive number %d", ms.Title, ms.Number)
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Migrator{
		batch: Batch{
			Offset:     opts.StartingIssueID - 1,
			Milestones: milestoneMap,
			MigratedOn: now(),
		},
		milestones: opts.Milestones,
		workers:    workers,
		log:        log,
	}, nil
}

// Offset returns the value added to every source issue id.
func (m *Migrator) Offset() int {
	return m.batch.Offset
}

type issueJob struct {
	index int
	issue *source.Issue
}

type issueOutcome struct {
	index      int
	bundle     *IssueBundle
	failures   []*RecordError
	unresolved *UnresolvedMilestone
}

// Run transforms every issue, its comments and every milestone.
// Records that fail are excluded and reported in Result.Failures; the output
// keeps the order of the input.
func (m *Migrator) Run(issues []source.Issue) *Result {
	outcomes := m.transformIssues(issues)

	result := &Result{
		Bundle: Bundle{
			Issues:     make([]IssueBundle, 0, len(issues)),
			Milestones: make([]Milestone, 0, len(m.milestones)),
		},
		Processed: len(issues),
	}

	for _, o := range outcomes {
		if o.bundle != nil {
			result.Bundle.Issues = append(result.Bundle.Issues, *o.bundle)
		}
		if o.unresolved != nil {
			m.log.Warn().
				Int("issue_id", o.unresolved.IssueID).
				Str("milestone", o.unresolved.Milestone).
				Err(ErrUnresolvedReference).
				Msg("milestone not found in batch, leaving issue without milestone")
			result.Unresolved = append(result.Unresolved, *o.unresolved)
		}
		for _, f := range o.failures {
			m.logFailure(f)
			result.Failures = append(result.Failures, f)
		}
	}

	for _, ms := range m.milestones {
		out, err := TransformMilestone(ms)
		if err != nil {
			m.log.Error().Int("milestone", ms.Number).Str("title", ms.Title).Err(err).Msg("excluding milestone from batch")
			continue
		}
		result.Bundle.Milestones = append(result.Bundle.Milestones, out)
	}

	return result
}

// transformIssues fans issues out to the worker pool and gathers outcomes in input order.
func (m *Migrator) transformIssues(issues []source.Issue) []issueOutcome {
	jobs := make(chan issueJob, m.workers)
	results := make(chan issueOutcome, m.workers)
	var wg sync.WaitGroup

	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- m.transformOne(job)
			}
		}()
	}

	go func() {
		for i := range issues {
			jobs <- issueJob{index: i, issue: &issues[i]}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]issueOutcome, len(issues))
	for o := range results {
		ordered[o.index] = o
	}
	return ordered
}

func (m *Migrator) transformOne(job issueJob) issueOutcome {
	out := issueOutcome{index: job.index}

	issue, err := TransformIssue(job.issue, m.batch)
	if err != nil {
		out.failures = append(out.failures, asRecordError(err, job.issue.ID, 0))
		return out
	}

	if name, ok := MilestoneName(job.issue); ok && issue.Milestone == nil {
		out.unresolved = &UnresolvedMilestone{IssueID: job.issue.ID, Milestone: name}
	}

	comments := make([]Comment, 0, len(job.issue.Comments))
	for i := range job.issue.Comments {
		c := job.issue.Comments[i]
		if c.IssueID == 0 {
			c.IssueID = job.issue.ID
		}
		if c.Project == "" {
			c.Project = job.issue.Project
		}
		comment, err := TransformComment(&c, m.batch.Offset)
		if err != nil {
			out.failures = append(out.failures, asRecordError(err, job.issue.ID, c.ID))
			continue
		}
		comments = append(comments, comment)
	}

	out.bundle = &IssueBundle{Issue: issue, Comments: comments}
	return out
}

func (m *Migrator) logFailure(f *RecordError) {
	event := m.log.Error().Int("issue_id", f.IssueID)
	if f.CommentID != 0 {
		event = event.Int("comment_id", f.CommentID)
	}
	event.Err(f.Err).Msg("excluding record from batch")
}

func asRecordError(err error, issueID, commentID int) *RecordError {
	var re *RecordError
	if errors.As(err, &re) {
		if re.IssueID == 0 {
			re.IssueID = issueID
		}
		if re.CommentID == 0 {
			re.CommentID = commentID
		}
		return re
	}
	return &RecordError{IssueID: issueID, CommentID: commentID, Err: err}
}
