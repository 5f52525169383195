// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed or incomplete source record.
	// The record is excluded from the batch; the batch itself continues.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration marks missing or invalid batch parameters.
	// It is fatal and reported before any record is transformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnresolvedReference marks a milestone name or issue id that is not part of the batch.
	// It never fails a record.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// RecordError ties a per-record failure to the source ids needed to find it.
// CommentID is zero when the failure concerns the issue itself.
type RecordError struct {
	IssueID   int
	CommentID int
	Err       error
}

func (e *RecordError) Error() string {
	if e.CommentID != 0 {
		return fmt.Sprintf("comment #%d of issue #%d: %v", e.CommentID, e.IssueID, e.Err)
	}
	return fmt.Sprintf("issue #%d: %v", e.IssueID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
