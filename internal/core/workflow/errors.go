// Package workflow defines the failure taxonomy shared by the data-entry
// workflow. Every failure a caller can act on carries a Kind, so the dispatch
// layer can report what went wrong without string matching.
package workflow

import (
	"errors"
	"fmt"
)

// Kind discriminates workflow failures.
type Kind string

const (
	// KindRange signals a month or year outside the accepted bounds.
	KindRange Kind = "range_error"
	// KindEntityNotFound signals a court name that resolves to no court.
	KindEntityNotFound Kind = "entity_not_found"
	// KindDuplicateEntry signals a committed report already exists for the
	// (court, month, year) key.
	KindDuplicateEntry Kind = "duplicate_entry"
	// KindStepOrder signals a step invoked before its predecessor completed.
	KindStepOrder Kind = "step_order_violation"
	// KindSumMismatch signals age buckets that do not sum to their step-1
	// anchor value.
	KindSumMismatch Kind = "sum_mismatch"
	// KindSubsetViolation signals a derived metric exceeding its parent
	// aggregate.
	KindSubsetViolation Kind = "subset_violation"
	// KindInvariant signals the basic-metrics self-check failing.
	KindInvariant Kind = "invariant_violation"
	// KindNotFound signals a delete targeting a key with no committed report.
	KindNotFound Kind = "not_found"
	// KindStorage signals a persistence failure passed through from the
	// storage collaborator.
	KindStorage Kind = "storage_failure"
)

// Error is a workflow failure with a discriminated kind. All validation kinds
// are recoverable: the caller corrects the inputs and retries the same step.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf builds a workflow error with the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a workflow error that retains err as its cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...) + ": " + err.Error(),
		cause:   err,
	}
}

// KindOf returns the kind carried by err, or the empty Kind when err is not a
// workflow error.
func KindOf(err error) Kind {
	var wfErr *Error
	if errors.As(err, &wfErr) {
		return wfErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
