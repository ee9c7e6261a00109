// Package store holds the in-memory session state of the workshop
// console: six insertion-ordered entity collections plus derived
// aggregates recomputed on every read. The store is not safe for
// concurrent use; the TUI event loop is its single writer.
package store

import "errors"

// ErrValidation is wrapped by every operation error caused by caller
// input: a missing required field, a malformed amount, an enum value
// outside its set, an unselected date. Callers match with errors.Is.
var ErrValidation = errors.New("validation")

// ErrNotFound is wrapped when an operation targets an id absent from
// its collection. Deletes never return it; they are idempotent no-ops.
var ErrNotFound = errors.New("not found")
