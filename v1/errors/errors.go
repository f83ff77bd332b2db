// Package errors holds the sentinel errors shared by the go-mutex packages.
package errors

import "errors"

var (
	// ErrAlreadyBorrowed reports a conflicting borrow of a runtime-checked
	// cell. On the Lock path it is raised as a panic.
	ErrAlreadyBorrowed = errors.New("mutex: already borrowed")
	// ErrNotAcquired reports that a provider could not establish exclusivity.
	ErrNotAcquired = errors.New("mutex: lock not acquired")
	// ErrNotHeld is returned when releasing a lock the caller does not own.
	ErrNotHeld = errors.New("mutex: lock not held")

	// ErrConnectionClosed is returned by buses used after Close.
	ErrConnectionClosed = errors.New("connection closed")
)
