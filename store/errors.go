// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
)

var (
	// ErrIdentity means the external identity was missing or malformed.
	ErrIdentity = errors.New("invalid external identity")
	// ErrNotFound covers unknown users, tabs, and buttons, including rows
	// that exist but belong to someone else.
	ErrNotFound = errors.New("not found")

	// errConflictRetry marks a lost tab-creation race. It never leaves the package.
	errConflictRetry = errors.New("tab insert lost a uniqueness race")
)

// StorageError wraps a failure of the underlying database that is not one of
// the sentinels above.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
