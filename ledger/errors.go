// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"strings"
)

// Validation errors: caller-correctable, retry with fixed input.
var (
	ErrAlreadyRegistered   = errors.New("email already registered")
	ErrInvalidCredential   = errors.New("invalid or already used UVC")
	ErrInvalidTransition   = errors.New("invalid election phase transition")
	ErrDuplicateCredential = errors.New("UVC already issued")
	ErrNotCommissioner     = errors.New("commissioner authority required")
)

// State-conflict errors: a legitimate race or policy violation, reported to
// the caller and never retried here.
var (
	ErrAlreadyVoted    = errors.New("voter has already cast a vote")
	ErrCredentialUsed  = errors.New("UVC already used")
	ErrElectionNotOpen = errors.New("election is not open for voting")
)

// Not-found errors: bad references.
var (
	ErrVoterNotFound        = errors.New("voter not found")
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrConstituencyNotFound = errors.New("constituency not found")
	ErrCredentialNotFound   = errors.New("UVC not found")
	ErrNoResults            = errors.New("no results recorded for constituency")
)

// StorageError wraps store and transaction failures (connectivity loss,
// commit failure). These are the only potentially transient failures: the
// conditional updates underneath consume and cast-vote reject a duplicate
// success, so an adapter may safely re-attempt the whole operation.
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

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// isUniqueViolation matches unique-constraint failures from both supported
// drivers; there is no portable error code across lib/pq and modernc sqlite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") || // lib/pq
		strings.Contains(msg, "UNIQUE constraint failed") // modernc sqlite
}
