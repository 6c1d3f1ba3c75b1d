// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/gevs/auth"
	"github.com/danielhkuo/gevs/models"
)

// VoterRegistry manages voter accounts and authentication for both voters
// and the election commissioner.
type VoterRegistry struct {
	db *sql.DB
}

func NewVoterRegistry(db *sql.DB) *VoterRegistry {
	return &VoterRegistry{db: db}
}

// Register creates a voter account, consuming the given UVC in the same
// transaction so a crash can never leave a spent code without an account.
// Returns the new voter's id (the email).
func (r *VoterRegistry) Register(email, fullName, dob, password, code string, constituencyID int) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return "", storageErr("register voter", err)
	}
	defer tx.Rollback()

	var taken bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM voter WHERE voter_id = $1)", email).Scan(&taken); err != nil {
		return "", storageErr("register voter", err)
	}
	if taken {
		return "", ErrAlreadyRegistered
	}

	var known bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM constituency WHERE constituency_id = $1)", constituencyID).Scan(&known); err != nil {
		return "", storageErr("register voter", err)
	}
	if !known {
		return "", ErrConstituencyNotFound
	}

	if err := consumeCredential(tx, code); err != nil {
		if errors.Is(err, ErrCredentialNotFound) || errors.Is(err, ErrCredentialUsed) {
			return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
		return "", err
	}

	_, err = tx.Exec(
		`INSERT INTO voter (voter_id, full_name, dob, password_hash, uvc, constituency_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		email, fullName, dob, hash, code, constituencyID,
	)
	if err != nil {
		// Backstop for two concurrent registrations racing past the
		// pre-check; the primary key decides the winner.
		if isUniqueViolation(err) {
			return "", ErrAlreadyRegistered
		}
		return "", storageErr("register voter", err)
	}

	if err := tx.Commit(); err != nil {
		return "", storageErr("register voter", err)
	}
	return email, nil
}

// Authenticate checks email and password against voter accounts first, then
// the commissioner table. Returns the matched role, or models.RoleNone with
// a nil error when nothing matches; the caller decides how to report that.
func (r *VoterRegistry) Authenticate(email, password string) (string, error) {
	var hash string
	err := r.db.QueryRow("SELECT password_hash FROM voter WHERE voter_id = $1", email).Scan(&hash)
	switch {
	case err == nil:
		ok, verr := auth.VerifyPassword(password, hash)
		if verr == nil && ok {
			return models.RoleVoter, nil
		}
	case !errors.Is(err, sql.ErrNoRows):
		return models.RoleNone, storageErr("authenticate", err)
	}

	err = r.db.QueryRow("SELECT password_hash FROM commissioner WHERE email = $1", email).Scan(&hash)
	switch {
	case err == nil:
		ok, verr := auth.VerifyPassword(password, hash)
		if verr == nil && ok {
			return models.RoleCommissioner, nil
		}
	case !errors.Is(err, sql.ErrNoRows):
		return models.RoleNone, storageErr("authenticate", err)
	}

	return models.RoleNone, nil
}

// HasVoted reports whether the voter has already cast their vote.
func (r *VoterRegistry) HasVoted(email string) (bool, error) {
	var voted bool
	err := r.db.QueryRow("SELECT candidate_id IS NOT NULL FROM voter WHERE voter_id = $1", email).Scan(&voted)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrVoterNotFound
	}
	if err != nil {
		return false, storageErr("check voted", err)
	}
	return voted, nil
}

// ConstituencyOf returns the constituency the voter is registered in.
func (r *VoterRegistry) ConstituencyOf(email string) (models.Constituency, error) {
	var c models.Constituency
	err := r.db.QueryRow(
		`SELECT c.constituency_id, c.constituency_name
		 FROM voter v
		 JOIN constituency c ON c.constituency_id = v.constituency_id
		 WHERE v.voter_id = $1`,
		email,
	).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Constituency{}, ErrVoterNotFound
	}
	if err != nil {
		return models.Constituency{}, storageErr("voter constituency", err)
	}
	return c, nil
}
