// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"log/slog"
)

// CredentialStore manages the pool of single-use voter codes (UVCs).
type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// IssueBatch inserts a batch of codes in one transaction. If any code
// collides with one already issued the whole batch is rolled back and
// ErrDuplicateCredential is returned.
func (s *CredentialStore) IssueBatch(codes []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storageErr("issue batch", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO uvc_code (uvc, used) VALUES ($1, 0)")
	if err != nil {
		return storageErr("issue batch", err)
	}
	defer stmt.Close()

	for _, code := range codes {
		if _, err := stmt.Exec(code); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateCredential
			}
			return storageErr("issue batch", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("issue batch", err)
	}

	slog.Info("issued voter credentials", "count", len(codes))
	return nil
}

// IsValidUnused reports whether code exists and has not been consumed.
// Read-only; the authoritative check happens in Consume.
func (s *CredentialStore) IsValidUnused(code string) (bool, error) {
	var ok bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM uvc_code WHERE uvc = $1 AND used = 0)",
		code,
	).Scan(&ok)
	if err != nil {
		return false, storageErr("check credential", err)
	}
	return ok, nil
}

// Consume marks code as used. Exactly one caller can consume a given code;
// losers get ErrCredentialUsed, unknown codes get ErrCredentialNotFound.
func (s *CredentialStore) Consume(code string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storageErr("consume credential", err)
	}
	defer tx.Rollback()

	if err := consumeCredential(tx, code); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("consume credential", err)
	}
	return nil
}

// consumeCredential flips used from 0 to 1 inside tx. The conditional
// update is the atomicity point: a zero row count means the code was
// either never issued or already spent, and a follow-up read decides which.
func consumeCredential(tx *sql.Tx, code string) error {
	res, err := tx.Exec("UPDATE uvc_code SET used = 1 WHERE uvc = $1 AND used = 0", code)
	if err != nil {
		return storageErr("consume credential", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("consume credential", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM uvc_code WHERE uvc = $1)", code).Scan(&exists); err != nil {
		return storageErr("consume credential", err)
	}
	if !exists {
		return ErrCredentialNotFound
	}
	return ErrCredentialUsed
}
