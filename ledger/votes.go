// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"

	"github.com/danielhkuo/gevs/models"
)

// VoteLedger records votes. The one-vote-per-voter rule and the phase gate
// are both enforced inside a single conditional update, never by a
// read-then-write sequence.
type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// CastVote records email's vote for candidateID. The voter row update only
// succeeds while the election is ongoing and the voter has no prior choice;
// the candidate tally is incremented in the same transaction, so a vote and
// its tally are committed or rolled back together.
func (l *VoteLedger) CastVote(email string, candidateID int) error {
	tx, err := l.db.Begin()
	if err != nil {
		return storageErr("cast vote", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE voter SET candidate_id = $1
		 WHERE voter_id = $2
		   AND candidate_id IS NULL
		   AND (SELECT phase FROM election_phase WHERE id = 1) = $3`,
		candidateID, email, models.PhaseOngoing,
	)
	if err != nil {
		return storageErr("cast vote", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("cast vote", err)
	}
	if n == 0 {
		// The update can fail for three reasons; read state in the same
		// transaction to report the right one.
		var phase string
		if err := tx.QueryRow("SELECT phase FROM election_phase WHERE id = 1").Scan(&phase); err != nil {
			return storageErr("cast vote", err)
		}
		if phase != models.PhaseOngoing {
			return ErrElectionNotOpen
		}

		var prior sql.NullInt64
		err := tx.QueryRow("SELECT candidate_id FROM voter WHERE voter_id = $1", email).Scan(&prior)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVoterNotFound
		}
		if err != nil {
			return storageErr("cast vote", err)
		}
		if prior.Valid {
			return ErrAlreadyVoted
		}
		return storageErr("cast vote", errors.New("vote update affected no rows"))
	}

	res, err = tx.Exec("UPDATE candidate SET vote_count = vote_count + 1 WHERE candidate_id = $1", candidateID)
	if err != nil {
		return storageErr("cast vote", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return storageErr("cast vote", err)
	}
	if n == 0 {
		// Unknown candidate; roll back so the voter row stays unvoted.
		return ErrCandidateNotFound
	}

	if err := tx.Commit(); err != nil {
		return storageErr("cast vote", err)
	}
	return nil
}
