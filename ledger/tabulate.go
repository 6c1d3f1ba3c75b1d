// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"

	"github.com/danielhkuo/gevs/models"
)

// Tabulator computes per-constituency standings, seats per party, and the
// overall election outcome.
type Tabulator struct {
	db    *sql.DB
	phase *PhaseController
}

func NewTabulator(db *sql.DB) *Tabulator {
	return &Tabulator{db: db, phase: NewPhaseController(db)}
}

// ResultsByConstituency returns candidate standings for the named
// constituency, highest tally first with name as the tiebreak.
func (t *Tabulator) ResultsByConstituency(name string) ([]models.ConstituencyResult, error) {
	var id int
	err := t.db.QueryRow("SELECT constituency_id FROM constituency WHERE constituency_name = $1", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConstituencyNotFound
	}
	if err != nil {
		return nil, storageErr("constituency results", err)
	}

	rows, err := t.db.Query(
		`SELECT cd.candidate_name, p.party_name, cd.vote_count
		 FROM candidate cd
		 JOIN party p ON p.party_id = cd.party_id
		 WHERE cd.constituency_id = $1
		 ORDER BY cd.vote_count DESC, cd.candidate_name`,
		id)
	if err != nil {
		return nil, storageErr("constituency results", err)
	}
	defer rows.Close()

	out := []models.ConstituencyResult{}
	for rows.Next() {
		var r models.ConstituencyResult
		if err := rows.Scan(&r.Candidate, &r.Party, &r.VoteCount); err != nil {
			return nil, storageErr("constituency results", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("constituency results", err)
	}
	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

// SeatsByParty counts a party's seats as the number of candidates standing
// for it. Parties with no candidates do not appear.
func (t *Tabulator) SeatsByParty() ([]models.PartySeats, error) {
	rows, err := t.db.Query(
		`SELECT p.party_name, COUNT(cd.candidate_id) AS seats
		 FROM party p
		 JOIN candidate cd ON cd.party_id = p.party_id
		 GROUP BY p.party_name
		 ORDER BY seats DESC, p.party_name`)
	if err != nil {
		return nil, storageErr("seats by party", err)
	}
	defer rows.Close()

	out := []models.PartySeats{}
	for rows.Next() {
		var s models.PartySeats
		if err := rows.Scan(&s.Party, &s.Seat); err != nil {
			return nil, storageErr("seats by party", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("seats by party", err)
	}
	return out, nil
}

// Outcome reports the election result. Until the election concludes the
// status is Ongoing with no winner or seat data. Once concluded the party
// with the most seats wins; a tie at the top is reported as a Hung
// Parliament.
func (t *Tabulator) Outcome() (models.ElectionOutcome, error) {
	phase, err := t.phase.Current()
	if err != nil {
		return models.ElectionOutcome{}, err
	}
	if phase != models.PhaseConcluded {
		return models.ElectionOutcome{Status: models.OutcomeOngoing}, nil
	}

	seats, err := t.SeatsByParty()
	if err != nil {
		return models.ElectionOutcome{}, err
	}

	outcome := models.ElectionOutcome{Status: models.OutcomeCompleted, Seats: seats}
	if len(seats) == 0 {
		outcome.Winner = models.WinnerHungParliament
		return outcome, nil
	}

	top := seats[0].Seat
	leaders := 0
	for _, s := range seats {
		if s.Seat == top {
			leaders++
		}
	}
	if leaders > 1 {
		outcome.Winner = models.WinnerHungParliament
	} else {
		outcome.Winner = seats[0].Party
	}
	return outcome, nil
}
