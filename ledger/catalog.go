// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"

	"github.com/danielhkuo/gevs/models"
)

// Catalog exposes the fixed election reference data: constituencies,
// parties, and candidates. All of it is loaded at seed time and read-only
// afterwards, except candidate tallies.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

func (c *Catalog) ListConstituencies() ([]models.Constituency, error) {
	rows, err := c.db.Query("SELECT constituency_id, constituency_name FROM constituency ORDER BY constituency_id")
	if err != nil {
		return nil, storageErr("list constituencies", err)
	}
	defer rows.Close()

	out := []models.Constituency{}
	for rows.Next() {
		var con models.Constituency
		if err := rows.Scan(&con.ID, &con.Name); err != nil {
			return nil, storageErr("list constituencies", err)
		}
		out = append(out, con)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list constituencies", err)
	}
	return out, nil
}

func (c *Catalog) ListCandidates() ([]models.Candidate, error) {
	rows, err := c.db.Query(
		`SELECT cd.candidate_id, cd.candidate_name, p.party_name, co.constituency_name, cd.vote_count
		 FROM candidate cd
		 JOIN party p ON p.party_id = cd.party_id
		 JOIN constituency co ON co.constituency_id = cd.constituency_id
		 ORDER BY cd.candidate_id`)
	if err != nil {
		return nil, storageErr("list candidates", err)
	}
	defer rows.Close()

	out := []models.Candidate{}
	for rows.Next() {
		var cand models.Candidate
		if err := rows.Scan(&cand.ID, &cand.Name, &cand.Party, &cand.Constituency, &cand.VoteCount); err != nil {
			return nil, storageErr("list candidates", err)
		}
		out = append(out, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list candidates", err)
	}
	return out, nil
}

func (c *Catalog) CandidateByID(id int) (models.Candidate, error) {
	var cand models.Candidate
	err := c.db.QueryRow(
		`SELECT cd.candidate_id, cd.candidate_name, p.party_name, co.constituency_name, cd.vote_count
		 FROM candidate cd
		 JOIN party p ON p.party_id = cd.party_id
		 JOIN constituency co ON co.constituency_id = cd.constituency_id
		 WHERE cd.candidate_id = $1`,
		id,
	).Scan(&cand.ID, &cand.Name, &cand.Party, &cand.Constituency, &cand.VoteCount)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return models.Candidate{}, storageErr("get candidate", err)
	}
	return cand, nil
}
