// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database engine. The returned handle is
// shared by every ledger component for the life of the process.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		// Serialize writers instead of failing fast when the file is busy
		if !strings.Contains(url, "_pragma") {
			sep := "?"
			if strings.Contains(url, "?") {
				sep = "&"
			}
			url += sep + "_pragma=busy_timeout(5000)"
		}
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Constituencies
CREATE TABLE IF NOT EXISTS constituency (
    constituency_id INTEGER PRIMARY KEY,
    constituency_name TEXT NOT NULL UNIQUE
);

-- Parties
CREATE TABLE IF NOT EXISTS party (
    party_id INTEGER PRIMARY KEY,
    party_name TEXT NOT NULL
);

-- Single-use voting credentials
CREATE TABLE IF NOT EXISTS uvc_code (
    uvc TEXT PRIMARY KEY,
    used INTEGER NOT NULL DEFAULT 0 CHECK (used IN (0, 1))
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    candidate_id INTEGER PRIMARY KEY,
    candidate_name TEXT NOT NULL,
    party_id INTEGER NOT NULL REFERENCES party(party_id),
    constituency_id INTEGER NOT NULL REFERENCES constituency(constituency_id),
    vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0)
);

CREATE INDEX IF NOT EXISTS idx_candidate_constituency ON candidate(constituency_id);
CREATE INDEX IF NOT EXISTS idx_candidate_party ON candidate(party_id);

-- Voters
-- candidate_id carries no FK; the vote ledger's tally update validates it
CREATE TABLE IF NOT EXISTS voter (
    voter_id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    dob TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    uvc TEXT NOT NULL UNIQUE REFERENCES uvc_code(uvc),
    constituency_id INTEGER NOT NULL REFERENCES constituency(constituency_id),
    candidate_id INTEGER,
    registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_constituency ON voter(constituency_id);

-- Commissioners (disjoint identity space from voters)
CREATE TABLE IF NOT EXISTS commissioner (
    email TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);

-- Election phase, single row, forward-only
CREATE TABLE IF NOT EXISTS election_phase (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    phase TEXT NOT NULL CHECK (phase IN ('not_open', 'ongoing', 'concluded'))
);

INSERT INTO election_phase (id, phase) VALUES (1, 'not_open') ON CONFLICT (id) DO NOTHING;
`
