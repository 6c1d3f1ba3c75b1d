// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening the Store

Open selects the driver from the configured database type:

	conn, err := db.Open("postgres", cfg.DatabaseURL)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite,
CGO-free). The sqlite path gets a busy_timeout pragma so concurrent writers
queue instead of erroring.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes,
and seeds the single election_phase row with ON CONFLICT DO NOTHING.

# Tables

The schema includes:

  - constituency: electoral districts
  - party: political parties
  - candidate: one per (constituency, party), carries the vote tally
  - uvc_code: single-use voting credentials and their used flag
  - voter: registration row, consumed UVC, and the cast-vote reference
  - commissioner: election commissioner accounts
  - election_phase: single row holding the not_open/ongoing/concluded phase

# Relationships

	constituency 1──* candidate
	constituency 1──* voter
	party        1──* candidate
	uvc_code     1──1 voter (once consumed)

voter.candidate_id deliberately carries no foreign key: the vote ledger
validates the candidate inside the same transaction that increments the tally.

# Invariants the schema enforces

  - uvc_code.used only holds 0 or 1; consumption is a conditional update
  - voter.voter_id and voter.uvc are unique (one registration per identity,
    one registration per credential)
  - election_phase is constrained to the three legal phases
*/
package db
