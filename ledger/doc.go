// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the election's core business logic on top of
database/sql.

It is split into small components, each owning one slice of state:

  - CredentialStore: the pool of single-use voter codes (UVCs)
  - VoterRegistry: voter accounts, registration, and authentication
  - Catalog: constituency, party, and candidate reference data
  - PhaseController: the forward-only election lifecycle
  - VoteLedger: vote recording and candidate tallies
  - Tabulator: standings, seats per party, and the overall outcome

Every mutation that could race (consuming a UVC, casting a vote, advancing
the phase) is written as a conditional UPDATE whose WHERE clause encodes
the precondition, followed by a RowsAffected check. The database serializes
the contenders, so exactly one wins regardless of interleaving; the loser's
failure reason is read back inside the same transaction.

Errors are sentinel values (ErrAlreadyVoted, ErrInvalidCredential, ...)
that handlers map to HTTP statuses with errors.Is. Infrastructure failures
are wrapped in StorageError so callers can tell a retryable outage apart
from a definitive business rejection.
*/
package ledger
