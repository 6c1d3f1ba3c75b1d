// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP layer over the ledger components.

Each handler owns the ledger components it needs and maps their sentinel
errors to HTTP statuses: validation failures to 400, missing references to
404, state conflicts (already voted, election closed, out-of-order phase
change) to 409, and storage outages to 503.

Voting authenticates with the X-Voter-Email and X-Voter-Password headers;
phase transitions use X-Commissioner-Email and X-Commissioner-Password.
*/
package handlers
