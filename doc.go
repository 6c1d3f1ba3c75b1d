// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the GEVS API server.

GEVS (General Election Voting System) records voter registrations, enforces
single-use voting credentials (UVCs), accepts one vote per eligible voter,
and tabulates seats per party once the election concludes.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... COMMISSIONER_EMAIL=election@shangri-la.gov \
	COMMISSIONER_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 5001 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string (postgres URL or sqlite file)
  - COMMISSIONER_EMAIL (--commissioner-email): bootstrap commissioner account
  - COMMISSIONER_PASSWORD (--commissioner-password): bootstrap commissioner secret

Optional settings:

  - PORT (-p): server port (default: 5001)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - UVC_FILE (--uvc-file): text file of voting credentials to load
    (default: uvcs.txt; generated with 100 fresh codes when missing)

# Architecture

The election ledger core is separated from its thin HTTP adapters:

  - ledger: credential store, voter registry, catalog, phase controller,
    vote ledger, and tabulation engine (all election invariants live here)
  - handlers: HTTP request handlers delegating to the ledger
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: argon2id credential verification and UVC generation
  - db: store open and schema creation
  - seed: constituency/party/candidate/UVC/commissioner bootstrap
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
