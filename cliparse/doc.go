// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5001)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - UVCFile: File of single-use voting credentials (default: uvcs.txt)
  - CommissionerEmail: Bootstrap commissioner account (required)
  - CommissionerPassword: Bootstrap commissioner secret (required)

# CLI Flags

	-p                     Server port
	-d                     Database URL
	-t                     Database type
	--uvc-file             UVC file path
	--commissioner-email   Commissioner email
	--commissioner-password Commissioner password

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	UVC_FILE              → --uvc-file
	COMMISSIONER_EMAIL    → --commissioner-email
	COMMISSIONER_PASSWORD → --commissioner-password

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - COMMISSIONER_EMAIL must be provided
  - COMMISSIONER_PASSWORD must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn)
*/
package cliparse
