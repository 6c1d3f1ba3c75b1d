// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/gevs/cliparse"
	gevsdb "github.com/danielhkuo/gevs/db"
)

func setupSeedTest(t *testing.T) (*sql.DB, cliparse.Config) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	conn, err := gevsdb.Open("sqlite", "file:"+dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := gevsdb.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	cfg := cliparse.Config{
		DatabaseURL:          "file:" + dbPath,
		DatabaseType:         "sqlite",
		UVCFile:              filepath.Join(t.TempDir(), "uvcs.txt"),
		CommissionerEmail:    "election@shangrila.gov.sr",
		CommissionerPassword: "commissioner-pass",
	}
	return conn, cfg
}

func TestRunSeedsEverything(t *testing.T) {
	conn, cfg := setupSeedTest(t)

	if err := Run(conn, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	counts := map[string]int{
		"constituency": 5,
		"party":        4,
		"candidate":    20,
		"uvc_code":     100,
		"commissioner": 1,
	}
	for table, want := range counts {
		var got int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("Table %s has %d rows, want %d", table, got, want)
		}
	}

	// The generated pool is written back for distribution
	if _, err := os.Stat(cfg.UVCFile); err != nil {
		t.Errorf("UVC file was not written: %v", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	conn, cfg := setupSeedTest(t)

	if err := Run(conn, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := Run(conn, cfg); err != nil {
		t.Fatalf("Second Run() error = %v", err)
	}

	var candidates int
	if err := conn.QueryRow("SELECT COUNT(*) FROM candidate").Scan(&candidates); err != nil {
		t.Fatalf("Failed to count candidates: %v", err)
	}
	if candidates != 20 {
		t.Errorf("Second run duplicated candidates: %d", candidates)
	}
}

func TestRunLoadsCredentialsFromFile(t *testing.T) {
	conn, cfg := setupSeedTest(t)

	codes := "AAA111BBB222\nCCC333DDD444\n\nEEE555FFF666\n"
	if err := os.WriteFile(cfg.UVCFile, []byte(codes), 0o600); err != nil {
		t.Fatalf("Failed to write UVC file: %v", err)
	}

	if err := Run(conn, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM uvc_code").Scan(&count); err != nil {
		t.Fatalf("Failed to count codes: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 codes from file, got %d", count)
	}

	var exists bool
	if err := conn.QueryRow("SELECT EXISTS(SELECT 1 FROM uvc_code WHERE uvc = 'CCC333DDD444' AND used = 0)").Scan(&exists); err != nil {
		t.Fatalf("Failed to check code: %v", err)
	}
	if !exists {
		t.Error("Code from file was not loaded unused")
	}
}

func TestRunEachConstituencyFullyContested(t *testing.T) {
	conn, cfg := setupSeedTest(t)

	if err := Run(conn, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Every constituency fields one candidate per party
	rows, err := conn.Query(`
		SELECT constituency_id, COUNT(DISTINCT party_id)
		FROM candidate
		GROUP BY constituency_id
	`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var id, parties int
		if err := rows.Scan(&id, &parties); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if parties != 4 {
			t.Errorf("Constituency %d has %d parties, want 4", id, parties)
		}
		seen++
	}
	if seen != 5 {
		t.Errorf("Expected 5 contested constituencies, got %d", seen)
	}
}
