// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"bufio"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/danielhkuo/gevs/auth"
	"github.com/danielhkuo/gevs/cliparse"
	"github.com/danielhkuo/gevs/ledger"
)

const generatedCredentials = 100

var constituencies = []string{
	"Shangri-la-Town",
	"Northern-Kunlun-Mountain",
	"Western-Shangri-la",
	"Naboo-Vallery",
	"New-Felucia",
}

var parties = []string{
	"Blue Party",
	"Red Party",
	"Yellow Party",
	"Independent",
}

// candidateNames holds one candidate per (constituency, party) pair, in
// constituency-major order.
var candidateNames = []string{
	"Alice Winters", "Bob Harrow", "Carol Finch", "David Moss",
	"Erin Caldwell", "Frank Ozu", "Grace Lindon", "Henry Voss",
	"Iris Maren", "Jack Tolliver", "Karen Slade", "Liam Drexel",
	"Mona Reyes", "Noel Ashby", "Opal Trent", "Peter Quill",
	"Quinn Barrow", "Rosa Medina", "Sam Alder", "Tara Novik",
}

// Run loads reference data, the UVC pool, and the commissioner account.
// Each step is idempotent: already-populated tables are left untouched, so
// restarts never duplicate data or reset tallies.
func Run(db *sql.DB, cfg cliparse.Config) error {
	if err := referenceData(db); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}
	if err := credentials(db, cfg.UVCFile); err != nil {
		return fmt.Errorf("seed credentials: %w", err)
	}
	if err := commissioner(db, cfg.CommissionerEmail, cfg.CommissionerPassword); err != nil {
		return fmt.Errorf("seed commissioner: %w", err)
	}
	return nil
}

func referenceData(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM constituency").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, name := range constituencies {
		if _, err := tx.Exec(
			"INSERT INTO constituency (constituency_id, constituency_name) VALUES ($1, $2)",
			i+1, name,
		); err != nil {
			return err
		}
	}
	for i, name := range parties {
		if _, err := tx.Exec(
			"INSERT INTO party (party_id, party_name) VALUES ($1, $2)",
			i+1, name,
		); err != nil {
			return err
		}
	}

	id := 0
	for ci := range constituencies {
		for pi := range parties {
			id++
			if _, err := tx.Exec(
				`INSERT INTO candidate (candidate_id, candidate_name, party_id, constituency_id, vote_count)
				 VALUES ($1, $2, $3, $4, 0)`,
				id, candidateNames[id-1], pi+1, ci+1,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("seeded reference data",
		"constituencies", len(constituencies),
		"parties", len(parties),
		"candidates", id)
	return nil
}

// credentials fills the UVC pool from path, or generates a fresh pool and
// writes it back so the codes can be distributed to voters.
func credentials(db *sql.DB, path string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM uvc_code").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	codes, err := readCredentialFile(path)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		for i := 0; i < generatedCredentials; i++ {
			codes = append(codes, auth.GenerateUVC())
		}
		if err := writeCredentialFile(path, codes); err != nil {
			return err
		}
		slog.Info("generated voter credentials", "file", path, "count", len(codes))
	}

	return ledger.NewCredentialStore(db).IssueBatch(codes)
}

func readCredentialFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code != "" {
			codes = append(codes, code)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func writeCredentialFile(path string, codes []string) error {
	return os.WriteFile(path, []byte(strings.Join(codes, "\n")+"\n"), 0o600)
}

func commissioner(db *sql.DB, email, password string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM commissioner").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := db.Exec(
		"INSERT INTO commissioner (email, password_hash) VALUES ($1, $2)",
		email, hash,
	); err != nil {
		return err
	}
	slog.Info("seeded commissioner account", "email", email)
	return nil
}
