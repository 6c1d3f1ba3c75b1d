// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/gevs/models"
	"github.com/danielhkuo/gevs/seed"
	"github.com/danielhkuo/gevs/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Seed reference data, credentials, and the commissioner
// 2. Voters register with UVCs
// 3. Commissioner opens the election
// 4. Voters log in and cast votes
// 5. Commissioner concludes the election
// 6. Verify constituency results and the overall outcome
func TestFullElectionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	cfg.UVCFile = filepath.Join(t.TempDir(), "uvcs.txt")

	// Step 1: Seed the election
	if err := seed.Run(db, cfg); err != nil {
		t.Fatalf("Step 1 - Seed failed: %v", err)
	}

	uvcData, err := os.ReadFile(cfg.UVCFile)
	if err != nil {
		t.Fatalf("Step 1 - Seed did not write the UVC file: %v", err)
	}
	uvcs := strings.Fields(string(uvcData))
	if len(uvcs) < 2 {
		t.Fatalf("Step 1 - Expected at least 2 generated UVCs, got %d", len(uvcs))
	}
	t.Logf("Step 1 - Seeded election with %d UVCs", len(uvcs))

	accountHandler := NewAccountHandler(db)
	votingHandler := NewVotingHandler(db)
	resultsHandler := NewResultsHandler(db)
	electionHandler := NewElectionHandler(db)

	// Step 2: Register two voters in Shangri-la-Town
	voters := []string{"alice@example.com", "bob@example.com"}
	for i, email := range voters {
		registerReq := models.RegisterRequest{
			Email:          email,
			Password:       "voter-pass",
			FullName:       "Integration Voter",
			DOB:            "1990-01-01",
			UVC:            uvcs[i],
			ConstituencyID: 1,
		}
		body, _ := json.Marshal(registerReq)
		req := httptest.NewRequest("POST", "/gevs/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		accountHandler.Register(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Register %s failed: %d - %s", email, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 2 - Registered %d voters", len(voters))

	// Voting before the election opens must be rejected
	body, _ := json.Marshal(models.CastVoteRequest{CandidateID: 1})
	req := httptest.NewRequest("POST", "/gevs/vote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Voter-Email", voters[0])
	req.Header.Set("X-Voter-Password", "voter-pass")
	w := httptest.NewRecorder()
	votingHandler.CastVote(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("Early vote should be rejected with 409, got %d", w.Code)
	}

	// Step 3: Commissioner opens the election
	transition := func(target string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(models.TransitionRequest{Target: target})
		req := httptest.NewRequest("POST", "/gevs/election/phase", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Commissioner-Email", cfg.CommissionerEmail)
		req.Header.Set("X-Commissioner-Password", cfg.CommissionerPassword)
		w := httptest.NewRecorder()
		electionHandler.Transition(w, req)
		return w
	}

	if w := transition(models.PhaseOngoing); w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Open election failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 3 - Election opened")

	// Step 4: Both voters log in and vote for candidate 1
	for _, email := range voters {
		loginBody, _ := json.Marshal(models.LoginRequest{Email: email, Password: "voter-pass"})
		req := httptest.NewRequest("POST", "/gevs/login", bytes.NewReader(loginBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		accountHandler.Login(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Login %s failed: %d - %s", email, w.Code, w.Body.String())
		}

		voteBody, _ := json.Marshal(models.CastVoteRequest{CandidateID: 1})
		req = httptest.NewRequest("POST", "/gevs/vote", bytes.NewReader(voteBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Voter-Email", email)
		req.Header.Set("X-Voter-Password", "voter-pass")
		w = httptest.NewRecorder()
		votingHandler.CastVote(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 4 - Vote by %s failed: %d - %s", email, w.Code, w.Body.String())
		}
	}
	t.Logf("Step 4 - %d votes cast", len(voters))

	// Step 5: Conclude the election
	if w := transition(models.PhaseConcluded); w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Conclude election failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 5 - Election concluded")

	// Step 6: Constituency results show the two votes
	req = httptest.NewRequest("GET", "/gevs/constituency/Shangri-la-Town", nil)
	req.SetPathValue("name", "Shangri-la-Town")
	w = httptest.NewRecorder()
	resultsHandler.ConstituencyResults(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Constituency results failed: %d - %s", w.Code, w.Body.String())
	}

	var constituencyResp models.ConstituencyResultsResponse
	json.NewDecoder(w.Body).Decode(&constituencyResp)
	if len(constituencyResp.Results) == 0 {
		t.Fatal("Step 6 - Expected constituency results")
	}
	if constituencyResp.Results[0].VoteCount != 2 {
		t.Errorf("Step 6 - Expected top candidate with 2 votes, got %d", constituencyResp.Results[0].VoteCount)
	}

	// The seeded field is symmetric, so the outcome is a Hung Parliament
	req = httptest.NewRequest("GET", "/gevs/results", nil)
	w = httptest.NewRecorder()
	resultsHandler.ElectionResults(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Election results failed: %d - %s", w.Code, w.Body.String())
	}

	var outcome models.ElectionOutcome
	json.NewDecoder(w.Body).Decode(&outcome)
	if outcome.Status != models.OutcomeCompleted {
		t.Errorf("Step 6 - Expected status Completed, got %q", outcome.Status)
	}
	if outcome.Winner != models.WinnerHungParliament {
		t.Errorf("Step 6 - Expected Hung Parliament, got %q", outcome.Winner)
	}
	t.Log("Step 6 - Results verified")
}
