// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gevs/ledger"
	"github.com/danielhkuo/gevs/middleware"
	"github.com/danielhkuo/gevs/models"
)

// VotingHandler serves vote casting and voter status.
type VotingHandler struct {
	registry *ledger.VoterRegistry
	votes    *ledger.VoteLedger
}

func NewVotingHandler(db *sql.DB) *VotingHandler {
	return &VotingHandler{
		registry: ledger.NewVoterRegistry(db),
		votes:    ledger.NewVoteLedger(db),
	}
}

// authenticateVoter checks the voter credential headers. On failure it
// writes the response and returns an empty email.
func (h *VotingHandler) authenticateVoter(w http.ResponseWriter, r *http.Request) string {
	email := r.Header.Get("X-Voter-Email")
	password := r.Header.Get("X-Voter-Password")
	if email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "voter credentials required")
		return ""
	}

	role, err := h.registry.Authenticate(email, password)
	if err != nil {
		slog.Error("voter authentication failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return ""
	}
	if role != models.RoleVoter {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid voter credentials")
		return ""
	}
	return email
}

// CastVote handles POST /gevs/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	email := h.authenticateVoter(w, r)
	if email == "" {
		return
	}

	var req models.CastVoteRequest
	if !middleware.ParseJSONBody(w, r, &req) {
		return
	}
	if req.CandidateID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	if err := h.votes.CastVote(email, req.CandidateID); err != nil {
		switch {
		case errors.Is(err, ledger.ErrElectionNotOpen):
			middleware.ErrorResponse(w, http.StatusConflict, "election is not open for voting")
		case errors.Is(err, ledger.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, "you have already voted")
		case errors.Is(err, ledger.ErrCandidateNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "candidate not found")
		case errors.Is(err, ledger.ErrVoterNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "voter not found")
		case ledger.IsStorageError(err):
			slog.Error("vote failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		default:
			slog.Error("vote failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "vote failed")
		}
		return
	}

	slog.Info("vote recorded", "voter_id", email, "candidate_id", req.CandidateID)
	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Status:  "success",
		Message: "Vote submitted successfully!",
	})
}

// VoterStatus handles GET /gevs/voter/{email}/status
func (h *VotingHandler) VoterStatus(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	voted, err := h.registry.HasVoted(email)
	if err != nil {
		if errors.Is(err, ledger.ErrVoterNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "voter not found")
			return
		}
		slog.Error("voter status failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}

	constituency, err := h.registry.ConstituencyOf(email)
	if err != nil {
		slog.Error("voter status failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterStatusResponse{
		Email:        email,
		HasVoted:     voted,
		Constituency: constituency.Name,
	})
}
