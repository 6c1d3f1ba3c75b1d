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

// ElectionHandler serves the election phase endpoints.
type ElectionHandler struct {
	registry *ledger.VoterRegistry
	phase    *ledger.PhaseController
}

func NewElectionHandler(db *sql.DB) *ElectionHandler {
	return &ElectionHandler{
		registry: ledger.NewVoterRegistry(db),
		phase:    ledger.NewPhaseController(db),
	}
}

// GetPhase handles GET /gevs/election/phase
func (h *ElectionHandler) GetPhase(w http.ResponseWriter, r *http.Request) {
	phase, err := h.phase.Current()
	if err != nil {
		slog.Error("read phase failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.PhaseResponse{Phase: phase})
}

// Transition handles POST /gevs/election/phase
func (h *ElectionHandler) Transition(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("X-Commissioner-Email")
	password := r.Header.Get("X-Commissioner-Password")
	if email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "commissioner credentials required")
		return
	}

	role, err := h.registry.Authenticate(email, password)
	if err != nil {
		slog.Error("commissioner authentication failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	if role != models.RoleCommissioner {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid commissioner credentials")
		return
	}

	var req models.TransitionRequest
	if !middleware.ParseJSONBody(w, r, &req) {
		return
	}
	if req.Target == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target phase is required")
		return
	}

	if err := h.phase.Transition(email, req.Target); err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidTransition):
			middleware.ErrorResponse(w, http.StatusConflict, "invalid phase transition")
		case errors.Is(err, ledger.ErrNotCommissioner):
			middleware.ErrorResponse(w, http.StatusForbidden, "commissioner authority required")
		case ledger.IsStorageError(err):
			slog.Error("phase transition failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		default:
			slog.Error("phase transition failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "phase transition failed")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PhaseResponse{Phase: req.Target})
}
