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

// ResultsHandler serves the catalog and tabulation endpoints.
type ResultsHandler struct {
	catalog   *ledger.Catalog
	tabulator *ledger.Tabulator
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{
		catalog:   ledger.NewCatalog(db),
		tabulator: ledger.NewTabulator(db),
	}
}

// ListConstituencies handles GET /gevs/constituencies
func (h *ResultsHandler) ListConstituencies(w http.ResponseWriter, r *http.Request) {
	constituencies, err := h.catalog.ListConstituencies()
	if err != nil {
		slog.Error("list constituencies failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, constituencies)
}

// ListCandidates handles GET /gevs/candidates
func (h *ResultsHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.catalog.ListCandidates()
	if err != nil {
		slog.Error("list candidates failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ConstituencyResults handles GET /gevs/constituency/{name}
func (h *ResultsHandler) ConstituencyResults(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	results, err := h.tabulator.ResultsByConstituency(name)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrConstituencyNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "constituency not found")
		case errors.Is(err, ledger.ErrNoResults):
			// A known constituency with no candidates is an empty list,
			// not an error.
			middleware.JSONResponse(w, http.StatusOK, models.ConstituencyResultsResponse{
				Constituency: name,
				Results:      []models.ConstituencyResult{},
			})
		default:
			slog.Error("constituency results failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ConstituencyResultsResponse{
		Constituency: name,
		Results:      results,
	})
}

// ElectionResults handles GET /gevs/results
func (h *ResultsHandler) ElectionResults(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.tabulator.Outcome()
	if err != nil {
		slog.Error("election results failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, outcome)
}
