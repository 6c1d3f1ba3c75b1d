// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/gevs/handlers"
	"github.com/danielhkuo/gevs/middleware"
)

// NewRouter wires all GEVS routes and wraps them with CORS and request
// logging.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	accounts := handlers.NewAccountHandler(db)
	voting := handlers.NewVotingHandler(db)
	results := handlers.NewResultsHandler(db)
	election := handlers.NewElectionHandler(db)

	mux.HandleFunc("POST /gevs/register", accounts.Register)
	mux.HandleFunc("POST /gevs/login", accounts.Login)

	mux.HandleFunc("POST /gevs/vote", voting.CastVote)
	mux.HandleFunc("GET /gevs/voter/{email}/status", voting.VoterStatus)

	mux.HandleFunc("GET /gevs/constituencies", results.ListConstituencies)
	mux.HandleFunc("GET /gevs/candidates", results.ListCandidates)
	mux.HandleFunc("GET /gevs/constituency/{name}", results.ConstituencyResults)
	mux.HandleFunc("GET /gevs/results", results.ElectionResults)

	mux.HandleFunc("GET /gevs/election/phase", election.GetPhase)
	mux.HandleFunc("POST /gevs/election/phase", election.Transition)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("GEVS API v1"))
	})

	return middleware.CORS(middleware.WithLogging(mux))
}
