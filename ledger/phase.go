// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"log/slog"

	"github.com/danielhkuo/gevs/models"
)

// phasePredecessor maps each target phase to the only phase it may be
// entered from. The lifecycle is strictly not_open -> ongoing -> concluded.
var phasePredecessor = map[string]string{
	models.PhaseOngoing:   models.PhaseNotOpen,
	models.PhaseConcluded: models.PhaseOngoing,
}

// PhaseController owns the single-row election lifecycle state.
type PhaseController struct {
	db *sql.DB
}

func NewPhaseController(db *sql.DB) *PhaseController {
	return &PhaseController{db: db}
}

// Current returns the election phase.
func (p *PhaseController) Current() (string, error) {
	var phase string
	if err := p.db.QueryRow("SELECT phase FROM election_phase WHERE id = 1").Scan(&phase); err != nil {
		return "", storageErr("read phase", err)
	}
	return phase, nil
}

// Transition advances the election to target on behalf of requestedBy, who
// must be the commissioner. A conditional update enforces the forward-only
// order: two racing transitions to the same target yield one success and
// one ErrInvalidTransition.
func (p *PhaseController) Transition(requestedBy, target string) error {
	from, ok := phasePredecessor[target]
	if !ok {
		return ErrInvalidTransition
	}

	var isCommissioner bool
	err := p.db.QueryRow("SELECT EXISTS(SELECT 1 FROM commissioner WHERE email = $1)", requestedBy).Scan(&isCommissioner)
	if err != nil {
		return storageErr("transition phase", err)
	}
	if !isCommissioner {
		return ErrNotCommissioner
	}

	res, err := p.db.Exec("UPDATE election_phase SET phase = $1 WHERE id = 1 AND phase = $2", target, from)
	if err != nil {
		return storageErr("transition phase", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("transition phase", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}

	slog.Info("election phase changed", "phase", target, "by", requestedBy)
	return nil
}
