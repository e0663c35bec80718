package api

import (
	"context"
	"net/http"

	"github.com/okian/chefcontest/internal/domain/standings"
)

// WinnersDependencies computes the period winners.
type WinnersDependencies interface {
	Winners(ctx context.Context) (standings.Winners, bool, error)
}

// WinnersHandler handles winners requests.
type WinnersHandler struct {
	deps WinnersDependencies
}

// NewWinnersHandler creates a new winners handler.
func NewWinnersHandler(deps WinnersDependencies) *WinnersHandler {
	return &WinnersHandler{deps: deps}
}

// HandleGetWinners handles GET /winners requests. An empty ledger is not an
// error: it answers 200 with {"message":"no data"}.
func (h *WinnersHandler) HandleGetWinners(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_winners"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	winners, ok, err := h.deps.Winners(r.Context())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, messageResponse{Message: "no data"})
		return
	}
	writeJSON(w, http.StatusOK, winners)
}
