package api

import (
	"context"
	"errors"
	"net/http"

	service "github.com/okian/chefcontest/internal/app"
	"github.com/okian/chefcontest/internal/domain/model"
)

// LeftoversDependencies runs the leftover challenge.
type LeftoversDependencies interface {
	Leftovers(ctx context.Context, ingredients string) ([]model.Suggestion, error)
}

// LeftoversHandler handles leftover challenge requests.
type LeftoversHandler struct {
	deps LeftoversDependencies
}

// NewLeftoversHandler creates a new leftovers handler.
func NewLeftoversHandler(deps LeftoversDependencies) *LeftoversHandler {
	return &LeftoversHandler{deps: deps}
}

// HandlePostLeftovers handles POST /leftovers requests. Model failures come
// back as a single suggestion named "Error", so the status stays 200.
func (h *LeftoversHandler) HandlePostLeftovers(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_leftovers"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req leftoversRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, op, err)
		return
	}
	out, err := h.deps.Leftovers(r.Context(), req.Ingredients)
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	case err != nil:
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
