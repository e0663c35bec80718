package api

import (
	"context"
	"errors"
	"net/http"

	service "github.com/okian/chefcontest/internal/app"
)

// SubmissionDependencies scores and records a recipe name.
type SubmissionDependencies interface {
	Submit(ctx context.Context, req service.SubmitRequest) (service.SubmitResult, error)
}

// SubmissionsHandler handles submission requests.
type SubmissionsHandler struct {
	deps SubmissionDependencies
}

// NewSubmissionsHandler creates a new submissions handler.
func NewSubmissionsHandler(deps SubmissionDependencies) *SubmissionsHandler {
	return &SubmissionsHandler{deps: deps}
}

// HandlePostSubmission handles POST /submissions requests.
//
// A new submission answers 201 with the recorded entry. A replayed
// submission_id answers 200 with duplicate set. When the ledger write fails
// the reply is 500 but still carries the evaluated result.
func (h *SubmissionsHandler) HandlePostSubmission(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_submission"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req submissionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, op, err)
		return
	}

	out, err := h.deps.Submit(r.Context(), service.SubmitRequest{
		SubmissionID: req.SubmissionID,
		ChefName:     req.ChefName,
		RecipeName:   req.RecipeName,
		Ingredients:  req.Ingredients,
	})
	switch {
	case errors.Is(err, service.ErrMissingChef):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	case errors.Is(err, service.ErrRecordFailed):
		writeJSON(w, http.StatusInternalServerError, SubmissionResponse{
			SubmissionID: out.SubmissionID,
			Entry:        &out.Entry,
			Result:       &out.Result,
			Code:         "ledger_write_failed",
			Message:      Wrap(op, err).Error(),
		})
		return
	case err != nil:
		writeServiceError(w, op, err)
		return
	}

	if out.Duplicate {
		writeJSON(w, http.StatusOK, SubmissionResponse{SubmissionID: out.SubmissionID, Duplicate: true})
		return
	}
	writeJSON(w, http.StatusCreated, SubmissionResponse{
		SubmissionID: out.SubmissionID,
		Entry:        &out.Entry,
		Result:       &out.Result,
	})
}
