// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/chefcontest/internal/app"
	"github.com/okian/chefcontest/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	IngredientsDependencies
	SubmissionDependencies
	LeaderboardDependencies
	WinnersDependencies
	LeftoversDependencies
}

// Server wires HTTP routes for the contest API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	ingredientsHandler *IngredientsHandler
	submissionsHandler *SubmissionsHandler
	leaderboardHandler *LeaderboardHandler
	winnersHandler     *WinnersHandler
	leftoversHandler   *LeftoversHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		ingredientsHandler: NewIngredientsHandler(deps),
		submissionsHandler: NewSubmissionsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		winnersHandler:     NewWinnersHandler(deps),
		leftoversHandler:   NewLeftoversHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/ingredients", MetricsMiddleware(s.ingredientsHandler.HandleGetIngredients, "ingredients"))
	mux.HandleFunc("/submissions", MetricsMiddleware(s.submissionsHandler.HandlePostSubmission, "submissions"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/winners", MetricsMiddleware(s.winnersHandler.HandleGetWinners, "winners"))
	mux.HandleFunc("/leftovers", MetricsMiddleware(s.leftoversHandler.HandlePostLeftovers, "leftovers"))
}

// Wire shapes.

type submissionRequest struct {
	SubmissionID string `json:"submission_id,omitempty"`
	ChefName     string `json:"chef_name"`
	RecipeName   string `json:"recipe_name"`
	Ingredients  string `json:"ingredients,omitempty"`
}

// SubmissionResponse is the body of a POST /submissions reply.
type SubmissionResponse struct {
	SubmissionID string              `json:"submission_id"`
	Duplicate    bool                `json:"duplicate,omitempty"`
	Entry        *model.ContestEntry `json:"entry,omitempty"`
	Result       *model.ScoreResult  `json:"result,omitempty"`
	Code         string              `json:"code,omitempty"`
	Message      string              `json:"message,omitempty"`
}

type leftoversRequest struct {
	ChefName    string `json:"chef_name,omitempty"`
	Ingredients string `json:"ingredients"`
}

type ingredientsResponse struct {
	Ingredients string `json:"ingredients"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps errors shared by every service call.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrNotStarted) {
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
}

// decodeJSON reads a single JSON object from r's body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

const maxBodyBytes = 64 << 10

// writeDecodeError reports a body decodeJSON rejected: 413 once the body
// passes maxBodyBytes, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, op string, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
}
