// Package service provides the contest workflow behind the HTTP API and CLI:
// evaluate a recipe name, record it in the ledger, and read standings back.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/chefcontest/internal/adapters/ledger"
	"github.com/okian/chefcontest/internal/domain/dedupe"
	"github.com/okian/chefcontest/internal/domain/menu"
	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/internal/domain/scoring"
	"github.com/okian/chefcontest/internal/domain/standings"
	"github.com/okian/chefcontest/pkg/logger"
	"github.com/okian/chefcontest/pkg/metrics"
)

// SubmitRequest is one chef's recipe name entry.
type SubmitRequest struct {
	SubmissionID string
	ChefName     string
	RecipeName   string
	Ingredients  string
}

// SubmitResult describes what happened to a submission. When Duplicate is
// set the submission was already recorded and nothing else is filled in
// apart from SubmissionID.
type SubmitResult struct {
	SubmissionID string
	Duplicate    bool
	Entry        model.ContestEntry
	Result       model.ScoreResult
}

// Service runs the contest workflow. Every call is one synchronous pass.
type Service struct {
	mu sync.RWMutex

	// Core components
	ledger    ledger.Store
	evaluator *scoring.Evaluator
	catalogue *menu.Catalogue
	deduper   dedupe.Deduper

	// Configuration
	dedupeSize int
	now        func() time.Time

	// State
	started   bool
	startedAt time.Time

	submitted  atomic.Int64
	duplicates atomic.Int64
	failures   atomic.Int64

	logger logger.Logger
}

// New constructs a new Service. Start must be called before use.
func New(opts ...Option) *Service {
	s := &Service{
		dedupeSize: 10_000,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start fills in default components and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.ledger == nil {
		return ErrNoLedger
	}
	if s.evaluator == nil {
		return ErrNoEvaluator
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.catalogue == nil {
		s.catalogue = menu.Default()
	}
	if s.deduper == nil {
		s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	}

	s.started = true
	s.startedAt = s.now()
	s.logger.Info(ctx, "contest service started",
		logger.Int("dishes", len(s.catalogue.Dishes())),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop marks the service stopped. The ledger holds no open handles between
// calls, so there is nothing to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "contest service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// Ingredients draws the ingredient list of a random dish.
func (s *Service) Ingredients() (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.catalogue.RandomIngredients(), nil
}

// Submit evaluates req.RecipeName and appends the result to the ledger.
//
// A replayed SubmissionID is reported as a duplicate without another
// evaluation. When the ledger write fails the evaluated result is still
// returned together with an error wrapping ErrRecordFailed, and the id is
// forgotten so the client may retry.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if err := s.ready(); err != nil {
		return SubmitResult{}, err
	}
	chef := strings.TrimSpace(req.ChefName)
	if chef == "" {
		return SubmitResult{}, ErrMissingChef
	}

	id := strings.TrimSpace(req.SubmissionID)
	if id == "" {
		id = uuid.NewString()
	}
	if s.deduper.SeenAndRecord(ctx, id) {
		s.duplicates.Add(1)
		metrics.RecordSubmissionDuplicate()
		s.logger.Debug(ctx, "duplicate submission skipped", logger.String("submissionID", id))
		return SubmitResult{SubmissionID: id, Duplicate: true}, nil
	}

	recipe := strings.TrimSpace(req.RecipeName)
	res := s.evaluator.Evaluate(ctx, recipe)
	metrics.RecordSubmission()
	s.submitted.Add(1)

	entry := model.NewEntry(chef, recipe, strings.TrimSpace(req.Ingredients), res)
	entry.Date = s.now().Format(model.DateLayout)
	out := SubmitResult{SubmissionID: id, Entry: entry, Result: res}

	if err := s.ledger.Append(ctx, entry); err != nil {
		s.failures.Add(1)
		s.deduper.Unrecord(ctx, id)
		s.logger.Error(ctx, "failed to record submission",
			logger.String("submissionID", id),
			logger.String("chef", chef),
			logger.Error(err),
		)
		return out, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}

	s.logger.Info(ctx, "submission recorded",
		logger.String("submissionID", id),
		logger.String("chef", chef),
		logger.String("recipe", recipe),
		logger.Int("score", res.Score),
	)
	return out, nil
}

// Leaderboard returns the ledger in file order, truncated to limit rows when
// limit > 0. An unreadable ledger is logged and shown as empty.
func (s *Service) Leaderboard(ctx context.Context, limit int) (model.Table, error) {
	if err := s.ready(); err != nil {
		return model.Table{}, err
	}
	t := s.load(ctx)
	if limit > 0 && len(t.Rows) > limit {
		t.Rows = t.Rows[:limit]
	}
	return t, nil
}

// Winners returns the daily, weekly and monthly winners. ok is false when the
// ledger holds no dated rows.
func (s *Service) Winners(ctx context.Context) (w standings.Winners, ok bool, err error) {
	if err := s.ready(); err != nil {
		return standings.Winners{}, false, err
	}
	w, ok = standings.Compute(s.load(ctx))
	return w, ok, nil
}

// Leftovers runs the leftover challenge for a comma separated ingredient list.
func (s *Service) Leftovers(ctx context.Context, ingredients string) ([]model.Suggestion, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	list := scoring.SplitIngredients(ingredients)
	if len(list) == 0 {
		return nil, ErrNoIngredients
	}
	return s.evaluator.Suggest(ctx, list), nil
}

func (s *Service) load(ctx context.Context) model.Table {
	t, err := s.ledger.Load(ctx)
	if err != nil {
		lvl := s.logger.Error
		if errors.Is(err, context.Canceled) {
			lvl = s.logger.Debug
		}
		lvl(ctx, "failed to load ledger, showing empty table", logger.Error(err))
		return model.Table{Columns: ledger.Header()}
	}
	return t
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"dedupeSize":  s.dedupeSize,
		"submissions": s.submitted.Load(),
		"duplicates":  s.duplicates.Load(),
		"failures":    s.failures.Load(),
	}
	if !s.started {
		return stats
	}

	stats["uptimeSeconds"] = int64(s.now().Sub(s.startedAt).Seconds())
	stats["dishes"] = len(s.catalogue.Dishes())
	stats["rememberedSubmissions"] = s.deduper.Size()
	if p, ok := s.ledger.(interface{ Path() string }); ok {
		stats["ledgerPath"] = p.Path()
	}
	return stats
}
