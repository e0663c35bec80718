package service

import (
	"time"

	"github.com/okian/chefcontest/internal/adapters/ledger"
	"github.com/okian/chefcontest/internal/domain/dedupe"
	"github.com/okian/chefcontest/internal/domain/menu"
	"github.com/okian/chefcontest/internal/domain/scoring"
	"github.com/okian/chefcontest/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLedger sets the results ledger.
func WithLedger(store ledger.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.ledger = store
		}
	}
}

// WithEvaluator sets the recipe name evaluator.
func WithEvaluator(e *scoring.Evaluator) Option {
	return func(s *Service) {
		if e != nil {
			s.evaluator = e
		}
	}
}

// WithCatalogue replaces the built-in dish catalogue.
func WithCatalogue(c *menu.Catalogue) Option {
	return func(s *Service) {
		if c != nil {
			s.catalogue = c
		}
	}
}

// WithDeduper sets a custom submission deduper.
func WithDeduper(d dedupe.Deduper) Option {
	return func(s *Service) {
		if d != nil {
			s.deduper = d
		}
	}
}

// WithDedupeSize sets the size of the default deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithClock sets the clock used to date entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
