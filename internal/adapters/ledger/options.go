package ledger

import (
	"os"
	"time"

	"github.com/okian/chefcontest/pkg/logger"
)

// Option applies a configuration option to the CSV ledger.
type Option func(*CSV)

// WithClock sets the time source used to stamp undated entries.
func WithClock(now func() time.Time) Option {
	return func(l *CSV) {
		if now != nil {
			l.now = now
		}
	}
}

// WithFileMode sets the permissions of a newly created ledger file.
func WithFileMode(mode os.FileMode) Option {
	return func(l *CSV) {
		if mode != 0 {
			l.mode = mode
		}
	}
}

// WithLogger sets the ledger's logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *CSV) {
		if lg != nil {
			l.logger = lg
		}
	}
}
