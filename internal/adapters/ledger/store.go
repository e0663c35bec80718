// Package ledger persists contest entries in an append-only CSV file.
//
// The file's first row is a fixed header, written only when the file is
// created. Rows are never rewritten or removed by this package.
//
// Appends are serialised inside one process only. Two processes sharing a
// file are not coordinated and their rows may interleave.
package ledger

import (
	"context"

	"github.com/okian/chefcontest/internal/domain/model"
)

// Canonical column names, in file order.
const (
	ColChefName    = "Chef Name"
	ColRecipeName  = "Recipe Name"
	ColScore       = "Score"
	ColReason      = "Reason"
	ColIngredients = "Ingredients"
	ColDate        = "Date"
)

// Header returns the canonical six-column header.
func Header() []string {
	return []string{ColChefName, ColRecipeName, ColScore, ColReason, ColIngredients, ColDate}
}

// Store is the append/reload contract the service relies on.
type Store interface {
	// Append writes one row per entry, in order.
	Append(ctx context.Context, entries ...model.ContestEntry) error
	// Load reads the whole ledger. A missing ledger is an empty table.
	Load(ctx context.Context) (model.Table, error)
}
