// Package model contains domain models passed between layers.
package model

import "strings"

// DateLayout is the calendar date format stored in the ledger.
const DateLayout = "2006-01-02"

// ScoreResult is the outcome of evaluating a recipe name.
// A failed evaluation carries Score 0 and a reason explaining the failure.
type ScoreResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ContestEntry is one ledger row.
type ContestEntry struct {
	ChefName    string `json:"chef_name"`
	RecipeName  string `json:"recipe_name"`
	Score       int    `json:"score"`
	Reason      string `json:"reason"`
	Ingredients string `json:"ingredients"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// NewEntry builds an entry from a chef's submission and its evaluation.
// Date is left empty for the ledger to stamp. The entry is in Canonical form.
func NewEntry(chef, recipe, ingredients string, res ScoreResult) ContestEntry {
	return ContestEntry{
		ChefName:    chef,
		RecipeName:  recipe,
		Score:       res.Score,
		Reason:      res.Reason,
		Ingredients: ingredients,
	}.Canonical()
}

var crlf = strings.NewReplacer("\r\n", "\n")

// Canonical returns e with CRLF line breaks in its text fields folded to LF,
// the only line break a stored row can carry.
func (e ContestEntry) Canonical() ContestEntry {
	e.ChefName = crlf.Replace(e.ChefName)
	e.RecipeName = crlf.Replace(e.RecipeName)
	e.Reason = crlf.Replace(e.Reason)
	e.Ingredients = crlf.Replace(e.Ingredients)
	e.Date = crlf.Replace(e.Date)
	return e
}

// Table is the in-memory form of a loaded ledger.
type Table struct {
	Columns []string       `json:"columns"`
	Rows    []ContestEntry `json:"rows"`
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Suggestion is one dish proposed by the leftover challenge.
type Suggestion struct {
	Name   string `json:"name"`
	Recipe string `json:"recipe"`
}
