package service

import "errors"

var (
	ErrNotStarted    = errors.New("service not started")
	ErrNoLedger      = errors.New("no ledger configured")
	ErrNoEvaluator   = errors.New("no evaluator configured")
	ErrMissingChef   = errors.New("chef name is required")
	ErrNoIngredients = errors.New("at least one ingredient is required")
	ErrRecordFailed  = errors.New("failed to record submission")
)
