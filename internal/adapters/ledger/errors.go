package ledger

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrWrite = errors.New("ledger write failed")
	ErrRead  = errors.New("ledger read failed")
)
