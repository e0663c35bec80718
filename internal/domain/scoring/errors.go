package scoring

import "errors"

// Sentinel kinds for evaluation failures. They only ever surface inside the
// reason of a zero ScoreResult or an error Suggestion.
var (
	ErrEmptyResponse = errors.New("empty response")
	ErrNoCompleter   = errors.New("no completer configured")
	ErrPanic         = errors.New("completer panicked")
)
