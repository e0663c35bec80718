package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/pkg/logger"
	"github.com/okian/chefcontest/pkg/metrics"
)

// Suggest proposes dishes for the given leftover ingredients. Any failure
// produces a single suggestion named "Error" whose recipe holds the message.
func (e *Evaluator) Suggest(ctx context.Context, ingredients []string) []model.Suggestion {
	reply, err := e.complete(ctx, LeftoverPrompt(ingredients))
	if err != nil {
		metrics.RecordCompletionError()
		metrics.RecordSuggestion("error")
		e.logger.Warn(ctx, "leftover completion failed", logger.Error(err))
		return errorSuggestion(err)
	}

	out, err := ParseSuggestions(reply)
	if err != nil {
		metrics.RecordSuggestion("error")
		e.logger.Warn(ctx, "unparsed leftover reply", logger.String("reply", reply), logger.Error(err))
		return errorSuggestion(err)
	}
	metrics.RecordSuggestion("ok")
	return out
}

// ParseSuggestions decodes a (possibly fenced) JSON list of {"name","recipe"} objects.
func ParseSuggestions(raw string) ([]model.Suggestion, error) {
	var out []model.Suggestion
	if err := json.Unmarshal([]byte(StripFence(raw)), &out); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("decode suggestions: %w", ErrEmptyResponse)
	}
	return out, nil
}

func errorSuggestion(err error) []model.Suggestion {
	return []model.Suggestion{{Name: "Error", Recipe: err.Error()}}
}
