package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/pkg/logger"
	"github.com/okian/chefcontest/pkg/metrics"
)

// Completer sends a prompt to a text-generation provider and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Evaluator scores recipe names and runs the leftover challenge.
// None of its methods return errors; failures are folded into the results.
type Evaluator struct {
	completer Completer
	timeout   time.Duration
	logger    logger.Logger
}

// NewEvaluator creates an Evaluator backed by c.
func NewEvaluator(c Completer, opts ...Option) *Evaluator {
	e := &Evaluator{
		completer: c,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate asks the completion service to grade recipeName.
func (e *Evaluator) Evaluate(ctx context.Context, recipeName string) model.ScoreResult {
	reply, err := e.complete(ctx, RecipeNamePrompt(recipeName))
	if err != nil {
		metrics.RecordCompletionError()
		e.logger.Warn(ctx, "completion failed", logger.String("recipe", recipeName), logger.Error(err))
		return model.ScoreResult{Score: 0, Reason: "AI error: " + err.Error()}
	}

	res, stage := ParseWithStage(reply)
	metrics.RecordParseOutcome(string(stage))
	if stage == StageUnparsed {
		e.logger.Warn(ctx, "unparsed completion reply", logger.String("reply", reply))
	}
	e.logger.Debug(ctx, "recipe evaluated",
		logger.String("recipe", recipeName),
		logger.Int("score", res.Score),
		logger.String("stage", string(stage)),
	)
	return res
}

// complete runs one completion call, converting empty replies and panics
// into errors.
func (e *Evaluator) complete(ctx context.Context, prompt string) (reply string, err error) {
	if e.completer == nil {
		return "", ErrNoCompleter
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			reply, err = "", fmt.Errorf("%w: %v", ErrPanic, r)
		}
		metrics.RecordEvaluationLatency(float64(time.Since(start).Milliseconds()))
	}()

	reply, err = e.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(reply), nil
}
