// Package completion provides text completion backends for the evaluator.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Sentinel kinds for completion errors.
var (
	ErrMissingAPIKey = errors.New("gemini api key is required")
	ErrNoCandidates  = errors.New("gemini returned no candidates")
	ErrBlocked       = errors.New("gemini blocked the prompt")
)

const defaultModel = "gemini-1.5-pro"

// generator is the slice of genai.Models the backend uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini completes prompts with Google's Gemini API.
type Gemini struct {
	models generator
	model  string
	config *genai.GenerateContentConfig
}

// GeminiOption applies a configuration option to Gemini.
type GeminiOption func(*Gemini)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) GeminiOption {
	return func(g *Gemini) {
		g.config.Temperature = genai.Ptr(t)
	}
}

// WithMaxOutputTokens caps the reply length.
func WithMaxOutputTokens(n int32) GeminiOption {
	return func(g *Gemini) {
		if n > 0 {
			g.config.MaxOutputTokens = n
		}
	}
}

// NewGemini creates a Gemini backend for model using apiKey.
func NewGemini(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, model, opts...), nil
}

func newGemini(models generator, model string, opts ...GeminiOption) *Gemini {
	if model == "" {
		model = defaultModel
	}
	g := &Gemini{
		models: models,
		model:  model,
		config: &genai.GenerateContentConfig{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the configured model name.
func (g *Gemini) Model() string { return g.model }

// Complete sends prompt as a single user turn and returns the reply text.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", ErrNoCandidates
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, fb.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	return resp.Text(), nil
}
