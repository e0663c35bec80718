// Package client is a typed HTTP client for the contest API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/chefcontest/internal/adapters/http/api"
	"github.com/okian/chefcontest/internal/domain/model"
	"github.com/okian/chefcontest/internal/domain/standings"
)

const defaultTimeout = 60 * time.Second

// ErrUnexpectedStatus is wrapped by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError reports a non-success reply.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %d", ErrUnexpectedStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s %d: %s: %s", ErrUnexpectedStatus, e.StatusCode, e.Code, e.Message)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Client talks to a running contest server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds every request. Scoring waits on the model, so keep it generous.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:9080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submission is a recipe name entry sent to the server.
type Submission struct {
	SubmissionID string `json:"submission_id,omitempty"`
	ChefName     string `json:"chef_name"`
	RecipeName   string `json:"recipe_name"`
	Ingredients  string `json:"ingredients,omitempty"`
}

// Ingredients draws a random ingredient list.
func (c *Client) Ingredients(ctx context.Context) (string, error) {
	var out struct {
		Ingredients string `json:"ingredients"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/ingredients", nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Ingredients, nil
}

// Submit sends s for scoring. When the server scored the entry but failed to
// record it, the reply is returned together with a *StatusError.
func (c *Client) Submit(ctx context.Context, s Submission) (api.SubmissionResponse, error) {
	var out api.SubmissionResponse
	_, err := c.do(ctx, http.MethodPost, "/submissions", s, &out, http.StatusCreated, http.StatusOK)
	return out, err
}

// Leaderboard fetches the ledger table; limit <= 0 fetches every row.
func (c *Client) Leaderboard(ctx context.Context, limit int) (model.Table, error) {
	path := "/leaderboard"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var out model.Table
	_, err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	return out, err
}

// Winners fetches the period winners. ok is false when the server has no data.
func (c *Client) Winners(ctx context.Context) (w standings.Winners, ok bool, err error) {
	var raw json.RawMessage
	if _, err = c.do(ctx, http.MethodGet, "/winners", nil, &raw, http.StatusOK); err != nil {
		return standings.Winners{}, false, err
	}
	var probe struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &probe) == nil && probe.Message != "" {
		return standings.Winners{}, false, nil
	}
	if err = json.Unmarshal(raw, &w); err != nil {
		return standings.Winners{}, false, fmt.Errorf("decode winners: %w", err)
	}
	return w, true, nil
}

// Leftovers runs the leftover challenge for a comma separated ingredient list.
func (c *Client) Leftovers(ctx context.Context, chef, ingredients string) ([]model.Suggestion, error) {
	body := map[string]string{"chef_name": chef, "ingredients": ingredients}
	var out []model.Suggestion
	_, err := c.do(ctx, http.MethodPost, "/leftovers", body, &out, http.StatusOK)
	return out, err
}

// Stats fetches the service statistics.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	_, err := c.do(ctx, http.MethodGet, "/stats", nil, &out, http.StatusOK)
	return out, err
}

// do sends one request and decodes the reply into out. Replies with a status
// outside ok are decoded into out too when possible, then reported as a
// *StatusError.
func (c *Client) do(ctx context.Context, method, path string, in, out any, ok ...int) (int, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	for _, code := range ok {
		if resp.StatusCode == code {
			if err := json.Unmarshal(data, out); err != nil {
				return resp.StatusCode, fmt.Errorf("decode response: %w", err)
			}
			return resp.StatusCode, nil
		}
	}

	_ = json.Unmarshal(data, out)
	se := &StatusError{StatusCode: resp.StatusCode}
	var e struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &e) == nil {
		se.Code, se.Message = e.Code, e.Message
	}
	return resp.StatusCode, se
}
