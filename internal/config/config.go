// Package config defines service configuration and its loading hooks.
//
// Conventions:
//   - New builds a Config holding the defaults.
//   - Load layers defaults, an optional YAML file, an optional dotenv file
//     and CONTEST_* environment variables, in that order.
//   - Errors returned from this package wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LedgerPath is the CSV file holding contest results.
	LedgerPath string `koanf:"ledger_path"`

	// Model names the Gemini model used for scoring.
	Model string `koanf:"model"`

	// GoogleAPIKey authenticates against the Gemini API.
	GoogleAPIKey string `koanf:"google_api_key"`

	// Temperature is the model's sampling temperature; negative keeps the
	// model default.
	Temperature float64 `koanf:"temperature"`

	// MaxOutputTokens caps the reply length; 0 keeps the model default.
	MaxOutputTokens int `koanf:"max_output_tokens"`

	// CompletionTimeoutMS bounds a single completion call; 0 disables the bound.
	CompletionTimeoutMS int `koanf:"completion_timeout_ms"`

	// LedgerFileMode is the octal permission set of a newly created ledger.
	LedgerFileMode string `koanf:"ledger_file_mode"`

	// MenuPath optionally points to a YAML dish catalogue replacing the built-in one.
	MenuPath string `koanf:"menu_path"`

	// DedupeSize bounds the remembered submission ids.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		LedgerPath:          "recipe_contest_results.csv",
		Model:               "gemini-1.5-pro",
		Temperature:         -1,
		LedgerFileMode:      "0644",
		CompletionTimeoutMS: 0,
		DedupeSize:          10_000,
		MaxLeaderboardLimit: 1000,
	}
}

// CompletionTimeout returns the completion bound as a duration.
func (c *Config) CompletionTimeout() time.Duration {
	if c.CompletionTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.CompletionTimeoutMS) * time.Millisecond
}

// FileMode parses LedgerFileMode, e.g. "0600".
func (c *Config) FileMode() (os.FileMode, error) {
	mode, err := strconv.ParseUint(c.LedgerFileMode, 8, 32)
	if err != nil || mode == 0 || mode > 0o777 {
		return 0, fmt.Errorf("%w: ledger_file_mode %q is not an octal permission set", ErrInvalidConfig, c.LedgerFileMode)
	}
	return os.FileMode(mode), nil
}
