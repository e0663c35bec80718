package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "CONTEST_"
	envConfigPath  = "CONTEST_CONFIG"
	envDotenvPath  = "CONTEST_DOTENV"
	defaultDotenv  = ".env"
	fallbackKeyEnv = "GOOGLE_API_KEY"
)

// Load builds a Config by layering sources.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. YAML file if CONTEST_CONFIG is set
//  3. environment, where a dotenv file (CONTEST_DOTENV, default .env) only
//     fills variables that are not already set
//
// GOOGLE_API_KEY is honoured when CONTEST_GOOGLE_API_KEY is absent.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoadConfig, path, err)
		}
	}

	if err := loadDotenv(); err != nil {
		return nil, err
	}

	// CONTEST_LEDGER_PATH -> ledger_path; underscores are kept to match koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.GoogleAPIKey == "" {
		cfg.GoogleAPIKey = os.Getenv(fallbackKeyEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotenv merges a dotenv file into the process environment without
// overriding variables that are already set. The default path may be absent.
func loadDotenv() error {
	path, explicit := os.LookupEnv(envDotenvPath)
	if !explicit || path == "" {
		path = defaultDotenv
		explicit = false
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("%w: dotenv %s: %v", ErrLoadConfig, path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: dotenv %s: %v", ErrLoadConfig, path, err)
	}
	return nil
}

// Validate checks the fields every entry point depends on.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.LedgerPath) == "":
		return fmt.Errorf("%w: ledger_path must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.Model) == "":
		return fmt.Errorf("%w: model must not be empty", ErrInvalidConfig)
	case c.MaxLeaderboardLimit < 1:
		return fmt.Errorf("%w: max_leaderboard_limit must be positive", ErrInvalidConfig)
	case c.Temperature > 2:
		return fmt.Errorf("%w: temperature must be at most 2", ErrInvalidConfig)
	case c.MaxOutputTokens < 0:
		return fmt.Errorf("%w: max_output_tokens must not be negative", ErrInvalidConfig)
	}
	_, err := c.FileMode()
	return err
}

// RequireAPIKey reports ErrMissingAPIKey when no credential was configured.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.GoogleAPIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
