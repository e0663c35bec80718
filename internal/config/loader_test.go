package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/chefcontest/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LedgerPath, convey.ShouldEqual, "recipe_contest_results.csv")
			convey.So(cfg.Model, convey.ShouldEqual, "gemini-1.5-pro")
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 1000)
			convey.So(cfg.CompletionTimeout(), convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.Temperature, convey.ShouldBeLessThan, 0)
			convey.So(cfg.MaxOutputTokens, convey.ShouldEqual, 0)
			mode, err := cfg.FileMode()
			convey.So(err, convey.ShouldBeNil)
			convey.So(mode, convey.ShouldEqual, os.FileMode(0o644))
		})
	})
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.GoogleAPIKey, convey.ShouldBeEmpty)
				convey.So(errors.Is(cfg.RequireAPIKey(), config.ErrMissingAPIKey), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CONTEST_ADDR", ":8080")
			_ = os.Setenv("CONTEST_LEDGER_PATH", "/tmp/results.csv")
			_ = os.Setenv("CONTEST_COMPLETION_TIMEOUT_MS", "1500")
			_ = os.Setenv("CONTEST_GOOGLE_API_KEY", "env-key")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LedgerPath, convey.ShouldEqual, "/tmp/results.csv")
				convey.So(cfg.CompletionTimeout(), convey.ShouldEqual, 1500*time.Millisecond)
				convey.So(cfg.RequireAPIKey(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When only the unprefixed GOOGLE_API_KEY is set", func() {
			_ = os.Setenv("GOOGLE_API_KEY", "plain-key")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it is used as the credential", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GoogleAPIKey, convey.ShouldEqual, "plain-key")
			})
		})

		convey.Convey("When loading config with YAML file and env overrides", func() {
			tmpFile := createTempFile(t, "contest-config-*.yaml", `
addr: ":9090"
model: gemini-1.5-flash
dedupe_size: 50
menu_path: menu.yaml
`)
			_ = os.Setenv("CONTEST_CONFIG", tmpFile)
			_ = os.Setenv("CONTEST_DEDUPE_SIZE", "75")

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins over file and file wins over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Model, convey.ShouldEqual, "gemini-1.5-flash")
				convey.So(cfg.MenuPath, convey.ShouldEqual, "menu.yaml")
				convey.So(cfg.DedupeSize, convey.ShouldEqual, 75)
				convey.So(cfg.LedgerPath, convey.ShouldEqual, "recipe_contest_results.csv")
			})
		})

		convey.Convey("When a dotenv file carries the API key", func() {
			dotenv := createTempFile(t, "contest-*.env", "CONTEST_GOOGLE_API_KEY=dotenv-key\nCONTEST_MODEL=dotenv-model\n")
			_ = os.Setenv("CONTEST_DOTENV", dotenv)
			_ = os.Setenv("CONTEST_MODEL", "env-model")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it fills the gaps without overriding the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.GoogleAPIKey, convey.ShouldEqual, "dotenv-key")
				convey.So(cfg.Model, convey.ShouldEqual, "env-model")
			})
		})

		convey.Convey("When the explicit dotenv file does not exist", func() {
			_ = os.Setenv("CONTEST_DOTENV", "/non/existent/.env")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempFile(t, "contest-config-*.yaml", `invalid: yaml: content: [`)
			_ = os.Setenv("CONTEST_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("CONTEST_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("CONTEST_DEDUPE_SIZE", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When generation and ledger file settings are set", func() {
			_ = os.Setenv("CONTEST_TEMPERATURE", "0.4")
			_ = os.Setenv("CONTEST_MAX_OUTPUT_TOKENS", "256")
			_ = os.Setenv("CONTEST_LEDGER_FILE_MODE", "0600")

			cfg, err := config.Load(ctx)

			convey.Convey("Then they are decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Temperature, convey.ShouldAlmostEqual, 0.4)
				convey.So(cfg.MaxOutputTokens, convey.ShouldEqual, 256)
				mode, err := cfg.FileMode()
				convey.So(err, convey.ShouldBeNil)
				convey.So(mode, convey.ShouldEqual, os.FileMode(0o600))
			})
		})

		convey.Convey("When the ledger file mode is not octal", func() {
			_ = os.Setenv("CONTEST_LEDGER_FILE_MODE", "rw-r--r--")

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "ledger_file_mode")
			})
		})

		convey.Convey("When the temperature is out of range", func() {
			_ = os.Setenv("CONTEST_TEMPERATURE", "3")

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the ledger path is blanked out", func() {
			tmpFile := createTempFile(t, "contest-config-*.yaml", "ledger_path: \"\"\n")
			_ = os.Setenv("CONTEST_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "ledger_path must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CONTEST_CONFIG",
		"CONTEST_DOTENV",
		"CONTEST_ADDR",
		"CONTEST_LEDGER_PATH",
		"CONTEST_MODEL",
		"CONTEST_GOOGLE_API_KEY",
		"CONTEST_COMPLETION_TIMEOUT_MS",
		"CONTEST_DEDUPE_SIZE",
		"CONTEST_TEMPERATURE",
		"CONTEST_MAX_OUTPUT_TOKENS",
		"CONTEST_LEDGER_FILE_MODE",
		"GOOGLE_API_KEY",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpFile.Name()
}
