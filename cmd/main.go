package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/chefcontest/internal/adapters/completion"
	"github.com/okian/chefcontest/internal/adapters/http/api"
	"github.com/okian/chefcontest/internal/adapters/http/swagger"
	"github.com/okian/chefcontest/internal/adapters/ledger"
	app "github.com/okian/chefcontest/internal/app"
	"github.com/okian/chefcontest/internal/config"
	"github.com/okian/chefcontest/internal/domain/menu"
	"github.com/okian/chefcontest/internal/domain/scoring"
	"github.com/okian/chefcontest/pkg/logger"
	"github.com/okian/chefcontest/pkg/metrics"
)

// HTTP server timeout constants. Submissions wait on the model, so writes get
// more room than reads.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 120 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	lg := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> .env -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		lg.Fatal(ctx, "failed to load config", logger.Error(err))
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		lg.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := cfg.RequireAPIKey(); err != nil {
		lg.Fatal(ctx, "cannot start without credentials", logger.Error(err))
	}
	gemini, err := completion.NewGemini(ctx, cfg.GoogleAPIKey, cfg.Model, geminiOptions(cfg)...)
	if err != nil {
		lg.Fatal(ctx, "failed to create completion client", logger.Error(err))
	}

	svc, err := newService(ctx, cfg, gemini, lg)
	if err != nil {
		lg.Fatal(ctx, "failed to start service", logger.Error(err))
	}
	defer svc.Stop()

	if err := run(ctx, cfg, svc, lg); err != nil {
		lg.Error(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
	lg.Info(ctx, "server stopped")
}

// geminiOptions maps generation settings onto the completion backend.
func geminiOptions(cfg *config.Config) []completion.GeminiOption {
	var opts []completion.GeminiOption
	if cfg.Temperature >= 0 {
		opts = append(opts, completion.WithTemperature(float32(cfg.Temperature)))
	}
	if cfg.MaxOutputTokens > 0 {
		opts = append(opts, completion.WithMaxOutputTokens(int32(cfg.MaxOutputTokens)))
	}
	return opts
}

// newService assembles the contest service from configuration and starts it.
func newService(ctx context.Context, cfg *config.Config, c scoring.Completer, lg logger.Logger) (*app.Service, error) {
	catalogue := menu.Default()
	if cfg.MenuPath != "" {
		var err error
		if catalogue, err = menu.LoadFile(cfg.MenuPath); err != nil {
			return nil, err
		}
		lg.Info(ctx, "loaded dish catalogue", logger.String("path", cfg.MenuPath), logger.Int("dishes", len(catalogue.Dishes())))
	}

	evaluator := scoring.NewEvaluator(c,
		scoring.WithTimeout(cfg.CompletionTimeout()),
		scoring.WithLogger(lg.Named("scoring")),
	)
	mode, err := cfg.FileMode()
	if err != nil {
		return nil, err
	}
	store := ledger.NewCSV(cfg.LedgerPath,
		ledger.WithFileMode(mode),
		ledger.WithLogger(lg.Named("ledger")),
	)

	svc := app.New(
		app.WithLogger(lg.Named("service")),
		app.WithLedger(store),
		app.WithEvaluator(evaluator),
		app.WithCatalogue(catalogue),
		app.WithDedupeSize(cfg.DedupeSize),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// newHandler registers the API and docs routes for svc.
func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc, cfg.MaxLeaderboardLimit).Register(ctx, mux)
	return mux
}

// run serves HTTP until ctx is cancelled, then shuts the server down.
func run(ctx context.Context, cfg *config.Config, svc *app.Service, lg logger.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info(gctx, "starting HTTP server", logger.String("addr", cfg.Addr), logger.String("ledger", cfg.LedgerPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		startSystemMetricsUpdater(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info(ctx, "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// startSystemMetricsUpdater refreshes system metrics until ctx is done.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
