// Command server serves the registration form, course and calculator APIs.
// APP_PROFILE selects the config profile (local, dev, qa or prod).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/exercise-kit/internal/adapters/http"
	"github.com/jsamuelsen11/exercise-kit/internal/app"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok || profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelProviders, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer flush(otelProviders, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otelProviders.Metrics)
	wire(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	defer func() {
		if err := do.MustInvoke[courseStore](injector).Close(); err != nil {
			logger.Error("closing course store", slog.Any("error", err))
		}
	}()

	sessions := do.MustInvoke[*app.RegistrationService](injector)
	go purgeSessions(ctx, sessions, cfg.Registration.SessionTTL, logger)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests", slog.Any("error", err))
	}
	<-served

	logger.Info("stopped")
	return nil
}

func flush(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}

// purgeSessions drops expired registration sessions every half TTL until
// ctx is done.
func purgeSessions(ctx context.Context, svc *app.RegistrationService, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(max(ttl/2, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := svc.PurgeExpired(ctx); n > 0 {
				logger.DebugContext(ctx, "purged expired registration sessions", slog.Int("count", n))
			}
		}
	}
}
