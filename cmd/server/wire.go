package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/generator"
	adapthttp "github.com/jsamuelsen11/exercise-kit/internal/adapters/http"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/notify"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/storage/mysql"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/exercise-kit/internal/app"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/health"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/httpclient"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

const storeOpenTimeout = 10 * time.Second

// courseStore is a store driver as the server holds it: the port plus
// readiness and cleanup.
type courseStore interface {
	ports.CourseStore
	ports.HealthChecker
	Close() error
}

func openStore(cfg config.StoreConfig) (courseStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.StoreSQLite:
		return sqlite.Open(ctx, cfg.DSN)
	case config.StoreMySQL:
		return mysql.Open(ctx, cfg.DSN)
	default:
		return memory.New(), nil
	}
}

// wire registers every provider. Nothing is built until the server is
// invoked.
func wire(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Adapters.
	do.Provide(injector, func(do.Injector) (courseStore, error) {
		store, err := openStore(cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("opening %s course store: %w", cfg.Store.Driver, err)
		}
		logger.Info("course store ready", slog.String("driver", cfg.Store.Driver))
		return store, nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CourseGenerator, error) {
		if cfg.Generator.Mode != config.GeneratorRemote {
			return generator.NewTemplate(cfg.Generator, logger), nil
		}
		client := httpclient.New(&cfg.Client, "course-api", do.MustInvoke[*telemetry.Metrics](i), logger)
		return acl.NewCourseClient(client, logger), nil
	})
	do.Provide(injector, func(do.Injector) (ports.Notifier, error) {
		return notify.NewLog(logger), nil
	})

	// Readiness waits on the store and, for the remote generator, the
	// course API.
	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[courseStore](i))
		if checker, ok := do.MustInvoke[ports.CourseGenerator](i).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
		return registry, nil
	})

	// Services.
	do.Provide(injector, func(i do.Injector) (*app.RegistrationService, error) {
		return app.NewRegistrationService(cfg.Registration,
			do.MustInvoke[ports.Notifier](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CourseService, error) {
		return app.NewCourseService(
			do.MustInvoke[ports.CourseGenerator](i),
			do.MustInvoke[courseStore](i),
			do.MustInvoke[ports.Notifier](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger), nil
	})
	do.Provide(injector, func(do.Injector) (ports.CalculatorService, error) {
		return app.NewCalculatorService(logger), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewRegistrationHandler(do.MustInvoke[*app.RegistrationService](i)),
			handlers.NewCourseHandler(do.MustInvoke[ports.CourseService](i)),
			handlers.NewCalculatorHandler(do.MustInvoke[ports.CalculatorService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.AppContext(),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
