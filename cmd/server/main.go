// Package main is the entry point for the marketplace lifecycle service. It
// wires all dependencies using samber/do v2, starts the HTTP server and the
// optional deadline sweeper, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/clients/notify"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/events"
	adapthttp "github.com/jsamuelsen11/marketplace-core/internal/adapters/http"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/memory"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/sqlite"

	"github.com/jsamuelsen11/marketplace-core/internal/app"
	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/policy"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/config"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/health"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/logging"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	notifyServiceName     = "notifications"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, test, prod)")
	}

	// Bootstrap: config, logger, telemetry, storage.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	st, err := openStorage(ctx, cfg.Store)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()
	logger.Info("entity store ready", slog.String("driver", cfg.Store.Driver))

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, st)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(st.checker)
	if cfg.Notify.Enabled {
		registry.Register(do.MustInvoke[*notify.Client](injector))
	}

	// Bind before serving so a port conflict fails startup directly.
	if err := server.Listen(); err != nil {
		return err
	}

	// Start the deadline sweeper when enabled.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sweepDone := make(chan struct{})
	if cfg.Sweep.Enabled {
		scheduler := do.MustInvoke[*app.SweepScheduler](injector)
		go func() {
			defer close(sweepDone)
			scheduler.Run(sweepCtx)
		}()
	} else {
		close(sweepDone)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		stopSweep()
		<-sweepDone
		return fmt.Errorf("server failed: %w", err)
	}

	// Stop sweeping before draining requests so no new transitions start.
	stopSweep()
	<-sweepDone

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// storage is the opened entity store together with its health checker, the
// durable event journal (sqlite only) and the release hook.
type storage struct {
	entities ports.EntityStore
	checker  ports.HealthChecker
	journal  ports.EventPublisher
	closer   func() error
}

// Close releases the underlying store. Nil-safe.
func (s *storage) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}

func openStorage(ctx context.Context, cfg config.StoreConfig) (*storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Path, cfg.BusyTimeout)
		if err != nil {
			return nil, err
		}
		return &storage{
			entities: db,
			checker:  db,
			journal:  sqlite.NewEventLog(db.DB()),
			closer:   db.Close,
		}, nil
	default:
		mem := memory.New()
		return &storage{entities: mem, checker: mem}, nil
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.Clock, error) {
		return clock.System{}, nil
	})

	if cfg.Notify.Enabled {
		do.Provide(injector, func(i do.Injector) (*notify.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Notify.Client, notifyServiceName, metrics, logger)
			return notify.NewClient(client, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		st := do.MustInvoke[*storage](i)
		publishers := events.Multi{events.NewLogPublisher(logger), st.journal}
		if cfg.Notify.Enabled {
			publishers = append(publishers, do.MustInvoke[*notify.Client](i))
		}
		return publishers, nil
	})

	do.Provide(injector, func(i do.Injector) (*lifecycle.Machine, error) {
		st := do.MustInvoke[*storage](i)
		return lifecycle.NewMachine(st.entities,
			do.MustInvoke[ports.Clock](i),
			lifecycle.WithEvents(do.MustInvoke[ports.EventPublisher](i)),
			lifecycle.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (app.Core, error) {
		machine := do.MustInvoke[*lifecycle.Machine](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCore(machine, policy.NewGate(), metrics), nil
	})

	// Services.
	do.Provide(injector, func(i do.Injector) (ports.WorkService, error) {
		return app.NewWorkService(do.MustInvoke[app.Core](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.BountyService, error) {
		return app.NewBountyService(do.MustInvoke[app.Core](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.HackathonService, error) {
		return app.NewHackathonService(do.MustInvoke[app.Core](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.EscrowService, error) {
		return app.NewEscrowService(do.MustInvoke[app.Core](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.LifecycleService, error) {
		return app.NewLifecycleService(do.MustInvoke[app.Core](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SweepService, error) {
		machine := do.MustInvoke[*lifecycle.Machine](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewSweepService(machine, cfg.Sweep.Workers, metrics, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*app.SweepScheduler, error) {
		kinds := make([]domain.Kind, 0, len(cfg.Sweep.Kinds))
		for _, k := range cfg.Sweep.Kinds {
			kinds = append(kinds, domain.Kind(k))
		}
		return app.NewSweepScheduler(
			do.MustInvoke[ports.SweepService](i),
			do.MustInvoke[ports.Clock](i),
			cfg.Sweep.Interval,
			kinds,
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.CheckTimeout)), nil
	})

	// HTTP surface.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Work:      handlers.NewWorkHandler(do.MustInvoke[ports.WorkService](i)),
			Bounty:    handlers.NewBountyHandler(do.MustInvoke[ports.BountyService](i)),
			Hackathon: handlers.NewHackathonHandler(do.MustInvoke[ports.HackathonService](i)),
			Escrow:    handlers.NewEscrowHandler(do.MustInvoke[ports.EscrowService](i)),
			Lifecycle: handlers.NewLifecycleHandler(do.MustInvoke[ports.LifecycleService](i)),
			Sweep:     handlers.NewSweepHandler(do.MustInvoke[ports.SweepService](i), do.MustInvoke[ports.Clock](i)),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), notifyServiceName),
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Standard(logger, metrics, cfg.Server.WriteTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
