package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bank-ledger/internal/config"
	"bank-ledger/internal/database"
	"bank-ledger/internal/handlers"
	"bank-ledger/internal/middleware"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	accountRepo := repositories.NewAccountRepository(db.DB)
	movementRepo := repositories.NewMovementRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	referenceRepo := repositories.NewReferenceRepository(db.DB)

	metrics := services.NewPrometheusMetrics(registry)
	ledgerLogger := services.NewLedgerLogger(logger)
	validator := services.NewReferenceValidator(referenceRepo, customerRepo)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:  cfg.Ledger.BreakerMaxFailures,
		ResetTimeout: cfg.Ledger.BreakerResetTimeout,
	})

	ledger := services.NewLedgerService(
		accountRepo,
		validator,
		services.NewAccountLocker(),
		breaker,
		metrics,
		ledgerLogger,
		services.LedgerConfig{
			MaxConflictRetries: cfg.Ledger.MaxConflictRetries,
			LockTimeout:        cfg.Ledger.LockTimeout,
		},
	)
	query := services.NewQueryService(accountRepo, movementRepo, customerRepo)
	customers := services.NewCustomerService(customerRepo, accountRepo, referenceRepo, validator, metrics, ledgerLogger)

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(registry).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(cfg.Security.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:    handlers.NewHealthCheckHandler(db),
		Customers: handlers.NewCustomerHandler(customers, query),
		Accounts:  handlers.NewAccountHandler(customers, query),
		Movements: handlers.NewMovementHandler(ledger, query),
		Reference: handlers.NewReferenceHandler(customers),
	}, limiter.Middleware())

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Server.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
