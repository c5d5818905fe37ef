package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"family-ledger/internal/config"
	"family-ledger/internal/database"
	"family-ledger/internal/handlers"
	"family-ledger/internal/middleware"
	"family-ledger/internal/repositories"
	"family-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer db.Close()

	e := newServer(cfg, db, prometheus.DefaultRegisterer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting family-ledger server", "address", cfg.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newServer wires the services and handlers onto a configured Echo instance.
func newServer(cfg *config.Config, db *database.DB, reg prometheus.Registerer, logger *slog.Logger) *echo.Echo {
	store := repositories.NewStore(db.DB)
	metrics := services.NewPrometheusMetrics(reg)
	audit := services.NewAuditLogger(logger)

	materializer := services.NewInstanceMaterializer(cfg.Schedule.HardCap, metrics, audit, logger)
	reconciliation := services.NewReconciliationService(store, cfg.Schedule, metrics, audit, logger)
	tokenService := services.NewTokenService(&cfg.JWT)

	h := routeHandlers{
		definitions:  handlers.NewDefinitionHandler(services.NewDefinitionService(store, materializer, reconciliation, metrics, audit, logger)),
		transactions: handlers.NewTransactionHandler(services.NewInstanceService(store, reconciliation, metrics, audit, logger)),
		installments: handlers.NewInstallmentHandler(services.NewInstallmentService(store, materializer, reconciliation, metrics, audit, logger)),
		budgets:      handlers.NewBudgetHandler(services.NewBudgetService(store, metrics, audit, logger)),
		health:       handlers.NewHealthCheckHandler(db),
	}
	if !cfg.IsProduction() {
		h.dev = handlers.NewDevHandler(tokenService)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))

	registerRoutes(e, h, middleware.RequireAuth(tokenService), middleware.RateLimiter(cfg.Security), reg)

	return e
}
