package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sales-insights/internal/config"
	"sales-insights/internal/database"
	"sales-insights/internal/handlers"
	"sales-insights/internal/ingest"
	"sales-insights/internal/middleware"
	"sales-insights/internal/repositories"
	"sales-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	store, cleanup, err := buildStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize record store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	metrics := services.NewPrometheusMetrics()
	queryService := services.NewTransactionQueryService(store, metrics, logger)
	optionsService := services.NewFilterOptionsService(store, metrics, logger)
	defer optionsService.Shutdown()

	if cfg.Cache.WarmOnStartup {
		warmCtx, cancel := context.WithTimeout(context.Background(), cfg.Cache.WarmTimeout)
		if err := optionsService.Refresh(warmCtx); err != nil {
			// Warm failure is not fatal; the first cold read retries.
			logger.Warn("filter options warm-up failed", "error", err)
		}
		cancel()
	}

	e := newServer(cfg, queryService, optionsService)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server", "addr", addr, "backend", cfg.Storage.Backend)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

// buildStore wires the configured record-store strategy: postgres-backed for
// production, or a full in-memory copy of a CSV export for lightweight
// deployments. Both satisfy the same interface with identical semantics.
func buildStore(cfg *config.Config, logger *slog.Logger) (repositories.TransactionStoreInterface, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		records, err := ingest.ReadFile(cfg.Storage.CSVPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("loaded transactions into memory", "count", len(records), "path", cfg.Storage.CSVPath)
		return repositories.NewMemoryTransactionStore(records), func() {}, nil

	case config.BackendPostgres:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return repositories.NewSQLTransactionStore(db.DB), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newServer(
	cfg *config.Config,
	queryService services.TransactionQueryServiceInterface,
	optionsService services.FilterOptionsServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	transactionHandler := handlers.NewTransactionHandler(queryService)
	filterOptionsHandler := handlers.NewFilterOptionsHandler(optionsService)
	healthHandler := handlers.NewHealthCheckHandler()

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/filter-options", filterOptionsHandler.GetFilterOptions)

	return e
}
