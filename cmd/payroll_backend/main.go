package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/payroll_app/internal/adapters/llm"
	"github.com/SscSPs/payroll_app/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/core/services"
	"github.com/SscSPs/payroll_app/internal/handlers"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/SscSPs/payroll_app/internal/platform/config"
	"github.com/SscSPs/payroll_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/payroll_app/internal/repositories/memory"
	"github.com/SscSPs/payroll_app/internal/utils"
	"github.com/SscSPs/payroll_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

// @title Payroll Backend API
// @version 1.0
// @description Payroll bookkeeping: employees, accruals and deductions, multi-currency totals.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger)

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to set up storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	serviceContainer, err := services.NewServiceContainer(cfg, repos, setupClients(cfg))
	if err != nil {
		logger.Error("Failed to create services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := primeExchangeRates(ctx, serviceContainer); err != nil {
		logger.Error("Failed to prepare exchange rates", slog.String("error", err.Error()))
		os.Exit(1)
	}
	go serviceContainer.ExchangeRate.Run(ctx, cfg.RateRefreshInterval)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, middleware.ClientIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.ClientIdentity(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// setupRepositories connects to Postgres and migrates it when PGSQL_URL is set,
// and falls back to in-memory storage otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if !cfg.UsesDatabase() {
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// A separate database/sql handle through the pgx stdlib driver, as migrate requires.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupClients builds the outbound adapters. Unconfigured adapters stay nil interfaces.
func setupClients(cfg *config.Config) services.Clients {
	var outbound services.Clients

	if len(cfg.RateSourceURLs) > 0 {
		outbound.RateSource = ratesource.New(cfg.RateSourceURLs, cfg.RateFetchTimeout)
	}
	if cfg.ChatEnabled() {
		outbound.Chat = llm.NewClient(cfg.ChatAPIURL, cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatTimeout)
	}

	return outbound
}

// primeExchangeRates applies the stored base currency, then publishes the last snapshot
// and refreshes it if it is stale. Refresh failures leave conversions unconverted.
func primeExchangeRates(ctx context.Context, sc *portssvc.ServiceContainer) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := sc.Settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	// SetBaseCurrency loads and refreshes on its own when the base changes.
	if base, _ := sc.ExchangeRate.CurrentRates(ctx); base != settings.BaseCurrency {
		return sc.ExchangeRate.SetBaseCurrency(ctx, settings.BaseCurrency)
	}
	if err := sc.ExchangeRate.LoadLatest(ctx); err != nil {
		logger.Warn("Failed to load stored exchange rates", slog.String("error", err.Error()))
	}
	if err := sc.ExchangeRate.RefreshIfStale(ctx); err != nil {
		logger.Warn("Initial exchange rate refresh failed", slog.String("error", err.Error()))
	}
	return nil
}
