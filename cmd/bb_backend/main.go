package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/bistrobooks/backoffice/internal/core/services"
	"github.com/bistrobooks/backoffice/internal/handlers"
	"github.com/bistrobooks/backoffice/internal/middleware"
	"github.com/bistrobooks/backoffice/internal/platform/config"
	"github.com/bistrobooks/backoffice/internal/repositories/database/pgsql"
	"github.com/bistrobooks/backoffice/pkg/database"
)

// @title BistroBooks Back-Office API
// @version 1.0
// @description Financial statement generation for restaurant back-office bookkeeping.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if cfg.EnableMigrations {
		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(corsMiddleware(cfg))
	r.Use(rateLimitMiddleware(logger, cfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services, then register routes
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// corsMiddleware allows the back-office dashboard origin(s) to call the API.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	return cors.New(corsConfig)
}

// rateLimitMiddleware builds the per-IP rate limiter from the configured rate.
func rateLimitMiddleware(logger *slog.Logger, cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value, defaulting to 120-M", slog.String("rate_limit", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("120-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// runMigrations applies the bundled schema migrations. This is a local
// development convenience: in production the statement tables are owned by
// the hosted data platform and this service reads them as-is.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations
	// using the pgx/v5/stdlib driver to be compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
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

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
