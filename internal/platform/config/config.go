package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// EnableMigrations applies the bundled schema migrations on startup.
	// Meant for local development; the hosted store is managed elsewhere.
	EnableMigrations bool

	// StrictGLDefault makes GL-only statements the default, so synthetic
	// accrual entries are only injected when a request opts in.
	StrictGLDefault bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string

	// CORSAllowOrigins is a comma-separated list of allowed origins for
	// the back-office dashboard. "*" allows any origin.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ENABLE_MIGRATIONS", false)
	viper.SetDefault("STRICT_GL_DEFAULT", false)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.EnableMigrations = viper.GetBool("ENABLE_MIGRATIONS")
	cfg.StrictGLDefault = viper.GetBool("STRICT_GL_DEFAULT")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg, nil
}
