package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage drivers understood by platform/storage.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string
	RunMigrations  bool
	MigrationsPath string
	LogLevel       slog.Level

	// Closing
	CorporateTaxRate         decimal.Decimal
	CurrentYearResultAccount string
	RetainedEarningsAccount  string

	// HTTP edge
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "300-M"
	RateLimitRedisURL  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORPORATE_TAX_RATE", "0.206")
	v.SetDefault("CURRENT_YEAR_RESULT_ACCOUNT", "2099")
	v.SetDefault("RETAINED_EARNINGS_ACCOUNT", "2091")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:              v.GetString("PGSQL_URL"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:            strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		RunMigrations:            v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		CurrentYearResultAccount: strings.TrimSpace(v.GetString("CURRENT_YEAR_RESULT_ACCOUNT")),
		RetainedEarningsAccount:  strings.TrimSpace(v.GetString("RETAINED_EARNINGS_ACCOUNT")),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:                v.GetString("RATE_LIMIT"),
		RateLimitRedisURL:        v.GetString("RATE_LIMIT_REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("CORPORATE_TAX_RATE")))
	if err != nil {
		return nil, fmt.Errorf("invalid CORPORATE_TAX_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("CORPORATE_TAX_RATE must be in [0, 1), got %s", rate)
	}
	cfg.CorporateTaxRate = rate

	if cfg.CurrentYearResultAccount == "" || cfg.RetainedEarningsAccount == "" {
		return nil, fmt.Errorf("closing account numbers must not be empty")
	}
	if cfg.CurrentYearResultAccount == cfg.RetainedEarningsAccount {
		return nil, fmt.Errorf("CURRENT_YEAR_RESULT_ACCOUNT and RETAINED_EARNINGS_ACCOUNT must differ")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
