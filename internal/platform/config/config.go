package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate provider
	VATComplyBaseURL string
	ProviderTimeout  time.Duration

	// Query surface
	DefaultRateBase string
	RateLimit       string // ulule/limiter format, e.g. "300-M"

	// Scheduled sync
	SyncEnabled  bool
	SyncSchedule string // cron expression
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("VATCOMPLY_BASE_URL", "https://api.vatcomply.com")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("DEFAULT_RATE_BASE", "USD")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("SYNC_ENABLED", true)
	viper.SetDefault("SYNC_SCHEDULE", "0 6 * * 1-5")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.VATComplyBaseURL = viper.GetString("VATCOMPLY_BASE_URL")

	providerTimeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	providerTimeout, err := time.ParseDuration(providerTimeoutStr)
	if err != nil {
		providerTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", providerTimeoutStr, providerTimeout)
	}
	cfg.ProviderTimeout = providerTimeout

	cfg.DefaultRateBase = viper.GetString("DEFAULT_RATE_BASE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.SyncEnabled = viper.GetBool("SYNC_ENABLED")
	cfg.SyncSchedule = viper.GetString("SYNC_SCHEDULE")

	return cfg, nil
}
