package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sunnytraders/inventory_pro_app/internal/utils"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DashboardPassphraseHash is the bcrypt hash of the dashboard passphrase,
	// computed once at load time. The plaintext is never kept around.
	DashboardPassphraseHash string

	// CatalogPath optionally points at a YAML catalog file; empty means the
	// built-in catalog.
	CatalogPath string

	// WriteRateLimit is a ulule/limiter formatted rate (e.g. "60-M") applied
	// to mutating endpoints.
	WriteRateLimit string

	// StockAuditSchedule is a cron spec for the nightly ledger consistency check.
	StockAuditSchedule string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DASHBOARD_PASSPHRASE", "")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("WRITE_RATE_LIMIT", "120-M")
	viper.SetDefault("STOCK_AUDIT_SCHEDULE", "0 3 * * *")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CatalogPath = viper.GetString("CATALOG_PATH")
	cfg.WriteRateLimit = viper.GetString("WRITE_RATE_LIMIT")
	cfg.StockAuditSchedule = viper.GetString("STOCK_AUDIT_SCHEDULE")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	passphrase := viper.GetString("DASHBOARD_PASSPHRASE")
	if passphrase == "" {
		log.Println("Warning: DASHBOARD_PASSPHRASE not set. The financial dashboard will be inaccessible.")
	} else {
		hash, err := utils.HashPassphrase(passphrase)
		if err != nil {
			return nil, fmt.Errorf("failed to hash dashboard passphrase: %w", err)
		}
		cfg.DashboardPassphraseHash = hash
	}

	return cfg, nil
}
