package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// ModeMultiTenant gives every company its own store, selected per principal.
	ModeMultiTenant = "multi-tenant"
	// ModeSingle serves one shared store mirrored into the local cache file.
	ModeSingle = "single"

	defaultJWTSecret = "your-secret-key-change-in-production"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Tenant store configuration
	DataDir     string `mapstructure:"DATA_DIR"`
	TenantsFile string `mapstructure:"TENANTS_FILE"`
	DBLogLevel  string `mapstructure:"DB_LOG_LEVEL"`

	// Tenant session eviction
	SessionIdleTimeout   time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	// Dataset mode
	Mode           string `mapstructure:"MODE"`
	SharedTenantID string `mapstructure:"SHARED_TENANT_ID"`
	LocalCachePath string `mapstructure:"LOCAL_CACHE_PATH"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTIssuer string        `mapstructure:"JWT_ISSUER"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATA_DIR", "./db")
	viper.SetDefault("TENANTS_FILE", "config/tenants.yaml")
	viper.SetDefault("DB_LOG_LEVEL", "error")
	viper.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "1m")

	viper.SetDefault("MODE", ModeMultiTenant)
	viper.SetDefault("SHARED_TENANT_ID", "shared")
	viper.SetDefault("LOCAL_CACHE_PATH", "./db/local_cache.json")

	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "timeclock-backend")
	viper.SetDefault("TOKEN_TTL", "12h")

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
}

func validate(config *Config) error {
	if config.Environment == "production" && config.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if config.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}

	if config.SessionIdleTimeout > 0 && config.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_IDLE_TIMEOUT is set")
	}

	switch config.Mode {
	case ModeMultiTenant:
	case ModeSingle:
		if config.SharedTenantID == "" {
			return fmt.Errorf("SHARED_TENANT_ID is required in single mode")
		}
	default:
		return fmt.Errorf("unknown MODE %q", config.Mode)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsSingleDataset reports whether all principals share one store.
func (c *Config) IsSingleDataset() bool {
	return c.Mode == ModeSingle
}
