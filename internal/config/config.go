package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "skills-tracker-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseHost      string `mapstructure:"DB_HOST"`
	DatabasePort      string `mapstructure:"DB_PORT"`
	DatabaseUser      string `mapstructure:"DB_USER"`
	DatabasePassword  string `mapstructure:"DB_PASSWORD"`
	DatabaseName      string `mapstructure:"DB_NAME"`
	DatabaseSSLMode   string `mapstructure:"DB_SSL_MODE"`
	DatabaseMaxConns  int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DatabaseIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	AutoMigrate       bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`
	BcryptCost    int    `mapstructure:"BCRYPT_COST"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Metrics configuration
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "skills_tracker")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL_MINUTES", 60)
	v.SetDefault("BCRYPT_COST", 10)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("METRICS_ENABLED", true)
}

// splitOrigins accepts both a YAML list and a comma separated environment value
func splitOrigins(origins []string) []string {
	var out []string
	for _, entry := range origins {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return apperrors.ErrDefaultJWTSecret
		}
	}

	if config.DatabaseName == "" {
		return apperrors.ErrDatabaseNameUnset
	}

	if config.JWTTTLMinutes <= 0 {
		return apperrors.NewConfigurationError("JWT_TTL_MINUTES must be positive")
	}

	return nil
}

// JWTTTL returns the token lifetime
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
