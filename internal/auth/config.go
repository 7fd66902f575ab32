package auth

import (
	"fmt"
	"time"

	"skills-tracker-backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

const issuer = "skills-tracker-backend"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL   time.Duration `yaml:"token_ttl" json:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig derives the authentication settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTTTL(),
		BcryptCost: cfg.BcryptCost,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
