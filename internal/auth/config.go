package auth

import (
	"fmt"
	"time"

	"timeclock-backend/internal/config"
)

// AuthConfig holds the token settings of the auth collaborator
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  ttl,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
