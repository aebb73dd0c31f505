package auth

import (
	"fmt"
	"time"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/tenant"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates principal tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string          `json:"user_id" example:"6f1c2a9e-1b7d-4a59-9d55-0c1f3c1f9a11"`
	Email                string          `json:"email" example:"jane.doe@forge.academy"`
	Role                 models.UserRole `json:"role" example:"member"`
	TenantID             string          `json:"tenant_id" example:"forge-academy"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Principal converts the claims into the caller identity used by the tenant layer
func (c *AuthClaims) Principal() tenant.Principal {
	return tenant.Principal{
		UserID:   c.UserID,
		Email:    c.Email,
		Role:     c.Role,
		TenantID: c.TenantID,
	}
}

// AuthValidateResponse is the swagger schema for POST /api/auth/validate
type AuthValidateResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateToken signs a token for p. There is no interactive login; operators and tests
// mint tokens with it.
func (s *AuthService) GenerateToken(p tenant.Principal) (string, error) {
	if p.UserID == "" || p.TenantID == "" {
		return "", apperrors.NewValidationError("principal", "user id and tenant id are required")
	}
	if !p.Role.IsValid() {
		return "", apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", p.Role))
	}

	now := s.now()
	claims := &AuthClaims{
		UserID:   p.UserID,
		Email:    p.Email,
		Role:     p.Role,
		TenantID: p.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   p.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates a JWT token and returns the claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" || claims.TenantID == "" || !claims.Role.IsValid() {
		return nil, fmt.Errorf("token is missing principal claims")
	}
	return claims, nil
}
