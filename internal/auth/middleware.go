package auth

import (
	"net/http"
	"strings"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey    = "auth_claims"
	principalKey = "principal"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization header is required"
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", "Invalid authorization header format"
	}
	return tokenString, ""
}

// RequireAuth validates JWT tokens and stores the principal on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": problem})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		principal := claims.Principal()
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set(claimsKey, claims)
		c.Set(principalKey, principal)
		c.Request = c.Request.WithContext(logger.WithPrincipal(c.Request.Context(), claims.Email, claims.TenantID))

		c.Next()
	}
}

// RequireRole lets the request through when allowed accepts the principal's role
func (m *AuthMiddleware) RequireRole(allowed func(models.UserRole) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !allowed(principal.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager admits admins and superadmins
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return m.RequireRole(models.UserRole.CanManage)
}

// RequireReportViewer admits hr, admins and superadmins
func (m *AuthMiddleware) RequireReportViewer() gin.HandlerFunc {
	return m.RequireRole(models.UserRole.CanViewReports)
}

// GetPrincipal extracts the authenticated principal from context
func GetPrincipal(c *gin.Context) (tenant.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return tenant.Principal{}, false
	}
	p, ok := v.(tenant.Principal)
	return p, ok
}

// SetPrincipal stores p on the context the way RequireAuth does
func SetPrincipal(c *gin.Context, p tenant.Principal) {
	c.Set("user_id", p.UserID)
	c.Set("email", p.Email)
	c.Set(principalKey, p)
	if c.Request != nil {
		c.Request = c.Request.WithContext(logger.WithPrincipal(c.Request.Context(), p.Email, p.TenantID))
	}
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
