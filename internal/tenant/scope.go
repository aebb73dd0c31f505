package tenant

import (
	"fmt"
	"strings"

	"timeclock-backend/internal/database/models"
)

// Principal is the authenticated caller as asserted by the auth collaborator.
type Principal struct {
	UserID   string          `json:"user_id"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	TenantID string          `json:"tenant_id"`
}

// Scope is the set of tenants a principal may open: either every tenant or exactly one.
type Scope struct {
	global   bool
	tenantID string
}

// GlobalAccess allows every tenant.
func GlobalAccess() Scope {
	return Scope{global: true}
}

// ScopedTo allows only tenantID.
func ScopedTo(tenantID string) Scope {
	return Scope{tenantID: tenantID}
}

// IsGlobal reports whether the scope spans every tenant
func (s Scope) IsGlobal() bool {
	return s.global
}

// TenantID returns the single allowed tenant, or "" for global scopes
func (s Scope) TenantID() string {
	return s.tenantID
}

// Allows reports whether tenantID may be opened under this scope
func (s Scope) Allows(tenantID string) bool {
	return s.global || (s.tenantID != "" && s.tenantID == tenantID)
}

func (s Scope) String() string {
	if s.global {
		return "global"
	}
	return fmt.Sprintf("scoped:%s", s.tenantID)
}

// ResolveScope decides once per principal which tenants it may open.
func ResolveScope(p Principal, reg *Registry) Scope {
	if p.Role == models.UserRoleSuperAdmin {
		return GlobalAccess()
	}
	if reg != nil && reg.IsGlobal(p.TenantID) && reg.GlobalAdminEmail != "" &&
		strings.EqualFold(p.Email, reg.GlobalAdminEmail) {
		return GlobalAccess()
	}
	return ScopedTo(p.TenantID)
}
