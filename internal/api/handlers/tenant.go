package handlers

import (
	"net/http"

	"timeclock-backend/internal/auth"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler exposes the caller's active tenant
type TenantHandler struct {
	provider service.WorkspaceProviderInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(provider service.WorkspaceProviderInterface) *TenantHandler {
	return &TenantHandler{provider: provider}
}

// SwitchTenantRequest selects the tenant to load. Wait blocks until the load settles.
type SwitchTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required" example:"forge-academy"`
	Wait     bool   `json:"wait"`
}

// GetTenant handles GET /tenant
// @Summary Active tenant status
// @Description Report which tenant the caller is bound to and whether it has loaded
// @Tags tenant
// @Produce json
// @Success 200 {object} service.TenantStatus
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenant [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws.Tenant.Status(c.Request.Context()))
}

// SwitchTenant handles POST /tenant/switch
// @Summary Switch tenant
// @Description Load another tenant. Only principals with global scope may leave their home tenant.
// @Tags tenant
// @Accept json
// @Produce json
// @Param request body SwitchTenantRequest true "Target tenant"
// @Success 202 {object} service.TenantStatus "Load started"
// @Success 200 {object} service.TenantStatus "Load finished (wait=true)"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Tenant outside the caller's scope"
// @Failure 404 {object} ErrorResponse "Tenant not provisioned"
// @Failure 500 {object} ErrorResponse "Tenant store failed verification"
// @Security BearerAuth
// @Router /tenant/switch [post]
func (h *TenantHandler) SwitchTenant(c *gin.Context) {
	var req SwitchTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	status, err := ws.Tenant.Switch(c.Request.Context(), req.TenantID, req.Wait)
	if err != nil {
		respondError(c, err)
		return
	}

	code := http.StatusAccepted
	if req.Wait {
		code = http.StatusOK
	}
	c.JSON(code, status)
}

// SignOut handles POST /me/sign-out
// @Summary Sign out
// @Description Closes the caller's tenant session. The next request reloads the home tenant.
// @Tags tenant
// @Success 204 "Session closed"
// @Security BearerAuth
// @Router /me/sign-out [post]
func (h *TenantHandler) SignOut(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, apperrors.ErrMissingPrincipal)
		return
	}
	if err := h.provider.Release(principal); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
