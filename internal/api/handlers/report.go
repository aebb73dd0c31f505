package handlers

import (
	"net/http"

	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only metrics views
type ReportHandler struct {
	provider service.WorkspaceProviderInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(provider service.WorkspaceProviderInterface) *ReportHandler {
	return &ReportHandler{provider: provider}
}

// Dashboard handles GET /reports/dashboard
// @Summary Admin dashboard
// @Description Totals, task figures and the weekly chart for all teams or one team
// @Tags reports
// @Produce json
// @Param team_id query string false "Team ID, or 'all'"
// @Param week_of query string false "Any date in the week (YYYY-MM-DD), defaults to today"
// @Success 200 {object} metrics.Dashboard
// @Failure 400 {object} ErrorResponse "Malformed query"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	var query service.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	dashboard, err := ws.Reports.Dashboard(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Weekly handles GET /reports/weekly
// @Summary Weekly hours chart
// @Description Members always get their own chart; hr and admins may pick a user or team
// @Tags reports
// @Produce json
// @Param user_id query string false "User ID"
// @Param team_id query string false "Team ID"
// @Param week_of query string false "Any date in the week (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.WeeklyReport
// @Failure 400 {object} ErrorResponse "Malformed query"
// @Security BearerAuth
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	var query service.WeeklyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	if principal, ok := auth.GetPrincipal(c); ok && !principal.Role.CanViewReports() {
		query.UserID = principal.UserID
	}

	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	report, err := ws.Reports.Weekly(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
