package handlers

import (
	"net/http"
	"time"

	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeRecordHandler handles time records and the caller's clock session
type TimeRecordHandler struct {
	provider service.WorkspaceProviderInterface
	now      func() time.Time
}

// NewTimeRecordHandler creates a new time record handler. now defaults to time.Now.
func NewTimeRecordHandler(provider service.WorkspaceProviderInterface, now func() time.Time) *TimeRecordHandler {
	if now == nil {
		now = time.Now
	}
	return &TimeRecordHandler{provider: provider, now: now}
}

// ClockInRequest picks the team the session is booked against
type ClockInRequest struct {
	TeamID string `json:"team_id" example:"9a1f..."`
}

// ListTimeRecords handles GET /time-records
// @Summary List time records
// @Description Members only ever see their own records; hr and admins may filter freely
// @Tags time-records
// @Produce json
// @Param user_id query string false "User ID"
// @Param team_id query string false "Team ID"
// @Success 200 {array} models.TimeRecord
// @Security BearerAuth
// @Router /time-records [get]
func (h *TimeRecordHandler) ListTimeRecords(c *gin.Context) {
	var filter service.TimeRecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}
	if principal, ok := auth.GetPrincipal(c); ok && !principal.Role.CanViewReports() {
		filter.UserID = principal.UserID
	}

	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	records, err := ws.Data.ListTimeRecords(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateTimeRecord handles POST /time-records
// @Summary Enter a session manually
// @Tags time-records
// @Accept json
// @Produce json
// @Param record body service.CreateTimeRecordRequest true "Session"
// @Success 201 {object} models.TimeRecord
// @Failure 400 {object} ErrorResponse "Clock-out before clock-in"
// @Failure 409 {object} ErrorResponse "User already has an open session"
// @Security BearerAuth
// @Router /time-records [post]
func (h *TimeRecordHandler) CreateTimeRecord(c *gin.Context) {
	var req service.CreateTimeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	record, err := ws.Data.AddTimeRecord(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateTimeRecord handles PUT /time-records/:id
// @Summary Correct a session
// @Description Duration is recomputed from the timestamps
// @Tags time-records
// @Accept json
// @Produce json
// @Param id path string true "Time record ID"
// @Param record body service.UpdateTimeRecordRequest true "Corrections"
// @Success 200 {object} models.TimeRecord
// @Failure 404 {object} ErrorResponse "Time record not found"
// @Failure 409 {object} ErrorResponse "Reopening would create a second open session"
// @Security BearerAuth
// @Router /time-records/{id} [put]
func (h *TimeRecordHandler) UpdateTimeRecord(c *gin.Context) {
	var req service.UpdateTimeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	record, err := ws.Data.UpdateTimeRecord(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ClockIn handles POST /me/clock-in
// @Summary Clock in
// @Description Opens a session for the caller. A team is required when the caller belongs to several.
// @Tags session
// @Accept json
// @Produce json
// @Param request body ClockInRequest false "Team"
// @Success 201 {object} models.TimeRecord
// @Failure 400 {object} ErrorResponse "Team missing or not a member"
// @Failure 409 {object} ErrorResponse "Already clocked in"
// @Security BearerAuth
// @Router /me/clock-in [post]
func (h *TimeRecordHandler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	principal, _ := auth.GetPrincipal(c)
	record, err := ws.Sessions.ClockIn(c.Request.Context(), principal.UserID, req.TeamID, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ClockOut handles POST /me/clock-out
// @Summary Clock out
// @Tags session
// @Produce json
// @Success 200 {object} models.TimeRecord
// @Failure 404 {object} ErrorResponse "No open session"
// @Security BearerAuth
// @Router /me/clock-out [post]
func (h *TimeRecordHandler) ClockOut(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	principal, _ := auth.GetPrincipal(c)
	record, err := ws.Sessions.ClockOut(c.Request.Context(), principal.UserID, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// SessionStatus handles GET /me/session
// @Summary Current clock state
// @Description Idle, or clocked in with the live elapsed time
// @Tags session
// @Produce json
// @Success 200 {object} service.SessionStatus
// @Security BearerAuth
// @Router /me/session [get]
func (h *TimeRecordHandler) SessionStatus(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	principal, _ := auth.GetPrincipal(c)
	status, err := ws.Sessions.Status(c.Request.Context(), principal.UserID, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
