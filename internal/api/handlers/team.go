package handlers

import (
	"net/http"

	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	provider service.WorkspaceProviderInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(provider service.WorkspaceProviderInterface) *TeamHandler {
	return &TeamHandler{provider: provider}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	teams, err := ws.Data.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	team, err := ws.Data.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	team, err := ws.Data.AddTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} models.Team
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	team, err := ws.Data.UpdateTeam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Removes the team from every member. Tasks and time records keep the dangling reference.
// @Tags teams
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	if err := ws.Data.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
