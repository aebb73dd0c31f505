package handlers

import (
	"net/http"

	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	provider service.WorkspaceProviderInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(provider service.WorkspaceProviderInterface) *UserHandler {
	return &UserHandler{provider: provider}
}

// ResetPasswordResponse carries the one-time password. It is shown once and never stored in clear.
type ResetPasswordResponse struct {
	UserID          string `json:"user_id"`
	OneTimePassword string `json:"one_time_password" example:"3F9A1C07"`
}

// ListUsers handles GET /users
// @Summary List users
// @Description List users of the active tenant, optionally limited to one team
// @Tags users
// @Produce json
// @Param team_id query string false "Team ID"
// @Success 200 {array} models.User
// @Failure 503 {object} ErrorResponse "Tenant not loaded"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		users []models.User
		err   error
	)
	if teamID := c.Query("team_id"); teamID != "" {
		users, err = ws.Data.UsersByTeam(ctx, teamID)
	} else {
		users, err = ws.Data.ListUsers(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	user, err := ws.Data.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetCurrentUser handles GET /me
// @Summary Get the caller's user record
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found in the active tenant"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	principal, _ := auth.GetPrincipal(c)
	user, err := ws.Data.GetUser(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	user, err := ws.Data.AddUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /users/:id
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email already taken"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	user, err := ws.Data.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Description Removes the user. Their time records stay in place.
// @Tags users
// @Param id path string true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	if err := ws.Data.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /users/:id/reset-password
// @Summary Issue a one-time password
// @Description The user must change their password after signing in with it
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} ResetPasswordResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	id := c.Param("id")
	otp, err := ws.Data.ResetPassword(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ResetPasswordResponse{UserID: id, OneTimePassword: otp})
}

// ChangePassword handles POST /me/password
// @Summary Change the caller's password
// @Description Accepts the current password or an outstanding one-time password
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.ChangePasswordRequest true "Passwords"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "New password too short"
// @Failure 401 {object} ErrorResponse "Current password wrong"
// @Security BearerAuth
// @Router /me/password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	principal, _ := auth.GetPrincipal(c)
	if err := ws.Data.ChangePassword(c.Request.Context(), principal.UserID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}
