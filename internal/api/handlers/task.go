package handlers

import (
	"net/http"

	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	provider service.WorkspaceProviderInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(provider service.WorkspaceProviderInterface) *TaskHandler {
	return &TaskHandler{provider: provider}
}

// ListTasks handles GET /tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param team_id query string false "Team ID"
// @Success 200 {array} models.Task
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		tasks []models.Task
		err   error
	)
	if teamID := c.Query("team_id"); teamID != "" {
		tasks, err = ws.Data.TasksByTeam(ctx, teamID)
	} else {
		tasks, err = ws.Data.ListTasks(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListMyTasks handles GET /me/tasks
// @Summary Tasks assigned to the caller
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Security BearerAuth
// @Router /me/tasks [get]
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	principal, _ := auth.GetPrincipal(c)
	tasks, err := ws.Data.TasksByAssignee(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} models.Task
// @Failure 400 {object} ErrorResponse "Unknown team or assignee"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	task, err := ws.Data.AddTask(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body service.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}

	task, err := ws.Data.UpdateTask(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "Task deleted"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ws, ok := workspace(c, h.provider)
	if !ok {
		return
	}
	if err := ws.Data.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
