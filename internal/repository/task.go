package repository

import (
	"context"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"
)

// TaskRepository handles tenant store operations for tasks
type TaskRepository struct {
	store tenantstore.Store
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(store tenantstore.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.store.Insert(ctx, tenantstore.TableTasks, task)
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.store.Get(ctx, tenantstore.TableTasks, id, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves all tasks in creation order
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := r.store.Query(ctx, tenantstore.TableTasks, tenantstore.All.OrderBy("created_at"), &tasks)
	return tasks, err
}

// ListByTeam retrieves the tasks whose team reference equals teamID
func (r *TaskRepository) ListByTeam(ctx context.Context, teamID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.store.Query(ctx, tenantstore.TableTasks, tenantstore.Where("team_id", teamID).OrderBy("created_at"), &tasks)
	return tasks, err
}

// ListByAssignee retrieves the tasks assigned to userID
func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.store.Query(ctx, tenantstore.TableTasks, tenantstore.Where("assignee_id", userID).OrderBy("created_at"), &tasks)
	return tasks, err
}

// Update updates a task
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.store.Update(ctx, tenantstore.TableTasks, task)
}

// Delete deletes a task
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, tenantstore.TableTasks, id)
}
