package repository

import (
	"context"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"
)

// UserRepository handles tenant store operations for users
type UserRepository struct {
	store tenantstore.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store tenantstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.Insert(ctx, tenantstore.TableUsers, user)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, tenantstore.TableUsers, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email; gorm.ErrRecordNotFound when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := r.store.Query(ctx, tenantstore.TableUsers, tenantstore.Where("email", email), &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errNotFound
	}
	return &users[0], nil
}

// List retrieves every user of the tenant ordered by name
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.store.Query(ctx, tenantstore.TableUsers, tenantstore.All.OrderBy("name"), &users)
	return users, err
}

// ListByTeam retrieves the users whose team set contains teamID
func (r *UserRepository) ListByTeam(ctx context.Context, teamID string) ([]models.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(all))
	for _, u := range all {
		if u.TeamIDs.Contains(teamID) {
			users = append(users, u)
		}
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, tenantstore.TableUsers, user)
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, tenantstore.TableUsers, id)
}
