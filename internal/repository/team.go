package repository

import (
	"context"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"
)

// TeamRepository handles tenant store operations for teams
type TeamRepository struct {
	store tenantstore.Store
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(store tenantstore.Store) *TeamRepository {
	return &TeamRepository{store: store}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.store.Insert(ctx, tenantstore.TableTeams, team)
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.store.Get(ctx, tenantstore.TableTeams, id, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams ordered by name
func (r *TeamRepository) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.store.Query(ctx, tenantstore.TableTeams, tenantstore.All.OrderBy("name"), &teams)
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.store.Update(ctx, tenantstore.TableTeams, team)
}

// Delete deletes a team
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, tenantstore.TableTeams, id)
}
