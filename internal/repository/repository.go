package repository

import (
	"context"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"

	"gorm.io/gorm"
)

var errNotFound = gorm.ErrRecordNotFound

// Set bundles the repositories of one store or transaction.
type Set struct {
	Company     *CompanyRepository
	Users       *UserRepository
	Teams       *TeamRepository
	Tasks       *TaskRepository
	TimeRecords *TimeRecordRepository
}

// For builds the repositories over store
func For(store tenantstore.Store) *Set {
	return &Set{
		Company:     NewCompanyRepository(store),
		Users:       NewUserRepository(store),
		Teams:       NewTeamRepository(store),
		Tasks:       NewTaskRepository(store),
		TimeRecords: NewTimeRecordRepository(store),
	}
}

// CompanyRepository reads the single company row of a tenant
type CompanyRepository struct {
	store tenantstore.Store
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(store tenantstore.Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// Get returns the tenant's company
func (r *CompanyRepository) Get(ctx context.Context) (*models.Company, error) {
	var company models.Company
	if err := r.store.Get(ctx, tenantstore.TableCompanies, r.store.TenantID(), &company); err != nil {
		return nil, err
	}
	return &company, nil
}
