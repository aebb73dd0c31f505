package repository

import (
	"context"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"
)

// TimeRecordRepository handles tenant store operations for time records
type TimeRecordRepository struct {
	store tenantstore.Store
}

// NewTimeRecordRepository creates a new time record repository
func NewTimeRecordRepository(store tenantstore.Store) *TimeRecordRepository {
	return &TimeRecordRepository{store: store}
}

// Create creates a new time record
func (r *TimeRecordRepository) Create(ctx context.Context, record *models.TimeRecord) error {
	return r.store.Insert(ctx, tenantstore.TableTimeRecords, record)
}

// GetByID retrieves a time record by ID
func (r *TimeRecordRepository) GetByID(ctx context.Context, id string) (*models.TimeRecord, error) {
	var record models.TimeRecord
	if err := r.store.Get(ctx, tenantstore.TableTimeRecords, id, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetOpenByUser retrieves the user's session that has no clock-out; gorm.ErrRecordNotFound when idle
func (r *TimeRecordRepository) GetOpenByUser(ctx context.Context, userID string) (*models.TimeRecord, error) {
	var records []models.TimeRecord
	pred := tenantstore.Where("user_id", userID).AndNull("clock_out")
	if err := r.store.Query(ctx, tenantstore.TableTimeRecords, pred, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNotFound
	}
	return &records[0], nil
}

// List retrieves all records ordered by clock-in
func (r *TimeRecordRepository) List(ctx context.Context) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	err := r.store.Query(ctx, tenantstore.TableTimeRecords, tenantstore.All.OrderBy("clock_in"), &records)
	return records, err
}

// ListByUser retrieves a user's records ordered by clock-in
func (r *TimeRecordRepository) ListByUser(ctx context.Context, userID string) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	err := r.store.Query(ctx, tenantstore.TableTimeRecords, tenantstore.Where("user_id", userID).OrderBy("clock_in"), &records)
	return records, err
}

// ListByTeam retrieves records booked against teamID
func (r *TimeRecordRepository) ListByTeam(ctx context.Context, teamID string) ([]models.TimeRecord, error) {
	var records []models.TimeRecord
	err := r.store.Query(ctx, tenantstore.TableTimeRecords, tenantstore.Where("team_id", teamID).OrderBy("clock_in"), &records)
	return records, err
}

// Update updates a time record
func (r *TimeRecordRepository) Update(ctx context.Context, record *models.TimeRecord) error {
	return r.store.Update(ctx, tenantstore.TableTimeRecords, record)
}
