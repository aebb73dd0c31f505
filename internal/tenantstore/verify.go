package tenantstore

import (
	"context"
	"fmt"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
)

// verify checks schema presence and the shape of every row before a store is handed out.
func verify(ctx context.Context, h *Handle) error {
	db := h.db.WithContext(ctx)
	tenant := h.tenantID
	corrupt := func(table Table, format string, args ...interface{}) error {
		return apperrors.NewCorruptDataError(tenant, string(table), fmt.Sprintf(format, args...))
	}

	migrator := db.Migrator()
	for _, table := range Tables() {
		if !migrator.HasTable(string(table)) {
			return corrupt(table, "table is missing")
		}
		cols, err := migrator.ColumnTypes(string(table))
		if err != nil {
			return fmt.Errorf("failed to read columns of %s: %w", table, err)
		}
		present := make(map[string]bool, len(cols))
		for _, c := range cols {
			present[c.Name()] = true
		}
		for _, name := range requiredColumns[table] {
			if !present[name] {
				return corrupt(table, "column %q is missing", name)
			}
		}
	}

	var companies []models.Company
	if err := db.Find(&companies).Error; err != nil {
		return corrupt(TableCompanies, "unreadable rows: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != tenant {
		return corrupt(TableCompanies, "expected exactly one company row with id %q, found %d rows", tenant, len(companies))
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return corrupt(TableUsers, "unreadable rows: %v", err)
	}
	for _, u := range users {
		if u.CompanyID != tenant {
			return corrupt(TableUsers, "user %s belongs to tenant %q", u.ID, u.CompanyID)
		}
		if !u.Role.IsValid() {
			return corrupt(TableUsers, "user %s has role %q", u.ID, u.Role)
		}
		if u.Email == "" {
			return corrupt(TableUsers, "user %s has no email", u.ID)
		}
	}

	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		return corrupt(TableTeams, "unreadable rows: %v", err)
	}
	for _, t := range teams {
		if t.CompanyID != tenant {
			return corrupt(TableTeams, "team %s belongs to tenant %q", t.ID, t.CompanyID)
		}
	}

	var tasks []models.Task
	if err := db.Find(&tasks).Error; err != nil {
		return corrupt(TableTasks, "unreadable rows: %v", err)
	}
	for _, t := range tasks {
		if t.CompanyID != tenant {
			return corrupt(TableTasks, "task %s belongs to tenant %q", t.ID, t.CompanyID)
		}
		if !t.Status.IsValid() {
			return corrupt(TableTasks, "task %s has status %q", t.ID, t.Status)
		}
		if !t.Priority.IsValid() {
			return corrupt(TableTasks, "task %s has priority %q", t.ID, t.Priority)
		}
	}

	var records []models.TimeRecord
	if err := db.Find(&records).Error; err != nil {
		return corrupt(TableTimeRecords, "unreadable rows: %v", err)
	}
	open := make(map[string]bool)
	for _, r := range records {
		if r.CompanyID != tenant {
			return corrupt(TableTimeRecords, "record %s belongs to tenant %q", r.ID, r.CompanyID)
		}
		if r.Duration < 0 {
			return corrupt(TableTimeRecords, "record %s has negative duration", r.ID)
		}
		if r.IsOpen() {
			if open[r.UserID] {
				return corrupt(TableTimeRecords, "user %s has more than one open session", r.UserID)
			}
			open[r.UserID] = true
			continue
		}
		if r.ClockOut.Before(r.ClockIn) {
			return corrupt(TableTimeRecords, "record %s ends before it starts", r.ID)
		}
		if r.Duration != models.MinutesBetween(r.ClockIn, *r.ClockOut) {
			return corrupt(TableTimeRecords, "record %s duration %d does not match its timestamps", r.ID, r.Duration)
		}
	}

	return nil
}
