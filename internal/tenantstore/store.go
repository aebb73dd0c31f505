package tenantstore

import (
	"context"
	"fmt"

	apperrors "timeclock-backend/internal/errors"

	"gorm.io/gorm"
)

// Store is the generic contract over one tenant's tables. Every read is filtered to the
// tenant and every write is stamped with it.
type Store interface {
	TenantID() string
	Query(ctx context.Context, table Table, pred Predicate, dest interface{}) error
	Get(ctx context.Context, table Table, id string, dest Row) error
	Insert(ctx context.Context, table Table, row Row) error
	Update(ctx context.Context, table Table, row Row) error
	Delete(ctx context.Context, table Table, id string) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// scope implements Store on a gorm session bound to one tenant.
type scope struct {
	tenantID string
	db       *gorm.DB
}

func (s *scope) TenantID() string {
	return s.tenantID
}

func (s *scope) base(ctx context.Context, table Table) *gorm.DB {
	db := s.db.WithContext(ctx).Table(string(table))
	if table.scoped() {
		return db.Where("company_id = ?", s.tenantID)
	}
	return db.Where("id = ?", s.tenantID)
}

func (s *scope) Query(ctx context.Context, table Table, pred Predicate, dest interface{}) error {
	if err := table.checkSliceDest(dest); err != nil {
		return err
	}
	db, err := pred.apply(table, s.base(ctx, table))
	if err != nil {
		return err
	}
	return db.Find(dest).Error
}

func (s *scope) Get(ctx context.Context, table Table, id string, dest Row) error {
	if err := table.checkRow(dest); err != nil {
		return err
	}
	return s.base(ctx, table).Where("id = ?", id).Take(dest).Error
}

func (s *scope) Insert(ctx context.Context, table Table, row Row) error {
	if err := table.checkRow(row); err != nil {
		return err
	}
	if err := s.stamp(row); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(row).Error
}

// Update replaces every mutable column of the row identified by row.GetID().
func (s *scope) Update(ctx context.Context, table Table, row Row) error {
	if err := table.checkRow(row); err != nil {
		return err
	}
	if row.GetID() == "" {
		return apperrors.NewValidationError("id", "is required for update")
	}
	if err := s.stamp(row); err != nil {
		return err
	}
	res := s.base(ctx, table).
		Model(row).
		Select("*").
		Omit("id", "company_id", "created_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *scope) Delete(ctx context.Context, table Table, id string) error {
	if !table.valid() {
		return fmt.Errorf("unknown table %q", table)
	}
	if table == TableCompanies {
		return apperrors.NewValidationError("table", "the company row cannot be deleted")
	}
	res := s.base(ctx, table).Where("id = ?", id).Delete(table.newRow())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *scope) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&scope{tenantID: s.tenantID, db: tx})
	})
}

// stamp assigns the tenant to a row or rejects a row that belongs to another tenant.
func (s *scope) stamp(row Row) error {
	tr, ok := row.(TenantRow)
	if !ok {
		if row.GetID() != s.tenantID {
			return apperrors.ErrTenantForbidden
		}
		return nil
	}
	switch tr.GetCompanyID() {
	case "":
		tr.SetCompanyID(s.tenantID)
	case s.tenantID:
	default:
		return apperrors.ErrTenantForbidden
	}
	return nil
}
