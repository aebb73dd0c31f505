package tenantstore

import (
	"fmt"
	"reflect"

	"timeclock-backend/internal/database/models"
)

// Table names one of the fixed tables of a tenant store.
type Table string

const (
	TableCompanies   Table = "companies"
	TableUsers       Table = "users"
	TableTeams       Table = "teams"
	TableTasks       Table = "tasks"
	TableTimeRecords Table = "time_records"
)

// Tables lists every table in verification order.
func Tables() []Table {
	return []Table{TableCompanies, TableUsers, TableTeams, TableTasks, TableTimeRecords}
}

// Row is a typed table row.
type Row interface {
	TableName() string
	GetID() string
}

// TenantRow is a row stamped with its owning company.
type TenantRow interface {
	Row
	GetCompanyID() string
	SetCompanyID(id string)
}

var requiredColumns = map[Table][]string{
	TableCompanies:   {"id", "name", "domain", "is_global"},
	TableUsers:       {"id", "name", "email", "password_hash", "role", "team_ids", "company_id", "one_time_password", "requires_password_change", "created_at"},
	TableTeams:       {"id", "name", "description", "company_id", "created_at"},
	TableTasks:       {"id", "title", "description", "assignee_id", "team_id", "status", "priority", "due_date", "company_id", "created_at"},
	TableTimeRecords: {"id", "user_id", "team_id", "company_id", "clock_in", "clock_out", "duration"},
}

func (t Table) valid() bool {
	_, ok := requiredColumns[t]
	return ok
}

func (t Table) hasColumn(column string) bool {
	for _, c := range requiredColumns[t] {
		if c == column {
			return true
		}
	}
	return false
}

// scoped reports whether rows carry a company_id column.
func (t Table) scoped() bool {
	return t != TableCompanies
}

func (t Table) rowType() reflect.Type {
	switch t {
	case TableCompanies:
		return reflect.TypeOf(models.Company{})
	case TableUsers:
		return reflect.TypeOf(models.User{})
	case TableTeams:
		return reflect.TypeOf(models.Team{})
	case TableTasks:
		return reflect.TypeOf(models.Task{})
	case TableTimeRecords:
		return reflect.TypeOf(models.TimeRecord{})
	}
	return nil
}

// newRow returns an empty row of the table's model.
func (t Table) newRow() Row {
	return reflect.New(t.rowType()).Interface().(Row)
}

func (t Table) checkRow(row Row) error {
	if !t.valid() {
		return fmt.Errorf("unknown table %q", t)
	}
	if row.TableName() != string(t) {
		return fmt.Errorf("row of table %q passed for table %q", row.TableName(), t)
	}
	return nil
}

func (t Table) checkSliceDest(dest interface{}) error {
	if !t.valid() {
		return fmt.Errorf("unknown table %q", t)
	}
	v := reflect.TypeOf(dest)
	if v == nil || v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice || v.Elem().Elem() != t.rowType() {
		return fmt.Errorf("destination for %q must be *[]%s", t, t.rowType().Name())
	}
	return nil
}
