package tenantstore

import (
	"fmt"

	"gorm.io/gorm"
)

type condition struct {
	column string
	value  interface{}
	isNull bool
}

// Predicate is a conjunction of column conditions.
type Predicate struct {
	conds []condition
	order string
}

// All matches every row of the tenant.
var All = Predicate{}

// Where matches rows whose column equals value.
func Where(column string, value interface{}) Predicate {
	return All.And(column, value)
}

// And adds an equality condition.
func (p Predicate) And(column string, value interface{}) Predicate {
	p.conds = append(append([]condition(nil), p.conds...), condition{column: column, value: value})
	return p
}

// AndNull adds an IS NULL condition.
func (p Predicate) AndNull(column string) Predicate {
	p.conds = append(append([]condition(nil), p.conds...), condition{column: column, isNull: true})
	return p
}

// OrderBy sorts ascending by column.
func (p Predicate) OrderBy(column string) Predicate {
	p.order = column
	return p
}

func (p Predicate) apply(table Table, db *gorm.DB) (*gorm.DB, error) {
	for _, c := range p.conds {
		if !table.hasColumn(c.column) {
			return nil, fmt.Errorf("unknown column %q on %q", c.column, table)
		}
		if c.isNull {
			db = db.Where(c.column + " IS NULL")
		} else {
			db = db.Where(c.column+" = ?", c.value)
		}
	}
	if p.order != "" {
		if !table.hasColumn(p.order) {
			return nil, fmt.Errorf("unknown column %q on %q", p.order, table)
		}
		db = db.Order(p.order)
	}
	return db, nil
}
