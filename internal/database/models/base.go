package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the string primary key shared by every table
type BaseModel struct {
	ID string `json:"id" gorm:"type:text;primaryKey"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}

// GetID returns the row's primary key
func (base *BaseModel) GetID() string {
	return base.ID
}

// TenantScoped stamps a row with the company that owns it.
type TenantScoped struct {
	CompanyID string `json:"tenant_id" gorm:"column:company_id;type:text;not null;index"`
}

// GetCompanyID returns the owning tenant
func (t *TenantScoped) GetCompanyID() string {
	return t.CompanyID
}

// SetCompanyID assigns the owning tenant
func (t *TenantScoped) SetCompanyID(id string) {
	t.CompanyID = id
}
