package models

import "time"

// Team groups users inside a company
type Team struct {
	BaseModel
	TenantScoped
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
