package models

import (
	"slices"
	"time"
)

// TeamIDs is the set of teams a user belongs to. Order is insertion order; duplicates are never stored.
type TeamIDs []string

// Contains reports whether id is in the set
func (t TeamIDs) Contains(id string) bool {
	return slices.Contains(t, id)
}

// With returns the set with id added
func (t TeamIDs) With(id string) TeamIDs {
	if t.Contains(id) {
		return t
	}
	return append(slices.Clone(t), id)
}

// Without returns the set with id removed
func (t TeamIDs) Without(id string) TeamIDs {
	out := make(TeamIDs, 0, len(t))
	for _, v := range t {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// User represents a person inside a company
type User struct {
	BaseModel
	TenantScoped
	Name                   string    `json:"name" gorm:"not null"`
	Email                  string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash           string    `json:"-" gorm:"column:password_hash"`
	Role                   UserRole  `json:"role" gorm:"type:text;not null;default:'member';check:chk_users_role,role IN ('member','hr','admin','superadmin')"`
	TeamIDs                TeamIDs   `json:"team_ids" gorm:"column:team_ids;type:text;serializer:json"`
	OneTimePassword        string    `json:"-" gorm:"column:one_time_password"`
	RequiresPasswordChange bool      `json:"requires_password_change" gorm:"not null;default:false"`
	CreatedAt              time.Time `json:"created_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
