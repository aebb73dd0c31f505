package models

import "time"

// Task is a unit of work on a team board. TeamID may dangle after the team is deleted.
type Task struct {
	BaseModel
	TenantScoped
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	AssigneeID  string       `json:"assignee_id" gorm:"index"`
	TeamID      string       `json:"team_id" gorm:"index"`
	Status      TaskStatus   `json:"status" gorm:"type:text;not null;default:'todo'"`
	Priority    TaskPriority `json:"priority" gorm:"type:text;not null;default:'medium'"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
