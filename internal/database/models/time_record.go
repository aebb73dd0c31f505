package models

import "time"

// TimeRecord is one clock-in/clock-out session. ClockOut is nil while the session is open.
type TimeRecord struct {
	BaseModel
	TenantScoped
	UserID   string     `json:"user_id" gorm:"not null;index"`
	TeamID   string     `json:"team_id"`
	ClockIn  time.Time  `json:"clock_in" gorm:"not null"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
	Duration int        `json:"duration" gorm:"not null;default:0"`
}

// TableName returns the table name for TimeRecord
func (TimeRecord) TableName() string {
	return "time_records"
}

// IsOpen reports whether the session has not been clocked out yet
func (r *TimeRecord) IsOpen() bool {
	return r.ClockOut == nil
}

// MinutesBetween returns whole elapsed minutes, truncated toward zero.
func MinutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
