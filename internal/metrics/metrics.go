// Package metrics derives read-only figures from tenant data. Nothing here performs I/O.
package metrics

import (
	"math"
	"time"

	"timeclock-backend/internal/database/models"
)

// OvertimeThresholdHours is the daily hour count above which a day is overtime.
const OvertimeThresholdHours = 8.0

// UnassignedTeam labels a team reference that no longer resolves.
const UnassignedTeam = "unassigned"

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayBucket is the hour total for one weekday.
type DayBucket struct {
	Day      string  `json:"day"`
	Hours    float64 `json:"hours"`
	Overtime bool    `json:"overtime"`
}

// StatusBreakdown counts tasks per status.
type StatusBreakdown struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Review     int `json:"review"`
	Done       int `json:"done"`
}

// RoundTenth rounds to one decimal place, halves away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// TotalMinutes sums record durations
func TotalMinutes(records []models.TimeRecord) int {
	total := 0
	for _, r := range records {
		total += r.Duration
	}
	return total
}

// TotalHours is TotalMinutes in hours, unrounded
func TotalHours(records []models.TimeRecord) float64 {
	return float64(TotalMinutes(records)) / 60
}

// AveragePerUser divides the total minutes by the user count; zero users yields 0.
func AveragePerUser(records []models.TimeRecord, users []models.User) float64 {
	if len(users) == 0 {
		return 0
	}
	return float64(TotalMinutes(records)) / float64(len(users))
}

// weekdayIndex maps time.Weekday to a Monday-first index.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// WeeklyBucket sums record hours per weekday of clock-in in loc. All seven days are
// returned in Mon..Sun order; hours from different users on the same day add up.
func WeeklyBucket(records []models.TimeRecord, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.UTC
	}
	var minutes [7]int
	for _, r := range records {
		minutes[weekdayIndex(r.ClockIn.In(loc).Weekday())] += r.Duration
	}

	buckets := make([]DayBucket, 7)
	for i, label := range weekdayLabels {
		hours := RoundTenth(float64(minutes[i]) / 60)
		buckets[i] = DayBucket{Day: label, Hours: hours, Overtime: OvertimeFlag(hours)}
	}
	return buckets
}

// WeekTotalHours sums rounded bucket hours the way the weekly chart displays them
func WeekTotalHours(buckets []DayBucket) float64 {
	total := 0.0
	for _, b := range buckets {
		total += b.Hours
	}
	return RoundTenth(total)
}

// OvertimeFlag reports whether a day exceeds the overtime threshold
func OvertimeFlag(dayHours float64) bool {
	return dayHours > OvertimeThresholdHours
}

// WeekRange returns the Monday 00:00 that starts the week containing t, and the following Monday.
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	start := day.AddDate(0, 0, -weekdayIndex(t.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// InWeek keeps records whose clock-in falls in the week containing t
func InWeek(records []models.TimeRecord, t time.Time, loc *time.Location) []models.TimeRecord {
	start, end := WeekRange(t, loc)
	out := make([]models.TimeRecord, 0, len(records))
	for _, r := range records {
		if !r.ClockIn.Before(start) && r.ClockIn.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

// TaskCompletionRate is the percentage of done tasks; an empty list yields 0.
func TaskCompletionRate(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}

// TaskStatusBreakdown counts tasks per status
func TaskStatusBreakdown(tasks []models.Task) StatusBreakdown {
	var b StatusBreakdown
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusTodo:
			b.Todo++
		case models.TaskStatusInProgress:
			b.InProgress++
		case models.TaskStatusReview:
			b.Review++
		case models.TaskStatusDone:
			b.Done++
		}
	}
	return b
}

// ActiveTaskCount counts tasks that are not done
func ActiveTaskCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status != models.TaskStatusDone {
			n++
		}
	}
	return n
}

// TeamLabel resolves a team reference to its name, or UnassignedTeam when it dangles.
func TeamLabel(teamID string, teams []models.Team) string {
	for _, t := range teams {
		if t.ID == teamID {
			return t.Name
		}
	}
	return UnassignedTeam
}
