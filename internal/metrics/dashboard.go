package metrics

import (
	"math"
	"time"

	"timeclock-backend/internal/database/models"
)

// AllTeams selects every team in a dashboard filter.
const AllTeams = "all"

// Dashboard is the admin overview for one team filter and one week.
type Dashboard struct {
	TeamID          string          `json:"team_id"`
	WeekStart       time.Time       `json:"week_start"`
	MemberCount     int             `json:"member_count"`
	TotalHours      float64         `json:"total_hours"`
	AverageMinutes  float64         `json:"average_minutes_per_user"`
	ActiveTasks     int             `json:"active_tasks"`
	CompletionRate  int             `json:"completion_rate"`
	StatusBreakdown StatusBreakdown `json:"status_breakdown"`
	Weekly          []DayBucket     `json:"weekly"`
	WeekTotalHours  float64         `json:"week_total_hours"`
	OvertimeDays    []string        `json:"overtime_days"`
}

// Dataset is the input of BuildDashboard.
type Dataset struct {
	Users   []models.User
	Tasks   []models.Task
	Records []models.TimeRecord
}

// FilterByTeam narrows a dataset to one team. AllTeams or "" keeps everything.
func FilterByTeam(data Dataset, teamID string) Dataset {
	if teamID == "" || teamID == AllTeams {
		return data
	}
	out := Dataset{}
	for _, u := range data.Users {
		if u.TeamIDs.Contains(teamID) {
			out.Users = append(out.Users, u)
		}
	}
	for _, t := range data.Tasks {
		if t.TeamID == teamID {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, r := range data.Records {
		if r.TeamID == teamID {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// BuildDashboard assembles the overview. Totals cover every record passed in; the weekly
// chart only covers the week containing weekOf.
func BuildDashboard(data Dataset, teamID string, weekOf time.Time, loc *time.Location) *Dashboard {
	if teamID == "" {
		teamID = AllTeams
	}
	scoped := FilterByTeam(data, teamID)
	start, _ := WeekRange(weekOf, loc)
	weekly := WeeklyBucket(InWeek(scoped.Records, weekOf, loc), loc)

	overtime := []string{}
	for _, b := range weekly {
		if b.Overtime {
			overtime = append(overtime, b.Day)
		}
	}

	return &Dashboard{
		TeamID:          teamID,
		WeekStart:       start,
		MemberCount:     len(scoped.Users),
		TotalHours:      RoundTenth(TotalHours(scoped.Records)),
		AverageMinutes:  AveragePerUser(scoped.Records, scoped.Users),
		ActiveTasks:     ActiveTaskCount(scoped.Tasks),
		CompletionRate:  int(math.Round(TaskCompletionRate(scoped.Tasks))),
		StatusBreakdown: TaskStatusBreakdown(scoped.Tasks),
		Weekly:          weekly,
		WeekTotalHours:  WeekTotalHours(weekly),
		OvertimeDays:    overtime,
	}
}
