package metrics_test

import (
	"testing"
	"time"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(userID, teamID string, clockIn time.Time, minutes int) models.TimeRecord {
	out := clockIn.Add(time.Duration(minutes) * time.Minute)
	return models.TimeRecord{
		BaseModel: models.BaseModel{ID: userID + clockIn.Format(time.RFC3339)},
		UserID:    userID,
		TeamID:    teamID,
		ClockIn:   clockIn,
		ClockOut:  &out,
		Duration:  minutes,
	}
}

func task(teamID string, status models.TaskStatus) models.Task {
	return models.Task{TeamID: teamID, Status: status}
}

// 2025-03-10 is a Monday.
var monday = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestZeroSafeAggregates(t *testing.T) {
	assert.Equal(t, 0, metrics.TotalMinutes(nil))
	assert.Equal(t, 0.0, metrics.TotalHours(nil))
	assert.Equal(t, 0.0, metrics.AveragePerUser([]models.TimeRecord{record("u1", "t1", monday, 60)}, nil))
	assert.Equal(t, 0.0, metrics.TaskCompletionRate(nil))
	assert.Equal(t, 0, metrics.ActiveTaskCount(nil))

	buckets := metrics.WeeklyBucket(nil, time.UTC)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Equal(t, 0.0, b.Hours)
		assert.False(t, b.Overtime)
	}
}

func TestTotals(t *testing.T) {
	records := []models.TimeRecord{
		record("u1", "t1", monday, 95),
		record("u2", "t1", monday, 25),
	}
	users := []models.User{{BaseModel: models.BaseModel{ID: "u1"}}, {BaseModel: models.BaseModel{ID: "u2"}}}

	assert.Equal(t, 120, metrics.TotalMinutes(records))
	assert.Equal(t, 2.0, metrics.TotalHours(records))
	assert.Equal(t, 60.0, metrics.AveragePerUser(records, users))
}

func TestWeeklyBucket(t *testing.T) {
	t.Run("orders Mon to Sun", func(t *testing.T) {
		buckets := metrics.WeeklyBucket(nil, nil)
		days := make([]string, 0, 7)
		for _, b := range buckets {
			days = append(days, b.Day)
		}
		assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, days)
	})

	t.Run("sums users on the same day", func(t *testing.T) {
		records := []models.TimeRecord{
			record("u1", "t1", monday, 300),
			record("u2", "t2", monday.Add(time.Hour), 240),
			record("u1", "t1", monday.AddDate(0, 0, 6), 90),
		}
		buckets := metrics.WeeklyBucket(records, time.UTC)

		assert.Equal(t, 9.0, buckets[0].Hours)
		assert.True(t, buckets[0].Overtime)
		assert.Equal(t, 1.5, buckets[6].Hours)
		assert.False(t, buckets[6].Overtime)
		assert.Equal(t, 10.5, metrics.WeekTotalHours(buckets))
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		buckets := metrics.WeeklyBucket([]models.TimeRecord{record("u1", "t1", monday, 95)}, time.UTC)
		assert.Equal(t, 1.6, buckets[0].Hours)
	})

	t.Run("buckets by local weekday", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*3600)
		// Monday 02:00 UTC is still Sunday in UTC-5.
		early := time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)
		buckets := metrics.WeeklyBucket([]models.TimeRecord{record("u1", "t1", early, 60)}, loc)
		assert.Equal(t, 0.0, buckets[0].Hours)
		assert.Equal(t, 1.0, buckets[6].Hours)
	})

	t.Run("exactly eight hours is not overtime", func(t *testing.T) {
		buckets := metrics.WeeklyBucket([]models.TimeRecord{record("u1", "t1", monday, 480)}, time.UTC)
		assert.False(t, buckets[0].Overtime)
	})
}

func TestWeekRange(t *testing.T) {
	wednesday := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
	start, end := metrics.WeekRange(wednesday, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), end)

	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	start, _ = metrics.WeekRange(sunday, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)

	records := []models.TimeRecord{
		record("u1", "t1", monday, 60),
		record("u1", "t1", monday.AddDate(0, 0, -1), 60),
		record("u1", "t1", monday.AddDate(0, 0, 7), 60),
	}
	assert.Len(t, metrics.InWeek(records, wednesday, time.UTC), 1)
}

func TestTasks(t *testing.T) {
	tasks := []models.Task{
		task("t1", models.TaskStatusDone),
		task("t1", models.TaskStatusTodo),
		task("t2", models.TaskStatusInProgress),
	}

	assert.InDelta(t, 33.333, metrics.TaskCompletionRate(tasks), 0.001)
	assert.Equal(t, 2, metrics.ActiveTaskCount(tasks))
	assert.Equal(t, metrics.StatusBreakdown{Todo: 1, InProgress: 1, Done: 1}, metrics.TaskStatusBreakdown(tasks))
}

func TestTeamLabel(t *testing.T) {
	teams := []models.Team{{BaseModel: models.BaseModel{ID: "t1"}, Name: "Platform"}}
	assert.Equal(t, "Platform", metrics.TeamLabel("t1", teams))
	assert.Equal(t, metrics.UnassignedTeam, metrics.TeamLabel("gone", teams))
}

func TestBuildDashboard(t *testing.T) {
	data := metrics.Dataset{
		Users: []models.User{
			{BaseModel: models.BaseModel{ID: "u1"}, TeamIDs: models.TeamIDs{"t1"}},
			{BaseModel: models.BaseModel{ID: "u2"}, TeamIDs: models.TeamIDs{"t2"}},
		},
		Tasks: []models.Task{
			task("t1", models.TaskStatusDone),
			task("t1", models.TaskStatusReview),
			task("t2", models.TaskStatusTodo),
		},
		Records: []models.TimeRecord{
			record("u1", "t1", monday, 540),
			record("u2", "t2", monday.AddDate(0, 0, 1), 60),
			record("u1", "t1", monday.AddDate(0, 0, -7), 60),
		},
	}

	t.Run("all teams", func(t *testing.T) {
		d := metrics.BuildDashboard(data, "", monday, time.UTC)
		assert.Equal(t, metrics.AllTeams, d.TeamID)
		assert.Equal(t, 2, d.MemberCount)
		assert.Equal(t, 11.0, d.TotalHours)
		assert.Equal(t, 330.0, d.AverageMinutes)
		assert.Equal(t, 2, d.ActiveTasks)
		assert.Equal(t, 33, d.CompletionRate)
		assert.Equal(t, 10.0, d.WeekTotalHours)
		assert.Equal(t, []string{"Mon"}, d.OvertimeDays)
	})

	t.Run("one team", func(t *testing.T) {
		d := metrics.BuildDashboard(data, "t1", monday, time.UTC)
		assert.Equal(t, 1, d.MemberCount)
		assert.Equal(t, 10.0, d.TotalHours)
		assert.Equal(t, 50, d.CompletionRate)
		assert.Equal(t, 9.0, d.WeekTotalHours)
	})

	t.Run("unknown team", func(t *testing.T) {
		d := metrics.BuildDashboard(data, "nope", monday, time.UTC)
		assert.Equal(t, 0, d.MemberCount)
		assert.Equal(t, 0, d.CompletionRate)
		assert.Empty(t, d.OvertimeDays)
	})
}
