package service

import (
	"context"
	"time"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/metrics"
	"timeclock-backend/internal/repository"
)

// DashboardQuery selects the team filter and the week shown by the dashboard
type DashboardQuery struct {
	TeamID string    `form:"team_id"`
	WeekOf time.Time `form:"week_of" time_format:"2006-01-02"`
}

// WeeklyQuery selects whose hours go into a weekly chart. Empty fields match everything.
type WeeklyQuery struct {
	UserID string    `form:"user_id"`
	TeamID string    `form:"team_id"`
	WeekOf time.Time `form:"week_of" time_format:"2006-01-02"`
}

// WeeklyReport is the seven-day chart with its totals
type WeeklyReport struct {
	WeekStart  time.Time           `json:"week_start"`
	Days       []metrics.DayBucket `json:"days"`
	TotalHours float64             `json:"total_hours"`
	Records    int                 `json:"records"`
}

// ReportService computes read-only views over the active tenant
type ReportService struct {
	source StoreSource
	loc    *time.Location
	now    func() time.Time
}

// NewReportService creates a report service. Weeks are cut in loc.
func NewReportService(source StoreSource, loc *time.Location, now func() time.Time) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ReportService{source: source, loc: loc, now: now}
}

func (s *ReportService) dataset(ctx context.Context) (metrics.Dataset, error) {
	store, err := s.source.Current()
	if err != nil {
		return metrics.Dataset{}, err
	}
	repos := repository.For(store)

	var data metrics.Dataset
	if data.Users, err = repos.Users.List(ctx); err != nil {
		return data, err
	}
	if data.Tasks, err = repos.Tasks.List(ctx); err != nil {
		return data, err
	}
	if data.Records, err = repos.TimeRecords.List(ctx); err != nil {
		return data, err
	}
	return data, nil
}

func (s *ReportService) weekOf(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

// Dashboard builds the admin overview
func (s *ReportService) Dashboard(ctx context.Context, query DashboardQuery) (*metrics.Dashboard, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.BuildDashboard(data, query.TeamID, s.weekOf(query.WeekOf), s.loc), nil
}

// Weekly builds the Mon..Sun hours chart
func (s *ReportService) Weekly(ctx context.Context, query WeeklyQuery) (*WeeklyReport, error) {
	data, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	weekOf := s.weekOf(query.WeekOf)

	records := metrics.FilterByTeam(data, query.TeamID).Records
	if query.UserID != "" {
		mine := make([]models.TimeRecord, 0, len(records))
		for _, r := range records {
			if r.UserID == query.UserID {
				mine = append(mine, r)
			}
		}
		records = mine
	}
	records = metrics.InWeek(records, weekOf, s.loc)

	start, _ := metrics.WeekRange(weekOf, s.loc)
	days := metrics.WeeklyBucket(records, s.loc)
	return &WeeklyReport{
		WeekStart:  start,
		Days:       days,
		TotalHours: metrics.WeekTotalHours(days),
		Records:    len(records),
	}, nil
}
