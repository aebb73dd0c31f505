package service

import (
	"context"
	"time"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/localcache"
	"timeclock-backend/internal/metrics"
	"timeclock-backend/internal/tenant"
	"timeclock-backend/internal/tenantstore"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StoreSource yields the store that operations run against. *tenant.Resolver satisfies it.
type StoreSource interface {
	Current() (tenantstore.Store, error)
}

// Mirror receives a full copy of the dataset after every successful write against the
// tenant it belongs to.
type Mirror interface {
	TenantID() string
	Save(ctx context.Context, snap *localcache.Snapshot) error
}

// TenantServiceInterface defines the interface for switching the active tenant
type TenantServiceInterface interface {
	Switch(ctx context.Context, tenantID string, wait bool) (*TenantStatus, error)
	Status(ctx context.Context) *TenantStatus
}

// DataFacadeInterface defines the CRUD surface over the active tenant
type DataFacadeInterface interface {
	AddUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UsersByTeam(ctx context.Context, teamID string) ([]models.User, error)

	AddTeam(ctx context.Context, req *CreateTeamRequest) (*models.Team, error)
	UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)

	AddTask(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, req *UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]models.Task, error)
	TasksByTeam(ctx context.Context, teamID string) ([]models.Task, error)
	TasksByAssignee(ctx context.Context, userID string) ([]models.Task, error)

	AddTimeRecord(ctx context.Context, req *CreateTimeRecordRequest) (*models.TimeRecord, error)
	UpdateTimeRecord(ctx context.Context, id string, req *UpdateTimeRecordRequest) (*models.TimeRecord, error)
	ListTimeRecords(ctx context.Context, filter TimeRecordFilter) ([]models.TimeRecord, error)

	ResetPassword(ctx context.Context, userID string) (string, error)
	ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error
}

// SessionEngineInterface defines clock-in/clock-out operations
type SessionEngineInterface interface {
	ClockIn(ctx context.Context, userID, teamID string, now time.Time) (*models.TimeRecord, error)
	ClockOut(ctx context.Context, userID string, now time.Time) (*models.TimeRecord, error)
	Status(ctx context.Context, userID string, now time.Time) (*SessionStatus, error)
}

// ReportServiceInterface defines the read-only metrics views
type ReportServiceInterface interface {
	Dashboard(ctx context.Context, query DashboardQuery) (*metrics.Dashboard, error)
	Weekly(ctx context.Context, query WeeklyQuery) (*WeeklyReport, error)
}

// WorkspaceProviderInterface resolves the services bound to a principal's active tenant
type WorkspaceProviderInterface interface {
	Workspace(ctx context.Context, p tenant.Principal) (*Workspace, error)
	Release(p tenant.Principal) error
}
