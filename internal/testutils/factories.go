package testutils

import (
	"time"

	"timeclock-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.NewString()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test User",
		Email:     "user-" + id[:8] + "@example.com",
		Role:      models.UserRoleMember,
		TeamIDs:   models.TeamIDs{},
	}
}

// WithTeams creates a test User belonging to teamIDs
func (f *UserFactory) WithTeams(teamIDs ...string) *models.User {
	user := f.Create()
	for _, id := range teamIDs {
		user.TeamIDs = user.TeamIDs.With(id)
	}
	return user
}

// WithRole creates a test User with a custom role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		Name:        "Test Team",
		Description: "A test team",
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task on teamID
func (f *TaskFactory) Create(teamID string) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Title:     "Test Task",
		TeamID:    teamID,
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
	}
}

// WithStatus creates a test Task with a custom status
func (f *TaskFactory) WithStatus(teamID string, status models.TaskStatus) *models.Task {
	task := f.Create(teamID)
	task.Status = status
	return task
}

// TimeRecordFactory provides methods to create test TimeRecord data
type TimeRecordFactory struct{}

// NewTimeRecordFactory creates a new TimeRecordFactory
func NewTimeRecordFactory() *TimeRecordFactory {
	return &TimeRecordFactory{}
}

// Closed creates a finished session of the given length
func (f *TimeRecordFactory) Closed(userID, teamID string, clockIn time.Time, length time.Duration) *models.TimeRecord {
	in := clockIn.UTC()
	out := in.Add(length)
	return &models.TimeRecord{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		UserID:    userID,
		TeamID:    teamID,
		ClockIn:   in,
		ClockOut:  &out,
		Duration:  models.MinutesBetween(in, out),
	}
}

// Open creates a session that has not been clocked out
func (f *TimeRecordFactory) Open(userID, teamID string, clockIn time.Time) *models.TimeRecord {
	return &models.TimeRecord{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		UserID:    userID,
		TeamID:    teamID,
		ClockIn:   clockIn.UTC(),
	}
}

// FactorySet bundles every factory
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	Task       *TaskFactory
	TimeRecord *TimeRecordFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		Task:       NewTaskFactory(),
		TimeRecord: NewTimeRecordFactory(),
	}
}
