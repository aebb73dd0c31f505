package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/localcache"
	"timeclock-backend/internal/mocks"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingMirror keeps the last snapshot it was given
type recordingMirror struct {
	tenantID string
	saves    int
	last     *localcache.Snapshot
	err      error
}

func (m *recordingMirror) TenantID() string {
	return m.tenantID
}

func (m *recordingMirror) Save(_ context.Context, snap *localcache.Snapshot) error {
	m.saves++
	m.last = snap
	return m.err
}

// DataFacadeTestSuite defines the test suite for DataFacade
type DataFacadeTestSuite struct {
	testutils.StoreTestSuite
	facade  *service.DataFacade
	mirror  *recordingMirror
	factory *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *DataFacadeTestSuite) SetupTest() {
	suite.StoreTestSuite.SetupTest()
	suite.mirror = &recordingMirror{tenantID: testutils.DefaultTenantID}
	suite.facade = service.NewDataFacade(&suite.StoreTestSuite, service.NewValidator(), suite.mirror)
	suite.factory = testutils.NewFactorySet()
}

func (suite *DataFacadeTestSuite) addTeam(name string) *models.Team {
	team, err := suite.facade.AddTeam(suite.Ctx, &service.CreateTeamRequest{Name: name})
	suite.Require().NoError(err)
	return team
}

func (suite *DataFacadeTestSuite) addUser(email string, teamIDs ...string) *models.User {
	user, err := suite.facade.AddUser(suite.Ctx, &service.CreateUserRequest{
		Name:     "User " + email,
		Email:    email,
		Password: "password123",
		TeamIDs:  teamIDs,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *DataFacadeTestSuite) TestAddUser() {
	team := suite.addTeam("Platform")
	suite.mirror.saves = 0
	user := suite.addUser("Ada@Example.com", team.ID)

	suite.NotEmpty(user.ID)
	suite.Equal("ada@example.com", user.Email)
	suite.Equal(models.UserRoleMember, user.Role)
	suite.Equal(testutils.DefaultTenantID, user.CompanyID)
	suite.NotEqual("password123", user.PasswordHash)

	stored, err := suite.facade.GetUser(suite.Ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TeamIDs{team.ID}, stored.TeamIDs)
	suite.Equal(1, suite.mirror.saves)
}

func (suite *DataFacadeTestSuite) TestAddUserValidation() {
	testCases := []struct {
		name  string
		req   *service.CreateUserRequest
		field string
	}{
		{"missing name", &service.CreateUserRequest{Email: "a@example.com"}, "name"},
		{"bad email", &service.CreateUserRequest{Name: "A", Email: "not-an-email"}, "email"},
		{"bad role", &service.CreateUserRequest{Name: "A", Email: "a@example.com", Role: "owner"}, "role"},
		{"short password", &service.CreateUserRequest{Name: "A", Email: "a@example.com", Password: "short"}, "password"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.facade.AddUser(suite.Ctx, tc.req)
			var verr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &verr), "got %v", err)
			suite.Equal(tc.field, verr.Field)
		})
	}
}

func (suite *DataFacadeTestSuite) TestAddUserUnknownTeam() {
	_, err := suite.facade.AddUser(suite.Ctx, &service.CreateUserRequest{
		Name: "A", Email: "a@example.com", TeamIDs: []string{"missing"},
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DataFacadeTestSuite) TestAddUserDuplicateEmail() {
	suite.addUser("dup@example.com")
	_, err := suite.facade.AddUser(suite.Ctx, &service.CreateUserRequest{Name: "B", Email: "DUP@example.com"})
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *DataFacadeTestSuite) TestUpdateUser() {
	a := suite.addTeam("A")
	b := suite.addTeam("B")
	user := suite.addUser("u@example.com", a.ID)

	name := "Renamed"
	role := string(models.UserRoleHR)
	updated, err := suite.facade.UpdateUser(suite.Ctx, user.ID, &service.UpdateUserRequest{
		Name:    &name,
		Role:    &role,
		TeamIDs: []string{a.ID, b.ID},
	})
	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.Name)
	suite.Equal(models.UserRoleHR, updated.Role)
	suite.Equal(models.TeamIDs{a.ID, b.ID}, updated.TeamIDs)

	other := suite.addUser("other@example.com")
	taken := "u@example.com"
	_, err = suite.facade.UpdateUser(suite.Ctx, other.ID, &service.UpdateUserRequest{Email: &taken})
	suite.ErrorIs(err, apperrors.ErrUserExists)

	_, err = suite.facade.UpdateUser(suite.Ctx, "missing", &service.UpdateUserRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *DataFacadeTestSuite) TestDeleteUserKeepsHistory() {
	team := suite.addTeam("A")
	user := suite.addUser("u@example.com", team.ID)
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour)
	_, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, TeamID: team.ID, ClockIn: in, ClockOut: &out})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.facade.DeleteUser(suite.Ctx, user.ID))
	_, err = suite.facade.GetUser(suite.Ctx, user.ID)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	records, err := suite.facade.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{UserID: user.ID})
	suite.Require().NoError(err)
	suite.Len(records, 1)

	suite.ErrorIs(suite.facade.DeleteUser(suite.Ctx, user.ID), apperrors.ErrUserNotFound)
}

func (suite *DataFacadeTestSuite) TestDeleteTeamCascades() {
	keep := suite.addTeam("Keep")
	gone := suite.addTeam("Gone")
	both := suite.addUser("both@example.com", keep.ID, gone.ID)
	only := suite.addUser("only@example.com", gone.ID)
	task, err := suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "Ship it", TeamID: gone.ID})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.facade.DeleteTeam(suite.Ctx, gone.ID))

	got, err := suite.facade.GetUser(suite.Ctx, both.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TeamIDs{keep.ID}, got.TeamIDs)

	got, err = suite.facade.GetUser(suite.Ctx, only.ID)
	suite.Require().NoError(err)
	suite.Empty(got.TeamIDs)

	members, err := suite.facade.UsersByTeam(suite.Ctx, gone.ID)
	suite.Require().NoError(err)
	suite.Empty(members)

	tasks, err := suite.facade.TasksByTeam(suite.Ctx, gone.ID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(task.ID, tasks[0].ID)
	suite.Equal(gone.ID, tasks[0].TeamID)

	_, err = suite.facade.GetTeam(suite.Ctx, gone.ID)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.ErrorIs(suite.facade.DeleteTeam(suite.Ctx, gone.ID), apperrors.ErrTeamNotFound)
}

func (suite *DataFacadeTestSuite) TestUpdateTeam() {
	team := suite.addTeam("Old")
	name := "New"
	updated, err := suite.facade.UpdateTeam(suite.Ctx, team.ID, &service.UpdateTeamRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal("New", updated.Name)

	teams, err := suite.facade.ListTeams(suite.Ctx)
	suite.Require().NoError(err)
	suite.Len(teams, 1)
}

func (suite *DataFacadeTestSuite) TestAddTask() {
	team := suite.addTeam("A")
	user := suite.addUser("u@example.com", team.ID)

	task, err := suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "Write docs", TeamID: team.ID, AssigneeID: user.ID})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusTodo, task.Status)
	suite.Equal(models.TaskPriorityMedium, task.Priority)

	_, err = suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "Orphan", TeamID: "missing"})
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("team_id", verr.Field)

	_, err = suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "Nobody", TeamID: team.ID, AssigneeID: "missing"})
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("assignee_id", verr.Field)

	_, err = suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "Bad", TeamID: team.ID, Status: "blocked"})
	suite.True(apperrors.IsValidation(err))
	mine, err := suite.facade.TasksByAssignee(suite.Ctx, user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 1)
	suite.Equal(task.ID, mine[0].ID)
}

func (suite *DataFacadeTestSuite) TestUpdateAndDeleteTask() {
	team := suite.addTeam("A")
	task, err := suite.facade.AddTask(suite.Ctx, &service.CreateTaskRequest{Title: "T", TeamID: team.ID})
	suite.Require().NoError(err)

	status := string(models.TaskStatusDone)
	updated, err := suite.facade.UpdateTask(suite.Ctx, task.ID, &service.UpdateTaskRequest{Status: &status})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusDone, updated.Status)

	missing := "missing"
	_, err = suite.facade.UpdateTask(suite.Ctx, task.ID, &service.UpdateTaskRequest{TeamID: &missing})
	suite.True(apperrors.IsValidation(err))

	suite.Require().NoError(suite.facade.DeleteTask(suite.Ctx, task.ID))
	suite.ErrorIs(suite.facade.DeleteTask(suite.Ctx, task.ID), apperrors.ErrTaskNotFound)

	tasks, err := suite.facade.ListTasks(suite.Ctx)
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *DataFacadeTestSuite) TestAddTimeRecordComputesDuration() {
	user := suite.addUser("u@example.com")
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 10, 35, 0, 0, time.UTC)

	record, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: in, ClockOut: &out})
	suite.Require().NoError(err)
	suite.Equal(95, record.Duration)

	before := in.Add(-time.Minute)
	_, err = suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: in, ClockOut: &before})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: "missing", ClockIn: in})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DataFacadeTestSuite) TestSingleOpenSession() {
	user := suite.addUser("u@example.com")
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	open, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: in})
	suite.Require().NoError(err)
	suite.True(open.IsOpen())

	_, err = suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: in.Add(time.Hour)})
	suite.ErrorIs(err, apperrors.ErrOpenSessionExists)
	suite.True(apperrors.IsConflict(err))

	out := in.Add(2 * time.Hour)
	closed, err := suite.facade.UpdateTimeRecord(suite.Ctx, open.ID, &service.UpdateTimeRecordRequest{ClockOut: &out})
	suite.Require().NoError(err)
	suite.Equal(120, closed.Duration)

	second, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: out})
	suite.Require().NoError(err)

	_, err = suite.facade.UpdateTimeRecord(suite.Ctx, closed.ID, &service.UpdateTimeRecordRequest{Reopen: true})
	suite.ErrorIs(err, apperrors.ErrOpenSessionExists)

	records, err := suite.facade.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{UserID: user.ID})
	suite.Require().NoError(err)
	openCount := 0
	for _, r := range records {
		if r.IsOpen() {
			openCount++
			suite.Equal(second.ID, r.ID)
		}
	}
	suite.Equal(1, openCount)
}

func (suite *DataFacadeTestSuite) TestUpdateTimeRecordRecomputesDuration() {
	user := suite.addUser("u@example.com")
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(time.Hour)
	record, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, ClockIn: in, ClockOut: &out})
	suite.Require().NoError(err)

	earlier := in.Add(-30 * time.Minute)
	updated, err := suite.facade.UpdateTimeRecord(suite.Ctx, record.ID, &service.UpdateTimeRecordRequest{ClockIn: &earlier})
	suite.Require().NoError(err)
	suite.Equal(90, updated.Duration)

	reopened, err := suite.facade.UpdateTimeRecord(suite.Ctx, record.ID, &service.UpdateTimeRecordRequest{Reopen: true})
	suite.Require().NoError(err)
	suite.True(reopened.IsOpen())
	suite.Equal(0, reopened.Duration)

	_, err = suite.facade.UpdateTimeRecord(suite.Ctx, "missing", &service.UpdateTimeRecordRequest{Reopen: true})
	suite.ErrorIs(err, apperrors.ErrTimeRecordNotFound)
}

func (suite *DataFacadeTestSuite) TestListTimeRecordsFilter() {
	a := suite.addTeam("A")
	b := suite.addTeam("B")
	user := suite.addUser("u@example.com", a.ID, b.ID)
	other := suite.addUser("o@example.com", a.ID)
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, rec := range []struct{ user, team string }{{user.ID, a.ID}, {user.ID, b.ID}, {other.ID, a.ID}} {
		start := in.AddDate(0, 0, i)
		end := start.Add(time.Hour)
		_, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: rec.user, TeamID: rec.team, ClockIn: start, ClockOut: &end})
		suite.Require().NoError(err)
	}

	all, err := suite.facade.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	byTeam, err := suite.facade.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{TeamID: a.ID})
	suite.Require().NoError(err)
	suite.Len(byTeam, 2)

	both, err := suite.facade.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{UserID: user.ID, TeamID: b.ID})
	suite.Require().NoError(err)
	suite.Len(both, 1)
}

func (suite *DataFacadeTestSuite) TestPasswordLongerThanBcryptLimit() {
	// 40 runes pass the max=72 tag but encode to 80 bytes.
	multibyte := strings.Repeat("é", 40)
	_, err := suite.facade.AddUser(suite.Ctx, &service.CreateUserRequest{Name: "A", Email: "a@example.com", Password: multibyte})
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr), "got %v", err)
	suite.Equal("password", verr.Field)

	user := suite.addUser("u@example.com")
	err = suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     strings.Repeat("a", 80),
	})
	suite.Require().True(errors.As(err, &verr), "got %v", err)
	suite.Equal("new_password", verr.Field)

	// The old password still works.
	suite.NoError(suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     strings.Repeat("a", service.MaxPasswordBytes),
	}))
}

func (suite *DataFacadeTestSuite) TestPasswordResetAndChange() {
	user := suite.addUser("u@example.com")

	code, err := suite.facade.ResetPassword(suite.Ctx, user.ID)
	suite.Require().NoError(err)
	suite.Len(code, 8)

	stored, err := suite.facade.GetUser(suite.Ctx, user.ID)
	suite.Require().NoError(err)
	suite.True(stored.RequiresPasswordChange)

	err = suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{CurrentPassword: code, NewPassword: "short"})
	suite.ErrorIs(err, apperrors.ErrPasswordTooShort)

	err = suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{CurrentPassword: "wrong-one", NewPassword: "new-password"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	suite.Require().NoError(suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{CurrentPassword: code, NewPassword: "new-password"}))
	stored, err = suite.facade.GetUser(suite.Ctx, user.ID)
	suite.Require().NoError(err)
	suite.False(stored.RequiresPasswordChange)
	suite.Empty(stored.OneTimePassword)

	// The one-time password is spent; the new password now works.
	err = suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{CurrentPassword: code, NewPassword: "another-password"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.NoError(suite.facade.ChangePassword(suite.Ctx, user.ID, &service.ChangePasswordRequest{CurrentPassword: "new-password", NewPassword: "another-password"}))

	_, err = suite.facade.ResetPassword(suite.Ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *DataFacadeTestSuite) TestMirrorFailureDoesNotFailWrite() {
	suite.mirror.err = errors.New("disk full")
	team := suite.addTeam("A")
	suite.NotEmpty(team.ID)
	suite.Require().NotNil(suite.mirror.last)
	suite.Len(suite.mirror.last.Teams, 1)
}

func (suite *DataFacadeTestSuite) TestMirrorIgnoresOtherTenants() {
	mirror := &recordingMirror{tenantID: "shared"}
	facade := service.NewDataFacade(&suite.StoreTestSuite, service.NewValidator(), mirror)

	_, err := facade.AddTeam(suite.Ctx, &service.CreateTeamRequest{Name: "Platform"})
	suite.Require().NoError(err)
	suite.Zero(mirror.saves)
	suite.Nil(mirror.last)
}

func (suite *DataFacadeTestSuite) TestMirrorReceivesCommittedState() {
	ctrl := gomock.NewController(suite.T())
	mirror := mocks.NewMockMirror(ctrl)
	mirror.EXPECT().TenantID().Return(testutils.DefaultTenantID)
	mirror.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *localcache.Snapshot) error {
			suite.Require().Len(snap.Teams, 1)
			suite.Equal("Platform", snap.Teams[0].Name)
			return nil
		})

	facade := service.NewDataFacade(&suite.StoreTestSuite, service.NewValidator(), mirror)
	_, err := facade.AddTeam(suite.Ctx, &service.CreateTeamRequest{Name: "Platform"})
	suite.Require().NoError(err)
}

func (suite *DataFacadeTestSuite) TestSnapshotAndRestore() {
	team := suite.addTeam("A")
	user := suite.addUser("u@example.com", team.ID)
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := suite.facade.AddTimeRecord(suite.Ctx, &service.CreateTimeRecordRequest{UserID: user.ID, TeamID: team.ID, ClockIn: in})
	suite.Require().NoError(err)

	snap, err := suite.facade.Snapshot(suite.Ctx)
	suite.Require().NoError(err)

	seeded, err := suite.facade.Restore(suite.Ctx, snap)
	suite.Require().NoError(err)
	suite.False(seeded, "a populated store is never overwritten")

	fresh := suite.Provision("fresh", false)
	target := service.NewDataFacade(service.FixedSource(fresh), service.NewValidator(), nil)
	seeded, err = target.Restore(suite.Ctx, snap)
	suite.Require().NoError(err)
	suite.True(seeded)

	users, err := target.ListUsers(suite.Ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal("fresh", users[0].CompanyID)
	suite.Equal(user.PasswordHash, users[0].PasswordHash)

	records, err := target.ListTimeRecords(suite.Ctx, service.TimeRecordFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.True(records[0].IsOpen())
}

func (suite *DataFacadeTestSuite) TestNoActiveTenant() {
	facade := service.NewDataFacade(service.FixedSource(nil), service.NewValidator(), nil)
	_, err := facade.ListUsers(suite.Ctx)
	suite.ErrorIs(err, apperrors.ErrNoActiveTenant)
}

func TestDataFacadeTestSuite(t *testing.T) {
	suite.Run(t, new(DataFacadeTestSuite))
}
