package handlers_test

import (
	"net/http"
	"time"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func (suite *HandlerTestSuite) TestListTimeRecords() {
	suite.Run("admins filter freely", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().
			ListTimeRecords(gomock.Any(), service.TimeRecordFilter{UserID: "u2", TeamID: "t1"}).
			Return([]models.TimeRecord{{UserID: "u2"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/time-records?user_id=u2&team_id=t1", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("members only see their own", func() {
		suite.as(memberPrincipal)
		suite.expectWorkspace()
		suite.data.EXPECT().
			ListTimeRecords(gomock.Any(), service.TimeRecordFilter{UserID: memberPrincipal.UserID}).
			Return([]models.TimeRecord{}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/time-records?user_id=u2", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})
}

func (suite *HandlerTestSuite) TestCreateTimeRecord() {
	clockIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2025, 3, 10, 10, 35, 0, 0, time.UTC)

	suite.Run("closed session", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().
			AddTimeRecord(gomock.Any(), &service.CreateTimeRecordRequest{UserID: "u1", TeamID: "t1", ClockIn: clockIn, ClockOut: &clockOut}).
			Return(&models.TimeRecord{UserID: "u1", ClockIn: clockIn, ClockOut: &clockOut, Duration: 95}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/time-records", map[string]interface{}{
			"user_id":   "u1",
			"team_id":   "t1",
			"clock_in":  clockIn,
			"clock_out": clockOut,
		})

		var record models.TimeRecord
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &record)
		assert.Equal(suite.T(), 95, record.Duration)
	})

	suite.Run("second open session", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().AddTimeRecord(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOpenSessionExists).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/time-records", map[string]interface{}{
			"user_id":  "u1",
			"clock_in": clockIn,
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "open session")
	})
}

func (suite *HandlerTestSuite) TestUpdateTimeRecord() {
	suite.expectWorkspace()
	suite.data.EXPECT().
		UpdateTimeRecord(gomock.Any(), "r1", &service.UpdateTimeRecordRequest{Reopen: true}).
		Return(&models.TimeRecord{BaseModel: models.BaseModel{ID: "r1"}}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/time-records/r1", map[string]bool{"reopen": true})
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *HandlerTestSuite) TestClockSession() {
	suite.as(memberPrincipal)

	suite.Run("clock in without a body", func() {
		suite.expectWorkspace()
		suite.sessions.EXPECT().
			ClockIn(gomock.Any(), memberPrincipal.UserID, "", fixedNow).
			Return(&models.TimeRecord{UserID: memberPrincipal.UserID, ClockIn: fixedNow}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/clock-in", nil)
		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	})

	suite.Run("clock in with a team", func() {
		suite.expectWorkspace()
		suite.sessions.EXPECT().
			ClockIn(gomock.Any(), memberPrincipal.UserID, "t2", fixedNow).
			Return(&models.TimeRecord{TeamID: "t2"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/clock-in", map[string]string{"team_id": "t2"})
		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	})

	suite.Run("double clock in", func() {
		suite.expectWorkspace()
		suite.sessions.EXPECT().ClockIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrOpenSessionExists).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/clock-in", nil)
		assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	})

	suite.Run("clock out without a session", func() {
		suite.expectWorkspace()
		suite.sessions.EXPECT().ClockOut(gomock.Any(), memberPrincipal.UserID, fixedNow).
			Return(nil, apperrors.ErrOpenSessionNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/clock-out", nil)
		assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	})

	suite.Run("status", func() {
		suite.expectWorkspace()
		suite.sessions.EXPECT().Status(gomock.Any(), memberPrincipal.UserID, fixedNow).
			Return(&service.SessionStatus{State: service.SessionClockedIn, LiveElapsedMinutes: 42}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me/session", nil)

		var status service.SessionStatus
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
		assert.Equal(suite.T(), service.SessionClockedIn, status.State)
		assert.Equal(suite.T(), 42, status.LiveElapsedMinutes)
	})
}
