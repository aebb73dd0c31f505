package handlers_test

import (
	"context"
	"net/http"
	"time"

	"timeclock-backend/internal/metrics"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func (suite *HandlerTestSuite) TestDashboard() {
	suite.Run("parses the week", func() {
		suite.expectWorkspace()
		suite.reports.EXPECT().
			Dashboard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q service.DashboardQuery) (*metrics.Dashboard, error) {
				assert.Equal(suite.T(), "t1", q.TeamID)
				assert.Equal(suite.T(), 2025, q.WeekOf.Year())
				assert.Equal(suite.T(), time.March, q.WeekOf.Month())
				assert.Equal(suite.T(), 12, q.WeekOf.Day())
				return &metrics.Dashboard{TeamID: "t1", CompletionRate: 50}, nil
			}).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/dashboard?team_id=t1&week_of=2025-03-12", nil)

		var dashboard metrics.Dashboard
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &dashboard)
		assert.Equal(suite.T(), 50, dashboard.CompletionRate)
	})

	suite.Run("defaults to the current week", func() {
		suite.expectWorkspace()
		suite.reports.EXPECT().
			Dashboard(gomock.Any(), service.DashboardQuery{}).
			Return(&metrics.Dashboard{TeamID: metrics.AllTeams}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/dashboard", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("bad date", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/dashboard?week_of=12/03/2025", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

func (suite *HandlerTestSuite) TestWeekly() {
	suite.Run("member gets their own chart", func() {
		suite.as(memberPrincipal)
		suite.expectWorkspace()
		suite.reports.EXPECT().
			Weekly(gomock.Any(), service.WeeklyQuery{UserID: memberPrincipal.UserID, TeamID: "t1"}).
			Return(&service.WeeklyReport{Days: metrics.WeeklyBucket(nil, time.UTC)}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/weekly?user_id=someone-else&team_id=t1", nil)

		var report service.WeeklyReport
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &report)
		assert.Len(suite.T(), report.Days, 7)
	})
}
