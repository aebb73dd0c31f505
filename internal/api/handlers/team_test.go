package handlers_test

import (
	"net/http"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func (suite *HandlerTestSuite) TestTeamCRUD() {
	suite.Run("list", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ListTeams(gomock.Any()).Return([]models.Team{{Name: "Platform"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)

		var teams []models.Team
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &teams)
		assert.Equal(suite.T(), "Platform", teams[0].Name)
	})

	suite.Run("get missing", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().GetTeam(gomock.Any(), "gone").Return(nil, apperrors.ErrTeamNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/gone", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
	})

	suite.Run("create", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().
			AddTeam(gomock.Any(), &service.CreateTeamRequest{Name: "Platform", Description: "infra"}).
			Return(&models.Team{BaseModel: models.BaseModel{ID: "t1"}, Name: "Platform"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]string{"name": "Platform", "description": "infra"})

		var team models.Team
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &team)
		assert.Equal(suite.T(), "t1", team.ID)
	})

	suite.Run("update", func() {
		desc := "core infra"
		suite.expectWorkspace()
		suite.data.EXPECT().
			UpdateTeam(gomock.Any(), "t1", &service.UpdateTeamRequest{Description: &desc}).
			Return(&models.Team{BaseModel: models.BaseModel{ID: "t1"}, Description: desc}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/t1", map[string]string{"description": desc})
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("delete", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().DeleteTeam(gomock.Any(), "t1").Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/t1", nil)
		assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	})
}
