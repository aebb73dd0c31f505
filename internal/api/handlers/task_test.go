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

func (suite *HandlerTestSuite) TestTasks() {
	suite.Run("list all", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ListTasks(gomock.Any()).Return([]models.Task{{Title: "a"}, {Title: "b"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks", nil)

		var tasks []models.Task
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tasks)
		assert.Len(suite.T(), tasks, 2)
	})

	suite.Run("list by team", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().TasksByTeam(gomock.Any(), "t1").Return([]models.Task{{Title: "a", TeamID: "t1"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks?team_id=t1", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("mine", func() {
		suite.as(memberPrincipal)
		suite.expectWorkspace()
		suite.data.EXPECT().TasksByAssignee(gomock.Any(), memberPrincipal.UserID).
			Return([]models.Task{{Title: "a", AssigneeID: memberPrincipal.UserID}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me/tasks", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		suite.as(adminPrincipal)
	})

	suite.Run("create with unknown team", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().
			AddTask(gomock.Any(), &service.CreateTaskRequest{Title: "Ship it", TeamID: "gone"}).
			Return(nil, apperrors.NewValidationError("team_id", "team does not exist")).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", map[string]string{"title": "Ship it", "team_id": "gone"})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team does not exist")
	})

	suite.Run("update status", func() {
		status := string(models.TaskStatusDone)
		suite.expectWorkspace()
		suite.data.EXPECT().
			UpdateTask(gomock.Any(), "k1", &service.UpdateTaskRequest{Status: &status}).
			Return(&models.Task{BaseModel: models.BaseModel{ID: "k1"}, Status: models.TaskStatusDone}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/k1", map[string]string{"status": status})

		var task models.Task
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &task)
		assert.Equal(suite.T(), models.TaskStatusDone, task.Status)
	})

	suite.Run("delete missing", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().DeleteTask(gomock.Any(), "k9").Return(apperrors.ErrTaskNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/tasks/k9", nil)
		assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	})
}
