package handlers_test

import (
	"net/http"

	"timeclock-backend/internal/api/handlers"
	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func (suite *HandlerTestSuite) TestListUsers() {
	suite.Run("all users", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
			{BaseModel: models.BaseModel{ID: "u1"}, Name: "Ada"},
			{BaseModel: models.BaseModel{ID: "u2"}, Name: "Grace"},
		}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users", nil)

		var users []models.User
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &users)
		assert.Len(suite.T(), users, 2)
	})

	suite.Run("by team", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().UsersByTeam(gomock.Any(), "t1").Return([]models.User{{Name: "Ada"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?team_id=t1", nil)

		var users []models.User
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &users)
		assert.Len(suite.T(), users, 1)
	})
}

func (suite *HandlerTestSuite) TestGetUser() {
	suite.Run("found", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().GetUser(gomock.Any(), "u1").
			Return(&models.User{BaseModel: models.BaseModel{ID: "u1"}, Email: "ada@forge.test", PasswordHash: "secret"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/u1", nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.NotContains(suite.T(), recorder.Body.String(), "secret")
		assert.NotContains(suite.T(), recorder.Body.String(), "password_hash")
	})

	suite.Run("missing", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().GetUser(gomock.Any(), "nope").Return(nil, apperrors.ErrUserNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/nope", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
	})
}

func (suite *HandlerTestSuite) TestGetCurrentUser() {
	suite.as(memberPrincipal)
	suite.expectWorkspace()
	suite.data.EXPECT().GetUser(gomock.Any(), memberPrincipal.UserID).
		Return(&models.User{BaseModel: models.BaseModel{ID: memberPrincipal.UserID}}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	var user models.User
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &user)
	assert.Equal(suite.T(), memberPrincipal.UserID, user.ID)
}

func (suite *HandlerTestSuite) TestCreateUser() {
	suite.Run("created", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().
			AddUser(gomock.Any(), &service.CreateUserRequest{Name: "Ada", Email: "ada@forge.test", TeamIDs: []string{"t1"}}).
			Return(&models.User{BaseModel: models.BaseModel{ID: "u1"}, Name: "Ada"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
			"name":     "Ada",
			"email":    "ada@forge.test",
			"team_ids": []string{"t1"},
		})

		var user models.User
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &user)
		assert.Equal(suite.T(), "u1", user.ID)
	})

	suite.Run("duplicate email", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{"name": "Ada", "email": "ada@forge.test"})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	})

	suite.Run("validation", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().AddUser(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("email", "failed on the 'email' rule")).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{"name": "Ada", "email": "nope"})

		var resp handlers.ErrorResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &resp)
		assert.Equal(suite.T(), "email", resp.Field)
	})

	suite.Run("malformed body never reaches the facade", func() {
		recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/v1/users")
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

func (suite *HandlerTestSuite) TestUpdateUser() {
	name := "Ada L."
	suite.expectWorkspace()
	suite.data.EXPECT().
		UpdateUser(gomock.Any(), "u1", &service.UpdateUserRequest{Name: &name}).
		Return(&models.User{BaseModel: models.BaseModel{ID: "u1"}, Name: name}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/users/u1", map[string]interface{}{"name": name})

	var user models.User
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &user)
	assert.Equal(suite.T(), name, user.Name)
}

func (suite *HandlerTestSuite) TestDeleteUser() {
	suite.expectWorkspace()
	suite.data.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/users/u1", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *HandlerTestSuite) TestPasswordFlow() {
	suite.Run("reset returns the code once", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ResetPassword(gomock.Any(), "u1").Return("3F9A1C07", nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/u1/reset-password", nil)

		var resp handlers.ResetPasswordResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		assert.Equal(suite.T(), "3F9A1C07", resp.OneTimePassword)
	})

	suite.Run("change uses the caller's id", func() {
		suite.as(memberPrincipal)
		suite.expectWorkspace()
		suite.data.EXPECT().
			ChangePassword(gomock.Any(), memberPrincipal.UserID, &service.ChangePasswordRequest{CurrentPassword: "3F9A1C07", NewPassword: "a-long-password"}).
			Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/password", map[string]string{
			"current_password": "3F9A1C07",
			"new_password":     "a-long-password",
		})
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("short password", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ErrPasswordTooShort).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/password", map[string]string{
			"current_password": "old-password",
			"new_password":     "short",
		})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "at least 8")
	})

	suite.Run("wrong current password", func() {
		suite.expectWorkspace()
		suite.data.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ErrInvalidCredentials).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/password", map[string]string{
			"current_password": "wrong",
			"new_password":     "a-long-password",
		})
		assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	})
}
