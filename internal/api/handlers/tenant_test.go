package handlers_test

import (
	"net/http"

	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func (suite *HandlerTestSuite) TestGetTenant() {
	suite.expectWorkspace()
	suite.tenant.EXPECT().Status(gomock.Any()).
		Return(&service.TenantStatus{TenantID: "forge-academy", State: "ready", Scope: "forge-academy"}).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tenant", nil)

	var status service.TenantStatus
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
	assert.Equal(suite.T(), "ready", status.State)
}

func (suite *HandlerTestSuite) TestSwitchTenant() {
	suite.Run("async", func() {
		suite.expectWorkspace()
		suite.tenant.EXPECT().Switch(gomock.Any(), "global", false).
			Return(&service.TenantStatus{TenantID: "global", State: "loading"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tenant/switch", map[string]string{"tenant_id": "global"})
		assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
	})

	suite.Run("wait", func() {
		suite.expectWorkspace()
		suite.tenant.EXPECT().Switch(gomock.Any(), "global", true).
			Return(&service.TenantStatus{TenantID: "global", State: "ready"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tenant/switch", map[string]interface{}{"tenant_id": "global", "wait": true})
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("forbidden", func() {
		suite.expectWorkspace()
		suite.tenant.EXPECT().Switch(gomock.Any(), "global", false).Return(nil, apperrors.ErrTenantForbidden).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tenant/switch", map[string]string{"tenant_id": "global"})
		assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	})

	suite.Run("missing tenant id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tenant/switch", map[string]string{})
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

func (suite *HandlerTestSuite) TestSignOut() {
	suite.provider.EXPECT().Release(adminPrincipal).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/me/sign-out", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}
