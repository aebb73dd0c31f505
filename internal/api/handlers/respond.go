package handlers

import (
	"errors"
	"net/http"

	"timeclock-backend/internal/auth"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Code  string `json:"code,omitempty" example:"corrupt_data"`
	Field string `json:"field,omitempty" example:"email"`
}

// MessageResponse is returned by operations without a body of their own
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: err.Error()}

	var validation *apperrors.ValidationError
	var corrupt *apperrors.CorruptDataError
	switch {
	case errors.As(err, &validation):
		resp.Field = validation.Field
		resp.Code = "validation"
		return http.StatusBadRequest, resp
	case apperrors.IsAuthentication(err):
		resp.Code = "unauthenticated"
		return http.StatusUnauthorized, resp
	case apperrors.IsAuthorization(err):
		resp.Code = "forbidden"
		return http.StatusForbidden, resp
	case apperrors.IsNotFound(err):
		resp.Code = "not_found"
		return http.StatusNotFound, resp
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrLoadSuperseded):
		resp.Code = "conflict"
		return http.StatusConflict, resp
	case errors.Is(err, apperrors.ErrNoActiveTenant), errors.Is(err, apperrors.ErrStoreClosed):
		resp.Code = "tenant_unavailable"
		return http.StatusServiceUnavailable, resp
	case errors.As(err, &corrupt):
		resp.Code = "corrupt_data"
		return http.StatusInternalServerError, resp
	}
	resp.Code = "internal"
	return http.StatusInternalServerError, resp
}

// respondError writes err using the shared status mapping. Server-side failures are logged.
func respondError(c *gin.Context, err error) {
	status, resp := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
	}
	_ = c.Error(err)
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
}

// workspace resolves the caller's services. It writes the response and returns false on failure.
func workspace(c *gin.Context, provider service.WorkspaceProviderInterface) (*service.Workspace, bool) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, apperrors.ErrMissingPrincipal)
		return nil, false
	}
	ws, err := provider.Workspace(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return ws, true
}
