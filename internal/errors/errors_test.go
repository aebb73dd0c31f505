package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to open store: %w", ErrTenantNotFound)
		assert.True(t, errors.Is(wrapped, ErrTenantNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTaskNotFound))
		assert.False(t, IsNotFound(ErrNoActiveTenant))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTenantExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("team_id", "does not resolve")))
		assert.True(t, IsValidation(ErrPasswordTooShort))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "conflict: user already has an open session", ErrOpenSessionExists.Error())
	})

	t.Run("errors.Is matches any conflict against an empty target", func(t *testing.T) {
		err := fmt.Errorf("clock in: %w", ErrOpenSessionExists)
		assert.True(t, errors.Is(err, &ConflictError{}))
		assert.True(t, errors.Is(err, ErrOpenSessionExists))
		assert.False(t, errors.Is(err, &ConflictError{Message: "other"}))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(NewConflictError("x")))
		assert.False(t, IsConflict(ErrUserExists))
	})
}

func TestCorruptDataError(t *testing.T) {
	t.Run("Error message with table", func(t *testing.T) {
		err := NewCorruptDataError("acme", "users", "role \"boss\" is not allowed")
		assert.Equal(t, `corrupt data in tenant "acme" (users): role "boss" is not allowed`, err.Error())
	})

	t.Run("Error message without table", func(t *testing.T) {
		err := NewCorruptDataError("acme", "", "missing company row")
		assert.Equal(t, `corrupt data in tenant "acme": missing company row`, err.Error())
	})

	t.Run("IsCorruptData helper", func(t *testing.T) {
		assert.True(t, IsCorruptData(fmt.Errorf("open: %w", NewCorruptDataError("a", "", "b"))))
		assert.False(t, IsCorruptData(ErrStoreClosed))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsAuthentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingPrincipal))
		assert.False(t, IsAuthentication(ErrTenantForbidden))
	})

	t.Run("IsAuthorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrTenantForbidden))
		assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("IsConfiguration", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("JWT_SECRET must be set")))
		assert.False(t, IsConfiguration(ErrNoActiveTenant))
	})
}
