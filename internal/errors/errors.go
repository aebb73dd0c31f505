package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError is returned when an operation would violate a state invariant,
// such as opening a second session for a user who is already clocked in.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// CorruptDataError is returned when a tenant store fails its shape checks on load.
type CorruptDataError struct {
	Tenant string
	Table  string
	Reason string
}

func (e *CorruptDataError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("corrupt data in tenant %q (%s): %s", e.Tenant, e.Table, e.Reason)
	}
	return fmt.Sprintf("corrupt data in tenant %q: %s", e.Tenant, e.Reason)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound      = &NotFoundError{Entity: "tenant"}
	ErrCompanyNotFound     = &NotFoundError{Entity: "company"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrTaskNotFound        = &NotFoundError{Entity: "task"}
	ErrTimeRecordNotFound  = &NotFoundError{Entity: "time record"}
	ErrOpenSessionNotFound = &NotFoundError{Entity: "open session"}
)

// Already Exists Errors
var (
	ErrTenantExists = &AlreadyExistsError{Entity: "tenant", Context: "with this id"}
	ErrUserExists   = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Conflict Errors
var (
	ErrOpenSessionExists = &ConflictError{Message: "user already has an open session"}
)

// Tenant lifecycle errors
var (
	ErrNoActiveTenant   = errors.New("no active tenant")
	ErrLoadSuperseded   = errors.New("tenant load superseded by a newer switch")
	ErrStoreClosed      = errors.New("tenant store is closed")
	ErrTenantForbidden  = &AuthorizationError{Message: "principal is not allowed to access this tenant"}
	ErrInvalidTenantID  = &ValidationError{Field: "tenant_id", Message: "must be a plain identifier"}
	ErrPasswordTooShort = &ValidationError{Field: "new_password", Message: "must be at least 8 characters"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrMissingPrincipal   = &AuthenticationError{Message: "principal not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsCorruptData checks if an error is a CorruptDataError
func IsCorruptData(err error) bool {
	var corruptErr *CorruptDataError
	return errors.As(err, &corruptErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewCorruptDataError creates a new CorruptDataError
func NewCorruptDataError(tenant, table, reason string) error {
	return &CorruptDataError{Tenant: tenant, Table: table, Reason: reason}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
