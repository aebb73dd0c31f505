package service

import (
	"context"
	"strings"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password ChangePassword accepts
const MinPasswordLength = 8

// MaxPasswordBytes is the bcrypt input limit. Multibyte characters count per byte.
const MaxPasswordBytes = 72

const oneTimePasswordLength = 8

// newOneTimePassword returns a random upper-case code. It is shown once to the admin who requested it.
func newOneTimePassword() string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(code[:oneTimePasswordLength])
}

func matches(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ResetPassword issues a one-time password and forces a password change at next use.
// The plain code is returned once and only its hash is stored.
func (s *DataFacade) ResetPassword(ctx context.Context, userID string) (string, error) {
	code := newOneTimePassword()
	hash, err := hashPassword("password", code)
	if err != nil {
		return "", err
	}

	err = s.write(ctx, func(repos *repository.Set) error {
		user, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound)
		}
		user.OneTimePassword = hash
		user.RequiresPasswordChange = true
		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).WithField("user_id", userID).Info("One-time password issued")
	return code, nil
}

// ChangePassword sets a new password. The caller proves identity with either the current
// password or an outstanding one-time password; both are cleared afterwards.
func (s *DataFacade) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	if err := validateStruct(s.validator, req); err != nil {
		return err
	}
	if len(req.NewPassword) < MinPasswordLength {
		return apperrors.ErrPasswordTooShort
	}
	hash, err := hashPassword("new_password", req.NewPassword)
	if err != nil {
		return err
	}

	return s.write(ctx, func(repos *repository.Set) error {
		user, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound)
		}
		if !canChangePassword(user, req.CurrentPassword) {
			return apperrors.ErrInvalidCredentials
		}
		user.PasswordHash = hash
		user.OneTimePassword = ""
		user.RequiresPasswordChange = false
		return repos.Users.Update(ctx, user)
	})
}

func canChangePassword(user *models.User, presented string) bool {
	return matches(user.PasswordHash, presented) || matches(user.OneTimePassword, presented)
}
