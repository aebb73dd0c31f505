package service

import (
	"context"
	"fmt"
	"time"

	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/repository"
	"timeclock-backend/internal/tenantstore"
)

// SessionState is whether a user is currently on the clock
type SessionState string

const (
	SessionIdle      SessionState = "idle"
	SessionClockedIn SessionState = "clocked_in"
)

// SessionStatus is the clock state of one user at a given instant
type SessionStatus struct {
	State              SessionState       `json:"state"`
	Record             *models.TimeRecord `json:"record,omitempty"`
	LiveElapsedMinutes int                `json:"live_elapsed_minutes"`
	LiveElapsedSeconds int64              `json:"live_elapsed_seconds"`
}

// LiveElapsed returns whole minutes since the record's clock-in. It is never persisted.
func LiveElapsed(record *models.TimeRecord, now time.Time) int {
	if record == nil || now.Before(record.ClockIn) {
		return 0
	}
	return models.MinutesBetween(record.ClockIn, now)
}

// SessionEngine handles clock-in and clock-out against the active tenant
type SessionEngine struct {
	source StoreSource
	mirror Mirror
}

// NewSessionEngine creates a new session engine. mirror may be nil.
func NewSessionEngine(source StoreSource, mirror Mirror) *SessionEngine {
	return &SessionEngine{source: source, mirror: mirror}
}

func (e *SessionEngine) write(ctx context.Context, fn func(repos *repository.Set) error) error {
	store, err := e.source.Current()
	if err != nil {
		return err
	}
	if err := store.Transaction(ctx, func(tx tenantstore.Store) error {
		return fn(repository.For(tx))
	}); err != nil {
		return err
	}
	mirrorAfterWrite(ctx, e.mirror, store)
	return nil
}

// resolveClockInTeam picks the team a new session is booked against. A user in several
// teams has to name one.
func resolveClockInTeam(ctx context.Context, repos *repository.Set, user *models.User, teamID string) (string, error) {
	if teamID == "" {
		switch len(user.TeamIDs) {
		case 0:
			return "", nil
		case 1:
			return user.TeamIDs[0], nil
		default:
			return "", apperrors.NewValidationError("team_id", "is required for users in more than one team")
		}
	}
	if _, err := repos.Teams.GetByID(ctx, teamID); err != nil {
		if isMissing(err) {
			return "", apperrors.NewValidationError("team_id", fmt.Sprintf("team %q does not exist", teamID))
		}
		return "", err
	}
	if !user.TeamIDs.Contains(teamID) {
		return "", apperrors.NewValidationError("team_id", "user is not a member of this team")
	}
	return teamID, nil
}

// ClockIn opens a session for userID at now
func (e *SessionEngine) ClockIn(ctx context.Context, userID, teamID string, now time.Time) (*models.TimeRecord, error) {
	var record *models.TimeRecord
	err := e.write(ctx, func(repos *repository.Set) error {
		user, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound)
		}
		if err := ensureNoOpenSession(ctx, repos, userID, ""); err != nil {
			return err
		}
		team, err := resolveClockInTeam(ctx, repos, user, teamID)
		if err != nil {
			return err
		}

		record = &models.TimeRecord{
			UserID:  userID,
			TeamID:  team,
			ClockIn: now.UTC(),
		}
		if err := repos.TimeRecords.Create(ctx, record); err != nil {
			if isDuplicate(err) {
				return apperrors.ErrOpenSessionExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": userID,
		"team_id": record.TeamID,
	}).Debug("Clocked in")
	return record, nil
}

// ClockOut closes the user's open session at now
func (e *SessionEngine) ClockOut(ctx context.Context, userID string, now time.Time) (*models.TimeRecord, error) {
	var record *models.TimeRecord
	err := e.write(ctx, func(repos *repository.Set) error {
		var err error
		record, err = repos.TimeRecords.GetOpenByUser(ctx, userID)
		if err != nil {
			return notFound(err, apperrors.ErrOpenSessionNotFound)
		}
		out := now.UTC()
		if err := settle(record, &out); err != nil {
			return err
		}
		return repos.TimeRecords.Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":  userID,
		"duration": record.Duration,
	}).Debug("Clocked out")
	return record, nil
}

// Status reports whether the user is clocked in and for how long
func (e *SessionEngine) Status(ctx context.Context, userID string, now time.Time) (*SessionStatus, error) {
	store, err := e.source.Current()
	if err != nil {
		return nil, err
	}
	repos := repository.For(store)
	if _, err := repos.Users.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}

	record, err := repos.TimeRecords.GetOpenByUser(ctx, userID)
	if isMissing(err) {
		return &SessionStatus{State: SessionIdle}, nil
	}
	if err != nil {
		return nil, err
	}

	status := &SessionStatus{
		State:              SessionClockedIn,
		Record:             record,
		LiveElapsedMinutes: LiveElapsed(record, now),
	}
	if now.After(record.ClockIn) {
		status.LiveElapsedSeconds = int64(now.Sub(record.ClockIn) / time.Second)
	}
	return status, nil
}
