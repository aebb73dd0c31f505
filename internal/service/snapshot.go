package service

import (
	"context"
	"fmt"

	"timeclock-backend/internal/localcache"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/repository"
	"timeclock-backend/internal/tenantstore"
)

// takeSnapshot reads the four collections of store
func takeSnapshot(ctx context.Context, store tenantstore.Store) (*localcache.Snapshot, error) {
	repos := repository.For(store)
	users, err := repos.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot users: %w", err)
	}
	teams, err := repos.Teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot teams: %w", err)
	}
	tasks, err := repos.Tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot tasks: %w", err)
	}
	records, err := repos.TimeRecords.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot time records: %w", err)
	}
	return &localcache.Snapshot{Users: users, Teams: teams, Tasks: tasks, TimeRecords: records}, nil
}

// mirrorAfterWrite pushes the committed state to the mirror. Writes against any tenant
// other than the mirror's own are never copied. The write has already succeeded, so a
// mirror failure is logged and not returned.
func mirrorAfterWrite(ctx context.Context, mirror Mirror, store tenantstore.Store) {
	if mirror == nil || mirror.TenantID() != store.TenantID() {
		return
	}
	log := logger.WithContext(ctx).WithField("component", "mirror")
	snap, err := takeSnapshot(ctx, store)
	if err != nil {
		log.WithError(err).Warn("Failed to snapshot tenant store")
		return
	}
	if err := mirror.Save(ctx, snap); err != nil {
		log.WithError(err).Warn("Failed to write local cache")
	}
}

// Snapshot returns a copy of the four collections of the active store
func (s *DataFacade) Snapshot(ctx context.Context) (*localcache.Snapshot, error) {
	store, err := s.source.Current()
	if err != nil {
		return nil, err
	}
	return takeSnapshot(ctx, store)
}

// Restore seeds an empty store from snap. It reports false and changes nothing when the
// store already holds data.
func (s *DataFacade) Restore(ctx context.Context, snap *localcache.Snapshot) (bool, error) {
	if snap.Empty() {
		return false, nil
	}
	store, err := s.source.Current()
	if err != nil {
		return false, err
	}
	current, err := takeSnapshot(ctx, store)
	if err != nil {
		return false, err
	}
	if !current.Empty() {
		return false, nil
	}

	err = store.Transaction(ctx, func(tx tenantstore.Store) error {
		repos := repository.For(tx)
		for i := range snap.Teams {
			team := snap.Teams[i]
			team.CompanyID = ""
			if err := repos.Teams.Create(ctx, &team); err != nil {
				return fmt.Errorf("restore team %s: %w", team.ID, err)
			}
		}
		for i := range snap.Users {
			user := snap.Users[i]
			user.CompanyID = ""
			if err := repos.Users.Create(ctx, &user); err != nil {
				return fmt.Errorf("restore user %s: %w", user.ID, err)
			}
		}
		for i := range snap.Tasks {
			task := snap.Tasks[i]
			task.CompanyID = ""
			if err := repos.Tasks.Create(ctx, &task); err != nil {
				return fmt.Errorf("restore task %s: %w", task.ID, err)
			}
		}
		for i := range snap.TimeRecords {
			record := snap.TimeRecords[i]
			record.CompanyID = ""
			if err := settle(&record, record.ClockOut); err != nil {
				return fmt.Errorf("restore time record %s: %w", record.ID, err)
			}
			if err := repos.TimeRecords.Create(ctx, &record); err != nil {
				return fmt.Errorf("restore time record %s: %w", record.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.WithFields(map[string]interface{}{
		"users":   len(snap.Users),
		"teams":   len(snap.Teams),
		"tasks":   len(snap.Tasks),
		"records": len(snap.TimeRecords),
	}).Info("Restored dataset from local cache")
	return true, nil
}
