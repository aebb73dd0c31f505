package tenantstore

import (
	"context"
	"sync"

	"timeclock-backend/internal/database"
	apperrors "timeclock-backend/internal/errors"

	"gorm.io/gorm"
)

type handleState int

const (
	stateOpen handleState = iota
	stateUnusable
	stateClosed
)

// Handle is an open tenant store. It serialises access: operations hold a read lock for
// their whole duration and Close waits for them to drain.
type Handle struct {
	scope
	path string

	mu        sync.RWMutex
	state     handleState
	corruptBy error
}

func newHandle(tenantID, path string, db *gorm.DB) *Handle {
	return &Handle{
		scope: scope{tenantID: tenantID, db: db},
		path:  path,
	}
}

// Path returns the file backing the store.
func (h *Handle) Path() string {
	return h.path
}

func (h *Handle) guard() (func(), error) {
	h.mu.RLock()
	switch h.state {
	case stateClosed:
		h.mu.RUnlock()
		return nil, apperrors.ErrStoreClosed
	case stateUnusable:
		err := h.corruptBy
		h.mu.RUnlock()
		return nil, err
	}
	return h.mu.RUnlock, nil
}

func (h *Handle) Query(ctx context.Context, table Table, pred Predicate, dest interface{}) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Query(ctx, table, pred, dest)
}

func (h *Handle) Get(ctx context.Context, table Table, id string, dest Row) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Get(ctx, table, id, dest)
}

func (h *Handle) Insert(ctx context.Context, table Table, row Row) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Insert(ctx, table, row)
}

func (h *Handle) Update(ctx context.Context, table Table, row Row) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Update(ctx, table, row)
}

func (h *Handle) Delete(ctx context.Context, table Table, id string) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Delete(ctx, table, id)
}

// Transaction runs fn atomically; any error rolls back every write made through tx.
func (h *Handle) Transaction(ctx context.Context, fn func(tx Store) error) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	return h.scope.Transaction(ctx, fn)
}

// Ping checks that the underlying file is still reachable.
func (h *Handle) Ping(ctx context.Context) error {
	release, err := h.guard()
	if err != nil {
		return err
	}
	defer release()
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// markUnusable closes the store and makes every further call return cause.
func (h *Handle) markUnusable(cause error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == stateOpen {
		_ = database.Close(h.db)
	}
	h.state = stateUnusable
	h.corruptBy = cause
}

// Close releases the store. It is safe to call more than once.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != stateOpen {
		return nil
	}
	h.state = stateClosed
	return database.Close(h.db)
}
