package service

import (
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/tenantstore"
)

type fixedSource struct {
	store tenantstore.Store
}

func (f fixedSource) Current() (tenantstore.Store, error) {
	if f.store == nil {
		return nil, apperrors.ErrNoActiveTenant
	}
	return f.store, nil
}

// FixedSource serves one store regardless of principal. Used for startup maintenance in single mode.
func FixedSource(store tenantstore.Store) StoreSource {
	return fixedSource{store: store}
}
