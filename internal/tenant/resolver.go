package tenant

import (
	"context"
	"fmt"
	"sync"

	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/tenantstore"
)

// Opener opens a tenant store. *tenantstore.Manager satisfies it.
type Opener interface {
	Open(ctx context.Context, tenantID string) (*tenantstore.Handle, error)
}

// LoadState is the lifecycle of the resolver's active store.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Load is one asynchronous tenant switch.
type Load struct {
	TenantID   string
	generation uint64
	done       chan struct{}
	handle     *tenantstore.Handle
	err        error
}

// Done is closed when the load has finished or been discarded
func (l *Load) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the load finishes. A load overtaken by a newer switch returns ErrLoadSuperseded.
func (l *Load) Wait(ctx context.Context) (*tenantstore.Handle, error) {
	select {
	case <-l.done:
		return l.handle, l.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Load) finish(h *tenantstore.Handle, err error) {
	l.handle, l.err = h, err
	close(l.done)
}

// Resolver owns the single active tenant store of one principal. Switches are authorised
// synchronously and loaded in the background; a load completing after a newer switch is
// discarded and its store closed.
type Resolver struct {
	principal Principal
	scope     Scope
	opener    Opener
	log       *logger.Logger

	mu         sync.Mutex
	generation uint64
	state      LoadState
	tenantID   string
	active     *tenantstore.Handle
	lastErr    error
	cancel     context.CancelFunc
	pending    *Load
}

// NewResolver creates a resolver for p. The scope is resolved here and never re-evaluated.
func NewResolver(p Principal, reg *Registry, opener Opener) *Resolver {
	scope := ResolveScope(p, reg)
	return &Resolver{
		principal: p,
		scope:     scope,
		opener:    opener,
		log: logger.New().WithFields(map[string]interface{}{
			"component": "tenant_resolver",
			"user":      p.Email,
			"scope":     scope.String(),
		}),
	}
}

// Principal returns the caller this resolver belongs to
func (r *Resolver) Principal() Principal {
	return r.principal
}

// Scope returns the resolved access scope
func (r *Resolver) Scope() Scope {
	return r.scope
}

// Switch starts loading tenantID. Unauthorised requests fail immediately with an
// AuthorizationError and leave the current state untouched.
func (r *Resolver) Switch(ctx context.Context, tenantID string) (*Load, error) {
	if !r.scope.Allows(tenantID) {
		r.log.WithField("tenant", tenantID).Warn("Tenant switch denied")
		return nil, fmt.Errorf("switch to %q: %w", tenantID, apperrors.ErrTenantForbidden)
	}

	r.mu.Lock()
	r.generation++
	load := &Load{TenantID: tenantID, generation: r.generation, done: make(chan struct{})}
	if r.cancel != nil {
		r.cancel()
	}
	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	prev := r.active
	r.active = nil
	r.state = StateLoading
	r.tenantID = tenantID
	r.lastErr = nil
	r.pending = load
	r.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			r.log.WithError(err).Warn("Failed to close previous tenant store")
		}
	}

	r.log.WithField("tenant", tenantID).Debug("Tenant load started")
	go r.run(loadCtx, cancel, load)
	return load, nil
}

func (r *Resolver) run(ctx context.Context, cancel context.CancelFunc, load *Load) {
	defer cancel()
	h, err := r.opener.Open(ctx, load.TenantID)

	r.mu.Lock()
	if load.generation != r.generation {
		r.mu.Unlock()
		if h != nil {
			_ = h.Close()
		}
		r.log.WithField("tenant", load.TenantID).Debug("Stale tenant load discarded")
		load.finish(nil, apperrors.ErrLoadSuperseded)
		return
	}
	if err != nil {
		r.state = StateFailed
		r.lastErr = err
	} else {
		r.state = StateReady
		r.active = h
	}
	r.cancel = nil
	r.pending = nil
	r.mu.Unlock()

	if err != nil {
		r.log.WithField("tenant", load.TenantID).WithError(err).Error("Tenant load failed")
	} else {
		r.log.WithField("tenant", load.TenantID).Info("Tenant loaded")
	}
	load.finish(h, err)
}

// Await blocks until no load is pending and returns the outcome of the latest one.
func (r *Resolver) Await(ctx context.Context) error {
	for {
		r.mu.Lock()
		load := r.pending
		r.mu.Unlock()
		if load == nil {
			return r.LastError()
		}
		if _, err := load.Wait(ctx); err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// State returns the lifecycle state of the latest switch
func (r *Resolver) State() LoadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// ActiveTenant returns the tenant targeted by the latest switch
func (r *Resolver) ActiveTenant() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tenantID
}

// LastError returns the error of a failed load
func (r *Resolver) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Current returns the active store. It never returns a partially loaded store.
func (r *Resolver) Current() (tenantstore.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateReady:
		return r.active, nil
	case StateLoading:
		return nil, fmt.Errorf("%w: tenant %q is still loading", apperrors.ErrNoActiveTenant, r.tenantID)
	case StateFailed:
		return nil, r.lastErr
	default:
		return nil, apperrors.ErrNoActiveTenant
	}
}

// Close cancels any pending load and releases the active store.
func (r *Resolver) Close() error {
	r.mu.Lock()
	r.generation++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	prev := r.active
	r.active = nil
	r.pending = nil
	r.state = StateIdle
	r.tenantID = ""
	r.mu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}
