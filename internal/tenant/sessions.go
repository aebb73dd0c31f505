package tenant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"timeclock-backend/internal/logger"
)

// Sessions keeps one resolver per authenticated principal, so every principal is a single
// logical writer against its active store. Resolvers left unused for longer than the idle
// timeout are closed by Sweep.
type Sessions struct {
	registry     *Registry
	opener       Opener
	sharedTenant string
	idleTimeout  time.Duration
	now          func() time.Time

	mu        sync.Mutex
	resolvers map[string]*session
}

type session struct {
	resolver *Resolver
	lastUsed time.Time
}

// NewSessions creates the session table. A non-empty sharedTenant pins every principal's
// home tenant to that one store.
func NewSessions(reg *Registry, opener Opener, sharedTenant string) *Sessions {
	if reg == nil {
		reg = &Registry{}
	}
	return &Sessions{
		registry:     reg,
		opener:       opener,
		sharedTenant: sharedTenant,
		now:          time.Now,
		resolvers:    make(map[string]*session),
	}
}

// SetIdleTimeout sets how long a resolver may go unused before Sweep closes it.
// Zero disables eviction.
func (s *Sessions) SetIdleTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idleTimeout = d
}

func (s *Sessions) key(p Principal) (Principal, string) {
	if s.sharedTenant != "" {
		p.TenantID = s.sharedTenant
	}
	return p, fmt.Sprintf("%s|%s|%s|%s", p.UserID, p.Email, p.Role, p.TenantID)
}

// For returns the principal's resolver. On first use the home tenant is loaded; the call
// waits for any pending load to settle. Load failures are reported by Resolver.Current.
func (s *Sessions) For(ctx context.Context, p Principal) (*Resolver, error) {
	p, key := s.key(p)

	s.mu.Lock()
	entry, ok := s.resolvers[key]
	if !ok {
		r := NewResolver(p, s.registry, s.opener)
		if _, err := r.Switch(ctx, p.TenantID); err != nil {
			s.mu.Unlock()
			return nil, err
		}
		entry = &session{resolver: r}
		s.resolvers[key] = entry
	}
	entry.lastUsed = s.now()
	r := entry.resolver
	s.mu.Unlock()

	if err := r.Await(ctx); err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return r, nil
}

// Len returns the number of live resolvers
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.resolvers)
}

// Drop closes and forgets the principal's resolver
func (s *Sessions) Drop(p Principal) error {
	_, key := s.key(p)

	s.mu.Lock()
	entry, ok := s.resolvers[key]
	delete(s.resolvers, key)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return entry.resolver.Close()
}

// Sweep closes every resolver idle since before now minus the idle timeout and returns
// how many were closed. The principal's next request loads its home tenant again.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	if s.idleTimeout <= 0 {
		s.mu.Unlock()
		return 0
	}
	cutoff := now.Add(-s.idleTimeout)
	var idle []*Resolver
	for key, entry := range s.resolvers {
		if entry.lastUsed.Before(cutoff) {
			idle = append(idle, entry.resolver)
			delete(s.resolvers, key)
		}
	}
	s.mu.Unlock()

	for _, r := range idle {
		if err := r.Close(); err != nil {
			logger.New().WithError(err).WithField("user", r.Principal().Email).Warn("Failed to close idle tenant session")
		}
	}
	return len(idle)
}

// Run sweeps idle resolvers every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				logger.New().WithField("closed", n).Info("Closed idle tenant sessions")
			}
		}
	}
}

// Close releases every resolver
func (s *Sessions) Close() error {
	s.mu.Lock()
	resolvers := s.resolvers
	s.resolvers = make(map[string]*session)
	s.mu.Unlock()

	var firstErr error
	for _, entry := range resolvers {
		if err := entry.resolver.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
