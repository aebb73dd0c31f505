package service

import (
	"context"
	"time"

	"timeclock-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
)

// Workspace bundles the services bound to one principal's resolver
type Workspace struct {
	Tenant   TenantServiceInterface
	Data     DataFacadeInterface
	Sessions SessionEngineInterface
	Reports  ReportServiceInterface
}

// WorkspaceProvider builds workspaces from the session table
type WorkspaceProvider struct {
	sessions  *tenant.Sessions
	validator *validator.Validate
	mirror    Mirror
	loc       *time.Location
	now       func() time.Time
}

// NewWorkspaceProvider creates a new workspace provider. mirror may be nil.
func NewWorkspaceProvider(sessions *tenant.Sessions, validator *validator.Validate, mirror Mirror, loc *time.Location, now func() time.Time) *WorkspaceProvider {
	return &WorkspaceProvider{
		sessions:  sessions,
		validator: validator,
		mirror:    mirror,
		loc:       loc,
		now:       now,
	}
}

// Workspace returns the services for p. The first call for a principal loads its home tenant.
func (p *WorkspaceProvider) Workspace(ctx context.Context, principal tenant.Principal) (*Workspace, error) {
	resolver, err := p.sessions.For(ctx, principal)
	if err != nil {
		return nil, err
	}
	return &Workspace{
		Tenant:   NewTenantService(resolver),
		Data:     NewDataFacade(resolver, p.validator, p.mirror),
		Sessions: NewSessionEngine(resolver, p.mirror),
		Reports:  NewReportService(resolver, p.loc, p.now),
	}, nil
}

// Release closes the principal's resolver. The next Workspace call starts from the home tenant again.
func (p *WorkspaceProvider) Release(principal tenant.Principal) error {
	return p.sessions.Drop(principal)
}
