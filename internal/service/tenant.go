package service

import (
	"context"

	"timeclock-backend/internal/repository"
	"timeclock-backend/internal/tenant"
)

// TenantStatus describes a principal's active tenant and load state
type TenantStatus struct {
	TenantID string `json:"tenant_id"`
	Company  string `json:"company,omitempty"`
	State    string `json:"state"`
	Scope    string `json:"scope"`
	Error    string `json:"error,omitempty"`
}

// TenantService switches the active tenant of one principal
type TenantService struct {
	resolver *tenant.Resolver
}

// NewTenantService creates a tenant service over the principal's resolver
func NewTenantService(resolver *tenant.Resolver) *TenantService {
	return &TenantService{resolver: resolver}
}

// Switch starts loading tenantID. With wait set it returns once the load has settled.
func (s *TenantService) Switch(ctx context.Context, tenantID string, wait bool) (*TenantStatus, error) {
	load, err := s.resolver.Switch(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if wait {
		if _, err := load.Wait(ctx); err != nil {
			return s.Status(ctx), err
		}
	}
	return s.Status(ctx), nil
}

// Status reports the current load state. The company name is filled in once the store is ready.
func (s *TenantService) Status(ctx context.Context) *TenantStatus {
	status := &TenantStatus{
		TenantID: s.resolver.ActiveTenant(),
		State:    s.resolver.State().String(),
		Scope:    s.resolver.Scope().String(),
	}
	if err := s.resolver.LastError(); err != nil {
		status.Error = err.Error()
	}
	if store, err := s.resolver.Current(); err == nil {
		if company, err := repository.For(store).Company.Get(ctx); err == nil {
			status.Company = company.Name
		}
	}
	return status
}
