package tenant

import (
	"fmt"
	"os"
	"strings"

	"timeclock-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// CompanyEntry describes one tenant in the registry file.
type CompanyEntry struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Domain   string `yaml:"domain" json:"domain"`
	IsGlobal bool   `yaml:"is_global" json:"is_global"`
}

// Registry lists the known tenants and the global administrator identity.
type Registry struct {
	GlobalAdminEmail string         `yaml:"global_admin_email"`
	Companies        []CompanyEntry `yaml:"companies"`
}

// LoadRegistry reads the tenants file. A missing file yields an empty registry.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{}, nil
		}
		return nil, fmt.Errorf("failed to read tenants file: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes and validates registry YAML
func ParseRegistry(data []byte) (*Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse tenants file: %w", err)
	}

	seen := make(map[string]bool, len(reg.Companies))
	for _, c := range reg.Companies {
		if c.ID == "" {
			return nil, fmt.Errorf("tenants file: company %q has no id", c.Name)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("tenants file: duplicate company id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return &reg, nil
}

// Lookup returns the entry for id
func (r *Registry) Lookup(id string) (CompanyEntry, bool) {
	for _, c := range r.Companies {
		if c.ID == id {
			return c, true
		}
	}
	return CompanyEntry{}, false
}

// IsGlobal reports whether id is flagged as the global tenant
func (r *Registry) IsGlobal(id string) bool {
	c, ok := r.Lookup(id)
	return ok && c.IsGlobal
}

// TenantForEmail returns the tenant whose domain matches the email address
func (r *Registry) TenantForEmail(email string) (string, bool) {
	if r.GlobalAdminEmail != "" && strings.EqualFold(email, r.GlobalAdminEmail) {
		for _, c := range r.Companies {
			if c.IsGlobal {
				return c.ID, true
			}
		}
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", false
	}
	domain := strings.ToLower(email[at+1:])
	for _, c := range r.Companies {
		if strings.ToLower(c.Domain) == domain {
			return c.ID, true
		}
	}
	return "", false
}

// Company converts an entry to its store row
func (c CompanyEntry) Company() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{ID: c.ID},
		Name:      c.Name,
		Domain:    c.Domain,
		IsGlobal:  c.IsGlobal,
	}
}
