package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"timeclock-backend/internal/config"
	"timeclock-backend/internal/database"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/tenant"
	"timeclock-backend/internal/tenantstore"

	"gopkg.in/yaml.v3"
)

// TeamData is one team in a tenant seed file
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// UserData is one user in a tenant seed file. Teams are referenced by name.
type UserData struct {
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Role     string   `yaml:"role"`
	Password string   `yaml:"password"`
	Teams    []string `yaml:"teams,omitempty"`
}

// SeedFile holds the initial users and teams of one tenant
type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Provisioning tenant stores...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry, err := tenant.LoadRegistry(cfg.TenantsFile)
	if err != nil {
		log.Fatalf("Failed to load tenant registry: %v", err)
	}
	if len(registry.Companies) == 0 {
		log.Fatalf("No companies listed in %s", cfg.TenantsFile)
	}

	manager := tenantstore.NewManager(cfg.DataDir, database.ParseLogLevel("silent"))
	ctx := context.Background()

	created := 0
	for _, entry := range registry.Companies {
		ok, err := provision(ctx, manager, entry, filepath.Join("scripts", "data", entry.ID+".yaml"))
		if err != nil {
			log.Fatalf("Failed to provision %s: %v", entry.ID, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Tenants: %d created, %d total", created, len(registry.Companies))
}

// provision creates the store for entry and applies its seed file. Existing stores are left alone.
func provision(ctx context.Context, manager *tenantstore.Manager, entry tenant.CompanyEntry, seedPath string) (bool, error) {
	if manager.Exists(entry.ID) {
		log.Printf("  %s: already provisioned, skipping", entry.ID)
		return false, nil
	}

	handle, err := manager.Provision(ctx, entry.Company())
	if err != nil {
		return false, err
	}
	defer handle.Close()

	seed, err := loadSeed(seedPath)
	if err != nil {
		return true, err
	}

	facade := service.NewDataFacade(service.FixedSource(handle), service.NewValidator(), nil)

	teamIDs := make(map[string]string, len(seed.Teams))
	for _, t := range seed.Teams {
		team, err := facade.AddTeam(ctx, &service.CreateTeamRequest{Name: t.Name, Description: t.Description})
		if err != nil {
			return true, fmt.Errorf("team %s: %w", t.Name, err)
		}
		teamIDs[t.Name] = team.ID
	}

	for _, u := range seed.Users {
		req := &service.CreateUserRequest{Name: u.Name, Email: u.Email, Role: u.Role, Password: u.Password}
		for _, name := range u.Teams {
			id, ok := teamIDs[name]
			if !ok {
				return true, fmt.Errorf("user %s: unknown team %q", u.Email, name)
			}
			req.TeamIDs = append(req.TeamIDs, id)
		}
		if _, err := facade.AddUser(ctx, req); err != nil {
			return true, fmt.Errorf("user %s: %w", u.Email, err)
		}
	}

	log.Printf("  %s: provisioned (%d teams, %d users)", entry.ID, len(seed.Teams), len(seed.Users))
	return true, nil
}

// loadSeed reads an optional seed file. A missing file means an empty tenant.
func loadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &SeedFile{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &seed, nil
}
