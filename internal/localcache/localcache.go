// Package localcache mirrors the shared dataset into a single JSON document on disk.
package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/logger"
)

// Snapshot is the persisted document. Keys match the collection names of the browser build.
type Snapshot struct {
	Users       []models.User       `json:"tf_users"`
	Teams       []models.Team       `json:"tf_teams"`
	Tasks       []models.Task       `json:"tf_tasks"`
	TimeRecords []models.TimeRecord `json:"tf_timeRecords"`
}

// Empty reports whether the snapshot holds no rows at all
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Users)+len(s.Teams)+len(s.Tasks)+len(s.TimeRecords) == 0
}

// persistedUser keeps credential fields that the API representation hides.
type persistedUser struct {
	models.User
	PasswordHash    string `json:"password_hash,omitempty"`
	OneTimePassword string `json:"one_time_password,omitempty"`
}

type document struct {
	Users       []persistedUser     `json:"tf_users"`
	Teams       []models.Team       `json:"tf_teams"`
	Tasks       []models.Task       `json:"tf_tasks"`
	TimeRecords []models.TimeRecord `json:"tf_timeRecords"`
}

// Cache reads and writes the document at one path. It belongs to exactly one tenant.
type Cache struct {
	path     string
	tenantID string
	mu       sync.Mutex
}

// New creates a cache for tenantID bound to path. The file is created on first Save.
func New(path, tenantID string) *Cache {
	return &Cache{path: path, tenantID: tenantID}
}

// TenantID returns the tenant whose dataset the document mirrors
func (c *Cache) TenantID() string {
	return c.tenantID
}

// Path returns the document location
func (c *Cache) Path() string {
	return c.path
}

// Load reads the document. A missing file yields an empty snapshot.
func (c *Cache) Load(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local cache: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode local cache %s: %w", c.path, err)
	}

	snap := &Snapshot{Teams: doc.Teams, Tasks: doc.Tasks, TimeRecords: doc.TimeRecords}
	for _, u := range doc.Users {
		user := u.User
		user.PasswordHash = u.PasswordHash
		user.OneTimePassword = u.OneTimePassword
		snap.Users = append(snap.Users, user)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"path":    c.path,
		"users":   len(snap.Users),
		"records": len(snap.TimeRecords),
	}).Debug("Local cache loaded")
	return snap, nil
}

// Save replaces the document with snap. The write goes through a temp file and a rename
// so a reader never sees half a document.
func (c *Cache) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		snap = &Snapshot{}
	}
	doc := document{
		Users:       make([]persistedUser, 0, len(snap.Users)),
		Teams:       nonNil(snap.Teams),
		Tasks:       nonNil(snap.Tasks),
		TimeRecords: nonNil(snap.TimeRecords),
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, persistedUser{User: u, PasswordHash: u.PasswordHash, OneTimePassword: u.OneTimePassword})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode local cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create local cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".localcache-*")
	if err != nil {
		return fmt.Errorf("create local cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write local cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write local cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace local cache: %w", err)
	}

	logger.WithContext(ctx).WithField("path", c.path).Debug("Local cache written")
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
