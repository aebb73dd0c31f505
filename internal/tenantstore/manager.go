package tenantstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"timeclock-backend/internal/database"
	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"
	"timeclock-backend/internal/logger"

	gormlogger "gorm.io/gorm/logger"
)

const fileExt = ".db"

var tenantIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// Manager maps tenant ids to store files under one directory.
type Manager struct {
	dataDir  string
	logLevel gormlogger.LogLevel
	log      *logger.Logger
}

// NewManager creates a manager rooted at dataDir
func NewManager(dataDir string, logLevel gormlogger.LogLevel) *Manager {
	return &Manager{
		dataDir:  dataDir,
		logLevel: logLevel,
		log:      logger.New().WithField("component", "tenantstore"),
	}
}

// DataDir returns the directory holding the tenant files
func (m *Manager) DataDir() string {
	return m.dataDir
}

// Path returns the store file for tenantID
func (m *Manager) Path(tenantID string) (string, error) {
	if !tenantIDPattern.MatchString(tenantID) {
		return "", apperrors.ErrInvalidTenantID
	}
	return filepath.Join(m.dataDir, tenantID+fileExt), nil
}

// Exists reports whether a store file has been provisioned for tenantID
func (m *Manager) Exists(tenantID string) bool {
	path, err := m.Path(tenantID)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// List returns the ids of all provisioned tenants, sorted
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list tenant stores: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), fileExt)
		if tenantIDPattern.MatchString(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Open opens and verifies an existing tenant store. A store that fails verification is
// returned as a CorruptDataError and never handed out.
func (m *Manager) Open(ctx context.Context, tenantID string) (*Handle, error) {
	path, err := m.Path(tenantID)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to stat tenant store: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, err := database.Open(path, &database.Options{LogLevel: m.logLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to open tenant store: %w", err)
	}
	h := newHandle(tenantID, path, db)

	if err := verify(ctx, h); err != nil {
		if apperrors.IsCorruptData(err) {
			m.log.WithField("tenant", tenantID).WithError(err).Error("Tenant store failed verification")
			h.markUnusable(err)
		} else {
			_ = h.Close()
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		_ = h.Close()
		return nil, err
	}

	m.log.WithField("tenant", tenantID).Debug("Tenant store opened")
	return h, nil
}

// Provision creates a new store with the fixed schema and its company row.
func (m *Manager) Provision(ctx context.Context, company *models.Company) (*Handle, error) {
	if company == nil || company.ID == "" {
		return nil, apperrors.NewValidationError("id", "company id is required")
	}
	path, err := m.Path(company.ID)
	if err != nil {
		return nil, err
	}
	if m.Exists(company.ID) {
		return nil, apperrors.ErrTenantExists
	}
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := database.Open(path, &database.Options{LogLevel: m.logLevel, Create: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant store: %w", err)
	}
	h := newHandle(company.ID, path, db)

	cleanup := func() {
		_ = h.Close()
		_ = os.Remove(path)
	}
	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		cleanup()
		return nil, err
	}
	if err := h.Insert(ctx, TableCompanies, company); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to insert company row: %w", err)
	}

	m.log.WithFields(map[string]interface{}{"tenant": company.ID, "path": path}).Info("Tenant store provisioned")
	return h, nil
}
