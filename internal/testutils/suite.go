package testutils

import (
	"context"

	"timeclock-backend/internal/config"
	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/tenantstore"

	"github.com/stretchr/testify/suite"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultTenantID is the tenant every StoreTestSuite provisions
const DefaultTenantID = "forge-academy"

// StoreTestSuite provisions a fresh tenant store in a temporary directory for every test.
// Embed it in package suites that need a real store.
type StoreTestSuite struct {
	suite.Suite
	Ctx     context.Context
	Config  *config.Config
	Manager *tenantstore.Manager
	Handle  *tenantstore.Handle
}

// SetupTest provisions DefaultTenantID
func (s *StoreTestSuite) SetupTest() {
	s.Ctx = context.Background()
	s.Config = NewTestConfig(s.T().TempDir())
	s.Manager = tenantstore.NewManager(s.Config.DataDir, gormlogger.Silent)
	s.Handle = s.Provision(DefaultTenantID, false)
}

// TearDownTest closes every handle opened by the test
func (s *StoreTestSuite) TearDownTest() {
	if s.Handle != nil {
		_ = s.Handle.Close()
	}
}

// Provision creates another tenant store and closes it when the test ends
func (s *StoreTestSuite) Provision(id string, global bool) *tenantstore.Handle {
	h, err := s.Manager.Provision(s.Ctx, &models.Company{
		BaseModel: models.BaseModel{ID: id},
		Name:      id,
		Domain:    id + ".test",
		IsGlobal:  global,
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = h.Close() })
	return h
}

// Current returns the default tenant's handle, so the suite can stand in for a resolver
func (s *StoreTestSuite) Current() (tenantstore.Store, error) {
	return s.Handle, nil
}

// NewTestConfig returns a development configuration rooted at dataDir
func NewTestConfig(dataDir string) *config.Config {
	return &config.Config{
		Environment:    "development",
		Port:           "0",
		LogLevel:       "error",
		DataDir:        dataDir,
		DBLogLevel:     "silent",
		Mode:           config.ModeMultiTenant,
		SharedTenantID: "shared",
		LocalCachePath: dataDir + "/local_cache.json",
		JWTSecret:      "test-secret",
		JWTIssuer:      "timeclock-backend-test",
		AllowedOrigins: []string{"*"},
	}
}
