package tenantstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeclock-backend/internal/database"
	"timeclock-backend/internal/database/models"
	apperrors "timeclock-backend/internal/errors"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type TenantStoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	manager *Manager
	handle  *Handle
}

func (suite *TenantStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.manager = NewManager(suite.T().TempDir(), gormlogger.Silent)

	h, err := suite.manager.Provision(suite.ctx, &models.Company{
		BaseModel: models.BaseModel{ID: "forge-academy"},
		Name:      "Forge Academy",
		Domain:    "forge.academy",
	})
	suite.Require().NoError(err)
	suite.handle = h
}

func (suite *TenantStoreTestSuite) TearDownTest() {
	if suite.handle != nil {
		_ = suite.handle.Close()
	}
}

func (suite *TenantStoreTestSuite) rawDB() *gorm.DB {
	suite.Require().NoError(suite.handle.Close())
	db, err := database.Open(suite.handle.Path(), &database.Options{LogLevel: gormlogger.Silent})
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = database.Close(db) })
	return db
}

func (suite *TenantStoreTestSuite) TestOpenMissingTenant() {
	_, err := suite.manager.Open(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
}

func (suite *TenantStoreTestSuite) TestOpenRejectsPathCharacters() {
	_, err := suite.manager.Open(suite.ctx, "../etc/passwd")
	suite.True(apperrors.IsValidation(err))
}

func (suite *TenantStoreTestSuite) TestProvisionTwice() {
	_, err := suite.manager.Provision(suite.ctx, &models.Company{BaseModel: models.BaseModel{ID: "forge-academy"}, Domain: "x"})
	suite.ErrorIs(err, apperrors.ErrTenantExists)
}

func (suite *TenantStoreTestSuite) TestListAndExists() {
	suite.True(suite.manager.Exists("forge-academy"))
	suite.False(suite.manager.Exists("global"))

	ids, err := suite.manager.List()
	suite.NoError(err)
	suite.Equal([]string{"forge-academy"}, ids)
}

func (suite *TenantStoreTestSuite) TestInsertStampsTenantAndQueryFilters() {
	user := &models.User{Name: "Ada", Email: "ada@forge.academy", Role: models.UserRoleMember, TeamIDs: models.TeamIDs{"t1"}}
	suite.NoError(suite.handle.Insert(suite.ctx, TableUsers, user))
	suite.NotEmpty(user.ID)
	suite.Equal("forge-academy", user.CompanyID)

	var users []models.User
	suite.NoError(suite.handle.Query(suite.ctx, TableUsers, Where("email", "ada@forge.academy"), &users))
	suite.Require().Len(users, 1)
	suite.Equal(models.TeamIDs{"t1"}, users[0].TeamIDs)

	var got models.User
	suite.NoError(suite.handle.Get(suite.ctx, TableUsers, user.ID, &got))
	suite.Equal("Ada", got.Name)
}

func (suite *TenantStoreTestSuite) TestInsertForeignTenantRow() {
	team := &models.Team{Name: "Ops"}
	team.CompanyID = "global"

	err := suite.handle.Insert(suite.ctx, TableTeams, team)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *TenantStoreTestSuite) TestRowMustMatchTable() {
	err := suite.handle.Insert(suite.ctx, TableTasks, &models.Team{Name: "Ops"})
	suite.Error(err)

	var teams []models.Task
	suite.Error(suite.handle.Query(suite.ctx, TableTeams, All, &teams))
}

func (suite *TenantStoreTestSuite) TestUnknownColumn() {
	var teams []models.Team
	err := suite.handle.Query(suite.ctx, TableTeams, Where("name; DROP TABLE teams", "x"), &teams)
	suite.Error(err)
}

func (suite *TenantStoreTestSuite) TestUpdateAndDelete() {
	team := &models.Team{Name: "Ops"}
	suite.NoError(suite.handle.Insert(suite.ctx, TableTeams, team))

	team.Name = "Platform"
	team.Description = ""
	suite.NoError(suite.handle.Update(suite.ctx, TableTeams, team))

	var got models.Team
	suite.NoError(suite.handle.Get(suite.ctx, TableTeams, team.ID, &got))
	suite.Equal("Platform", got.Name)

	suite.NoError(suite.handle.Delete(suite.ctx, TableTeams, team.ID))
	suite.ErrorIs(suite.handle.Delete(suite.ctx, TableTeams, team.ID), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.handle.Get(suite.ctx, TableTeams, team.ID, &got), gorm.ErrRecordNotFound)

	missing := &models.Team{BaseModel: models.BaseModel{ID: "nope"}}
	suite.ErrorIs(suite.handle.Update(suite.ctx, TableTeams, missing), gorm.ErrRecordNotFound)
}

func (suite *TenantStoreTestSuite) TestTransactionRollsBack() {
	boom := errors.New("boom")
	err := suite.handle.Transaction(suite.ctx, func(tx Store) error {
		if err := tx.Insert(suite.ctx, TableTeams, &models.Team{Name: "Ops"}); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	var teams []models.Team
	suite.NoError(suite.handle.Query(suite.ctx, TableTeams, All, &teams))
	suite.Empty(teams)
}

func (suite *TenantStoreTestSuite) TestOpenSessionIndex() {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	suite.NoError(suite.handle.Insert(suite.ctx, TableTimeRecords, &models.TimeRecord{UserID: "u1", ClockIn: in}))

	err := suite.handle.Insert(suite.ctx, TableTimeRecords, &models.TimeRecord{UserID: "u1", ClockIn: in.Add(time.Hour)})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	suite.NoError(suite.handle.Insert(suite.ctx, TableTimeRecords, &models.TimeRecord{UserID: "u2", ClockIn: in}))
}

func (suite *TenantStoreTestSuite) TestReopenVerifiesCleanStore() {
	suite.NoError(suite.handle.Insert(suite.ctx, TableUsers, &models.User{Name: "Ada", Email: "ada@forge.academy", Role: models.UserRoleAdmin}))
	suite.NoError(suite.handle.Close())

	h, err := suite.manager.Open(suite.ctx, "forge-academy")
	suite.Require().NoError(err)
	defer h.Close()

	var users []models.User
	suite.NoError(h.Query(suite.ctx, TableUsers, All, &users))
	suite.Len(users, 1)
}

func (suite *TenantStoreTestSuite) TestClosedHandle() {
	suite.NoError(suite.handle.Close())
	var teams []models.Team
	suite.ErrorIs(suite.handle.Query(suite.ctx, TableTeams, All, &teams), apperrors.ErrStoreClosed)
	suite.NoError(suite.handle.Close())
}

func (suite *TenantStoreTestSuite) TestCorruptRows() {
	cases := []struct {
		name    string
		corrupt func(db *gorm.DB) error
	}{
		{"bad task status", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO tasks (id, title, status, priority, company_id, created_at) VALUES ('k1', 'x', 'blocked', 'low', 'forge-academy', '2024-01-01 00:00:00')`).Error
		}},
		{"foreign tenant row", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO teams (id, name, company_id, created_at) VALUES ('t9', 'x', 'global', '2024-01-01 00:00:00')`).Error
		}},
		{"missing table", func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE teams`).Error
		}},
		{"negative duration", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO time_records (id, user_id, company_id, clock_in, clock_out, duration) VALUES ('r1', 'u1', 'forge-academy', '2024-01-01 09:00:00', '2024-01-01 10:00:00', -5)`).Error
		}},
		{"duration mismatch", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO time_records (id, user_id, company_id, clock_in, clock_out, duration) VALUES ('r1', 'u1', 'forge-academy', '2024-01-01 09:00:00', '2024-01-01 10:00:00', 5)`).Error
		}},
		{"unreadable team ids", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO users (id, name, email, role, team_ids, company_id, created_at) VALUES ('u1', 'x', 'x@y', 'member', '{not json', 'forge-academy', '2024-01-01 00:00:00')`).Error
		}},
		{"second company row", func(db *gorm.DB) error {
			return db.Exec(`INSERT INTO companies (id, name, domain, is_global) VALUES ('global', 'G', 'g.example', 1)`).Error
		}},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.TearDownTest()
			suite.SetupTest()
			db := suite.rawDB()
			suite.Require().NoError(tc.corrupt(db))
			suite.Require().NoError(database.Close(db))

			h, err := suite.manager.Open(suite.ctx, "forge-academy")
			suite.Nil(h)
			suite.True(apperrors.IsCorruptData(err), "expected corrupt data, got %v", err)
		})
	}
}

func TestTenantStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TenantStoreTestSuite))
}
