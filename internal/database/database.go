package database

import (
	"fmt"
	"strings"
	"time"

	"timeclock-backend/internal/database/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
	// Create allows the file to be created when it does not exist.
	Create bool
}

// Models lists every table of a tenant store in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.User{},
		&models.Team{},
		&models.Task{},
		&models.TimeRecord{},
	}
}

// OpenIndexName is the partial unique index that allows one open session per user.
const OpenIndexName = "ux_time_records_open_user"

// Open opens a single SQLite tenant file.
func Open(path string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 1
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	mode := "rw"
	if opts.Create {
		mode = "rwc"
	}
	dsn := fmt.Sprintf("file:%s?mode=%s&_busy_timeout=5000&_txlock=immediate", path, mode)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	return db, nil
}

// Migrate creates the fixed tenant schema. It is only run when a store is provisioned.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	stmt := fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON time_records(user_id) WHERE clock_out IS NULL`, OpenIndexName)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create open-session index: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLogLevel maps a config string to a gorm log level.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "warn":
		return logger.Warn
	case "info", "debug":
		return logger.Info
	default:
		return logger.Error
	}
}
