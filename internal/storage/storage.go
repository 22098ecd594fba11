// Package storage is the persistence adapter: a durable key-value store
// holding one serialized JSON document per entity collection, plus a few
// sync-state keys. It is the sole owner of the key namespace.
//
// Writes that fail are logged and swallowed; reads that fail return empty
// data. Persistence problems never block the in-memory mutation path.
package storage

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paisa/internal/config"
	"paisa/internal/logger"
)

// Collection keys. One durable record per collection.
const (
	KeyExpenses       = "expenses"
	KeyPaymentMethods = "paymentMethods"
	KeyReminders      = "reminders"
	KeySettings       = "settings"
)

// Sync-state keys.
const (
	KeyLastSyncTime = "lastSyncTime"
	KeyIsConnected  = "isConnected"
)

// record is a single durable key-value row.
type record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string
	UpdatedAt time.Time
}

func (record) TableName() string { return "records" }

// Store is a gorm-backed key-value store.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured backing database and migrates the records
// table. SQLite is the local-first default; Postgres is available for shared
// deployments.
func Open(cfg *config.Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return newStore(db)
}

// OpenSQLite opens a store on the given SQLite path. Tests use
// "file::memory:?cache=shared".
func OpenSQLite(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
	}
	return newStore(db)
}

func newStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// set upserts a raw value under key. Returns the error for Save to log.
func (s *Store) set(key, value string) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// get reads a raw value. The second return is false when the key is absent
// or the read failed.
func (s *Store) get(key string) (string, bool) {
	var rec record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Named("storage").Warnw("read failed", "key", key, "error", err)
		}
		return "", false
	}
	return rec.Value, true
}
