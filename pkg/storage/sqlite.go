package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// kvEntry is the embedded key/value row backing SQLiteStore.
type kvEntry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteStore persists values in an embedded SQLite database. It is the
// single-node durable medium when Redis is not available.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database file and migrates the
// key/value table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path required")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Save(&entry).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	raw, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	return raw.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	raw, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	return raw.Close()
}
