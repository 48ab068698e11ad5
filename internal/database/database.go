// Package database implements the durable local store backing the
// recruitment state: an embedded sqlite file holding one JSON value
// per key, the service-side equivalent of the browser's localStorage.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// StorageEntry is the gorm model for a single stored key. The whole
// candidate collection lives under one key as a JSON snapshot.
type StorageEntry struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// LocalStore wraps the gorm handle to the embedded database and caches
// the raw *sql.DB for health checks.
type LocalStore struct {
	*gorm.DB
	Path string

	sqlDB *sql.DB
	mu    sync.RWMutex
}

// Open opens (or creates) the local store at the given path and
// migrates the storage table. SQLite allows a single writer, so the
// connection pool is capped at one open connection.
func Open(path string) (*LocalStore, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open local store %s: %w", path, err)
	}

	store := &LocalStore{DB: gdb, Path: path}

	raw, err := store.Raw()
	if err != nil {
		return nil, err
	}
	raw.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&StorageEntry{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return store, nil
}

// Get returns the stored value for key and whether it was present.
func (s *LocalStore) Get(key string) ([]byte, bool, error) {
	var entry StorageEntry
	err := s.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

// Put writes value under key, replacing any previous value.
func (s *LocalStore) Put(key string, value []byte) error {
	entry := StorageEntry{Key: key, Value: string(value)}
	err := s.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting a missing key is not an
// error.
func (s *LocalStore) Delete(key string) error {
	if err := s.DB.Delete(&StorageEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Raw returns the underlying *sql.DB, caching it after the first
// successful retrieval. It is safe for concurrent use.
func (s *LocalStore) Raw() (*sql.DB, error) {
	if s == nil {
		return nil, fmt.Errorf("local store is nil")
	}

	s.mu.RLock()
	if s.sqlDB != nil {
		raw := s.sqlDB
		s.mu.RUnlock()
		return raw, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sqlDB != nil {
		return s.sqlDB, nil
	}
	if s.DB == nil {
		return nil, fmt.Errorf("gorm DB is nil")
	}
	raw, err := s.DB.DB()
	if err != nil {
		return nil, err
	}
	s.sqlDB = raw
	return raw, nil
}

// Health pings the embedded database and returns a map of health
// status information.
func (s *LocalStore) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	raw, err := s.Raw()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("storage down: %v", err)
		return stats
	}

	if err := raw.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("storage down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["path"] = s.Path

	var keys int64
	if err := s.Model(&StorageEntry{}).Count(&keys).Error; err == nil {
		stats["keys"] = strconv.FormatInt(keys, 10)
	}

	return stats
}

// Close closes the underlying database connection.
func (s *LocalStore) Close() error {
	raw, err := s.Raw()
	if err != nil {
		return err
	}
	return raw.Close()
}
