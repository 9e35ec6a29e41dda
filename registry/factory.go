package registry

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens (creating if necessary) a SQLite-backed GORM handle at
// path and migrates the registry's tables. An embedded, file-colocated
// store fits an offline index-builder better than a network database —
// the registry never needs to be reached over the network the way
// perf-analysis's task queue does.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("registry: open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&BuildEvent{}, &CacheEvent{}); err != nil {
		return nil, fmt.Errorf("registry: migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(1) // SQLite: single writer, matches the embedded-store use case
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}
