package database

import (
	"log"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var (
	DB   *gorm.DB
	once sync.Once
)

// Connect opens the single-file SQLite store. The whole portal lives in one
// database file so it can be backed up by copying (or downloading) that file.
func Connect(path string) *gorm.DB {
	once.Do(func() {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}

		DB = db
	})

	return DB
}

// Open returns a fresh connection without touching the package singleton.
// Used by tests that need an isolated in-memory store.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
