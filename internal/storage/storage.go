// Package storage persists application state documents in a SQLite
// key-value table. Every document is an opaque JSON blob addressed by
// its storage key.
package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budgetcopain/backend/internal/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
)

// ErrNotFound is returned when no document exists for a storage key.
var ErrNotFound = errors.New("no document exists for this key")

// Backend reads and writes state documents.
type Backend interface {
	// Load returns the document stored under key, or ErrNotFound.
	Load(key string) ([]byte, error)

	// Save stores the document under key, replacing any previous version.
	Save(key string, data []byte) error

	// Delete removes the document stored under key. Deleting a key
	// that does not exist is not an error.
	Delete(key string) error

	// Ping verifies that the backend is reachable.
	Ping() error
}

// Document is a single persisted state document.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// SQLite is the Backend used in production.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Document{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return &SQLite{db: db}, nil
}

// translate replaces driver errors with models.ErrGeneral so that they
// do not leak to users. The underlying error is logged so that server
// administrators can debug it.
func translate(err error) error {
	if err == nil {
		return nil
	}

	// The database/sql error is hard-coded in the sql module, there is
	// no sentinel to match against
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return models.ErrGeneral
	}

	return err
}

func (s *SQLite) Load(key string) ([]byte, error) {
	var document Document

	err := s.db.First(&document, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, translate(err)
	}

	return document.Data, nil
}

func (s *SQLite) Save(key string, data []byte) error {
	document := Document{Key: key, Data: data}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&document).Error

	return translate(err)
}

func (s *SQLite) Delete(key string) error {
	return translate(s.db.Delete(&Document{}, "key = ?", key).Error)
}

func (s *SQLite) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
