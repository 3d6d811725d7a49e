// Package dbstore implements store.Gateway on an embedded SQLite database via gorm.
package dbstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yiblet/quotegen/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ store.Gateway = (*SQLiteGateway)(nil)

// SQLiteGateway is a SQLite-backed implementation of store.Gateway
type SQLiteGateway struct {
	db *gorm.DB
}

// NewSQLiteGateway opens (or creates) the database at dbPath.
// It initializes the schema and records the schema version.
func NewSQLiteGateway(dbPath string) (*SQLiteGateway, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	gw := &SQLiteGateway{db: db}

	if err := gw.initDefaults(); err != nil {
		gw.Close()
		return nil, fmt.Errorf("failed to init defaults: %w", err)
	}

	return gw, nil
}

// Load retrieves a value by key
func (s *SQLiteGateway) Load(key string) (string, bool, error) {
	var model EntryModel
	if err := s.db.First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return model.Value, true, nil
}

// Save stores a value (upsert)
func (s *SQLiteGateway) Save(key, value string) error {
	model := &EntryModel{
		Key:   key,
		Value: value,
	}

	// Upsert: update if exists, insert if not
	result := s.db.Where("key = ?", key).
		Assign(map[string]interface{}{"value": value, "updated_at": s.db.NowFunc()}).
		FirstOrCreate(model)

	if result.Error != nil {
		return fmt.Errorf("failed to save %s: %w", key, result.Error)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteGateway) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// initDefaults sets up entries that must exist in every database
func (s *SQLiteGateway) initDefaults() error {
	defaults := map[string]string{
		"db_version": SchemaVersion,
	}

	for key, value := range defaults {
		// Only set if not already present
		_, ok, err := s.Load(key)
		if err != nil {
			return err
		}
		if !ok {
			if err := s.Save(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}
