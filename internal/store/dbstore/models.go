package dbstore

import (
	"time"
)

// SchemaVersion is recorded under the db_version key when a database is created.
const SchemaVersion = "1"

// EntryModel represents a persisted key-value pair
type EntryModel struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for EntryModel
func (EntryModel) TableName() string {
	return "entries"
}
