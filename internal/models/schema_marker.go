package models

import "time"

// SchemaMarker records a completed schema initialization. Its presence makes
// the one-shot init route refuse even after a process restart, which the
// in-memory guard alone cannot do.
type SchemaMarker struct {
	ID            uint      `json:"id"             gorm:"primaryKey;autoIncrement"`
	Version       int       `json:"version"        gorm:"not null"`
	InitializedAt time.Time `json:"initialized_at" gorm:"not null"`
}

func (SchemaMarker) TableName() string { return "schema_markers" }
