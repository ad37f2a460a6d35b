package entities

import "time"

// Document is a persisted JSON collection keyed by name. Only the Postgres
// document store maps it through GORM; the file store writes the same
// payloads as plain files.
type Document struct {
	Key       string    `gorm:"primary_key" json:"key"`
	Data      string    `gorm:"type:jsonb" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}
