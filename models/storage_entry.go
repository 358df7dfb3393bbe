package models

import "time"

// StorageEntry is one row of the key-value document store. Values are JSON
// documents; keys are namespaced per user (e.g. "u:42:meals") so accounts
// sharing a deployment never read each other's data.
type StorageEntry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
