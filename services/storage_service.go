package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AbdullahAljelamneh/repright-application/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the string-keyed JSON document store the ledger persists through.
// Get reports whether the key existed; a missing or malformed document is
// (false, nil) so callers fall back to their defaults.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
	// SetMulti writes all entries atomically.
	SetMulti(entries map[string]any) error
}

// GormStore keeps documents in the storage_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string, out any) (bool, error) {
	var entry models.StorageEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %q: %w", key, err)
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		// Corrupt documents count as absent.
		logrus.WithField("key", key).WithError(err).Warn("discarding malformed stored value")
		return false, nil
	}
	return true, nil
}

func (s *GormStore) Set(key string, value any) error {
	return upsertEntry(s.db, key, value)
}

func (s *GormStore) Remove(key string) error {
	if err := s.db.Delete(&models.StorageEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) SetMulti(entries map[string]any) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := upsertEntry(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertEntry(db *gorm.DB, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	entry := models.StorageEntry{Key: key, Value: b}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// UserStore namespaces every key with the owning user's id so two accounts
// on one deployment never share documents.
type UserStore struct {
	inner  Store
	prefix string
}

func NewUserStore(inner Store, userID uint) *UserStore {
	return &UserStore{inner: inner, prefix: fmt.Sprintf("u:%d:", userID)}
}

func (s *UserStore) Get(key string, out any) (bool, error) {
	return s.inner.Get(s.prefix+key, out)
}

func (s *UserStore) Set(key string, value any) error {
	return s.inner.Set(s.prefix+key, value)
}

func (s *UserStore) Remove(key string) error {
	return s.inner.Remove(s.prefix + key)
}

func (s *UserStore) SetMulti(entries map[string]any) error {
	prefixed := make(map[string]any, len(entries))
	for k, v := range entries {
		prefixed[s.prefix+k] = v
	}
	return s.inner.SetMulti(prefixed)
}
