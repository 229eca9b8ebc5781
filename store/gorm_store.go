package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"barberbook-backend/models"
)

// StorageEntry is a key/value row holding a serialized collection. The
// version column is written for future format changes; reads accept any
// well-formed value regardless of version.
type StorageEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	Version   int    `gorm:"not null;default:1"`
	UpdatedAt time.Time
}

const schemaVersion = 1

// GormStore keeps the whole booking collection under StorageKey in a
// storage_entries row, mirroring the single-entry layout the site
// originally used.
type GormStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewGormStore(db *gorm.DB, log zerolog.Logger) *GormStore {
	return &GormStore{db: db, log: log}
}

func (s *GormStore) Load() ([]models.Booking, error) {
	var entry StorageEntry
	err := s.db.First(&entry, "key = ?", StorageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", StorageKey, err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(entry.Value), &bookings); err != nil {
		// Malformed value reads as empty rather than taking the site down.
		s.log.Warn().Err(err).Str("key", StorageKey).Msg("discarding malformed storage entry")
		return []models.Booking{}, nil
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *GormStore) Save(bookings []models.Booking) error {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	value, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	entry := StorageEntry{
		Key:       StorageKey,
		Value:     string(value),
		Version:   schemaVersion,
		UpdatedAt: time.Now(),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).Create(&entry).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
