package store

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"barberbook-backend/models"
)

func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&StorageEntry{}))
	return NewGormStore(db, zerolog.New(io.Discard)), db
}

func TestGormStoreLoadEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	bookings, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGormStoreRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	bookings := []models.Booking{
		{ID: "a", Name: "Raj", Phone: "+911234567890", Service: "Classic Haircut", Date: "2024-06-01", Time: "09:00 AM", CreatedAt: 1717200000000},
		{ID: "b", Name: "Amit", Phone: "+911111111111", Service: "Beard Styling", Date: "2024-06-01", Time: "10:00 AM", CreatedAt: 1717200001000},
	}
	require.NoError(t, st.Save(bookings))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, bookings, loaded)

	// Persisting a freshly-loaded collection must not change it.
	require.NoError(t, st.Save(loaded))
	again, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, bookings, again)
}

func TestGormStoreOverwrite(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.Save([]models.Booking{{ID: "a"}}))
	require.NoError(t, st.Save([]models.Booking{{ID: "b"}, {ID: "c"}}))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestGormStoreMalformedValueReadsAsEmpty(t *testing.T) {
	st, db := newTestStore(t)

	entry := StorageEntry{Key: StorageKey, Value: "{not json", Version: 1}
	require.NoError(t, db.Create(&entry).Error)

	bookings, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGormStoreReadsLegacyUnversionedValue(t *testing.T) {
	st, db := newTestStore(t)

	// A value written by the original deployment: bare array, no version.
	entry := StorageEntry{
		Key:   StorageKey,
		Value: `[{"id":"x1","name":"Raj","phone":"+911234567890","service":"Classic Haircut","date":"2024-06-01","time":"09:00 AM","createdAt":1717200000000}]`,
	}
	require.NoError(t, db.Create(&entry).Error)

	bookings, err := st.Load()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "x1", bookings[0].ID)
	assert.Equal(t, int64(1717200000000), bookings[0].CreatedAt)
}
