package property

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rentfolio-go/internal/db"
	propertydomain "rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.EnsureSchema(gormDB))
	return gormDB
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func createTestProperty(t *testing.T, repo *GormRepository) *propertydomain.Property {
	t.Helper()

	created, err := repo.Create(context.Background(), propertydomain.CreateInput{
		Title:        "Maple Duplex",
		Address:      "12 Maple St",
		City:         "Portland",
		State:        "OR",
		ZipCode:      "97201",
		PropertyType: "duplex",
		MonthlyRent:  floatPtr(2400),
		Status:       propertydomain.StatusVacant,
		Notes:        strPtr("needs paint"),
	})
	require.NoError(t, err)
	return created
}

func TestCreateAndGetProperty(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	created := createTestProperty(t, repo)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "Maple Duplex", created.Title)
	assert.Equal(t, propertydomain.StatusVacant, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.MonthlyRent)
	assert.Equal(t, 2400.0, *got.MonthlyRent)
}

func TestGetPropertyNotFound(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	_, err := repo.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, propertydomain.ErrPropertyNotFound)
}

func TestUpdatePropertySingleField(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := createTestProperty(t, repo)

	updated, err := repo.Update(context.Background(), created.ID, propertydomain.UpdateInput{
		Status: patch.Of(propertydomain.StatusOccupied),
	})
	require.NoError(t, err)

	assert.Equal(t, propertydomain.StatusOccupied, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, created.Title, updated.Title)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "needs paint", *updated.Notes)
}

func TestUpdatePropertyNullClearsNullable(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := createTestProperty(t, repo)

	updated, err := repo.Update(context.Background(), created.ID, propertydomain.UpdateInput{
		Notes:       patch.Null[string](),
		MonthlyRent: patch.Null[float64](),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Notes)
	assert.Nil(t, updated.MonthlyRent)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdatePropertyNullIgnoredOnRequiredColumn(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := createTestProperty(t, repo)

	updated, err := repo.Update(context.Background(), created.ID, propertydomain.UpdateInput{
		Title: patch.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdatePropertyEmptyPatchTouchesTimestamp(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := createTestProperty(t, repo)

	later := created.UpdatedAt.Add(2 * time.Hour).UTC()
	repo.now = func() time.Time { return later }

	updated, err := repo.Update(context.Background(), created.ID, propertydomain.UpdateInput{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	_, err := repo.Update(context.Background(), 9999, propertydomain.UpdateInput{
		Title: patch.Of("ghost"),
	})
	assert.ErrorIs(t, err, propertydomain.ErrPropertyNotFound)
}

func TestDeleteProperty(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := createTestProperty(t, repo)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, propertydomain.ErrPropertyNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), created.ID), propertydomain.ErrPropertyNotFound)
}

func TestListPropertiesNewestFirst(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	first := createTestProperty(t, repo)
	second, err := repo.Create(context.Background(), propertydomain.CreateInput{
		Title:        "Oak Cottage",
		Address:      "4 Oak Ln",
		City:         "Salem",
		State:        "OR",
		ZipCode:      "97301",
		PropertyType: "house",
		Status:       propertydomain.StatusVacant,
	})
	require.NoError(t, err)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}
