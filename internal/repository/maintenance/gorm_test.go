package maintenance

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
	maintenancedomain "rentfolio-go/internal/domain/maintenance"
	propertydomain "rentfolio-go/internal/domain/property"
	propertyrepo "rentfolio-go/internal/repository/property"
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

func seedProperty(t *testing.T, gormDB *gorm.DB) int64 {
	t.Helper()

	created, err := propertyrepo.NewGorm(gormDB).Create(context.Background(), propertydomain.CreateInput{
		Title:        "Birch House",
		Address:      "5 Birch Rd",
		City:         "Bend",
		State:        "OR",
		ZipCode:      "97701",
		PropertyType: "house",
		Status:       propertydomain.StatusOccupied,
	})
	require.NoError(t, err)
	return created.ID
}

func TestCompleteMaintenanceRecord(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewGorm(gormDB)
	propertyID := seedProperty(t, gormDB)

	created, err := repo.Create(context.Background(), maintenancedomain.CreateInput{
		PropertyID: propertyID,
		Title:      "Replace water heater",
		Priority:   maintenancedomain.PriorityHigh,
		Status:     maintenancedomain.StatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, created.CompletedDate)

	done := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	cost := 1400.0
	updated, err := repo.Update(context.Background(), created.ID, maintenancedomain.UpdateInput{
		Status:        patch.Of(maintenancedomain.StatusCompleted),
		CompletedDate: patch.Of(done),
		Cost:          patch.Of(cost),
	})
	require.NoError(t, err)
	assert.Equal(t, maintenancedomain.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedDate)
	assert.True(t, updated.CompletedDate.Equal(done))
	require.NotNil(t, updated.Cost)
	assert.Equal(t, cost, *updated.Cost)

	// Reopening clears the completion marker.
	reopened, err := repo.Update(context.Background(), created.ID, maintenancedomain.UpdateInput{
		Status:        patch.Of(maintenancedomain.StatusInProgress),
		CompletedDate: patch.Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedDate)
}

func TestListMaintenanceByProperty(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewGorm(gormDB)
	propA := seedProperty(t, gormDB)
	propB := seedProperty(t, gormDB)

	for _, propertyID := range []int64{propA, propA, propB} {
		_, err := repo.Create(context.Background(), maintenancedomain.CreateInput{
			PropertyID: propertyID,
			Title:      "Gutter cleaning",
			Priority:   maintenancedomain.PriorityLow,
			Status:     maintenancedomain.StatusPending,
		})
		require.NoError(t, err)
	}

	filtered, err := repo.List(context.Background(), maintenancedomain.ListFilter{PropertyID: &propA})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, item := range filtered {
		assert.Equal(t, propA, item.PropertyID)
	}
}
