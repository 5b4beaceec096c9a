package event

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
	eventdomain "rentfolio-go/internal/domain/event"
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

func seedEvent(t *testing.T, repo *GormRepository, title string, start time.Time) *eventdomain.CalendarEvent {
	t.Helper()

	created, err := repo.Create(context.Background(), eventdomain.CreateInput{
		Title:     title,
		EventType: eventdomain.TypeInspection,
		StartTime: start,
	})
	require.NoError(t, err)
	return created
}

func TestListEventsSoonestFirst(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	later := seedEvent(t, repo, "Annual inspection", time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC))
	sooner := seedEvent(t, repo, "Rent due", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, sooner.ID, items[0].ID)
	assert.Equal(t, later.ID, items[1].ID)
}

func TestMarkEventCompleted(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	created := seedEvent(t, repo, "Furnace check", time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC))
	assert.False(t, created.Completed)

	updated, err := repo.Update(context.Background(), created.ID, eventdomain.UpdateInput{
		Completed: patch.Of(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdateEventNullClearsEndTime(t *testing.T) {
	repo := NewGorm(newTestDB(t))

	end := time.Date(2025, 10, 5, 9, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), eventdomain.CreateInput{
		Title:     "Walkthrough",
		EventType: eventdomain.TypeOther,
		StartTime: time.Date(2025, 10, 5, 8, 0, 0, 0, time.UTC),
		EndTime:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, created.EndTime)

	updated, err := repo.Update(context.Background(), created.ID, eventdomain.UpdateInput{
		EndTime: patch.Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EndTime)
}

func TestDeleteEventNotFound(t *testing.T) {
	repo := NewGorm(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 77), eventdomain.ErrEventNotFound)
}
