package scraper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio-go/internal/domain/market"
	"rentfolio-go/pkg/logger"
)

type fakeMarketRepository struct {
	created []market.CreateInput
	failAt  int
}

func (f *fakeMarketRepository) Create(ctx context.Context, input market.CreateInput) (*market.DataPoint, error) {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return nil, errors.New("disk full")
	}
	f.created = append(f.created, input)
	return &market.DataPoint{ID: int64(len(f.created))}, nil
}

func (f *fakeMarketRepository) List(ctx context.Context, filter market.ListFilter) ([]market.DataPoint, error) {
	return nil, nil
}

func (f *fakeMarketRepository) TrendRows(ctx context.Context, location *string, limit int) ([]market.TrendRow, error) {
	return nil, nil
}

func (f *fakeMarketRepository) PortfolioStats(ctx context.Context) (market.PortfolioStats, error) {
	return market.PortfolioStats{}, nil
}

func newTestScraper(repo *fakeMarketRepository) *Service {
	service := New(repo, logger.New(io.Discard, slog.LevelError, "text"))
	service.now = func() time.Time {
		return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func TestRefreshInsertsMockListings(t *testing.T) {
	repo := &fakeMarketRepository{}
	service := newTestScraper(repo)

	count, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, repo.created, 3)

	locations := []string{}
	for _, input := range repo.created {
		locations = append(locations, input.Location)
		assert.Equal(t, "Mock Data", input.DataSource)
		assert.Equal(t, "2025-08-01", input.RecordedDate)
		require.NotNil(t, input.MedianPrice)
		require.NotNil(t, input.InventoryCount)
	}
	assert.Equal(t, []string{"San Francisco, CA", "Austin, TX", "Seattle, WA"}, locations)
}

func TestRefreshStopsOnFirstFailure(t *testing.T) {
	repo := &fakeMarketRepository{failAt: 2}
	service := newTestScraper(repo)

	count, err := service.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Austin, TX")
	assert.Equal(t, 1, count)
	assert.Len(t, repo.created, 1)
}
