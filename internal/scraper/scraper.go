package scraper

import (
	"context"
	"fmt"
	"time"

	"rentfolio-go/internal/domain/market"
	"rentfolio-go/pkg/logger"
)

// mockSource labels rows written by the placeholder scraper. Real source
// integrations would each carry their own label.
const mockSource = "Mock Data"

type mockListing struct {
	location       string
	medianPrice    float64
	averagePrice   float64
	inventoryCount int
	daysOnMarket   float64
}

// mockListings stands in for fetching live data from listing sites. Each
// refresh appends all of them with the current date.
var mockListings = []mockListing{
	{location: "San Francisco, CA", medianPrice: 1250000, averagePrice: 950, inventoryCount: 523, daysOnMarket: 28},
	{location: "Austin, TX", medianPrice: 550000, averagePrice: 325, inventoryCount: 892, daysOnMarket: 35},
	{location: "Seattle, WA", medianPrice: 825000, averagePrice: 575, inventoryCount: 654, daysOnMarket: 24},
}

type Service struct {
	repo market.Repository
	log  logger.Logger
	now  func() time.Time
}

func New(repo market.Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Refresh appends one market-data row per mock listing and returns how many
// rows were written. A failed insert aborts the run; rows already written
// stay.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	s.log.Info("market data refresh started")

	today := s.now().UTC().Format("2006-01-02")
	count := 0
	for _, listing := range mockListings {
		listing := listing
		input := market.CreateInput{
			Location:       listing.location,
			MedianPrice:    &listing.medianPrice,
			AveragePrice:   &listing.averagePrice,
			InventoryCount: &listing.inventoryCount,
			DaysOnMarket:   &listing.daysOnMarket,
			DataSource:     mockSource,
			RecordedDate:   today,
		}
		if _, err := s.repo.Create(ctx, input); err != nil {
			return count, fmt.Errorf("scrape %s: %w", listing.location, err)
		}
		count++
	}

	s.log.Info("market data refresh completed", "rows", count)
	return count, nil
}
