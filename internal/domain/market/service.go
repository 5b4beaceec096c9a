package market

import (
	"context"
	"strings"
	"time"
)

// analyticsTrendLimit caps the trend rows embedded in the analytics view,
// matching the dashboard's chart window.
const analyticsTrendLimit = 100

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListData(ctx context.Context, filter ListFilter) ([]DataPoint, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) CreateData(ctx context.Context, input CreateInput) (*DataPoint, error) {
	input.Location = strings.TrimSpace(input.Location)
	if input.RecordedDate == "" {
		input.RecordedDate = s.now().UTC().Format("2006-01-02")
	}
	return s.repo.Create(ctx, input)
}

// Trends groups market rows by exact location string. No normalization:
// "Seattle, WA" and "seattle, wa" are distinct groups. Points keep the
// stored recorded-date-descending order.
func (s *Service) Trends(ctx context.Context, location *string) ([]TrendGroup, error) {
	rows, err := s.repo.TrendRows(ctx, location, 0)
	if err != nil {
		return nil, err
	}
	return s.groupTrends(rows), nil
}

func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	stats, err := s.repo.PortfolioStats(ctx)
	if err != nil {
		return Analytics{}, err
	}

	occupancyRate := 0.0
	if stats.TotalProperties > 0 {
		occupancyRate = float64(stats.OccupiedCount) / float64(stats.TotalProperties) * 100
	}

	rows, err := s.repo.TrendRows(ctx, nil, analyticsTrendLimit)
	if err != nil {
		return Analytics{}, err
	}

	return Analytics{
		TotalProperties: stats.TotalProperties,
		TotalValue:      stats.TotalValue,
		AverageRent:     stats.AverageRent,
		OccupancyRate:   occupancyRate,
		MarketTrends:    s.groupTrends(rows),
	}, nil
}

func (s *Service) groupTrends(rows []TrendRow) []TrendGroup {
	groups := []TrendGroup{}
	index := make(map[string]int)

	for _, row := range rows {
		at, ok := index[row.Location]
		if !ok {
			at = len(groups)
			index[row.Location] = at
			groups = append(groups, TrendGroup{Location: row.Location, TimeSeries: []TrendPoint{}})
		}
		groups[at].TimeSeries = append(groups[at].TimeSeries, TrendPoint{
			Date:           s.parseRecordedDate(row.RecordedDate),
			MedianPrice:    row.MedianPrice,
			AveragePrice:   row.AveragePrice,
			InventoryCount: row.InventoryCount,
		})
	}

	return groups
}

// parseRecordedDate falls back to the current processing time for rows
// whose stored date is malformed, so one bad row never fails the whole
// aggregation.
func (s *Service) parseRecordedDate(value string) time.Time {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC()
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed.UTC()
	}
	return s.now().UTC()
}
