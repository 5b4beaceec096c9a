package market

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*DataPoint, error)
	List(ctx context.Context, filter ListFilter) ([]DataPoint, error)
	// TrendRows returns rows ordered by location, then recorded date
	// descending. A zero limit means no limit.
	TrendRows(ctx context.Context, location *string, limit int) ([]TrendRow, error)
	PortfolioStats(ctx context.Context) (PortfolioStats, error)
}
