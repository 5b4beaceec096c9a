package market

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	marketdomain "rentfolio-go/internal/domain/market"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, input marketdomain.CreateInput) (*marketdomain.DataPoint, error) {
	row := marketdomain.DataPoint{
		Location:           input.Location,
		MedianPrice:        input.MedianPrice,
		AveragePrice:       input.AveragePrice,
		InventoryCount:     input.InventoryCount,
		DaysOnMarket:       input.DaysOnMarket,
		PriceChangePercent: input.PriceChangePercent,
		DataSource:         input.DataSource,
		RecordedDate:       input.RecordedDate,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create market data: %w", err)
	}

	var created marketdomain.DataPoint
	if err := r.db.WithContext(ctx).First(&created, "id = ?", row.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reload market data %d: row missing", row.ID)
		}
		return nil, fmt.Errorf("reload market data: %w", err)
	}
	return &created, nil
}

func (r *GormRepository) List(ctx context.Context, filter marketdomain.ListFilter) ([]marketdomain.DataPoint, error) {
	query := r.db.WithContext(ctx).Model(&marketdomain.DataPoint{})
	if filter.Location != nil {
		query = query.Where("location = ?", *filter.Location)
	}

	var rows []marketdomain.DataPoint
	if err := query.Order("recorded_date desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list market data: %w", err)
	}
	return rows, nil
}

func (r *GormRepository) TrendRows(ctx context.Context, location *string, limit int) ([]marketdomain.TrendRow, error) {
	query := "SELECT location, recorded_date, median_price, average_price, inventory_count FROM market_data"
	args := []any{}
	if location != nil {
		query += " WHERE location = ?"
		args = append(args, *location)
	}
	query += " ORDER BY location ASC, recorded_date DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []marketdomain.TrendRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("trend rows: %w", err)
	}
	return rows, nil
}

// PortfolioStats aggregates over properties in a single pass. Unset values
// contribute nothing to the sum and are excluded from the average.
func (r *GormRepository) PortfolioStats(ctx context.Context) (marketdomain.PortfolioStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_properties,
			COALESCE(SUM(current_value), 0) AS total_value,
			COALESCE(AVG(monthly_rent), 0) AS average_rent,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS occupied_count
		FROM properties`

	var stats marketdomain.PortfolioStats
	if err := r.db.WithContext(ctx).Raw(query, "occupied").Scan(&stats).Error; err != nil {
		return marketdomain.PortfolioStats{}, fmt.Errorf("portfolio stats: %w", err)
	}
	return stats, nil
}
