package market

import "time"

// DataPoint is one observed market-data row for a location. Duplicate
// (location, recorded_date) pairs are allowed; every scrape appends.
type DataPoint struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	Location           string `gorm:"index;not null"`
	MedianPrice        *float64
	AveragePrice       *float64
	InventoryCount     *int
	DaysOnMarket       *float64
	PriceChangePercent *float64
	DataSource         string `gorm:"not null"`
	// Stored as date text; rows written by hand may carry anything, which
	// is why trend building parses defensively.
	RecordedDate string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (DataPoint) TableName() string { return "market_data" }

type ListFilter struct {
	Location *string
}

type CreateInput struct {
	Location           string
	MedianPrice        *float64
	AveragePrice       *float64
	InventoryCount     *int
	DaysOnMarket       *float64
	PriceChangePercent *float64
	DataSource         string
	RecordedDate       string
}

// TrendRow is the projection the trend queries read.
type TrendRow struct {
	Location       string   `gorm:"column:location"`
	RecordedDate   string   `gorm:"column:recorded_date"`
	MedianPrice    *float64 `gorm:"column:median_price"`
	AveragePrice   *float64 `gorm:"column:average_price"`
	InventoryCount *int     `gorm:"column:inventory_count"`
}

type TrendPoint struct {
	Date           time.Time
	MedianPrice    *float64
	AveragePrice   *float64
	InventoryCount *int
}

// TrendGroup is the time series for one exact location string. Points keep
// storage order: recorded date descending.
type TrendGroup struct {
	Location   string
	TimeSeries []TrendPoint
}

// PortfolioStats is the raw aggregate read from the properties table.
type PortfolioStats struct {
	TotalProperties int64   `gorm:"column:total_properties"`
	TotalValue      float64 `gorm:"column:total_value"`
	AverageRent     float64 `gorm:"column:average_rent"`
	OccupiedCount   int64   `gorm:"column:occupied_count"`
}

type Analytics struct {
	TotalProperties int64
	TotalValue      float64
	AverageRent     float64
	OccupancyRate   float64
	MarketTrends    []TrendGroup
}
