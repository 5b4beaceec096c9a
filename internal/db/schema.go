package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentfolio-go/internal/domain/event"
	"rentfolio-go/internal/domain/maintenance"
	"rentfolio-go/internal/domain/market"
	"rentfolio-go/internal/domain/property"
	"rentfolio-go/internal/domain/tenant"
)

// EnsureSchema provisions every entity table. AutoMigrate only adds what is
// missing, so running it on every start is safe.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&property.Property{},
		&tenant.Tenant{},
		&event.CalendarEvent{},
		&maintenance.Record{},
		&market.DataPoint{},
	)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Pinger returns the liveness probe the health endpoint runs.
func Pinger(gormDB *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		var one int
		if err := gormDB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
			return fmt.Errorf("health check: %w", err)
		}
		return nil
	}
}
