package property

import (
	"time"

	"rentfolio-go/pkg/patch"
)

const (
	StatusOccupied    = "occupied"
	StatusVacant      = "vacant"
	StatusMaintenance = "maintenance"
)

type Property struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"not null"`
	Address       string `gorm:"not null"`
	City          string `gorm:"not null"`
	State         string `gorm:"not null"`
	ZipCode       string `gorm:"not null"`
	PropertyType  string `gorm:"not null"`
	Bedrooms      *int
	Bathrooms     *float64
	SquareFeet    *int
	PurchasePrice *float64
	CurrentValue  *float64
	MonthlyRent   *float64
	Status        string `gorm:"not null;default:vacant"`
	Notes         *string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	Title         string
	Address       string
	City          string
	State         string
	ZipCode       string
	PropertyType  string
	Bedrooms      *int
	Bathrooms     *float64
	SquareFeet    *int
	PurchasePrice *float64
	CurrentValue  *float64
	MonthlyRent   *float64
	Status        string
	Notes         *string
}

// UpdateInput carries one three-valued field per mutable column. Absent
// fields stay untouched; explicit nulls clear nullable columns.
type UpdateInput struct {
	Title         patch.Field[string]
	Address       patch.Field[string]
	City          patch.Field[string]
	State         patch.Field[string]
	ZipCode       patch.Field[string]
	PropertyType  patch.Field[string]
	Bedrooms      patch.Field[int]
	Bathrooms     patch.Field[float64]
	SquareFeet    patch.Field[int]
	PurchasePrice patch.Field[float64]
	CurrentValue  patch.Field[float64]
	MonthlyRent   patch.Field[float64]
	Status        patch.Field[string]
	Notes         patch.Field[string]
}
