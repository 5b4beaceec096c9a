package tenant

import (
	"time"

	"rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

const (
	StatusActive  = "active"
	StatusPast    = "past"
	StatusPending = "pending"
)

type Tenant struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	PropertyID    int64 `gorm:"index;not null"`
	// Cascade is the storage engine's job; deleting a property removes its
	// tenants without application orchestration.
	Property      *property.Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	FirstName     string             `gorm:"not null"`
	LastName      string             `gorm:"not null"`
	Email         *string
	Phone         *string
	LeaseStart    time.Time `gorm:"not null"`
	LeaseEnd      time.Time `gorm:"not null"`
	MonthlyRent   float64   `gorm:"not null"`
	DepositAmount *float64
	Status        string `gorm:"not null;default:active"`
	Notes         *string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	PropertyID *int64
}

type CreateInput struct {
	PropertyID    int64
	FirstName     string
	LastName      string
	Email         *string
	Phone         *string
	LeaseStart    time.Time
	LeaseEnd      time.Time
	MonthlyRent   float64
	DepositAmount *float64
	Status        string
	Notes         *string
}

type UpdateInput struct {
	PropertyID    patch.Field[int64]
	FirstName     patch.Field[string]
	LastName      patch.Field[string]
	Email         patch.Field[string]
	Phone         patch.Field[string]
	LeaseStart    patch.Field[time.Time]
	LeaseEnd      patch.Field[time.Time]
	MonthlyRent   patch.Field[float64]
	DepositAmount patch.Field[float64]
	Status        patch.Field[string]
	Notes         patch.Field[string]
}
