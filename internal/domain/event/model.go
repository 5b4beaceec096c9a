package event

import (
	"time"

	"rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

const (
	TypeMaintenance  = "maintenance"
	TypeRentDue      = "rent_due"
	TypeInspection   = "inspection"
	TypeLeaseRenewal = "lease_renewal"
	TypeOther        = "other"
)

type CalendarEvent struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"not null"`
	Description     *string
	EventType       string             `gorm:"not null"`
	PropertyID      *int64             `gorm:"index"`
	Property        *property.Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	StartTime       time.Time          `gorm:"not null"`
	EndTime         *time.Time
	ReminderMinutes *int
	Completed       bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	Title           string
	Description     *string
	EventType       string
	PropertyID      *int64
	StartTime       time.Time
	EndTime         *time.Time
	ReminderMinutes *int
}

type UpdateInput struct {
	Title           patch.Field[string]
	Description     patch.Field[string]
	EventType       patch.Field[string]
	PropertyID      patch.Field[int64]
	StartTime       patch.Field[time.Time]
	EndTime         patch.Field[time.Time]
	ReminderMinutes patch.Field[int]
	Completed       patch.Field[bool]
}
