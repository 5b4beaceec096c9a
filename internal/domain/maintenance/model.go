package maintenance

import (
	"time"

	"rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Record struct {
	ID            int64             `gorm:"primaryKey;autoIncrement"`
	PropertyID    int64             `gorm:"index;not null"`
	Property      *property.Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Title         string             `gorm:"not null"`
	Description   *string
	Priority      string `gorm:"not null;default:medium"`
	Status        string `gorm:"not null;default:pending"`
	Cost          *float64
	ScheduledDate *time.Time
	CompletedDate *time.Time
	Contractor    *string
	Notes         *string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Record) TableName() string { return "maintenance_records" }

type ListFilter struct {
	PropertyID *int64
}

type CreateInput struct {
	PropertyID    int64
	Title         string
	Description   *string
	Priority      string
	Status        string
	Cost          *float64
	ScheduledDate *time.Time
	Contractor    *string
	Notes         *string
}

type UpdateInput struct {
	Title         patch.Field[string]
	Description   patch.Field[string]
	Priority      patch.Field[string]
	Status        patch.Field[string]
	Cost          patch.Field[float64]
	ScheduledDate patch.Field[time.Time]
	CompletedDate patch.Field[time.Time]
	Contractor    patch.Field[string]
	Notes         patch.Field[string]
}
