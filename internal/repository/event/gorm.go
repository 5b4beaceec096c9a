package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	eventdomain "rentfolio-go/internal/domain/event"
	"rentfolio-go/pkg/patch"
)

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) Create(ctx context.Context, input eventdomain.CreateInput) (*eventdomain.CalendarEvent, error) {
	row := eventdomain.CalendarEvent{
		Title:           input.Title,
		Description:     input.Description,
		EventType:       input.EventType,
		PropertyID:      input.PropertyID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		ReminderMinutes: input.ReminderMinutes,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return r.Get(ctx, row.ID)
}

func (r *GormRepository) Get(ctx context.Context, id int64) (*eventdomain.CalendarEvent, error) {
	var row eventdomain.CalendarEvent
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventdomain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &row, nil
}

// List returns events in calendar order, soonest first.
func (r *GormRepository) List(ctx context.Context) ([]eventdomain.CalendarEvent, error) {
	var rows []eventdomain.CalendarEvent
	err := r.db.WithContext(ctx).
		Order("start_time asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return rows, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, input eventdomain.UpdateInput) (*eventdomain.CalendarEvent, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	set := patch.NewAssignments()
	patch.SetValue(set, "title", input.Title)
	patch.Set(set, "description", input.Description)
	patch.SetValue(set, "event_type", input.EventType)
	patch.Set(set, "property_id", input.PropertyID)
	patch.SetValue(set, "start_time", input.StartTime)
	patch.Set(set, "end_time", input.EndTime)
	patch.Set(set, "reminder_minutes", input.ReminderMinutes)
	patch.SetValue(set, "completed", input.Completed)
	set.Touch(r.now())

	result := r.db.WithContext(ctx).
		Model(&eventdomain.CalendarEvent{}).
		Where("id = ?", id).
		Updates(set.Map())
	if result.Error != nil {
		return nil, fmt.Errorf("update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, eventdomain.ErrEventNotFound
	}

	return r.Get(ctx, id)
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&eventdomain.CalendarEvent{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return eventdomain.ErrEventNotFound
	}
	return nil
}
