package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	maintenancedomain "rentfolio-go/internal/domain/maintenance"
	"rentfolio-go/pkg/patch"
)

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) Create(ctx context.Context, input maintenancedomain.CreateInput) (*maintenancedomain.Record, error) {
	row := maintenancedomain.Record{
		PropertyID:    input.PropertyID,
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        input.Status,
		Cost:          input.Cost,
		ScheduledDate: input.ScheduledDate,
		Contractor:    input.Contractor,
		Notes:         input.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create maintenance record: %w", err)
	}
	return r.Get(ctx, row.ID)
}

func (r *GormRepository) Get(ctx context.Context, id int64) (*maintenancedomain.Record, error) {
	var row maintenancedomain.Record
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, maintenancedomain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get maintenance record: %w", err)
	}
	return &row, nil
}

func (r *GormRepository) List(ctx context.Context, filter maintenancedomain.ListFilter) ([]maintenancedomain.Record, error) {
	query := r.db.WithContext(ctx).Model(&maintenancedomain.Record{})
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}

	var rows []maintenancedomain.Record
	if err := query.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	return rows, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, input maintenancedomain.UpdateInput) (*maintenancedomain.Record, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	set := patch.NewAssignments()
	patch.SetValue(set, "title", input.Title)
	patch.Set(set, "description", input.Description)
	patch.SetValue(set, "priority", input.Priority)
	patch.SetValue(set, "status", input.Status)
	patch.Set(set, "cost", input.Cost)
	patch.Set(set, "scheduled_date", input.ScheduledDate)
	patch.Set(set, "completed_date", input.CompletedDate)
	patch.Set(set, "contractor", input.Contractor)
	patch.Set(set, "notes", input.Notes)
	set.Touch(r.now())

	result := r.db.WithContext(ctx).
		Model(&maintenancedomain.Record{}).
		Where("id = ?", id).
		Updates(set.Map())
	if result.Error != nil {
		return nil, fmt.Errorf("update maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, maintenancedomain.ErrRecordNotFound
	}

	return r.Get(ctx, id)
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&maintenancedomain.Record{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return maintenancedomain.ErrRecordNotFound
	}
	return nil
}
