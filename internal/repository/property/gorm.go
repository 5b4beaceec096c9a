package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	propertydomain "rentfolio-go/internal/domain/property"
	"rentfolio-go/pkg/patch"
)

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) Create(ctx context.Context, input propertydomain.CreateInput) (*propertydomain.Property, error) {
	row := propertydomain.Property{
		Title:         input.Title,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		PropertyType:  input.PropertyType,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		SquareFeet:    input.SquareFeet,
		PurchasePrice: input.PurchasePrice,
		CurrentValue:  input.CurrentValue,
		MonthlyRent:   input.MonthlyRent,
		Status:        input.Status,
		Notes:         input.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	// Re-read so column defaults and storage-assigned timestamps are
	// reflected in the response.
	return r.Get(ctx, row.ID)
}

func (r *GormRepository) Get(ctx context.Context, id int64) (*propertydomain.Property, error) {
	var row propertydomain.Property
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, propertydomain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &row, nil
}

func (r *GormRepository) List(ctx context.Context) ([]propertydomain.Property, error) {
	var rows []propertydomain.Property
	err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return rows, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, input propertydomain.UpdateInput) (*propertydomain.Property, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	set := patch.NewAssignments()
	patch.SetValue(set, "title", input.Title)
	patch.SetValue(set, "address", input.Address)
	patch.SetValue(set, "city", input.City)
	patch.SetValue(set, "state", input.State)
	patch.SetValue(set, "zip_code", input.ZipCode)
	patch.SetValue(set, "property_type", input.PropertyType)
	patch.Set(set, "bedrooms", input.Bedrooms)
	patch.Set(set, "bathrooms", input.Bathrooms)
	patch.Set(set, "square_feet", input.SquareFeet)
	patch.Set(set, "purchase_price", input.PurchasePrice)
	patch.Set(set, "current_value", input.CurrentValue)
	patch.Set(set, "monthly_rent", input.MonthlyRent)
	patch.SetValue(set, "status", input.Status)
	patch.Set(set, "notes", input.Notes)
	set.Touch(r.now())

	result := r.db.WithContext(ctx).
		Model(&propertydomain.Property{}).
		Where("id = ?", id).
		Updates(set.Map())
	if result.Error != nil {
		return nil, fmt.Errorf("update property: %w", result.Error)
	}
	// Zero rows here means the row vanished between the existence check
	// and the update.
	if result.RowsAffected == 0 {
		return nil, propertydomain.ErrPropertyNotFound
	}

	return r.Get(ctx, id)
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&propertydomain.Property{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return propertydomain.ErrPropertyNotFound
	}
	return nil
}
