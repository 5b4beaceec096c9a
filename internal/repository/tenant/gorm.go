package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	tenantdomain "rentfolio-go/internal/domain/tenant"
	"rentfolio-go/pkg/patch"
)

type GormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db, now: time.Now}
}

func (r *GormRepository) Create(ctx context.Context, input tenantdomain.CreateInput) (*tenantdomain.Tenant, error) {
	row := tenantdomain.Tenant{
		PropertyID:    input.PropertyID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		LeaseStart:    input.LeaseStart,
		LeaseEnd:      input.LeaseEnd,
		MonthlyRent:   input.MonthlyRent,
		DepositAmount: input.DepositAmount,
		Status:        input.Status,
		Notes:         input.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	return r.Get(ctx, row.ID)
}

func (r *GormRepository) Get(ctx context.Context, id int64) (*tenantdomain.Tenant, error) {
	var row tenantdomain.Tenant
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenantdomain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &row, nil
}

func (r *GormRepository) List(ctx context.Context, filter tenantdomain.ListFilter) ([]tenantdomain.Tenant, error) {
	query := r.db.WithContext(ctx).Model(&tenantdomain.Tenant{})
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}

	var rows []tenantdomain.Tenant
	if err := query.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return rows, nil
}

func (r *GormRepository) Update(ctx context.Context, id int64, input tenantdomain.UpdateInput) (*tenantdomain.Tenant, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	set := patch.NewAssignments()
	patch.SetValue(set, "property_id", input.PropertyID)
	patch.SetValue(set, "first_name", input.FirstName)
	patch.SetValue(set, "last_name", input.LastName)
	patch.Set(set, "email", input.Email)
	patch.Set(set, "phone", input.Phone)
	patch.SetValue(set, "lease_start", input.LeaseStart)
	patch.SetValue(set, "lease_end", input.LeaseEnd)
	patch.SetValue(set, "monthly_rent", input.MonthlyRent)
	patch.Set(set, "deposit_amount", input.DepositAmount)
	patch.SetValue(set, "status", input.Status)
	patch.Set(set, "notes", input.Notes)
	set.Touch(r.now())

	result := r.db.WithContext(ctx).
		Model(&tenantdomain.Tenant{}).
		Where("id = ?", id).
		Updates(set.Map())
	if result.Error != nil {
		return nil, fmt.Errorf("update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, tenantdomain.ErrTenantNotFound
	}

	return r.Get(ctx, id)
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&tenantdomain.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenantdomain.ErrTenantNotFound
	}
	return nil
}
