package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*Tenant, error)
	Get(ctx context.Context, id int64) (*Tenant, error)
	List(ctx context.Context, filter ListFilter) ([]Tenant, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Tenant, error)
	Delete(ctx context.Context, id int64) error
}
