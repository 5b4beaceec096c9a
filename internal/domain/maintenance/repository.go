package maintenance

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*Record, error)
	Get(ctx context.Context, id int64) (*Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Record, error)
	Delete(ctx context.Context, id int64) error
}
