package property

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*Property, error)
	Get(ctx context.Context, id int64) (*Property, error)
	List(ctx context.Context) ([]Property, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Property, error)
	Delete(ctx context.Context, id int64) error
}
