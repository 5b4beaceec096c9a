package event

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CalendarEvent, error)
	Get(ctx context.Context, id int64) (*CalendarEvent, error)
	List(ctx context.Context) ([]CalendarEvent, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*CalendarEvent, error)
	Delete(ctx context.Context, id int64) error
}
