package event

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListEvents(ctx context.Context) ([]CalendarEvent, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*CalendarEvent, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateEvent(ctx context.Context, input CreateInput) (*CalendarEvent, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.EventType == "" {
		input.EventType = TypeOther
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) UpdateEvent(ctx context.Context, id int64, input UpdateInput) (*CalendarEvent, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
