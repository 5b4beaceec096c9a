package maintenance

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

func (s *Service) ListRecords(ctx context.Context, filter ListFilter) ([]Record, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetRecord(ctx context.Context, id int64) (*Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateRecord(ctx context.Context, input CreateInput) (*Record, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if input.Status == "" {
		input.Status = StatusPending
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) UpdateRecord(ctx context.Context, id int64, input UpdateInput) (*Record, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
