package property

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

func (s *Service) ListProperties(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*Property, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateProperty(ctx context.Context, input CreateInput) (*Property, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Address = strings.TrimSpace(input.Address)
	if input.Status == "" {
		input.Status = StatusVacant
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) UpdateProperty(ctx context.Context, id int64, input UpdateInput) (*Property, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) DeleteProperty(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
