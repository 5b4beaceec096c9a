package tenant

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

func (s *Service) ListTenants(ctx context.Context, filter ListFilter) ([]Tenant, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetTenant(ctx context.Context, id int64) (*Tenant, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateTenant(ctx context.Context, input CreateInput) (*Tenant, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.Status == "" {
		input.Status = StatusActive
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) UpdateTenant(ctx context.Context, id int64, input UpdateInput) (*Tenant, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) DeleteTenant(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
