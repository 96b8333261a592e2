package berries

import (
	"context"
	"fmt"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type Repository interface {
	List(ctx context.Context, page value.Page) ([]entity.Berry, error)
}

// Service is the read-only berry catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, page value.Page) ([]entity.Berry, error) {
	berries, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	logger(ctx).Debug("berries listed")

	return berries, nil
}
