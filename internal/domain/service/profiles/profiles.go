package profiles

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/contextx"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (entity.Profile, error)
	Upsert(ctx context.Context, upsert entity.ProfileUpsert) (entity.Profile, error)
	ListPublic(ctx context.Context, ids []string) ([]entity.PublicProfile, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Me(ctx context.Context, user contextx.UserID) (entity.Profile, error) {
	profile, err := s.repo.GetByID(ctx, user.String())
	if err != nil {
		return entity.Profile{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	return profile, nil
}

// UpsertMe creates the caller's profile or overwrites the fields that were
// sent; nil fields keep their stored values.
func (s *Service) UpsertMe(ctx context.Context, user contextx.UserID, upsert entity.ProfileUpsert) (entity.Profile, error) {
	upsert.ID = user.String()
	upsert.UpdatedAt = s.now()

	profile, err := s.repo.Upsert(ctx, upsert)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("repo.Upsert: %w", err)
	}

	return profile, nil
}

// ListPublic resolves a comma separated id list. Blank entries are dropped and
// an empty list is answered without a lookup.
func (s *Service) ListPublic(ctx context.Context, rawIDs string) ([]entity.PublicProfile, error) {
	ids := lo.Compact(lo.Map(strings.Split(rawIDs, ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	}))

	if len(ids) == 0 {
		return []entity.PublicProfile{}, nil
	}

	profiles, err := s.repo.ListPublic(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("repo.ListPublic: %w", err)
	}

	return profiles, nil
}
