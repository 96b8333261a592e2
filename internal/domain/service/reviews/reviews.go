package reviews

import (
	"context"
	"fmt"
	"log/slog"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/logx"
)

type Repository interface {
	List(ctx context.Context, page value.Page) ([]entity.Review, error)
	Create(ctx context.Context, review entity.Review) (entity.Review, error)
	Update(ctx context.Context, id, owner string, upd entity.ReviewUpdate) (entity.Review, error)
	Delete(ctx context.Context, id, owner string) (entity.Review, error)
}

type ActivityPublisher interface {
	Publish(ctx context.Context, activity entity.Activity) error
}

type Service struct {
	repo     Repository
	activity ActivityPublisher
}

func NewService(repo Repository, activity ActivityPublisher) *Service {
	return &Service{
		repo:     repo,
		activity: activity,
	}
}

func (s *Service) List(ctx context.Context, page value.Page) ([]entity.Review, error) {
	reviews, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return reviews, nil
}

// Create stores a review reported by user and announces it.
func (s *Service) Create(ctx context.Context, user contextx.UserID, review entity.Review) (entity.Review, error) {
	review.ReportedBy = user.String()

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return entity.Review{}, fmt.Errorf("repo.Create: %w", err)
	}

	activity := entity.Activity{
		Kind:       entity.ActivityReview,
		ID:         created.ID,
		VendorID:   created.VendorID,
		UserID:     created.ReportedBy,
		Summary:    fmt.Sprintf("rated %d/5", created.Rating),
		OccurredAt: created.CreatedAt,
	}

	if err = s.activity.Publish(ctx, activity); err != nil {
		logger(ctx).Error(
			"activity.Publish",
			slog.String(logx.FieldVendorID, created.VendorID),
			logx.Error(err),
		)
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, user contextx.UserID, id string, upd entity.ReviewUpdate) (entity.Review, error) {
	review, err := s.repo.Update(ctx, id, user.String(), upd)
	if err != nil {
		return entity.Review{}, fmt.Errorf("repo.Update: %w", err)
	}

	return review, nil
}

func (s *Service) Delete(ctx context.Context, user contextx.UserID, id string) (entity.Review, error) {
	review, err := s.repo.Delete(ctx, id, user.String())
	if err != nil {
		return entity.Review{}, fmt.Errorf("repo.Delete: %w", err)
	}

	logger(ctx).Info("review deleted", slog.String(logx.FieldVendorID, review.VendorID))

	return review, nil
}
