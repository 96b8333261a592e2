package prices

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/logx"
)

type Repository interface {
	List(ctx context.Context, page value.Page) ([]entity.Price, error)
	Create(ctx context.Context, price entity.Price) (entity.Price, error)
	Update(ctx context.Context, id, owner string, upd entity.PriceUpdate) (entity.Price, error)
	Delete(ctx context.Context, id, owner string) (entity.Price, error)
}

type ActivityPublisher interface {
	Publish(ctx context.Context, activity entity.Activity) error
}

type Service struct {
	repo     Repository
	activity ActivityPublisher
	now      func() time.Time
}

func NewService(repo Repository, activity ActivityPublisher) *Service {
	return &Service{
		repo:     repo,
		activity: activity,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to stamp reports without a time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, page value.Page) ([]entity.Price, error) {
	prices, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return prices, nil
}

// Create stores a price reported by user. A report without a time is
// stamped with the current time.
func (s *Service) Create(ctx context.Context, user contextx.UserID, price entity.Price) (entity.Price, error) {
	price.ReportedBy = user.String()

	if price.ReportedAt.IsZero() {
		price.ReportedAt = s.now()
	}

	created, err := s.repo.Create(ctx, price)
	if err != nil {
		return entity.Price{}, fmt.Errorf("repo.Create: %w", err)
	}

	summary := "reported a price"
	if created.PricePerUnit.Valid {
		summary = fmt.Sprintf("reported %s", created.PricePerUnit.Decimal.StringFixed(2))
		if created.UnitType != nil {
			summary += " per " + *created.UnitType
		}
	}

	activity := entity.Activity{
		Kind:       entity.ActivityPrice,
		ID:         created.ID,
		VendorID:   created.VendorID,
		UserID:     created.ReportedBy,
		Summary:    summary,
		OccurredAt: created.ReportedAt,
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

func (s *Service) Update(ctx context.Context, user contextx.UserID, id string, upd entity.PriceUpdate) (entity.Price, error) {
	price, err := s.repo.Update(ctx, id, user.String(), upd)
	if err != nil {
		return entity.Price{}, fmt.Errorf("repo.Update: %w", err)
	}

	return price, nil
}

func (s *Service) Delete(ctx context.Context, user contextx.UserID, id string) (entity.Price, error) {
	price, err := s.repo.Delete(ctx, id, user.String())
	if err != nil {
		return entity.Price{}, fmt.Errorf("repo.Delete: %w", err)
	}

	return price, nil
}
