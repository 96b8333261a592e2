package vendors

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

const (
	// aggregationWindow bounds the facts the detail view scores a vendor by.
	aggregationWindow = 20
	recentItems       = 5
)

type VendorRepository interface {
	List(ctx context.Context, page value.Page) ([]entity.Vendor, error)
	ListByIDs(ctx context.Context, ids []string, page value.Page) ([]entity.Vendor, error)
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
}

type ReviewRepository interface {
	FactsByVendors(ctx context.Context, vendorIDs []string) ([]entity.ReviewFact, error)
	RecentFactsByVendor(ctx context.Context, vendorID string, limit int) ([]entity.ReviewFact, error)
	RecentByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Review, error)
}

type PriceRepository interface {
	VendorIDsByBerry(ctx context.Context, berryID string) ([]string, error)
	FactsByVendors(ctx context.Context, vendorIDs []string) ([]entity.PriceFact, error)
	RecentFactsByVendor(ctx context.Context, vendorID string, limit int) ([]entity.PriceFact, error)
}

type PhotoRepository interface {
	RecentByVendor(ctx context.Context, vendorID string, limit int) ([]entity.Photo, error)
}

// Service serves vendors enriched with a quality score and a last update
// time derived from their reviews and price reports.
type Service struct {
	vendorRepo VendorRepository
	reviewRepo ReviewRepository
	priceRepo  PriceRepository
	photoRepo  PhotoRepository
}

func NewService(
	vendorRepo VendorRepository,
	reviewRepo ReviewRepository,
	priceRepo PriceRepository,
	photoRepo PhotoRepository,
) *Service {
	return &Service{
		vendorRepo: vendorRepo,
		reviewRepo: reviewRepo,
		priceRepo:  priceRepo,
		photoRepo:  photoRepo,
	}
}

// List returns one page of vendors. With a non-empty berryID only vendors that
// have a price report for that berry are listed. Scores are computed over all
// facts of the vendors on the page and nothing else.
func (s *Service) List(ctx context.Context, page value.Page, berryID string) ([]entity.VendorSummary, error) {
	vendors, err := s.listPage(ctx, page, berryID)
	if err != nil {
		return nil, err
	}

	if len(vendors) == 0 {
		return []entity.VendorSummary{}, nil
	}

	ids := lo.Map(vendors, func(v entity.Vendor, _ int) string { return v.ID })

	var (
		reviews []entity.ReviewFact
		prices  []entity.PriceFact
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if reviews, err = s.reviewRepo.FactsByVendors(gctx, ids); err != nil {
			return fmt.Errorf("reviewRepo.FactsByVendors: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if prices, err = s.priceRepo.FactsByVendors(gctx, ids); err != nil {
			return fmt.Errorf("priceRepo.FactsByVendors: %w", err)
		}

		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	logger(ctx).Debug(
		"vendor page aggregated",
		slog.Int("vendors", len(vendors)),
		slog.Int("reviews", len(reviews)),
		slog.Int("prices", len(prices)),
	)

	return merge(vendors, fold(reviews, prices)), nil
}

func (s *Service) listPage(ctx context.Context, page value.Page, berryID string) ([]entity.Vendor, error) {
	if berryID == "" {
		vendors, err := s.vendorRepo.List(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("vendorRepo.List: %w", err)
		}

		return vendors, nil
	}

	ids, err := s.priceRepo.VendorIDsByBerry(ctx, berryID)
	if err != nil {
		return nil, fmt.Errorf("priceRepo.VendorIDsByBerry: %w", err)
	}

	ids = lo.Uniq(lo.Compact(ids))
	if len(ids) == 0 {
		return nil, nil
	}

	vendors, err := s.vendorRepo.ListByIDs(ctx, ids, page)
	if err != nil {
		return nil, fmt.Errorf("vendorRepo.ListByIDs: %w", err)
	}

	return vendors, nil
}

// Get returns one vendor with its recent activity. The quality score here
// is the mean of the latest aggregationWindow ratings only, so it can differ
// from the score List reports for the same vendor.
func (s *Service) Get(ctx context.Context, id string) (entity.VendorDetail, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return entity.VendorDetail{}, fmt.Errorf("vendorRepo.GetByID: %w", err)
	}

	var (
		reviewWindow []entity.ReviewFact
		priceWindow  []entity.PriceFact
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if reviewWindow, err = s.reviewRepo.RecentFactsByVendor(gctx, id, aggregationWindow); err != nil {
			return fmt.Errorf("reviewRepo.RecentFactsByVendor: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if priceWindow, err = s.priceRepo.RecentFactsByVendor(gctx, id, aggregationWindow); err != nil {
			return fmt.Errorf("priceRepo.RecentFactsByVendor: %w", err)
		}

		return nil
	})

	if err = g.Wait(); err != nil {
		return entity.VendorDetail{}, err //nolint:wrapcheck
	}

	var (
		recentReviews []entity.Review
		recentPhotos  []entity.Photo
	)

	g, gctx = errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if recentReviews, err = s.reviewRepo.RecentByVendor(gctx, id, recentItems); err != nil {
			return fmt.Errorf("reviewRepo.RecentByVendor: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error
		if recentPhotos, err = s.photoRepo.RecentByVendor(gctx, id, recentItems); err != nil {
			return fmt.Errorf("photoRepo.RecentByVendor: %w", err)
		}

		return nil
	})

	if err = g.Wait(); err != nil {
		return entity.VendorDetail{}, err //nolint:wrapcheck
	}

	return entity.VendorDetail{
		Vendor:        *vendor,
		Aggregate:     fold(reviewWindow, priceWindow)[vendor.ID].aggregate(),
		RecentReviews: lo.Ternary(recentReviews == nil, []entity.Review{}, recentReviews),
		RecentPhotos:  lo.Ternary(recentPhotos == nil, []entity.Photo{}, recentPhotos),
		Specials:      []entity.Special{},
	}, nil
}
