package photos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/logx"
)

const (
	defaultExtension   = ".jpg"
	defaultContentType = "image/jpeg"
)

type Repository interface {
	List(ctx context.Context, page value.Page) ([]entity.Photo, error)
	Create(ctx context.Context, photo entity.Photo) (entity.Photo, error)
	Update(ctx context.Context, id, owner string, upd entity.PhotoUpdate) (entity.Photo, error)
	Delete(ctx context.Context, id, owner string) (entity.Photo, error)
}

// Storage puts objects into the public photo bucket.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (publicURL string, err error)
}

type ActivityPublisher interface {
	Publish(ctx context.Context, activity entity.Activity) error
}

type Service struct {
	repo     Repository
	storage  Storage
	activity ActivityPublisher
	now      func() time.Time
	suffix   func() string
}

func NewService(repo Repository, storage Storage, activity ActivityPublisher) *Service {
	return &Service{
		repo:     repo,
		storage:  storage,
		activity: activity,
		now:      time.Now,
		suffix:   uuid.NewString,
	}
}

// WithClock replaces the clock object keys are derived from.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, page value.Page) ([]entity.Photo, error) {
	photos, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return photos, nil
}

// Create stores metadata of a photo hosted elsewhere.
func (s *Service) Create(ctx context.Context, user contextx.UserID, photo entity.Photo) (entity.Photo, error) {
	photo.UploadedBy = user.String()

	created, err := s.repo.Create(ctx, photo)
	if err != nil {
		return entity.Photo{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.announce(ctx, created)

	return created, nil
}

// Upload puts the file into object storage and records a photo row pointing
// at its public URL.
func (s *Service) Upload(ctx context.Context, user contextx.UserID, upload entity.PhotoUpload) (entity.Photo, error) {
	if upload.VendorID == "" {
		return entity.Photo{}, domain.NewInvalidArgumentError("vendor_id is required")
	}

	if upload.File == nil {
		return entity.Photo{}, domain.NewInvalidArgumentError("file is required")
	}

	key := s.objectKey(upload.VendorID, upload.File.Name)
	contentType := lo.CoalesceOrEmpty(upload.File.ContentType, defaultContentType)

	publicURL, err := s.storage.Upload(ctx, key, contentType, upload.File.Body)
	if err != nil {
		return entity.Photo{}, domain.WrapError(err, errcodes.StorageUploadFailed, err.Error())
	}

	logger(ctx).Info(
		"photo stored",
		slog.String(logx.FieldVendorID, upload.VendorID),
		slog.String("key", key),
		slog.Int64("size", upload.File.Size),
	)

	created, err := s.repo.Create(ctx, entity.Photo{
		ReviewID:   upload.ReviewID,
		VendorID:   upload.VendorID,
		BerryID:    upload.BerryID,
		PhotoURL:   &publicURL,
		Caption:    upload.Caption,
		UploadedBy: user.String(),
	})
	if err != nil {
		return entity.Photo{}, domain.WrapError(err, errcodes.PhotoInsertFailed, errorMessage(err))
	}

	s.announce(ctx, created)

	return created, nil
}

func (s *Service) Update(ctx context.Context, user contextx.UserID, id string, upd entity.PhotoUpdate) (entity.Photo, error) {
	photo, err := s.repo.Update(ctx, id, user.String(), upd)
	if err != nil {
		return entity.Photo{}, fmt.Errorf("repo.Update: %w", err)
	}

	return photo, nil
}

func (s *Service) Delete(ctx context.Context, user contextx.UserID, id string) (entity.Photo, error) {
	photo, err := s.repo.Delete(ctx, id, user.String())
	if err != nil {
		return entity.Photo{}, fmt.Errorf("repo.Delete: %w", err)
	}

	return photo, nil
}

// objectKey is {vendor}/{YYYY}/{MM}/{unix ms}-{random}{ext}, month in UTC.
func (s *Service) objectKey(vendorID, fileName string) string {
	now := s.now().UTC()

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = defaultExtension
	}

	return fmt.Sprintf("%s/%04d/%02d/%d-%s%s", vendorID, now.Year(), int(now.Month()), now.UnixMilli(), s.suffix(), ext)
}

func (s *Service) announce(ctx context.Context, photo entity.Photo) {
	activity := entity.Activity{
		Kind:       entity.ActivityPhoto,
		ID:         photo.ID,
		VendorID:   photo.VendorID,
		UserID:     photo.UploadedBy,
		Summary:    lo.FromPtrOr(photo.Caption, "uploaded a photo"),
		OccurredAt: photo.UploadedAt,
	}

	if err := s.activity.Publish(ctx, activity); err != nil {
		logger(ctx).Error(
			"activity.Publish",
			slog.String(logx.FieldVendorID, photo.VendorID),
			logx.Error(err),
		)
	}
}

// errorMessage prefers the client facing message of a wrapped AppError.
func errorMessage(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}
