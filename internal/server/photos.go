package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/samber/lo"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/httpx/req"
	"berry_buddy/pkg/lox"
	"berry_buddy/pkg/rest"
)

const (
	maxPhotoSize = 10 << 20
	// multipart overhead on top of the file itself
	maxUploadBody = maxPhotoSize + 1<<20
)

type photoService interface {
	List(ctx context.Context, page value.Page) ([]entity.Photo, error)
	Create(ctx context.Context, user contextx.UserID, photo entity.Photo) (entity.Photo, error)
	Upload(ctx context.Context, user contextx.UserID, upload entity.PhotoUpload) (entity.Photo, error)
	Update(ctx context.Context, user contextx.UserID, id string, upd entity.PhotoUpdate) (entity.Photo, error)
	Delete(ctx context.Context, user contextx.UserID, id string) (entity.Photo, error)
}

type PhotoServer struct {
	photoService photoService
}

func NewPhotoServer(photoService photoService) PhotoServer {
	return PhotoServer{
		photoService: photoService,
	}
}

func (s PhotoServer) getPhotos(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	page := pageFromQuery(r)

	photos, err := s.photoService.List(ctx, page)
	if err != nil {
		return fmt.Errorf("photoService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(photos, newRESTPhoto))

	return nil
}

func (s PhotoServer) postPhoto(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PhotoCreate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	photo, err := s.photoService.Create(ctx, currentUser(r), newDomainPhoto(request))
	if err != nil {
		return fmt.Errorf("photoService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTPhoto(photo))

	return nil
}

func (s PhotoServer) postPhotoUpload(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return multipartError(err)
	}

	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, err := readPhotoFile(r)
	if err != nil {
		return err
	}

	photo, err := s.photoService.Upload(ctx, currentUser(r), entity.PhotoUpload{
		VendorID: r.FormValue("vendor_id"),
		BerryID:  formValue(r, "berry_id"),
		ReviewID: formValue(r, "review_id"),
		Caption:  formValue(r, "caption"),
		File:     file,
	})
	if err != nil {
		return fmt.Errorf("photoService.Upload: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTPhoto(photo))

	return nil
}

func (s PhotoServer) patchPhoto(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PhotoUpdate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	photo, err := s.photoService.Update(ctx, currentUser(r), r.PathValue("id"), newDomainPhotoUpdate(request))
	if err != nil {
		return fmt.Errorf("photoService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPhoto(photo))

	return nil
}

func (s PhotoServer) deletePhoto(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	photo, err := s.photoService.Delete(ctx, currentUser(r), r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("photoService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPhoto(photo))

	return nil
}

// readPhotoFile returns nil when the form carries no file part.
func readPhotoFile(r *http.Request) (*entity.PhotoFile, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, multipartError(err)
	}

	defer file.Close()

	if header.Size > maxPhotoSize {
		return nil, fileTooLarge()
	}

	body, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return &entity.PhotoFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        body,
	}, nil
}

func formValue(r *http.Request, key string) *string {
	return lo.EmptyableToPtr(r.FormValue(key))
}

func multipartError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return fileTooLarge()
	}

	return domain.WrapError(
		fmt.Errorf("multipart: %w", err),
		errcodes.BadRequest,
		"Invalid multipart form",
	).WithKind(domain.KindInvalidArgument)
}

func fileTooLarge() error {
	return domain.NewInvalidArgumentError("File too large")
}
