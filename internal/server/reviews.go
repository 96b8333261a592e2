package server

import (
	"context"
	"fmt"
	"net/http"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/httpx/req"
	"berry_buddy/pkg/lox"
	"berry_buddy/pkg/rest"
)

type reviewService interface {
	List(ctx context.Context, page value.Page) ([]entity.Review, error)
	Create(ctx context.Context, user contextx.UserID, review entity.Review) (entity.Review, error)
	Update(ctx context.Context, user contextx.UserID, id string, upd entity.ReviewUpdate) (entity.Review, error)
	Delete(ctx context.Context, user contextx.UserID, id string) (entity.Review, error)
}

type ReviewServer struct {
	reviewService reviewService
}

func NewReviewServer(reviewService reviewService) ReviewServer {
	return ReviewServer{
		reviewService: reviewService,
	}
}

func (s ReviewServer) getReviews(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	page := pageFromQuery(r)

	reviews, err := s.reviewService.List(ctx, page)
	if err != nil {
		return fmt.Errorf("reviewService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(reviews, newRESTReview))

	return nil
}

func (s ReviewServer) postReview(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ReviewCreate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	review, err := newDomainReview(request)
	if err != nil {
		return fmt.Errorf("newDomainReview: %w", err)
	}

	review, err = s.reviewService.Create(ctx, currentUser(r), review)
	if err != nil {
		return fmt.Errorf("reviewService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTReview(review))

	return nil
}

func (s ReviewServer) patchReview(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ReviewUpdate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	upd, err := newDomainReviewUpdate(request)
	if err != nil {
		return fmt.Errorf("newDomainReviewUpdate: %w", err)
	}

	review, err := s.reviewService.Update(ctx, currentUser(r), r.PathValue("id"), upd)
	if err != nil {
		return fmt.Errorf("reviewService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTReview(review))

	return nil
}

func (s ReviewServer) deleteReview(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	review, err := s.reviewService.Delete(ctx, currentUser(r), r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("reviewService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTReview(review))

	return nil
}
