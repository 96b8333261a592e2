package server

import (
	"context"
	"fmt"
	"net/http"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/lox"
)

type berryService interface {
	List(ctx context.Context, page value.Page) ([]entity.Berry, error)
}

type BerryServer struct {
	berryService berryService
}

func NewBerryServer(berryService berryService) BerryServer {
	return BerryServer{
		berryService: berryService,
	}
}

func (s BerryServer) getBerries(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	page := pageFromQuery(r)

	berries, err := s.berryService.List(ctx, page)
	if err != nil {
		return fmt.Errorf("berryService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(berries, newRESTBerry))

	return nil
}
