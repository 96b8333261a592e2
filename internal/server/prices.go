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

type priceService interface {
	List(ctx context.Context, page value.Page) ([]entity.Price, error)
	Create(ctx context.Context, user contextx.UserID, price entity.Price) (entity.Price, error)
	Update(ctx context.Context, user contextx.UserID, id string, upd entity.PriceUpdate) (entity.Price, error)
	Delete(ctx context.Context, user contextx.UserID, id string) (entity.Price, error)
}

type PriceServer struct {
	priceService priceService
}

func NewPriceServer(priceService priceService) PriceServer {
	return PriceServer{
		priceService: priceService,
	}
}

func (s PriceServer) getPrices(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	page := pageFromQuery(r)

	prices, err := s.priceService.List(ctx, page)
	if err != nil {
		return fmt.Errorf("priceService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(prices, newRESTPrice))

	return nil
}

func (s PriceServer) postPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PriceCreate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	price, err := s.priceService.Create(ctx, currentUser(r), newDomainPrice(request))
	if err != nil {
		return fmt.Errorf("priceService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTPrice(price))

	return nil
}

func (s PriceServer) patchPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PriceUpdate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	price, err := s.priceService.Update(ctx, currentUser(r), r.PathValue("id"), newDomainPriceUpdate(request))
	if err != nil {
		return fmt.Errorf("priceService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrice(price))

	return nil
}

func (s PriceServer) deletePrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	price, err := s.priceService.Delete(ctx, currentUser(r), r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("priceService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrice(price))

	return nil
}
