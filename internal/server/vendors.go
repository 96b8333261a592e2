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

type vendorService interface {
	List(ctx context.Context, page value.Page, berryID string) ([]entity.VendorSummary, error)
	Get(ctx context.Context, id string) (entity.VendorDetail, error)
}

type VendorServer struct {
	vendorService vendorService
}

func NewVendorServer(vendorService vendorService) VendorServer {
	return VendorServer{
		vendorService: vendorService,
	}
}

func (s VendorServer) getVendors(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	page := pageFromQuery(r)

	vendors, err := s.vendorService.List(ctx, page, r.URL.Query().Get("berry_id"))
	if err != nil {
		return fmt.Errorf("vendorService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(vendors, newRESTVendorSummary))

	return nil
}

func (s VendorServer) getVendor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	vendor, err := s.vendorService.Get(ctx, r.PathValue("id"))
	if err != nil {
		return fmt.Errorf("vendorService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTVendorDetail(vendor))

	return nil
}
