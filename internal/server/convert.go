package server

import (
	"encoding/json"
	"fmt"
	"time"

	"berry_buddy/internal/domain"
	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/lox"
	"berry_buddy/pkg/rest"
)

const dateLayout = time.DateOnly

var jsonNull = json.RawMessage("null") //nolint:gochecknoglobals

func newRESTAuthSession(result entity.AuthResult) rest.AuthSession {
	session := rest.AuthSession{User: result.User, Session: result.Session}

	if len(session.User) == 0 {
		session.User = jsonNull
	}

	if len(session.Session) == 0 {
		session.Session = jsonNull
	}

	return session
}

func newRESTBerry(berry entity.Berry) rest.Berry {
	return rest.Berry{
		BerryID:     berry.ID,
		BerryName:   berry.Name,
		Description: berry.Description,
		CreatedAt:   berry.CreatedAt,
	}
}

func newRESTVendor(vendor entity.Vendor) rest.Vendor {
	return rest.Vendor{
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Address:    vendor.Address,
		City:       vendor.City,
		State:      vendor.State,
		Latitude:   vendor.Latitude,
		Longitude:  vendor.Longitude,
		CreatedAt:  vendor.CreatedAt,
	}
}

func newRESTVendorSummary(summary entity.VendorSummary) rest.VendorSummary {
	return rest.VendorSummary{
		Vendor:       newRESTVendor(summary.Vendor),
		QualityScore: summary.QualityScore,
		LastUpdate:   summary.LastUpdate,
	}
}

func newRESTVendorDetail(detail entity.VendorDetail) rest.VendorDetail {
	return rest.VendorDetail{
		VendorSummary: rest.VendorSummary{
			Vendor:       newRESTVendor(detail.Vendor),
			QualityScore: detail.QualityScore,
			LastUpdate:   detail.LastUpdate,
		},
		RecentReviews: lox.Map(detail.RecentReviews, newRESTReview),
		RecentPhotos:  lox.Map(detail.RecentPhotos, newRESTPhoto),
		Specials: lox.Map(detail.Specials, func(s entity.Special) rest.Special {
			return rest.Special{Title: s.Title}
		}),
	}
}

func newRESTReview(review entity.Review) rest.Review {
	var visited *string

	if review.VisitedDate != nil {
		s := review.VisitedDate.Format(dateLayout)
		visited = &s
	}

	return rest.Review{
		ReviewID:        review.ID,
		VendorID:        review.VendorID,
		BerryID:         review.BerryID,
		Rating:          review.Rating,
		QualityRating:   review.QualityRating,
		FreshnessRating: review.FreshnessRating,
		ValueRating:     review.ValueRating,
		ReviewText:      review.ReviewText,
		VisitedDate:     visited,
		ReportedBy:      review.ReportedBy,
		CreatedAt:       review.CreatedAt,
	}
}

func newDomainReview(request rest.ReviewCreate) (entity.Review, error) {
	visited, err := parseDate(request.VisitedDate)
	if err != nil {
		return entity.Review{}, err
	}

	return entity.Review{
		VendorID:        request.VendorID,
		BerryID:         request.BerryID,
		Rating:          request.Rating,
		QualityRating:   request.QualityRating,
		FreshnessRating: request.FreshnessRating,
		ValueRating:     request.ValueRating,
		ReviewText:      request.ReviewText,
		VisitedDate:     visited,
	}, nil
}

func newDomainReviewUpdate(request rest.ReviewUpdate) (entity.ReviewUpdate, error) {
	visited, err := parseDate(request.VisitedDate)
	if err != nil {
		return entity.ReviewUpdate{}, err
	}

	return entity.ReviewUpdate{
		Rating:          request.Rating,
		QualityRating:   request.QualityRating,
		FreshnessRating: request.FreshnessRating,
		ValueRating:     request.ValueRating,
		ReviewText:      request.ReviewText,
		VisitedDate:     visited,
	}, nil
}

func newRESTPrice(price entity.Price) rest.Price {
	return rest.Price{
		PriceID:      price.ID,
		VendorID:     price.VendorID,
		BerryID:      price.BerryID,
		PricePerUnit: price.PricePerUnit,
		UnitType:     price.UnitType,
		ReportedAt:   price.ReportedAt,
		ReportedBy:   price.ReportedBy,
		CreatedAt:    price.CreatedAt,
	}
}

// newDomainPrice leaves ReportedAt zero when the client sent none; the
// service stamps it.
func newDomainPrice(request rest.PriceCreate) entity.Price {
	price := entity.Price{
		VendorID: request.VendorID,
		BerryID:  request.BerryID,
		UnitType: request.UnitType,
	}

	if request.PricePerUnit != nil {
		price.PricePerUnit.Decimal = *request.PricePerUnit
		price.PricePerUnit.Valid = true
	}

	if request.ReportedAt != nil {
		price.ReportedAt = *request.ReportedAt
	}

	return price
}

func newDomainPriceUpdate(request rest.PriceUpdate) entity.PriceUpdate {
	return entity.PriceUpdate{
		PricePerUnit: request.PricePerUnit,
		UnitType:     request.UnitType,
		ReportedAt:   request.ReportedAt,
	}
}

func newRESTPhoto(photo entity.Photo) rest.Photo {
	return rest.Photo{
		PhotoID:    photo.ID,
		ReviewID:   photo.ReviewID,
		VendorID:   photo.VendorID,
		BerryID:    photo.BerryID,
		PhotoURL:   photo.PhotoURL,
		Thumbnail:  photo.Thumbnail,
		Caption:    photo.Caption,
		UploadedBy: photo.UploadedBy,
		UploadedAt: photo.UploadedAt,
	}
}

func newDomainPhoto(request rest.PhotoCreate) entity.Photo {
	return entity.Photo{
		ReviewID:  request.ReviewID,
		VendorID:  request.VendorID,
		BerryID:   request.BerryID,
		PhotoURL:  request.PhotoURL,
		Thumbnail: request.Thumbnail,
		Caption:   request.Caption,
	}
}

func newDomainPhotoUpdate(request rest.PhotoUpdate) entity.PhotoUpdate {
	return entity.PhotoUpdate{
		ReviewID:  request.ReviewID,
		VendorID:  request.VendorID,
		BerryID:   request.BerryID,
		PhotoURL:  request.PhotoURL,
		Thumbnail: request.Thumbnail,
		Caption:   request.Caption,
	}
}

func newRESTProfile(profile entity.Profile) rest.Profile {
	return rest.Profile{
		ID:            profile.ID,
		Email:         profile.Email,
		DisplayName:   profile.DisplayName,
		LocationCity:  profile.LocationCity,
		LocationState: profile.LocationState,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}

func newDomainProfileUpsert(request rest.ProfileUpsert) entity.ProfileUpsert {
	return entity.ProfileUpsert{
		Email:         request.Email,
		DisplayName:   request.DisplayName,
		LocationCity:  request.LocationCity,
		LocationState: request.LocationState,
	}
}

func newRESTPublicProfile(profile entity.PublicProfile) rest.PublicProfile {
	return rest.PublicProfile{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
	}
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil
	}

	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("time.Parse: %w", err),
			errcodes.BadRequest,
			"visited_date must be YYYY-MM-DD",
		).WithKind(domain.KindInvalidArgument)
	}

	return &t, nil
}
