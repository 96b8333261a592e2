package persistence

import (
	"time"

	"github.com/shopspring/decimal"

	"berry_buddy/internal/domain/entity"
)

const (
	berryColumns   = `berry_id, berry_name, description, created_at`
	vendorColumns  = `vendor_id, vendor_name, address, city, state, latitude, longitude, created_at`
	reviewColumns  = `review_id, vendor_id, berry_id, rating, quality_rating, freshness_rating, value_rating, review_text, visited_date, reported_by, created_at`
	priceColumns   = `price_id, vendor_id, berry_id, price_per_unit, unit_type, reported_at, reported_by, created_at`
	photoColumns   = `photo_id, review_id, vendor_id, berry_id, photo_url, thumbnail, caption, uploaded_by, uploaded_at`
	profileColumns = `id, email, display_name, location_city, location_state, created_at, updated_at`
)

type berrySchema struct {
	ID          string    `db:"berry_id"`
	Name        string    `db:"berry_name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s berrySchema) toDomain() entity.Berry {
	return entity.Berry{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// vendorSchema is a row of the vendor table.
type vendorSchema struct {
	ID        string    `db:"vendor_id"`
	Name      string    `db:"vendor_name"`
	Address   *string   `db:"address"`
	City      *string   `db:"city"`
	State     *string   `db:"state"`
	Latitude  *float64  `db:"latitude"`
	Longitude *float64  `db:"longitude"`
	CreatedAt time.Time `db:"created_at"`
}

func (s vendorSchema) toDomain() entity.Vendor {
	return entity.Vendor{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		CreatedAt: s.CreatedAt,
	}
}

type reviewSchema struct {
	ID              string     `db:"review_id"`
	VendorID        string     `db:"vendor_id"`
	BerryID         *string    `db:"berry_id"`
	Rating          int        `db:"rating"`
	QualityRating   *int       `db:"quality_rating"`
	FreshnessRating *int       `db:"freshness_rating"`
	ValueRating     *int       `db:"value_rating"`
	ReviewText      *string    `db:"review_text"`
	VisitedDate     *time.Time `db:"visited_date"`
	ReportedBy      string     `db:"reported_by"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (s reviewSchema) toDomain() entity.Review {
	return entity.Review{
		ID:              s.ID,
		VendorID:        s.VendorID,
		BerryID:         s.BerryID,
		Rating:          s.Rating,
		QualityRating:   s.QualityRating,
		FreshnessRating: s.FreshnessRating,
		ValueRating:     s.ValueRating,
		ReviewText:      s.ReviewText,
		VisitedDate:     s.VisitedDate,
		ReportedBy:      s.ReportedBy,
		CreatedAt:       s.CreatedAt,
	}
}

type reviewFactSchema struct {
	VendorID  string    `db:"vendor_id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (s reviewFactSchema) toDomain() entity.ReviewFact {
	return entity.ReviewFact{
		VendorID:  s.VendorID,
		Rating:    s.Rating,
		CreatedAt: s.CreatedAt,
	}
}

type priceSchema struct {
	ID           string              `db:"price_id"`
	VendorID     string              `db:"vendor_id"`
	BerryID      string              `db:"berry_id"`
	PricePerUnit decimal.NullDecimal `db:"price_per_unit"`
	UnitType     *string             `db:"unit_type"`
	ReportedAt   time.Time           `db:"reported_at"`
	ReportedBy   string              `db:"reported_by"`
	CreatedAt    time.Time           `db:"created_at"`
}

func (s priceSchema) toDomain() entity.Price {
	return entity.Price{
		ID:           s.ID,
		VendorID:     s.VendorID,
		BerryID:      s.BerryID,
		PricePerUnit: s.PricePerUnit,
		UnitType:     s.UnitType,
		ReportedAt:   s.ReportedAt,
		ReportedBy:   s.ReportedBy,
		CreatedAt:    s.CreatedAt,
	}
}

type priceFactSchema struct {
	VendorID   string    `db:"vendor_id"`
	ReportedAt time.Time `db:"reported_at"`
}

func (s priceFactSchema) toDomain() entity.PriceFact {
	return entity.PriceFact{
		VendorID:   s.VendorID,
		ReportedAt: s.ReportedAt,
	}
}

type photoSchema struct {
	ID         string    `db:"photo_id"`
	ReviewID   *string   `db:"review_id"`
	VendorID   string    `db:"vendor_id"`
	BerryID    *string   `db:"berry_id"`
	PhotoURL   *string   `db:"photo_url"`
	Thumbnail  *string   `db:"thumbnail"`
	Caption    *string   `db:"caption"`
	UploadedBy string    `db:"uploaded_by"`
	UploadedAt time.Time `db:"uploaded_at"`
}

func (s photoSchema) toDomain() entity.Photo {
	return entity.Photo{
		ID:         s.ID,
		ReviewID:   s.ReviewID,
		VendorID:   s.VendorID,
		BerryID:    s.BerryID,
		PhotoURL:   s.PhotoURL,
		Thumbnail:  s.Thumbnail,
		Caption:    s.Caption,
		UploadedBy: s.UploadedBy,
		UploadedAt: s.UploadedAt,
	}
}

type profileSchema struct {
	ID            string     `db:"id"`
	Email         *string    `db:"email"`
	DisplayName   *string    `db:"display_name"`
	LocationCity  *string    `db:"location_city"`
	LocationState *string    `db:"location_state"`
	CreatedAt     *time.Time `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

func (s profileSchema) toDomain() entity.Profile {
	return entity.Profile{
		ID:            s.ID,
		Email:         s.Email,
		DisplayName:   s.DisplayName,
		LocationCity:  s.LocationCity,
		LocationState: s.LocationState,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type publicProfileSchema struct {
	ID          string  `db:"id"`
	DisplayName *string `db:"display_name"`
}

func (s publicProfileSchema) toDomain() entity.PublicProfile {
	return entity.PublicProfile{
		ID:          s.ID,
		DisplayName: s.DisplayName,
	}
}
