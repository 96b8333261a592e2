// Wire types of the public REST API. Field names follow the database columns
// clients already consume.
package rest

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

//nolint:gochecknoinits
func init() {
	// Prices travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Error is the body of every failed response.
type Error struct {
	// Error is a machine readable kind, e.g. NotFound or CONFIG_ERROR.
	Error string `json:"error"`

	// Message is a human readable description.
	Message string `json:"message"`
}

type Health struct {
	OK  bool      `json:"ok"`
	Now time.Time `json:"now"`
}

type OTPStartRequest struct {
	Email           string `json:"email" validate:"required,email"`
	CreateIfMissing *bool  `json:"create_if_missing"`
}

type OTPVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// AuthSession is passed through from the auth service. Absent parts are null.
type AuthSession struct {
	User    json.RawMessage `json:"user"`
	Session json.RawMessage `json:"session"`
}

type OTPStartResponse struct {
	OK   bool        `json:"ok"`
	Data AuthSession `json:"data"`
}

type Berry struct {
	BerryID     string    `json:"berry_id"`
	BerryName   string    `json:"berry_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vendor struct {
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Address    *string   `json:"address"`
	City       *string   `json:"city"`
	State      *string   `json:"state"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}

// VendorSummary is a vendor with its derived fields. Both are null when there
// were no facts to derive them from.
type VendorSummary struct {
	Vendor

	QualityScore *float64   `json:"quality_score"`
	LastUpdate   *time.Time `json:"last_update"`
}

type VendorDetail struct {
	VendorSummary

	RecentReviews []Review  `json:"recent_reviews"`
	RecentPhotos  []Photo   `json:"recent_photos"`
	Specials      []Special `json:"specials"`
}

type Special struct {
	Title string `json:"title"`
}

type Review struct {
	ReviewID        string    `json:"review_id"`
	VendorID        string    `json:"vendor_id"`
	BerryID         *string   `json:"berry_id"`
	Rating          int       `json:"rating"`
	QualityRating   *int      `json:"quality_rating"`
	FreshnessRating *int      `json:"freshness_rating"`
	ValueRating     *int      `json:"value_rating"`
	ReviewText      *string   `json:"review_text"`
	VisitedDate     *string   `json:"visited_date"`
	ReportedBy      string    `json:"reported_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewCreate struct {
	VendorID        string  `json:"vendor_id" validate:"required"`
	BerryID         *string `json:"berry_id"`
	Rating          int     `json:"rating" validate:"required,min=1,max=5"`
	QualityRating   *int    `json:"quality_rating" validate:"omitempty,min=1,max=5"`
	FreshnessRating *int    `json:"freshness_rating" validate:"omitempty,min=1,max=5"`
	ValueRating     *int    `json:"value_rating" validate:"omitempty,min=1,max=5"`
	ReviewText      *string `json:"review_text"`
	VisitedDate     *string `json:"visited_date" validate:"omitempty,datetime=2006-01-02"`
}

type ReviewUpdate struct {
	Rating          *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	QualityRating   *int    `json:"quality_rating" validate:"omitempty,min=1,max=5"`
	FreshnessRating *int    `json:"freshness_rating" validate:"omitempty,min=1,max=5"`
	ValueRating     *int    `json:"value_rating" validate:"omitempty,min=1,max=5"`
	ReviewText      *string `json:"review_text"`
	VisitedDate     *string `json:"visited_date" validate:"omitempty,datetime=2006-01-02"`
}

type Price struct {
	PriceID      string              `json:"price_id"`
	VendorID     string              `json:"vendor_id"`
	BerryID      string              `json:"berry_id"`
	PricePerUnit decimal.NullDecimal `json:"price_per_unit"`
	UnitType     *string             `json:"unit_type"`
	ReportedAt   time.Time           `json:"reported_at"`
	ReportedBy   string              `json:"reported_by"`
	CreatedAt    time.Time           `json:"created_at"`
}

type PriceCreate struct {
	VendorID     string           `json:"vendor_id" validate:"required"`
	BerryID      string           `json:"berry_id" validate:"required"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	UnitType     *string          `json:"unit_type"`
	ReportedAt   *time.Time       `json:"reported_at"`
}

type PriceUpdate struct {
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	UnitType     *string          `json:"unit_type"`
	ReportedAt   *time.Time       `json:"reported_at"`
}

type Photo struct {
	PhotoID    string    `json:"photo_id"`
	ReviewID   *string   `json:"review_id"`
	VendorID   string    `json:"vendor_id"`
	BerryID    *string   `json:"berry_id"`
	PhotoURL   *string   `json:"photo_url"`
	Thumbnail  *string   `json:"thumbnail"`
	Caption    *string   `json:"caption"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type PhotoCreate struct {
	ReviewID  *string `json:"review_id"`
	VendorID  string  `json:"vendor_id" validate:"required"`
	BerryID   *string `json:"berry_id"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,url"`
	Caption   *string `json:"caption"`
}

type PhotoUpdate struct {
	ReviewID  *string `json:"review_id"`
	VendorID  *string `json:"vendor_id" validate:"omitempty,min=1"`
	BerryID   *string `json:"berry_id"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,url"`
	Caption   *string `json:"caption"`
}

type Profile struct {
	ID            string     `json:"id"`
	Email         *string    `json:"email"`
	DisplayName   *string    `json:"display_name"`
	LocationCity  *string    `json:"location_city"`
	LocationState *string    `json:"location_state"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type ProfileUpsert struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	DisplayName   *string `json:"display_name"`
	LocationCity  *string `json:"location_city"`
	LocationState *string `json:"location_state"`
}

type PublicProfile struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
}
