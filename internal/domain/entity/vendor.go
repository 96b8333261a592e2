package entity

import "time"

type Vendor struct {
	ID        string
	Name      string
	Address   *string
	City      *string
	State     *string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// Aggregate holds the values derived per vendor per request. A nil field
// means there were no facts to derive it from.
type Aggregate struct {
	QualityScore *float64
	LastUpdate   *time.Time
}

type VendorSummary struct {
	Vendor
	Aggregate
}

type VendorDetail struct {
	Vendor
	Aggregate
	RecentReviews []Review
	RecentPhotos  []Photo
	Specials      []Special
}

// Special is a vendor promotion. None are recorded yet; the detail view
// always carries an empty list.
type Special struct {
	Title string
}
