package entity

import "time"

type Review struct {
	ID              string
	VendorID        string
	BerryID         *string
	Rating          int
	QualityRating   *int
	FreshnessRating *int
	ValueRating     *int
	ReviewText      *string
	VisitedDate     *time.Time
	ReportedBy      string
	CreatedAt       time.Time
}

// ReviewFact is the projection of a review the aggregator needs.
type ReviewFact struct {
	VendorID  string
	Rating    int
	CreatedAt time.Time
}

type ReviewUpdate struct {
	Rating          *int
	QualityRating   *int
	FreshnessRating *int
	ValueRating     *int
	ReviewText      *string
	VisitedDate     *time.Time
}

func (u ReviewUpdate) IsEmpty() bool {
	return u == ReviewUpdate{}
}
