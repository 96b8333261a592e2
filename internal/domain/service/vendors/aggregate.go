package vendors

import (
	"time"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/internal/domain/value"
)

type accumulator struct {
	sum          int
	count        int
	latestReview *time.Time
	latestPrice  *time.Time
}

// aggregate is safe on a nil receiver: a vendor without facts gets an empty
// Aggregate, not zeros.
func (a *accumulator) aggregate() entity.Aggregate {
	if a == nil {
		return entity.Aggregate{}
	}

	var result entity.Aggregate

	if mean, ok := value.MeanRating(a.sum, a.count); ok {
		result.QualityScore = &mean
	}

	result.LastUpdate = value.Latest(a.latestReview, a.latestPrice)

	return result
}

// fold is the first pass: it groups facts by vendor id.
func fold(reviews []entity.ReviewFact, prices []entity.PriceFact) map[string]*accumulator {
	acc := make(map[string]*accumulator)

	get := func(vendorID string) *accumulator {
		a, ok := acc[vendorID]
		if !ok {
			a = &accumulator{}
			acc[vendorID] = a
		}

		return a
	}

	for _, r := range reviews {
		a := get(r.VendorID)
		a.sum += r.Rating
		a.count++
		a.latestReview = value.Latest(a.latestReview, timeOrNil(r.CreatedAt))
	}

	for _, p := range prices {
		a := get(p.VendorID)
		a.latestPrice = value.Latest(a.latestPrice, timeOrNil(p.ReportedAt))
	}

	return acc
}

// merge is the second pass: it attaches aggregates to vendors in page order.
func merge(vendors []entity.Vendor, acc map[string]*accumulator) []entity.VendorSummary {
	result := make([]entity.VendorSummary, 0, len(vendors))

	for _, v := range vendors {
		result = append(result, entity.VendorSummary{
			Vendor:    v,
			Aggregate: acc[v.ID].aggregate(),
		})
	}

	return result
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
