package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Price struct {
	ID           string
	VendorID     string
	BerryID      string
	PricePerUnit decimal.NullDecimal
	UnitType     *string
	ReportedAt   time.Time
	ReportedBy   string
	CreatedAt    time.Time
}

// PriceFact is the projection of a price report the aggregator needs.
type PriceFact struct {
	VendorID   string
	ReportedAt time.Time
}

type PriceUpdate struct {
	PricePerUnit *decimal.Decimal
	UnitType     *string
	ReportedAt   *time.Time
}

func (u PriceUpdate) IsEmpty() bool {
	return u.PricePerUnit == nil && u.UnitType == nil && u.ReportedAt == nil
}
