package value

import "github.com/shopspring/decimal"

// MeanRating returns sum/count rounded half away from zero to 2 decimal
// places. ok is false when count is zero.
func MeanRating(sum, count int) (mean float64, ok bool) {
	if count == 0 {
		return 0, false
	}

	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(count))).
		Round(2).
		InexactFloat64(), true
}
