package matching

import (
	"github.com/shopspring/decimal"
)

const (
	// PricePrecision is the maximum number of fractional digits of a price.
	PricePrecision = 2

	// VolumePrecision is the maximum number of fractional digits of a volume.
	VolumePrecision = 8
)

// roundVolume rounds the given volume to VolumePrecision fractional digits
// (half away from zero). Every volume mutation goes through this function
// immediately so floating precision never drifts across repeated partial fills.
func roundVolume(v decimal.Decimal) decimal.Decimal {
	return v.Round(VolumePrecision)
}

// fitsPrecision reports whether the given value carries at most the given
// number of fractional digits.
func fitsPrecision(v decimal.Decimal, precision int32) bool {
	return v.Round(precision).Equal(v)
}
