package pricing

import (
	"fmt"
	"math"

	"carrental-backend/internal/domain"
)

const (
	SnowChainsPerDay      = 3.0
	ChildSeatPerDay       = 3.0
	MaxChildSeatsPerGroup = 2
	ExtraKmPackageSize    = 50
	MaxExtraKmPackages    = 100

	scdwIncludedDays  = 3
	scdwBlockDays     = 3
	scdwFirstBlockFee = 6.0
	scdwNextBlockFee  = 5.0
)

// AdditionalFeaturesBreakdown lists each add-on's cost for the whole rental.
type AdditionalFeaturesBreakdown struct {
	SCDW            float64 `json:"scdw"`
	SnowChains      float64 `json:"snowChains"`
	ChildSeat1to4   float64 `json:"childSeat1to4"`
	ChildSeat5to12  float64 `json:"childSeat5to12"`
	ExtraKilometers float64 `json:"extraKilometers"`
	ExtraKm         int     `json:"extraKm"`
	Total           float64 `json:"total"`
}

// SCDWCost prices the damage waiver: 2 x the reference rate covers the first 3 days,
// then every started block of 3 days adds 6 for the first block and 5 for each one after.
func SCDWCost(days int, referenceDailyRate float64) float64 {
	if days <= 0 {
		return 0
	}
	cost := 2 * referenceDailyRate
	if days <= scdwIncludedDays {
		return cost
	}
	blocks := int(math.Ceil(float64(days-scdwIncludedDays) / scdwBlockDays))
	return cost + scdwFirstBlockFee + scdwNextBlockFee*float64(blocks-1)
}

// ExtraKilometersCost charges whole 50 km packages only.
func ExtraKilometersCost(extraKm int, pricePer50km float64) float64 {
	if extraKm <= 0 {
		return 0
	}
	packages := extraKm / ExtraKmPackageSize
	if packages > MaxExtraKmPackages {
		packages = MaxExtraKmPackages
	}
	return float64(packages) * pricePer50km
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeAdditionalFeaturesCost prices each selected add-on independently and sums them.
// Counts outside their allowed range are clamped; use ValidateSelection to reject them earlier.
func ComputeAdditionalFeaturesCost(sel domain.AdditionalFeaturesSelection, days int, referenceDailyRate, pricePer50km float64) AdditionalFeaturesBreakdown {
	var b AdditionalFeaturesBreakdown
	if days <= 0 {
		return b
	}
	d := float64(days)

	if sel.SCDWSelected {
		b.SCDW = SCDWCost(days, referenceDailyRate)
	}
	if sel.SnowChainsSelected {
		b.SnowChains = d * SnowChainsPerDay
	}
	b.ChildSeat1to4 = float64(clamp(sel.ChildSeat1to4Count, 0, MaxChildSeatsPerGroup)) * d * ChildSeatPerDay
	b.ChildSeat5to12 = float64(clamp(sel.ChildSeat5to12Count, 0, MaxChildSeatsPerGroup)) * d * ChildSeatPerDay

	b.ExtraKm = clamp(sel.ExtraKilometersCount, 0, MaxExtraKmPackages) * ExtraKmPackageSize
	b.ExtraKilometers = ExtraKilometersCost(b.ExtraKm, pricePer50km)

	b.Total = b.SCDW + b.SnowChains + b.ChildSeat1to4 + b.ChildSeat5to12 + b.ExtraKilometers
	return b
}

// DeductibleAmount is zero with SCDW, otherwise the refundable warranty.
func DeductibleAmount(scdwSelected bool, warranty float64) float64 {
	if scdwSelected {
		return 0
	}
	return warranty
}

// ValidateSelection rejects add-on counts outside the sellable range.
func ValidateSelection(sel domain.AdditionalFeaturesSelection) error {
	if sel.ChildSeat1to4Count < 0 || sel.ChildSeat1to4Count > MaxChildSeatsPerGroup {
		return &ValidationError{Field: "childSeat1to4Count", Message: fmt.Sprintf("Child seats (1-4 years) must be between 0 and %d", MaxChildSeatsPerGroup)}
	}
	if sel.ChildSeat5to12Count < 0 || sel.ChildSeat5to12Count > MaxChildSeatsPerGroup {
		return &ValidationError{Field: "childSeat5to12Count", Message: fmt.Sprintf("Child seats (5-12 years) must be between 0 and %d", MaxChildSeatsPerGroup)}
	}
	if sel.ExtraKilometersCount < 0 || sel.ExtraKilometersCount > MaxExtraKmPackages {
		return &ValidationError{Field: "extraKilometersCount", Message: fmt.Sprintf("Extra kilometers must be between 0 and %d km", MaxExtraKmPackages*ExtraKmPackageSize)}
	}
	return nil
}
