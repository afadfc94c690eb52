package pricing

import "carrental-backend/internal/domain"

// TierMatch is the outcome of resolving a trip's per-day rate.
// Fallback is set when tiers exist but none could be applied to the day count.
type TierMatch struct {
	PricePerDay float64
	Tier        *domain.PricingTier
	Fallback    bool
}

func flatRate(v *domain.Vehicle) float64 {
	if v == nil || v.PricePerDay == nil {
		return 0
	}
	return *v.PricePerDay
}

// ResolveTripRate selects the per-day rate for a rental of the given length.
//
// Among tiers covering days the one with the highest MinDays wins. When days is past every
// bounded tier, the highest-range tier applies. Gaps or lengths below every tier fall back
// to the flat PricePerDay (or 0) and are flagged.
func ResolveTripRate(v *domain.Vehicle, days int) TierMatch {
	if v == nil || len(v.PricingTiers) == 0 {
		return TierMatch{PricePerDay: flatRate(v)}
	}

	var covering, highest *domain.PricingTier
	aboveAll := true
	for i := range v.PricingTiers {
		t := &v.PricingTiers[i]
		if t.Covers(days) && (covering == nil || t.MinDays > covering.MinDays) {
			covering = t
		}
		if highest == nil || t.MinDays > highest.MinDays {
			highest = t
		}
		if t.MaxDays == nil || days <= *t.MaxDays {
			aboveAll = false
		}
	}

	switch {
	case covering != nil:
		return TierMatch{PricePerDay: covering.PricePerDay, Tier: covering}
	case aboveAll:
		return TierMatch{PricePerDay: highest.PricePerDay, Tier: highest}
	default:
		return TierMatch{PricePerDay: flatRate(v), Fallback: true}
	}
}

// ReferenceDailyRate is the entry-level rate: the tier with the smallest MinDays.
// It is the SCDW cost basis and the advertised from-price, regardless of trip length.
func ReferenceDailyRate(v *domain.Vehicle) float64 {
	if v == nil || len(v.PricingTiers) == 0 {
		return flatRate(v)
	}
	entry := v.PricingTiers[0]
	for _, t := range v.PricingTiers[1:] {
		if t.MinDays < entry.MinDays {
			entry = t
		}
	}
	return entry.PricePerDay
}
