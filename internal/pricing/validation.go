package pricing

import (
	"fmt"
	"strconv"

	"carrental-backend/internal/domain"
)

// ValidationError is a write-time rejection whose Message is shown to the admin as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func formatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatKmRange(t domain.TransferPricingTier) string {
	if t.MaxExtraKm == nil {
		return formatKm(t.MinExtraKm) + "+ km"
	}
	return formatKm(t.MinExtraKm) + "-" + formatKm(*t.MaxExtraKm) + " km"
}

func transferRangesOverlap(a, b domain.TransferPricingTier) bool {
	aBelowB := b.MaxExtraKm == nil || a.MinExtraKm < *b.MaxExtraKm
	bBelowA := a.MaxExtraKm == nil || b.MinExtraKm < *a.MaxExtraKm
	return aBelowB && bBelowA
}

// ValidateTransferTier checks a tier about to be written against the tiers already stored.
// The candidate's own row (same ID) is ignored so updates do not collide with themselves.
func ValidateTransferTier(candidate domain.TransferPricingTier, existing []domain.TransferPricingTier) error {
	if candidate.MinExtraKm < 0 {
		return &ValidationError{Field: "minExtraKm", Message: "Min KM cannot be negative"}
	}
	if candidate.MaxExtraKm != nil && *candidate.MaxExtraKm <= candidate.MinExtraKm {
		return &ValidationError{Field: "maxExtraKm", Message: "Max KM must be greater than Min KM"}
	}
	if candidate.PricePerKm <= 0 {
		return &ValidationError{Field: "pricePerKm", Message: "Price per KM must be positive"}
	}
	if !candidate.IsActive {
		return nil
	}

	for _, t := range existing {
		if !t.IsActive || (candidate.ID != 0 && t.ID == candidate.ID) {
			continue
		}
		if transferRangesOverlap(candidate, t) {
			return &ValidationError{
				Field:   "minExtraKm",
				Message: fmt.Sprintf("Range %s overlaps with existing tier %s", formatKmRange(candidate), formatKmRange(t)),
			}
		}
	}
	return nil
}

func formatDayRange(t domain.PricingTier) string {
	if t.MaxDays == nil {
		return fmt.Sprintf("%d+ days", t.MinDays)
	}
	return fmt.Sprintf("%d-%d days", t.MinDays, *t.MaxDays)
}

func dayRangesOverlap(a, b domain.PricingTier) bool {
	aBelowB := b.MaxDays == nil || a.MinDays <= *b.MaxDays
	bBelowA := a.MaxDays == nil || b.MinDays <= *a.MaxDays
	return aBelowB && bBelowA
}

// ValidatePricingTiers checks a vehicle's whole tier table before it replaces the stored one.
func ValidatePricingTiers(tiers []domain.PricingTier) error {
	for i, t := range tiers {
		if t.MinDays < 1 {
			return &ValidationError{Field: "minDays", Message: "Min days must be at least 1"}
		}
		if t.MaxDays != nil && *t.MaxDays < t.MinDays {
			return &ValidationError{Field: "maxDays", Message: "Max days must be greater than or equal to Min days"}
		}
		if t.PricePerDay < 0 {
			return &ValidationError{Field: "pricePerDay", Message: "Price per day cannot be negative"}
		}
		for _, other := range tiers[:i] {
			if dayRangesOverlap(t, other) {
				return &ValidationError{
					Field:   "minDays",
					Message: fmt.Sprintf("Range %s overlaps with existing tier %s", formatDayRange(t), formatDayRange(other)),
				}
			}
		}
	}
	return nil
}
