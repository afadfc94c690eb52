package pricing

import (
	"time"

	"carrental-backend/internal/domain"
)

// RentalInput is everything the day-rental engine needs. Zero dates and empty times mean
// the customer has not filled them in yet.
type RentalInput struct {
	Vehicle             *domain.Vehicle
	SeasonalMultiplier  float64
	PickupDate          time.Time
	ReturnDate          time.Time
	PickupTime          string
	ReturnTime          string
	DeliveryLocation    string
	RestitutionLocation string
}

// PriceDetails is the quoted breakdown. Nil price fields mean "no price yet".
type PriceDetails struct {
	BasePrice             *float64 `json:"basePrice"`
	TotalPrice            *float64 `json:"totalPrice"`
	Days                  *int     `json:"days"`
	DeliveryFee           float64  `json:"deliveryFee"`
	ReturnFee             float64  `json:"returnFee"`
	TotalLocationFees     float64  `json:"totalLocationFees"`
	SeasonalMultiplier    *float64 `json:"seasonalMultiplier"`
	SeasonalAdjustment    *float64 `json:"seasonalAdjustment"`
	BasePriceBeforeSeason *float64 `json:"basePriceBeforeSeason"`
}

// Priced reports whether the details carry a price.
func (p PriceDetails) Priced() bool {
	return p.TotalPrice != nil
}

// EmptyPriceDetails is returned while input is incomplete.
func EmptyPriceDetails() PriceDetails {
	return PriceDetails{}
}

func hasTime(s string) bool {
	_, err := ParseHour(s)
	return err == nil
}

// ComputeDayRentalPrice quotes a day rental. Add-ons are not included; callers add
// ComputeAdditionalFeaturesCost on top.
func ComputeDayRentalPrice(in RentalInput) PriceDetails {
	if in.PickupDate.IsZero() || in.ReturnDate.IsZero() || !hasTime(in.PickupTime) || !hasTime(in.ReturnTime) {
		return EmptyPriceDetails()
	}
	if calendarDay(in.ReturnDate).Before(calendarDay(in.PickupDate)) {
		return EmptyPriceDetails()
	}

	multiplier := in.SeasonalMultiplier
	if multiplier <= 0 {
		multiplier = BaseMultiplier
	}

	days := CountRentalDays(in.PickupDate, in.ReturnDate, in.PickupTime, in.ReturnTime)
	basePricePerDay := ResolveTripRate(in.Vehicle, days).PricePerDay
	seasonalPricePerDay := ApplySeasonalMultiplier(basePricePerDay, multiplier)

	basePrice := float64(days) * seasonalPricePerDay
	basePriceBeforeSeason := float64(days) * basePricePerDay
	adjustment := basePrice - basePriceBeforeSeason

	deliveryFee := LocationFeeFor(in.DeliveryLocation)
	returnFee := LocationFeeFor(in.RestitutionLocation)
	locationFees := deliveryFee + returnFee
	total := basePrice + locationFees

	return PriceDetails{
		BasePrice:             &basePrice,
		TotalPrice:            &total,
		Days:                  &days,
		DeliveryFee:           deliveryFee,
		ReturnFee:             returnFee,
		TotalLocationFees:     locationFees,
		SeasonalMultiplier:    &multiplier,
		SeasonalAdjustment:    &adjustment,
		BasePriceBeforeSeason: &basePriceBeforeSeason,
	}
}
