package pricing

import (
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

const (
	IncludedTransferKm        = 15
	DefaultTransferPricePerKm = 1.0
)

// TransferQuote amounts are in EUR rounded to cents. DistanceCharge is per leg.
type TransferQuote struct {
	TransferType   domain.TransferType `json:"transferType"`
	DistanceKm     float64             `json:"distanceKm"`
	BaseFare       float64             `json:"baseFare"`
	ExtraKm        float64             `json:"extraKm"`
	TierPricePerKm float64             `json:"tierPricePerKm"`
	DistanceCharge float64             `json:"distanceCharge"`
	TotalPrice     float64             `json:"totalPrice"`
}

// ResolveTransferRate finds the active tier containing extraKm, else the default per-km rate.
func ResolveTransferRate(tiers []domain.TransferPricingTier, extraKm float64) float64 {
	var match *domain.TransferPricingTier
	for i := range tiers {
		t := &tiers[i]
		if !t.IsActive || !t.Contains(extraKm) {
			continue
		}
		if match == nil || t.MinExtraKm > match.MinExtraKm {
			match = t
		}
	}
	if match == nil {
		return DefaultTransferPricePerKm
	}
	return match.PricePerKm
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ComputeTransferPrice prices a point-to-point transfer: base fare covers the first 15 km,
// the rest is charged at the banded per-km rate times the class multiplier, and round trips
// pay both legs.
func ComputeTransferPrice(distanceKm float64, class *domain.VehicleClass, tiers []domain.TransferPricingTier, transferType domain.TransferType) TransferQuote {
	if distanceKm < 0 {
		distanceKm = 0
	}
	legs := decimal.NewFromInt(1)
	if transferType == domain.TransferTypeRoundTrip {
		legs = decimal.NewFromInt(2)
	}

	baseFare := decimal.NewFromFloat(class.BaseFare())
	extraKm := decimal.Max(decimal.NewFromFloat(distanceKm).Sub(decimal.NewFromInt(IncludedTransferKm)), decimal.Zero)

	q := TransferQuote{
		TransferType: transferType,
		DistanceKm:   distanceKm,
		BaseFare:     cents(baseFare),
		ExtraKm:      cents(extraKm),
	}

	if extraKm.IsZero() {
		q.TotalPrice = cents(baseFare.Mul(legs))
		return q
	}

	rate := ResolveTransferRate(tiers, extraKm.InexactFloat64())
	charge := extraKm.Mul(decimal.NewFromFloat(rate)).Mul(decimal.NewFromFloat(class.Multiplier())).Round(2)

	q.TierPricePerKm = cents(decimal.NewFromFloat(rate))
	q.DistanceCharge = charge.InexactFloat64()
	q.TotalPrice = cents(baseFare.Add(charge).Mul(legs))
	return q
}
