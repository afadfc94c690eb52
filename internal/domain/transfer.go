package domain

type TransferType string

const (
	TransferTypeOneWay    TransferType = "one_way"
	TransferTypeRoundTrip TransferType = "round_trip"
)

func (t TransferType) Valid() bool {
	return t == TransferTypeOneWay || t == TransferTypeRoundTrip
}

// TransferPricingTier prices km beyond the included base distance. MaxExtraKm nil means unbounded.
type TransferPricingTier struct {
	ID         int32    `json:"id"`
	MinExtraKm float64  `json:"minExtraKm"`
	MaxExtraKm *float64 `json:"maxExtraKm"`
	PricePerKm float64  `json:"pricePerKm"`
	SortIndex  int32    `json:"sortIndex"`
	IsActive   bool     `json:"isActive"`
}

// Contains uses a half-open range: [MinExtraKm, MaxExtraKm).
func (t TransferPricingTier) Contains(extraKm float64) bool {
	if extraKm < t.MinExtraKm {
		return false
	}
	return t.MaxExtraKm == nil || extraKm < *t.MaxExtraKm
}
