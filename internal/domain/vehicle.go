package domain

// PricingTier is a day-count range with its per-day rate. MaxDays nil means unbounded.
type PricingTier struct {
	MinDays     int     `json:"minDays"`
	MaxDays     *int    `json:"maxDays"`
	PricePerDay float64 `json:"pricePerDay"`
}

// Covers reports whether the tier's range contains days.
func (t PricingTier) Covers(days int) bool {
	if days < t.MinDays {
		return false
	}
	return t.MaxDays == nil || days <= *t.MaxDays
}

type Vehicle struct {
	ID           int32         `json:"id"`
	Name         string        `json:"name"`
	ClassID      *int32        `json:"classId,omitempty"`
	PricePerDay  *float64      `json:"pricePerDay,omitempty"` // Flat fallback when no tiers exist
	PricingTiers []PricingTier `json:"pricingTiers,omitempty"`
	IsActive     bool          `json:"isActive"`
	SortIndex    int32         `json:"sortIndex"`
	CreatedOn    string        `json:"createdOn"`
}

const (
	DefaultAdditional50kmPrice = 5.0
	DefaultTransferBaseFare    = 25.0
	DefaultTransferMultiplier  = 1.0
)

// VehicleClass carries the per-class pricing knobs. Nil fields fall back to the defaults above.
type VehicleClass struct {
	ID                  int32    `json:"id"`
	Name                string   `json:"name"`
	Additional50kmPrice *float64 `json:"additional50kmPrice,omitempty"`
	TransferBaseFare    *float64 `json:"transferBaseFare,omitempty"`
	TransferMultiplier  *float64 `json:"transferMultiplier,omitempty"`
	WarrantyAmount      float64  `json:"warrantyAmount"`
}

func (c *VehicleClass) PricePer50km() float64 {
	if c == nil || c.Additional50kmPrice == nil {
		return DefaultAdditional50kmPrice
	}
	return *c.Additional50kmPrice
}

func (c *VehicleClass) BaseFare() float64 {
	if c == nil || c.TransferBaseFare == nil {
		return DefaultTransferBaseFare
	}
	return *c.TransferBaseFare
}

func (c *VehicleClass) Multiplier() float64 {
	if c == nil || c.TransferMultiplier == nil {
		return DefaultTransferMultiplier
	}
	return *c.TransferMultiplier
}

// Warranty is the refundable deductible charged when SCDW is not taken.
func (c *VehicleClass) Warranty() float64 {
	if c == nil {
		return 0
	}
	return c.WarrantyAmount
}
