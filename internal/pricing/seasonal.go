package pricing

import (
	"math"
	"time"

	"carrental-backend/internal/domain"
)

const BaseMultiplier = 1.0

// Bounds accepted for a season multiplier; the seasons table enforces the same range.
const (
	MinSeasonMultiplier = 0.1
	MaxSeasonMultiplier = 5.0
)

// CurrentMultiplier resolves the multiplier of the season the current-season pointer refers to.
// A missing or inactive season means base pricing.
func CurrentMultiplier(season *domain.Season) float64 {
	if season == nil || !season.IsActive || season.Multiplier <= 0 {
		return BaseMultiplier
	}
	return season.Multiplier
}

// DateMultiplier derives a multiplier from active season periods instead of the pointer.
// A season containing the pickup day wins over one containing only the return day; among
// several candidates the highest multiplier is taken. This path is advisory only.
func DateMultiplier(seasons []domain.Season, pickupDate, returnDate time.Time) (float64, *domain.Season) {
	if s := highestMatching(seasons, pickupDate); s != nil {
		return s.Multiplier, s
	}
	if s := highestMatching(seasons, returnDate); s != nil {
		return s.Multiplier, s
	}
	return BaseMultiplier, nil
}

func highestMatching(seasons []domain.Season, day time.Time) *domain.Season {
	var best *domain.Season
	for i := range seasons {
		s := &seasons[i]
		if !s.IsActive || s.Multiplier <= 0 {
			continue
		}
		for _, p := range s.Periods {
			if p.Contains(day) {
				if best == nil || s.Multiplier > best.Multiplier {
					best = s
				}
				break
			}
		}
	}
	return best
}

// ApplySeasonalMultiplier rounds to whole EUR per day, before the day count is applied.
func ApplySeasonalMultiplier(basePricePerDay, multiplier float64) float64 {
	return math.Round(basePricePerDay * multiplier)
}
