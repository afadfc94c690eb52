package domain

import "time"

const DateLayout = "2006-01-02"

type SeasonPeriod struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}

// Contains reports whether the calendar day of t falls inside the period, both ends included.
// Periods with unparsable bounds never match.
func (p SeasonPeriod) Contains(t time.Time) bool {
	start, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return false
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

type Season struct {
	ID         int32          `json:"id"`
	Name       string         `json:"name"`
	Multiplier float64        `json:"multiplier"`
	Periods    []SeasonPeriod `json:"periods"`
	IsActive   bool           `json:"isActive"`
	CreatedOn  string         `json:"createdOn"`
}

// CurrentSeason is the singleton pointer an admin toggles. At most one row exists.
type CurrentSeason struct {
	SeasonID int32     `json:"seasonId"`
	SetAt    time.Time `json:"setAt"`
	SetBy    *string   `json:"setBy,omitempty"`
}
