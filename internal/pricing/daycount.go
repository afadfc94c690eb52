package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"carrental-backend/internal/domain"
)

const graceHours = 2

// ParseDate converts a yyyy-mm-dd formatted string into a UTC calendar date
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return d, nil
}

// ParseHour extracts the hour from an HH:MM time string
func ParseHour(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format, expected HH:MM")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour must be between 00 and 23")
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute must be between 00 and 59")
	}

	return hour, nil
}

// calendarDay drops the time of day, keeping the date as written in t's own location
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalendarDaysBetween returns returnDate - pickupDate in whole calendar days
func CalendarDaysBetween(pickupDate, returnDate time.Time) int {
	return int(calendarDay(returnDate).Sub(calendarDay(pickupDate)).Hours() / 24)
}

// CountRentalDays converts a pickup/return pair into billable days.
// Same calendar day is always 1 day. Otherwise the calendar difference is billed, plus one
// extra day when the return hour is more than two hours past the pickup hour.
// Callers must ensure the return does not precede the pickup.
func CountRentalDays(pickupDate, returnDate time.Time, pickupTime, returnTime string) int {
	days := CalendarDaysBetween(pickupDate, returnDate)
	if days == 0 {
		return 1
	}

	pickupHour, _ := ParseHour(pickupTime)
	returnHour, _ := ParseHour(returnTime)
	if returnHour > pickupHour+graceHours {
		return days + 1
	}
	return days
}
