package jobs

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// CheckSeasonDrift compares the season quotes are priced with against the season whose
// configured periods contain today. A selected but inactive season prices at base, so it
// counts as no season. A mismatch only produces a warning and an email to the operator.
func (jr *JobRunner) CheckSeasonDrift() {
	jr.runWithRecovery("CheckSeasonDrift", func() {
		ctx := context.Background()
		today := jr.today()

		_, current, err := jr.services.Seasons.ResolveCurrentMultiplier(ctx)
		if err != nil {
			logger.Error("Failed to load current season", "error", err)
			return
		}

		_, dated, err := jr.services.Seasons.ResolveDateMultiplier(ctx, today, today)
		if err != nil {
			logger.Error("Failed to resolve season for today", "error", err)
			return
		}

		if sameSeason(current, dated) {
			logger.Info("Current season matches calendar", "date", today.Format("2006-01-02"), "season", seasonLabel(current))
			return
		}

		logger.Warn("Current season differs from calendar",
			"date", today.Format("2006-01-02"),
			"selected", seasonLabel(current),
			"calendar", seasonLabel(dated))

		subject := "Current season check"
		message := fmt.Sprintf(
			"On %s the selected current season is %s, but the configured periods point to %s. Quotes keep using %s until the selection is changed.",
			today.Format("2006-01-02"), seasonLabel(current), seasonLabel(dated), seasonLabel(current))
		if err := jr.services.Email.SendAdminNotification(ctx, subject, message); err != nil {
			logger.Error("Failed to notify admin about season drift", "error", err)
		}
	})
}

func sameSeason(a, b *domain.Season) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func seasonLabel(s *domain.Season) string {
	if s == nil {
		return "none (base prices)"
	}
	return fmt.Sprintf("%q (x%.2f)", s.Name, s.Multiplier)
}
