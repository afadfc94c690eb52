package jobs

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
)

// SendPickupReminders emails customers whose rental or transfer starts tomorrow. Rentals
// must be confirmed; transfers have no confirmation step, so every pending one is reminded.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		tomorrow := jr.today().AddDate(0, 0, 1).Format("2006-01-02")

		sent, failed := 0, 0
		notify := func(reminder service.PickupReminder) {
			if err := jr.services.Email.SendPickupReminder(ctx, reminder); err != nil {
				logger.Error("Failed to send pickup reminder",
					"reservation_number", reminder.ReservationNumber,
					"email", reminder.Customer.Email,
					"error", err)
				failed++
				return
			}
			sent++
		}

		rentals, err := jr.reservations.ListByPickupDate(ctx, tomorrow, domain.ReservationStatusConfirmed)
		if err != nil {
			logger.Error("Failed to list rentals for pickup", "pickup_date", tomorrow, "error", err)
		}
		for _, r := range rentals {
			notify(service.PickupReminder{
				Customer:          r.Customer,
				ReservationNumber: r.ReservationNumber,
				PickupDate:        r.PickupDate,
				PickupTime:        r.PickupTime,
				Location:          r.PickupLocation,
			})
		}

		transfers, err := jr.transfers.ListByPickupDate(ctx, tomorrow, domain.ReservationStatusPending)
		if err != nil {
			logger.Error("Failed to list transfers for pickup", "pickup_date", tomorrow, "error", err)
		}
		for _, t := range transfers {
			notify(service.PickupReminder{
				Customer:          t.Customer,
				ReservationNumber: t.ReservationNumber,
				PickupDate:        t.PickupDate,
				PickupTime:        t.PickupTime,
				Location:          t.PickupAddress,
			})
		}

		logger.Info("Pickup reminders processed",
			"pickup_date", tomorrow,
			"sent", sent,
			"failed", failed)
	})
}
