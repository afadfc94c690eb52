package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
)

type reservationService struct {
	quotes       QuoteService
	rentalRepo   repository.ReservationRepository
	transferRepo repository.TransferReservationRepository
	email        EmailService
	location     *time.Location
	now          func() time.Time
	newNumber    func() string
}

// NewReservationService decides what "today" is in location; nil means UTC.
func NewReservationService(quotes QuoteService, rentalRepo repository.ReservationRepository, transferRepo repository.TransferReservationRepository, email EmailService, location *time.Location) ReservationService {
	if location == nil {
		location = time.UTC
	}
	return &reservationService{
		quotes:       quotes,
		rentalRepo:   rentalRepo,
		transferRepo: transferRepo,
		email:        email,
		location:     location,
		now:          time.Now,
		newNumber:    uuid.NewString,
	}
}

func validateCustomer(c *domain.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return &pricing.ValidationError{Field: "customer.name", Message: "Name is required"}
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return &pricing.ValidationError{Field: "customer.email", Message: "A valid email address is required"}
	}
	if c.Phone == "" {
		return &pricing.ValidationError{Field: "customer.phone", Message: "Phone number is required"}
	}
	return nil
}

// today is the business calendar day, at midnight UTC to compare with parsed dates.
func (s *reservationService) today() time.Time {
	y, m, d := s.now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *reservationService) validateRental(req *RentalReservationRequest) error {
	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}
	pickup, err := pricing.ParseDate(req.PickupDate)
	if err != nil {
		return &pricing.ValidationError{Field: "pickupDate", Message: "Pickup date must be YYYY-MM-DD"}
	}
	ret, err := pricing.ParseDate(req.ReturnDate)
	if err != nil {
		return &pricing.ValidationError{Field: "returnDate", Message: "Return date must be YYYY-MM-DD"}
	}
	if pickup.Before(s.today()) {
		return &pricing.ValidationError{Field: "pickupDate", Message: "Pickup date cannot be in the past"}
	}
	if ret.Before(pickup) {
		return &pricing.ValidationError{Field: "returnDate", Message: "Return date cannot be before pickup date"}
	}
	if _, err := pricing.ParseHour(req.PickupTime); err != nil {
		return &pricing.ValidationError{Field: "pickupTime", Message: "Pickup time must be HH:MM"}
	}
	if _, err := pricing.ParseHour(req.ReturnTime); err != nil {
		return &pricing.ValidationError{Field: "returnTime", Message: "Return time must be HH:MM"}
	}
	return pricing.ValidateSelection(req.Features)
}

func (s *reservationService) SubmitRental(ctx context.Context, req RentalReservationRequest) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.SubmitRental", "vehicleID", req.VehicleID, "pickupDate", req.PickupDate, "returnDate", req.ReturnDate)

	if err := s.validateRental(&req); err != nil {
		logger.ExitMethodWithError("reservationService.SubmitRental", err, "reason", "validation failed")
		return nil, err
	}

	quote, err := s.quotes.QuoteRental(ctx, req.RentalQuoteRequest)
	if err != nil {
		logger.ExitMethodWithError("reservationService.SubmitRental", err, "reason", "quote failed")
		return nil, err
	}
	if !quote.PriceDetails.Priced() || quote.TotalPrice == nil {
		logger.ExitMethodWithError("reservationService.SubmitRental", ErrInvalidInput, "reason", "quote has no price")
		return nil, fmt.Errorf("%w: booking details are incomplete", ErrInvalidInput)
	}

	overlapping, err := s.rentalRepo.CountOverlapping(ctx, req.VehicleID, req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if overlapping > 0 {
		logger.Warn("Vehicle already booked", "vehicleID", req.VehicleID, "overlapping", overlapping)
		return nil, ErrVehicleUnavailable
	}

	res := snapshotReservation(quote, req)
	res.ReservationNumber = s.newNumber()
	if err := s.rentalRepo.Create(ctx, res); err != nil {
		logger.ExitMethodWithError("reservationService.SubmitRental", err, "reason", "persist failed")
		return nil, err
	}

	if err := s.email.SendRentalConfirmation(ctx, res); err != nil {
		logger.Error("Failed to send rental confirmation", "number", res.ReservationNumber, "error", err)
	}
	s.notifyAdmin(ctx, fmt.Sprintf("New rental %s", res.ReservationNumber),
		fmt.Sprintf("%s booked %s from %s to %s. Total %.0f EUR.", res.Customer.Name, res.VehicleName, res.PickupDate, res.ReturnDate, res.TotalPrice))

	logger.ExitMethod("reservationService.SubmitRental", "number", res.ReservationNumber, "totalPrice", res.TotalPrice)
	return res, nil
}

// snapshotReservation copies every quoted amount into the record. Stored amounts are never recomputed.
func snapshotReservation(q *RentalQuote, req RentalReservationRequest) *domain.Reservation {
	d := q.PriceDetails
	res := &domain.Reservation{
		VehicleID:             q.VehicleID,
		VehicleName:           q.VehicleName,
		Customer:              req.Customer,
		PickupDate:            req.PickupDate,
		ReturnDate:            req.ReturnDate,
		PickupTime:            req.PickupTime,
		ReturnTime:            req.ReturnTime,
		PickupLocation:        req.DeliveryLocation,
		ReturnLocation:        req.RestitutionLocation,
		Features:              req.Features,
		Days:                  *d.Days,
		BasePrice:             *d.BasePrice,
		BasePriceBeforeSeason: *d.BasePriceBeforeSeason,
		SeasonalMultiplier:    *d.SeasonalMultiplier,
		SeasonalAdjustment:    *d.SeasonalAdjustment,
		DeliveryFee:           d.DeliveryFee,
		ReturnFee:             d.ReturnFee,
		IsSCDWSelected:        q.IsSCDWSelected,
		ProtectionCost:        q.ProtectionCost,
		DeductibleAmount:      q.DeductibleAmount,
		TotalPrice:            *q.TotalPrice,
		Status:                domain.ReservationStatusPending,
		Notes:                 strings.TrimSpace(req.Notes),
	}
	if q.AdditionalFeatures != nil {
		res.AdditionalCost = q.AdditionalFeatures.Total
	}
	return res
}

func (s *reservationService) validateTransfer(req *TransferReservationRequest) error {
	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}
	req.PickupAddress = strings.TrimSpace(req.PickupAddress)
	req.DropoffAddress = strings.TrimSpace(req.DropoffAddress)
	if req.PickupAddress == "" {
		return &pricing.ValidationError{Field: "pickupAddress", Message: "Pickup address is required"}
	}
	if req.DropoffAddress == "" {
		return &pricing.ValidationError{Field: "dropoffAddress", Message: "Drop-off address is required"}
	}
	pickup, err := pricing.ParseDate(req.PickupDate)
	if err != nil {
		return &pricing.ValidationError{Field: "pickupDate", Message: "Pickup date must be YYYY-MM-DD"}
	}
	if pickup.Before(s.today()) {
		return &pricing.ValidationError{Field: "pickupDate", Message: "Pickup date cannot be in the past"}
	}
	if _, err := pricing.ParseHour(req.PickupTime); err != nil {
		return &pricing.ValidationError{Field: "pickupTime", Message: "Pickup time must be HH:MM"}
	}
	if req.Passengers < 1 {
		return &pricing.ValidationError{Field: "passengers", Message: "At least one passenger is required"}
	}
	if req.DistanceKm <= 0 {
		return &pricing.ValidationError{Field: "distanceKm", Message: "Distance must be positive"}
	}
	return nil
}

func (s *reservationService) SubmitTransfer(ctx context.Context, req TransferReservationRequest) (*domain.TransferReservation, error) {
	logger.EnterMethod("reservationService.SubmitTransfer", "classID", req.ClassID, "distanceKm", req.DistanceKm, "type", req.TransferType)

	if err := s.validateTransfer(&req); err != nil {
		logger.ExitMethodWithError("reservationService.SubmitTransfer", err, "reason", "validation failed")
		return nil, err
	}

	quote, err := s.quotes.QuoteTransfer(ctx, req.TransferQuoteRequest)
	if err != nil {
		logger.ExitMethodWithError("reservationService.SubmitTransfer", err, "reason", "quote failed")
		return nil, err
	}

	t := &domain.TransferReservation{
		ReservationNumber: s.newNumber(),
		ClassID:           req.ClassID,
		Customer:          req.Customer,
		PickupAddress:     req.PickupAddress,
		DropoffAddress:    req.DropoffAddress,
		PickupDate:        req.PickupDate,
		PickupTime:        req.PickupTime,
		Passengers:        req.Passengers,
		TransferType:      quote.TransferType,
		DistanceKm:        quote.DistanceKm,
		BaseFare:          quote.BaseFare,
		ExtraKm:           quote.ExtraKm,
		TierPricePerKm:    quote.TierPricePerKm,
		DistanceCharge:    quote.DistanceCharge,
		TotalPrice:        quote.TotalPrice,
		Status:            domain.ReservationStatusPending,
		Notes:             strings.TrimSpace(req.Notes),
	}
	if err := s.transferRepo.Create(ctx, t); err != nil {
		logger.ExitMethodWithError("reservationService.SubmitTransfer", err, "reason", "persist failed")
		return nil, err
	}

	if err := s.email.SendTransferConfirmation(ctx, t); err != nil {
		logger.Error("Failed to send transfer confirmation", "number", t.ReservationNumber, "error", err)
	}
	s.notifyAdmin(ctx, fmt.Sprintf("New transfer %s", t.ReservationNumber),
		fmt.Sprintf("%s booked a %s transfer on %s at %s, %s to %s. Total %.2f EUR.", t.Customer.Name, t.TransferType, t.PickupDate, t.PickupTime, t.PickupAddress, t.DropoffAddress, t.TotalPrice))

	logger.ExitMethod("reservationService.SubmitTransfer", "number", t.ReservationNumber, "totalPrice", t.TotalPrice)
	return t, nil
}

func (s *reservationService) notifyAdmin(ctx context.Context, subject, message string) {
	if err := s.email.SendAdminNotification(ctx, subject, message); err != nil {
		logger.Error("Failed to notify admin", "subject", subject, "error", err)
	}
}

func (s *reservationService) GetReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	res, err := s.rentalRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return res, nil
}

func (s *reservationService) GetTransferReservation(ctx context.Context, number string) (*domain.TransferReservation, error) {
	t, err := s.transferRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return t, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	return s.transition(ctx, number, domain.ReservationStatusCancelled,
		domain.ReservationStatusPending, domain.ReservationStatusConfirmed)
}

func (s *reservationService) ConfirmReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	return s.transition(ctx, number, domain.ReservationStatusConfirmed, domain.ReservationStatusPending)
}

func (s *reservationService) transition(ctx context.Context, number string, to domain.ReservationStatus, from ...domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.rentalRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err)
	}

	allowed := false
	for _, st := range from {
		if res.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, res.Status, to)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, res.ID, to); err != nil {
		return nil, mapRepoError(err)
	}
	logger.Info("Reservation status changed", "number", number, "from", res.Status, "to", to)
	res.Status = to
	return res, nil
}
