package service

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVehicleUnavailable = errors.New("vehicle is not available for the selected dates")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("reservation status does not allow this change")
)

// RentalQuoteRequest carries the raw booking-form values. Dates are YYYY-MM-DD and
// times HH:MM; blanks mean the customer has not chosen yet.
type RentalQuoteRequest struct {
	VehicleID           int32                              `json:"vehicleId"`
	PickupDate          string                             `json:"pickupDate"`
	ReturnDate          string                             `json:"returnDate"`
	PickupTime          string                             `json:"pickupTime"`
	ReturnTime          string                             `json:"returnTime"`
	DeliveryLocation    string                             `json:"deliveryLocation"`
	RestitutionLocation string                             `json:"restitutionLocation"`
	Features            domain.AdditionalFeaturesSelection `json:"features"`
}

type RentalQuote struct {
	VehicleID          int32                                `json:"vehicleId"`
	VehicleName        string                               `json:"vehicleName"`
	PriceDetails       pricing.PriceDetails                 `json:"priceDetails"`
	AdditionalFeatures *pricing.AdditionalFeaturesBreakdown `json:"additionalFeatures"`
	IsSCDWSelected     bool                                 `json:"isSCDWSelected"`
	ProtectionCost     float64                              `json:"protectionCost"`
	DeductibleAmount   float64                              `json:"deductibleAmount"`
	TotalPrice         *float64                             `json:"totalPrice"`
	SeasonName         string                               `json:"seasonName,omitempty"`
	TierFallback       bool                                 `json:"-"`
}

type TransferQuoteRequest struct {
	ClassID      int32               `json:"classId"`
	DistanceKm   float64             `json:"distanceKm"`
	TransferType domain.TransferType `json:"transferType"`
}

// VehicleListing is a catalog entry with its advertised from-price.
type VehicleListing struct {
	domain.Vehicle
	FromPricePerDay float64 `json:"fromPricePerDay"`
}

type RentalReservationRequest struct {
	RentalQuoteRequest
	Customer domain.Customer `json:"customer"`
	Notes    string          `json:"notes"`
}

type TransferReservationRequest struct {
	TransferQuoteRequest
	Customer       domain.Customer `json:"customer"`
	PickupAddress  string          `json:"pickupAddress"`
	DropoffAddress string          `json:"dropoffAddress"`
	PickupDate     string          `json:"pickupDate"`
	PickupTime     string          `json:"pickupTime"`
	Passengers     int             `json:"passengers"`
	Notes          string          `json:"notes"`
}

type QuoteService interface {
	QuoteRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error)
	PreviewRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error)
	QuoteTransfer(ctx context.Context, req TransferQuoteRequest) (*pricing.TransferQuote, error)
	ListVehicles(ctx context.Context) ([]VehicleListing, error)
}

type ReservationService interface {
	SubmitRental(ctx context.Context, req RentalReservationRequest) (*domain.Reservation, error)
	SubmitTransfer(ctx context.Context, req TransferReservationRequest) (*domain.TransferReservation, error)
	GetReservation(ctx context.Context, number string) (*domain.Reservation, error)
	GetTransferReservation(ctx context.Context, number string) (*domain.TransferReservation, error)
	CancelReservation(ctx context.Context, number string) (*domain.Reservation, error)
	ConfirmReservation(ctx context.Context, number string) (*domain.Reservation, error)
}

type SeasonService interface {
	ListSeasons(ctx context.Context) ([]domain.Season, error)
	CreateSeason(ctx context.Context, season *domain.Season) error
	UpdateSeason(ctx context.Context, season *domain.Season) error
	DeleteSeason(ctx context.Context, id int32) error
	SetCurrentSeason(ctx context.Context, seasonID int32, setBy string) (*domain.CurrentSeason, error)
	ClearCurrentSeason(ctx context.Context) error
	// GetCurrentSeason returns nil, nil when no season is selected.
	GetCurrentSeason(ctx context.Context) (*domain.Season, error)
	ResolveCurrentMultiplier(ctx context.Context) (float64, *domain.Season, error)
	ResolveDateMultiplier(ctx context.Context, pickupDate, returnDate time.Time) (float64, *domain.Season, error)
}

type TransferTierService interface {
	ListTiers(ctx context.Context) ([]domain.TransferPricingTier, error)
	CreateTier(ctx context.Context, tier *domain.TransferPricingTier) error
	UpdateTier(ctx context.Context, tier *domain.TransferPricingTier) error
	DeleteTier(ctx context.Context, id int32) error
}

type CatalogService interface {
	ListClasses(ctx context.Context) ([]domain.VehicleClass, error)
	UpdateVehicleTiers(ctx context.Context, vehicleID int32, tiers []domain.PricingTier) (*domain.Vehicle, error)
	UpdateClassPricing(ctx context.Context, class *domain.VehicleClass) error
}

type AuthService interface {
	AdminLogin(ctx context.Context, email, password string) (string, time.Time, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, r *domain.Reservation) error
	SendTransferConfirmation(ctx context.Context, t *domain.TransferReservation) error
	SendPickupReminder(ctx context.Context, reminder PickupReminder) error
	SendAdminNotification(ctx context.Context, subject, message string) error
}

// PickupReminder is the shared shape of rental and transfer reminders.
type PickupReminder struct {
	Customer          domain.Customer
	ReservationNumber string
	PickupDate        string
	PickupTime        string
	Location          string
}
