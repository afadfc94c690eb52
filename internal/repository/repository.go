package repository

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

type VehicleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListActive(ctx context.Context) ([]domain.Vehicle, error)
	UpdatePricingTiers(ctx context.Context, id int32, tiers []domain.PricingTier) error
}

type VehicleClassRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error)
	List(ctx context.Context) ([]domain.VehicleClass, error)
	UpdatePricing(ctx context.Context, class *domain.VehicleClass) error
}

type SeasonRepository interface {
	Create(ctx context.Context, season *domain.Season) error
	GetByID(ctx context.Context, id int32) (*domain.Season, error)
	Update(ctx context.Context, season *domain.Season) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Season, error)
	ListActive(ctx context.Context) ([]domain.Season, error)
}

// CurrentSeasonRepository manages the single current-season row.
// Get returns nil without error when no season is set.
type CurrentSeasonRepository interface {
	Get(ctx context.Context) (*domain.CurrentSeason, error)
	Set(ctx context.Context, current *domain.CurrentSeason) error
	Clear(ctx context.Context) error
}

type TransferTierRepository interface {
	Create(ctx context.Context, tier *domain.TransferPricingTier) error
	GetByID(ctx context.Context, id int32) (*domain.TransferPricingTier, error)
	Update(ctx context.Context, tier *domain.TransferPricingTier) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.TransferPricingTier, error)
	ListActive(ctx context.Context) ([]domain.TransferPricingTier, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	CountOverlapping(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (int32, error)
	ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error)
}

type TransferReservationRepository interface {
	Create(ctx context.Context, r *domain.TransferReservation) error
	GetByNumber(ctx context.Context, number string) (*domain.TransferReservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.TransferReservation, error)
}
