package http

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) QuoteRental(ctx context.Context, req service.RentalQuoteRequest) (*service.RentalQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalQuote), args.Error(1)
}
func (m *MockQuoteService) PreviewRental(ctx context.Context, req service.RentalQuoteRequest) (*service.RentalQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalQuote), args.Error(1)
}
func (m *MockQuoteService) QuoteTransfer(ctx context.Context, req service.TransferQuoteRequest) (*pricing.TransferQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.TransferQuote), args.Error(1)
}
func (m *MockQuoteService) ListVehicles(ctx context.Context) ([]service.VehicleListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.VehicleListing), args.Error(1)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) SubmitRental(ctx context.Context, req service.RentalReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) SubmitTransfer(ctx context.Context, req service.TransferReservationRequest) (*domain.TransferReservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReservation), args.Error(1)
}
func (m *MockReservationService) GetReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) GetTransferReservation(ctx context.Context, number string) (*domain.TransferReservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReservation), args.Error(1)
}
func (m *MockReservationService) CancelReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ConfirmReservation(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

// MockSeasonService
type MockSeasonService struct {
	mock.Mock
}

func (m *MockSeasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonService) CreateSeason(ctx context.Context, season *domain.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}
func (m *MockSeasonService) UpdateSeason(ctx context.Context, season *domain.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}
func (m *MockSeasonService) DeleteSeason(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSeasonService) SetCurrentSeason(ctx context.Context, seasonID int32, setBy string) (*domain.CurrentSeason, error) {
	args := m.Called(ctx, seasonID, setBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentSeason), args.Error(1)
}
func (m *MockSeasonService) ClearCurrentSeason(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSeasonService) GetCurrentSeason(ctx context.Context) (*domain.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonService) ResolveCurrentMultiplier(ctx context.Context) (float64, *domain.Season, error) {
	args := m.Called(ctx)
	season, _ := args.Get(1).(*domain.Season)
	return args.Get(0).(float64), season, args.Error(2)
}
func (m *MockSeasonService) ResolveDateMultiplier(ctx context.Context, pickupDate, returnDate time.Time) (float64, *domain.Season, error) {
	args := m.Called(ctx, pickupDate, returnDate)
	season, _ := args.Get(1).(*domain.Season)
	return args.Get(0).(float64), season, args.Error(2)
}

// MockTransferTierService
type MockTransferTierService struct {
	mock.Mock
}

func (m *MockTransferTierService) ListTiers(ctx context.Context) ([]domain.TransferPricingTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransferPricingTier), args.Error(1)
}
func (m *MockTransferTierService) CreateTier(ctx context.Context, tier *domain.TransferPricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockTransferTierService) UpdateTier(ctx context.Context, tier *domain.TransferPricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockTransferTierService) DeleteTier(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListClasses(ctx context.Context) ([]domain.VehicleClass, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleClass), args.Error(1)
}
func (m *MockCatalogService) UpdateVehicleTiers(ctx context.Context, vehicleID int32, tiers []domain.PricingTier) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID, tiers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockCatalogService) UpdateClassPricing(ctx context.Context, class *domain.VehicleClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) AdminLogin(ctx context.Context, email, password string) (string, time.Time, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAdminToken(email string) (string, time.Time, error) {
	args := m.Called(email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.AdminClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.AdminClaims), args.Error(1)
}
