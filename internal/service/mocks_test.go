package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/security"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListActive(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdatePricingTiers(ctx context.Context, id int32, tiers []domain.PricingTier) error {
	args := m.Called(ctx, id, tiers)
	return args.Error(0)
}

// MockVehicleClassRepo
type MockVehicleClassRepo struct {
	mock.Mock
}

func (m *MockVehicleClassRepo) GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleClass), args.Error(1)
}
func (m *MockVehicleClassRepo) List(ctx context.Context) ([]domain.VehicleClass, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleClass), args.Error(1)
}
func (m *MockVehicleClassRepo) UpdatePricing(ctx context.Context, class *domain.VehicleClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

// MockSeasonRepo
type MockSeasonRepo struct {
	mock.Mock
}

func (m *MockSeasonRepo) Create(ctx context.Context, season *domain.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}
func (m *MockSeasonRepo) GetByID(ctx context.Context, id int32) (*domain.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) Update(ctx context.Context, season *domain.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}
func (m *MockSeasonRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSeasonRepo) List(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) ListActive(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}

// MockCurrentSeasonRepo
type MockCurrentSeasonRepo struct {
	mock.Mock
}

func (m *MockCurrentSeasonRepo) Get(ctx context.Context) (*domain.CurrentSeason, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentSeason), args.Error(1)
}
func (m *MockCurrentSeasonRepo) Set(ctx context.Context, current *domain.CurrentSeason) error {
	args := m.Called(ctx, current)
	return args.Error(0)
}
func (m *MockCurrentSeasonRepo) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTransferTierRepo
type MockTransferTierRepo struct {
	mock.Mock
}

func (m *MockTransferTierRepo) Create(ctx context.Context, tier *domain.TransferPricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockTransferTierRepo) GetByID(ctx context.Context, id int32) (*domain.TransferPricingTier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferPricingTier), args.Error(1)
}
func (m *MockTransferTierRepo) Update(ctx context.Context, tier *domain.TransferPricingTier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}
func (m *MockTransferTierRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransferTierRepo) List(ctx context.Context) ([]domain.TransferPricingTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransferPricingTier), args.Error(1)
}
func (m *MockTransferTierRepo) ListActive(ctx context.Context) ([]domain.TransferPricingTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransferPricingTier), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) CountOverlapping(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (int32, error) {
	args := m.Called(ctx, vehicleID, pickupDate, returnDate)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReservationRepo) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, pickupDate, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockTransferReservationRepo
type MockTransferReservationRepo struct {
	mock.Mock
}

func (m *MockTransferReservationRepo) Create(ctx context.Context, r *domain.TransferReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockTransferReservationRepo) GetByNumber(ctx context.Context, number string) (*domain.TransferReservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReservation), args.Error(1)
}
func (m *MockTransferReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTransferReservationRepo) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.TransferReservation, error) {
	args := m.Called(ctx, pickupDate, status)
	return args.Get(0).([]domain.TransferReservation), args.Error(1)
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

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) QuoteRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RentalQuote), args.Error(1)
}
func (m *MockQuoteService) PreviewRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RentalQuote), args.Error(1)
}
func (m *MockQuoteService) QuoteTransfer(ctx context.Context, req TransferQuoteRequest) (*pricing.TransferQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.TransferQuote), args.Error(1)
}
func (m *MockQuoteService) ListVehicles(ctx context.Context) ([]VehicleListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]VehicleListing), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockEmailService) SendTransferConfirmation(ctx context.Context, t *domain.TransferReservation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, reminder PickupReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}
func (m *MockEmailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
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

// fakeSender records messages handed to SendGrid.
type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) Send(email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}
