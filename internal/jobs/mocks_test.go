package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReservationRepo) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockReservationRepo) CountOverlapping(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (int32, error) {
	args := m.Called(ctx, vehicleID, pickupDate, returnDate)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReservationRepo) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, pickupDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockTransferReservationRepo struct {
	mock.Mock
}

func (m *MockTransferReservationRepo) Create(ctx context.Context, r *domain.TransferReservation) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockTransferReservationRepo) GetByNumber(ctx context.Context, number string) (*domain.TransferReservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReservation), args.Error(1)
}
func (m *MockTransferReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockTransferReservationRepo) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.TransferReservation, error) {
	args := m.Called(ctx, pickupDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferReservation), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, r *domain.Reservation) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockEmailService) SendTransferConfirmation(ctx context.Context, t *domain.TransferReservation) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, reminder service.PickupReminder) error {
	return m.Called(ctx, reminder).Error(0)
}
func (m *MockEmailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

type MockSeasonService struct {
	mock.Mock
}

func (m *MockSeasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonService) CreateSeason(ctx context.Context, season *domain.Season) error {
	return m.Called(ctx, season).Error(0)
}
func (m *MockSeasonService) UpdateSeason(ctx context.Context, season *domain.Season) error {
	return m.Called(ctx, season).Error(0)
}
func (m *MockSeasonService) DeleteSeason(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockSeasonService) SetCurrentSeason(ctx context.Context, seasonID int32, setBy string) (*domain.CurrentSeason, error) {
	args := m.Called(ctx, seasonID, setBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentSeason), args.Error(1)
}
func (m *MockSeasonService) ClearCurrentSeason(ctx context.Context) error {
	return m.Called(ctx).Error(0)
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
	if args.Get(1) == nil {
		return args.Get(0).(float64), nil, args.Error(2)
	}
	return args.Get(0).(float64), args.Get(1).(*domain.Season), args.Error(2)
}
func (m *MockSeasonService) ResolveDateMultiplier(ctx context.Context, pickupDate, returnDate time.Time) (float64, *domain.Season, error) {
	args := m.Called(ctx, pickupDate, returnDate)
	if args.Get(1) == nil {
		return args.Get(0).(float64), nil, args.Error(2)
	}
	return args.Get(0).(float64), args.Get(1).(*domain.Season), args.Error(2)
}

type MockSeasonRepo struct {
	mock.Mock
}

func (m *MockSeasonRepo) Create(ctx context.Context, season *domain.Season) error {
	return m.Called(ctx, season).Error(0)
}
func (m *MockSeasonRepo) GetByID(ctx context.Context, id int32) (*domain.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) Update(ctx context.Context, season *domain.Season) error {
	return m.Called(ctx, season).Error(0)
}
func (m *MockSeasonRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockSeasonRepo) List(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}
func (m *MockSeasonRepo) ListActive(ctx context.Context) ([]domain.Season, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Season), args.Error(1)
}

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
	return m.Called(ctx, current).Error(0)
}
func (m *MockCurrentSeasonRepo) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
