package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Fixed offset keeps the tests independent of the host zoneinfo database.
var bucharestSummer = time.FixedZone("EEST", 3*60*60)

type reservationFixture struct {
	quotes    *MockQuoteService
	rentals   *MockReservationRepo
	transfers *MockTransferReservationRepo
	email     *MockEmailService
	svc       *reservationService
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		quotes:    new(MockQuoteService),
		rentals:   new(MockReservationRepo),
		transfers: new(MockTransferReservationRepo),
		email:     new(MockEmailService),
	}
	f.svc = NewReservationService(f.quotes, f.rentals, f.transfers, f.email, bucharestSummer).(*reservationService)
	f.svc.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	f.svc.newNumber = func() string { return "RES-0001" }
	return f
}

func rentalRequest() RentalReservationRequest {
	return RentalReservationRequest{
		RentalQuoteRequest: weekRequest(),
		Customer:           domain.Customer{Name: "Ana Pop", Email: "ana@example.com", Phone: "+40 700 000 000"},
	}
}

func pricedQuote() *RentalQuote {
	details := pricing.PriceDetails{
		BasePrice:             floatPtr(280),
		TotalPrice:            floatPtr(290),
		Days:                  intPtr(7),
		DeliveryFee:           10,
		ReturnFee:             0,
		TotalLocationFees:     10,
		SeasonalMultiplier:    floatPtr(1),
		SeasonalAdjustment:    floatPtr(0),
		BasePriceBeforeSeason: floatPtr(280),
	}
	return &RentalQuote{
		VehicleID:          1,
		VehicleName:        "Dacia Logan",
		PriceDetails:       details,
		AdditionalFeatures: &pricing.AdditionalFeaturesBreakdown{SCDW: 111, Total: 111},
		IsSCDWSelected:     true,
		ProtectionCost:     111,
		DeductibleAmount:   0,
		TotalPrice:         floatPtr(401),
	}
}

func TestReservationService_SubmitRental(t *testing.T) {
	ctx := context.Background()

	t.Run("SnapshotsQuote", func(t *testing.T) {
		f := newReservationFixture()
		req := rentalRequest()
		f.quotes.On("QuoteRental", ctx, req.RentalQuoteRequest).Return(pricedQuote(), nil)
		f.rentals.On("CountOverlapping", ctx, int32(1), "2026-06-01", "2026-06-08").Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, mock.Anything).Return(nil)
		f.email.On("SendAdminNotification", ctx, "New rental RES-0001", mock.Anything).Return(nil)

		res, err := f.svc.SubmitRental(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "RES-0001", res.ReservationNumber)
		assert.Equal(t, domain.ReservationStatusPending, res.Status)
		assert.Equal(t, 7, res.Days)
		assert.Equal(t, 280.0, res.BasePrice)
		assert.Equal(t, 10.0, res.DeliveryFee)
		assert.Equal(t, 111.0, res.AdditionalCost)
		assert.Equal(t, 111.0, res.ProtectionCost)
		assert.True(t, res.IsSCDWSelected)
		assert.Equal(t, 0.0, res.DeductibleAmount)
		assert.Equal(t, 1.0, res.SeasonalMultiplier)
		assert.Equal(t, 401.0, res.TotalPrice)
		assert.Equal(t, "Cluj-Napoca", res.PickupLocation)
		f.rentals.AssertExpectations(t)
		f.email.AssertExpectations(t)
	})

	t.Run("EmailFailureDoesNotFailBooking", func(t *testing.T) {
		f := newReservationFixture()
		req := rentalRequest()
		f.quotes.On("QuoteRental", ctx, req.RentalQuoteRequest).Return(pricedQuote(), nil)
		f.rentals.On("CountOverlapping", ctx, int32(1), "2026-06-01", "2026-06-08").Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.Anything).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, mock.Anything).Return(errors.New("smtp down"))
		f.email.On("SendAdminNotification", ctx, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		res, err := f.svc.SubmitRental(ctx, req)
		require.NoError(t, err)
		assert.NotNil(t, res)
	})

	t.Run("VehicleUnavailable", func(t *testing.T) {
		f := newReservationFixture()
		req := rentalRequest()
		f.quotes.On("QuoteRental", ctx, req.RentalQuoteRequest).Return(pricedQuote(), nil)
		f.rentals.On("CountOverlapping", ctx, int32(1), "2026-06-01", "2026-06-08").Return(int32(1), nil)

		_, err := f.svc.SubmitRental(ctx, req)
		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		f.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnpricedQuoteRejected", func(t *testing.T) {
		f := newReservationFixture()
		req := rentalRequest()
		f.quotes.On("QuoteRental", ctx, req.RentalQuoteRequest).Return(&RentalQuote{VehicleID: 1}, nil)

		_, err := f.svc.SubmitRental(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	validationCases := []struct {
		name   string
		mutate func(r *RentalReservationRequest)
		field  string
	}{
		{"MissingName", func(r *RentalReservationRequest) { r.Customer.Name = " " }, "customer.name"},
		{"BadEmail", func(r *RentalReservationRequest) { r.Customer.Email = "not-an-email" }, "customer.email"},
		{"MissingPhone", func(r *RentalReservationRequest) { r.Customer.Phone = "" }, "customer.phone"},
		{"ReturnBeforePickup", func(r *RentalReservationRequest) { r.ReturnDate = "2026-05-30" }, "returnDate"},
		{"PickupInPast", func(r *RentalReservationRequest) { r.PickupDate = "2026-04-30" }, "pickupDate"},
		{"BadTime", func(r *RentalReservationRequest) { r.PickupTime = "25:00" }, "pickupTime"},
		{"TooManySeats", func(r *RentalReservationRequest) { r.Features.ChildSeat5to12Count = 3 }, "childSeat5to12Count"},
	}
	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newReservationFixture()
			req := rentalRequest()
			tc.mutate(&req)

			_, err := f.svc.SubmitRental(ctx, req)
			var verr *pricing.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			f.quotes.AssertNotCalled(t, "QuoteRental", mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_PickupInPastUsesBusinessDay(t *testing.T) {
	ctx := context.Background()
	f := newReservationFixture()
	// 22:30 UTC on May 31st is already June 1st locally.
	f.svc.now = func() time.Time { return time.Date(2026, 5, 31, 22, 30, 0, 0, time.UTC) }

	req := rentalRequest()
	req.PickupDate = "2026-05-31"
	req.ReturnDate = "2026-06-02"

	_, err := f.svc.SubmitRental(ctx, req)
	var verr *pricing.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pickupDate", verr.Field)
	f.quotes.AssertNotCalled(t, "QuoteRental", mock.Anything, mock.Anything)

	t.Run("SameLocalDayAccepted", func(t *testing.T) {
		f := newReservationFixture()
		f.svc.now = func() time.Time { return time.Date(2026, 5, 31, 22, 30, 0, 0, time.UTC) }
		req := rentalRequest()
		req.PickupDate = "2026-06-01"
		f.quotes.On("QuoteRental", ctx, req.RentalQuoteRequest).Return(&RentalQuote{VehicleID: 1}, nil)

		_, err := f.svc.SubmitRental(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		f.quotes.AssertExpectations(t)
	})
}

func TestNewReservationService_DefaultsToUTC(t *testing.T) {
	svc := NewReservationService(nil, nil, nil, nil, nil).(*reservationService)
	svc.now = func() time.Time { return time.Date(2026, 5, 31, 22, 30, 0, 0, time.UTC) }
	assert.Equal(t, time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), svc.today())
}

func TestReservationService_SubmitTransfer(t *testing.T) {
	ctx := context.Background()
	f := newReservationFixture()

	req := TransferReservationRequest{
		TransferQuoteRequest: TransferQuoteRequest{ClassID: 2, DistanceKm: 40, TransferType: domain.TransferTypeRoundTrip},
		Customer:             domain.Customer{Name: "Ion", Email: "ion@example.com", Phone: "0700"},
		PickupAddress:        "Aeroport Cluj-Napoca",
		DropoffAddress:       "Turda",
		PickupDate:           "2026-05-10",
		PickupTime:           "14:30",
		Passengers:           3,
	}
	quote := &pricing.TransferQuote{TransferType: domain.TransferTypeRoundTrip, DistanceKm: 40, BaseFare: 25, ExtraKm: 25, TierPricePerKm: 1.5, DistanceCharge: 37.5, TotalPrice: 125}
	f.quotes.On("QuoteTransfer", ctx, req.TransferQuoteRequest).Return(quote, nil)
	f.transfers.On("Create", ctx, mock.AnythingOfType("*domain.TransferReservation")).Return(nil)
	f.email.On("SendTransferConfirmation", ctx, mock.Anything).Return(nil)
	f.email.On("SendAdminNotification", ctx, "New transfer RES-0001", mock.Anything).Return(nil)

	tr, err := f.svc.SubmitTransfer(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "RES-0001", tr.ReservationNumber)
	assert.Equal(t, 125.0, tr.TotalPrice)
	assert.Equal(t, 37.5, tr.DistanceCharge)
	assert.Equal(t, domain.ReservationStatusPending, tr.Status)

	t.Run("NoPassengers", func(t *testing.T) {
		bad := req
		bad.Passengers = 0
		_, err := f.svc.SubmitTransfer(ctx, bad)
		var verr *pricing.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "passengers", verr.Field)
	})
}

func TestReservationService_StatusChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("CancelPending", func(t *testing.T) {
		f := newReservationFixture()
		f.rentals.On("GetByNumber", ctx, "R1").Return(&domain.Reservation{ID: 5, ReservationNumber: "R1", Status: domain.ReservationStatusPending}, nil)
		f.rentals.On("UpdateStatus", ctx, int32(5), domain.ReservationStatusCancelled).Return(nil)

		res, err := f.svc.CancelReservation(ctx, "R1")
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCancelled, res.Status)
	})

	t.Run("CancelTwice", func(t *testing.T) {
		f := newReservationFixture()
		f.rentals.On("GetByNumber", ctx, "R1").Return(&domain.Reservation{ID: 5, Status: domain.ReservationStatusCancelled}, nil)

		_, err := f.svc.CancelReservation(ctx, "R1")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("ConfirmPending", func(t *testing.T) {
		f := newReservationFixture()
		f.rentals.On("GetByNumber", ctx, "R2").Return(&domain.Reservation{ID: 6, Status: domain.ReservationStatusPending}, nil)
		f.rentals.On("UpdateStatus", ctx, int32(6), domain.ReservationStatusConfirmed).Return(nil)

		res, err := f.svc.ConfirmReservation(ctx, "R2")
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
	})

	t.Run("UnknownNumber", func(t *testing.T) {
		f := newReservationFixture()
		f.rentals.On("GetByNumber", ctx, "nope").Return(nil, repository.ErrNotFound)

		_, err := f.svc.GetReservation(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
