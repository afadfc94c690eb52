package service

import (
	"context"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type quoteService struct {
	vehicleRepo      repository.VehicleRepository
	classRepo        repository.VehicleClassRepository
	transferTierRepo repository.TransferTierRepository
	seasons          SeasonService
}

func NewQuoteService(vehicleRepo repository.VehicleRepository, classRepo repository.VehicleClassRepository, transferTierRepo repository.TransferTierRepository, seasons SeasonService) QuoteService {
	return &quoteService{
		vehicleRepo:      vehicleRepo,
		classRepo:        classRepo,
		transferTierRepo: transferTierRepo,
		seasons:          seasons,
	}
}

// parseOptionalDate treats blank or malformed input as "not chosen yet".
func parseOptionalDate(s string) time.Time {
	d, err := pricing.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return d
}

func (s *quoteService) loadVehicle(ctx context.Context, id int32) (*domain.Vehicle, *domain.VehicleClass, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err)
	}
	if !v.IsActive {
		return nil, nil, ErrNotFound
	}
	if v.ClassID == nil {
		return v, nil, nil
	}
	class, err := s.classRepo.GetByID(ctx, *v.ClassID)
	if errors.Is(err, repository.ErrNotFound) {
		logger.DataIntegrity("quoteService", "vehicle references a missing class", "vehicleID", v.ID, "classID", *v.ClassID)
		return v, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return v, class, nil
}

func (s *quoteService) QuoteRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error) {
	vehicle, class, err := s.loadVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	multiplier, season, err := s.seasons.ResolveCurrentMultiplier(ctx)
	if err != nil {
		return nil, err
	}
	return buildRentalQuote(vehicle, class, season, multiplier, req), nil
}

func (s *quoteService) PreviewRental(ctx context.Context, req RentalQuoteRequest) (*RentalQuote, error) {
	vehicle, class, err := s.loadVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	pickup, ret := parseOptionalDate(req.PickupDate), parseOptionalDate(req.ReturnDate)
	multiplier, season := pricing.BaseMultiplier, (*domain.Season)(nil)
	if !pickup.IsZero() && !ret.IsZero() {
		multiplier, season, err = s.seasons.ResolveDateMultiplier(ctx, pickup, ret)
		if err != nil {
			return nil, err
		}
	}
	return buildRentalQuote(vehicle, class, season, multiplier, req), nil
}

// buildRentalQuote composes the engine output with the add-on breakdown. Add-ons need a
// day count, so they are only priced once the engine produced one.
func buildRentalQuote(vehicle *domain.Vehicle, class *domain.VehicleClass, season *domain.Season, multiplier float64, req RentalQuoteRequest) *RentalQuote {
	details := pricing.ComputeDayRentalPrice(pricing.RentalInput{
		Vehicle:             vehicle,
		SeasonalMultiplier:  multiplier,
		PickupDate:          parseOptionalDate(req.PickupDate),
		ReturnDate:          parseOptionalDate(req.ReturnDate),
		PickupTime:          req.PickupTime,
		ReturnTime:          req.ReturnTime,
		DeliveryLocation:    req.DeliveryLocation,
		RestitutionLocation: req.RestitutionLocation,
	})

	quote := &RentalQuote{
		VehicleID:        vehicle.ID,
		VehicleName:      vehicle.Name,
		PriceDetails:     details,
		IsSCDWSelected:   req.Features.SCDWSelected,
		DeductibleAmount: pricing.DeductibleAmount(req.Features.SCDWSelected, class.Warranty()),
	}
	if season != nil {
		quote.SeasonName = season.Name
	}
	if !details.Priced() {
		return quote
	}

	days := *details.Days
	if match := pricing.ResolveTripRate(vehicle, days); match.Fallback {
		quote.TierFallback = true
		logger.DataIntegrity("quoteService", "no pricing tier covers day count", "vehicleID", vehicle.ID, "days", days, "fallbackRate", match.PricePerDay)
	}

	addons := pricing.ComputeAdditionalFeaturesCost(req.Features, days, pricing.ReferenceDailyRate(vehicle), class.PricePer50km())
	total := *details.TotalPrice + addons.Total
	quote.AdditionalFeatures = &addons
	quote.ProtectionCost = addons.SCDW
	quote.TotalPrice = &total
	return quote
}

func (s *quoteService) QuoteTransfer(ctx context.Context, req TransferQuoteRequest) (*pricing.TransferQuote, error) {
	if req.DistanceKm < 0 {
		return nil, &pricing.ValidationError{Field: "distanceKm", Message: "Distance cannot be negative"}
	}
	if req.TransferType == "" {
		req.TransferType = domain.TransferTypeOneWay
	}
	if !req.TransferType.Valid() {
		return nil, &pricing.ValidationError{Field: "transferType", Message: "Transfer type must be one_way or round_trip"}
	}

	class, err := s.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	tiers, err := s.transferTierRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	quote := pricing.ComputeTransferPrice(req.DistanceKm, class, tiers, req.TransferType)
	return &quote, nil
}

func (s *quoteService) ListVehicles(ctx context.Context) ([]VehicleListing, error) {
	vehicles, err := s.vehicleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]VehicleListing, 0, len(vehicles))
	for _, v := range vehicles {
		listings = append(listings, VehicleListing{Vehicle: v, FromPricePerDay: pricing.ReferenceDailyRate(&v)})
	}
	return listings, nil
}
