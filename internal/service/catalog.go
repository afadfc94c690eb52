package service

import (
	"context"
	"sort"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	vehicleRepo repository.VehicleRepository
	classRepo   repository.VehicleClassRepository
}

func NewCatalogService(vehicleRepo repository.VehicleRepository, classRepo repository.VehicleClassRepository) CatalogService {
	return &catalogService{
		vehicleRepo: vehicleRepo,
		classRepo:   classRepo,
	}
}

func (s *catalogService) ListClasses(ctx context.Context) ([]domain.VehicleClass, error) {
	return s.classRepo.List(ctx)
}

// UpdateVehicleTiers replaces the whole tier list. Tiers are stored ordered by MinDays.
func (s *catalogService) UpdateVehicleTiers(ctx context.Context, vehicleID int32, tiers []domain.PricingTier) (*domain.Vehicle, error) {
	logger.EnterMethod("catalogService.UpdateVehicleTiers", "vehicleID", vehicleID, "tiers", len(tiers))

	if err := pricing.ValidatePricingTiers(tiers); err != nil {
		logger.ExitMethodWithError("catalogService.UpdateVehicleTiers", err, "reason", "validation failed")
		return nil, err
	}
	sorted := make([]domain.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinDays < sorted[j].MinDays })

	if err := s.vehicleRepo.UpdatePricingTiers(ctx, vehicleID, sorted); err != nil {
		logger.ExitMethodWithError("catalogService.UpdateVehicleTiers", err)
		return nil, mapRepoError(err)
	}
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	logger.ExitMethod("catalogService.UpdateVehicleTiers", "vehicleID", vehicleID)
	return v, nil
}

func positiveOrNil(field string, v *float64) error {
	if v != nil && *v <= 0 {
		return &pricing.ValidationError{Field: field, Message: "Value must be positive"}
	}
	return nil
}

func (s *catalogService) UpdateClassPricing(ctx context.Context, class *domain.VehicleClass) error {
	if err := positiveOrNil("transferBaseFare", class.TransferBaseFare); err != nil {
		return err
	}
	if err := positiveOrNil("transferMultiplier", class.TransferMultiplier); err != nil {
		return err
	}
	if err := positiveOrNil("additional50kmPrice", class.Additional50kmPrice); err != nil {
		return err
	}
	if class.WarrantyAmount < 0 {
		return &pricing.ValidationError{Field: "warrantyAmount", Message: "Warranty amount cannot be negative"}
	}
	return mapRepoError(s.classRepo.UpdatePricing(ctx, class))
}
