package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type transferTierService struct {
	tierRepo repository.TransferTierRepository
}

func NewTransferTierService(tierRepo repository.TransferTierRepository) TransferTierService {
	return &transferTierService{tierRepo: tierRepo}
}

func (s *transferTierService) ListTiers(ctx context.Context) ([]domain.TransferPricingTier, error) {
	return s.tierRepo.List(ctx)
}

func (s *transferTierService) validate(ctx context.Context, tier *domain.TransferPricingTier) error {
	existing, err := s.tierRepo.List(ctx)
	if err != nil {
		return err
	}
	return pricing.ValidateTransferTier(*tier, existing)
}

func (s *transferTierService) CreateTier(ctx context.Context, tier *domain.TransferPricingTier) error {
	tier.ID = 0
	if err := s.validate(ctx, tier); err != nil {
		return err
	}
	return s.tierRepo.Create(ctx, tier)
}

func (s *transferTierService) UpdateTier(ctx context.Context, tier *domain.TransferPricingTier) error {
	if err := s.validate(ctx, tier); err != nil {
		return err
	}
	return mapRepoError(s.tierRepo.Update(ctx, tier))
}

func (s *transferTierService) DeleteTier(ctx context.Context, id int32) error {
	return mapRepoError(s.tierRepo.Delete(ctx, id))
}
