package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type seasonService struct {
	seasonRepo  repository.SeasonRepository
	currentRepo repository.CurrentSeasonRepository
	now         func() time.Time
}

func NewSeasonService(seasonRepo repository.SeasonRepository, currentRepo repository.CurrentSeasonRepository) SeasonService {
	return &seasonService{
		seasonRepo:  seasonRepo,
		currentRepo: currentRepo,
		now:         time.Now,
	}
}

func validateSeason(s *domain.Season) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return &pricing.ValidationError{Field: "name", Message: "Season name is required"}
	}
	if s.Multiplier < pricing.MinSeasonMultiplier || s.Multiplier > pricing.MaxSeasonMultiplier {
		return &pricing.ValidationError{Field: "multiplier", Message: "Multiplier must be between 0.1 and 5"}
	}
	for i, p := range s.Periods {
		start, err := pricing.ParseDate(p.StartDate)
		if err != nil {
			return &pricing.ValidationError{Field: fmt.Sprintf("periods[%d].startDate", i), Message: "Start date must be YYYY-MM-DD"}
		}
		end, err := pricing.ParseDate(p.EndDate)
		if err != nil {
			return &pricing.ValidationError{Field: fmt.Sprintf("periods[%d].endDate", i), Message: "End date must be YYYY-MM-DD"}
		}
		if end.Before(start) {
			return &pricing.ValidationError{Field: fmt.Sprintf("periods[%d].endDate", i), Message: "End date must not be before start date"}
		}
	}
	return nil
}

func (s *seasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	return s.seasonRepo.List(ctx)
}

func (s *seasonService) CreateSeason(ctx context.Context, season *domain.Season) error {
	if err := validateSeason(season); err != nil {
		return err
	}
	return s.seasonRepo.Create(ctx, season)
}

func (s *seasonService) UpdateSeason(ctx context.Context, season *domain.Season) error {
	if err := validateSeason(season); err != nil {
		return err
	}
	if err := s.seasonRepo.Update(ctx, season); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// DeleteSeason drops the current-season pointer first when it references the season.
func (s *seasonService) DeleteSeason(ctx context.Context, id int32) error {
	current, err := s.currentRepo.Get(ctx)
	if err != nil {
		return err
	}
	if current != nil && current.SeasonID == id {
		if err := s.currentRepo.Clear(ctx); err != nil {
			return err
		}
		logger.Info("Cleared current season before delete", "seasonID", id)
	}
	return mapRepoError(s.seasonRepo.Delete(ctx, id))
}

func (s *seasonService) SetCurrentSeason(ctx context.Context, seasonID int32, setBy string) (*domain.CurrentSeason, error) {
	logger.EnterMethod("seasonService.SetCurrentSeason", "seasonID", seasonID, "setBy", setBy)

	season, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		logger.ExitMethodWithError("seasonService.SetCurrentSeason", err, "reason", "season lookup failed")
		return nil, mapRepoError(err)
	}
	if !season.IsActive {
		return nil, &pricing.ValidationError{Field: "seasonId", Message: "Only an active season can be set as current"}
	}

	current := &domain.CurrentSeason{SeasonID: seasonID, SetAt: s.now().UTC()}
	if setBy != "" {
		current.SetBy = &setBy
	}
	if err := s.currentRepo.Set(ctx, current); err != nil {
		logger.ExitMethodWithError("seasonService.SetCurrentSeason", err)
		return nil, err
	}

	logger.ExitMethod("seasonService.SetCurrentSeason", "seasonID", seasonID, "multiplier", season.Multiplier)
	return current, nil
}

func (s *seasonService) ClearCurrentSeason(ctx context.Context) error {
	return s.currentRepo.Clear(ctx)
}

func (s *seasonService) GetCurrentSeason(ctx context.Context) (*domain.Season, error) {
	current, err := s.currentRepo.Get(ctx)
	if err != nil || current == nil {
		return nil, err
	}
	season, err := s.seasonRepo.GetByID(ctx, current.SeasonID)
	if errors.Is(err, repository.ErrNotFound) {
		logger.DataIntegrity("seasonService", "current season points at a missing season", "seasonID", current.SeasonID)
		return nil, nil
	}
	return season, err
}

// ResolveCurrentMultiplier reads the explicit current-season pointer. This is the
// multiplier used for quotes and bookings.
func (s *seasonService) ResolveCurrentMultiplier(ctx context.Context) (float64, *domain.Season, error) {
	season, err := s.GetCurrentSeason(ctx)
	if err != nil {
		return pricing.BaseMultiplier, nil, err
	}
	if season != nil && !season.IsActive {
		return pricing.BaseMultiplier, nil, nil
	}
	return pricing.CurrentMultiplier(season), season, nil
}

// ResolveDateMultiplier derives a multiplier from the configured periods of active seasons.
// Only the preview path uses it.
func (s *seasonService) ResolveDateMultiplier(ctx context.Context, pickupDate, returnDate time.Time) (float64, *domain.Season, error) {
	seasons, err := s.seasonRepo.ListActive(ctx)
	if err != nil {
		return pricing.BaseMultiplier, nil, err
	}
	m, season := pricing.DateMultiplier(seasons, pickupDate, returnDate)
	return m, season, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
