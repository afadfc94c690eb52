package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type transferTierRepository struct {
	db *sql.DB
}

func NewTransferTierRepository(db *sql.DB) repository.TransferTierRepository {
	return &transferTierRepository{db: db}
}

const transferTierColumns = `id, min_extra_km, max_extra_km, price_per_km, sort_index, is_active`

func scanTransferTier(row rowScanner) (*domain.TransferPricingTier, error) {
	var (
		t     domain.TransferPricingTier
		maxKm sql.NullFloat64
	)
	if err := row.Scan(&t.ID, &t.MinExtraKm, &maxKm, &t.PricePerKm, &t.SortIndex, &t.IsActive); err != nil {
		return nil, err
	}
	t.MaxExtraKm = nullFloatPtr(maxKm)
	return &t, nil
}

func (r *transferTierRepository) Create(ctx context.Context, t *domain.TransferPricingTier) error {
	logger.EnterMethod("transferTierRepository.Create", "minExtraKm", t.MinExtraKm, "pricePerKm", t.PricePerKm)

	query := `INSERT INTO transfer_pricing_tiers (min_extra_km, max_extra_km, price_per_km, sort_index, is_active)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	logger.DatabaseCall("INSERT", "transfer_pricing_tiers")
	err := r.db.QueryRowContext(ctx, query, t.MinExtraKm, t.MaxExtraKm, t.PricePerKm, t.SortIndex, t.IsActive).Scan(&t.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err)
		logger.ExitMethodWithError("transferTierRepository.Create", err)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "tierID", t.ID)
	logger.ExitMethod("transferTierRepository.Create", "tierID", t.ID)
	return nil
}

func (r *transferTierRepository) GetByID(ctx context.Context, id int32) (*domain.TransferPricingTier, error) {
	query := `SELECT ` + transferTierColumns + ` FROM transfer_pricing_tiers WHERE id = $1`
	t, err := scanTransferTier(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return t, err
}

func (r *transferTierRepository) Update(ctx context.Context, t *domain.TransferPricingTier) error {
	query := `UPDATE transfer_pricing_tiers
	          SET min_extra_km = $1, max_extra_km = $2, price_per_km = $3, sort_index = $4, is_active = $5
	          WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, t.MinExtraKm, t.MaxExtraKm, t.PricePerKm, t.SortIndex, t.IsActive, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transferTierRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transfer_pricing_tiers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transferTierRepository) List(ctx context.Context) ([]domain.TransferPricingTier, error) {
	return r.list(ctx, `SELECT `+transferTierColumns+` FROM transfer_pricing_tiers ORDER BY sort_index, min_extra_km`)
}

func (r *transferTierRepository) ListActive(ctx context.Context) ([]domain.TransferPricingTier, error) {
	return r.list(ctx, `SELECT `+transferTierColumns+` FROM transfer_pricing_tiers WHERE is_active = true ORDER BY sort_index, min_extra_km`)
}

func (r *transferTierRepository) list(ctx context.Context, query string) ([]domain.TransferPricingTier, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.TransferPricingTier
	for rows.Next() {
		t, err := scanTransferTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, *t)
	}
	return tiers, rows.Err()
}
