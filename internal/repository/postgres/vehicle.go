package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, class_id, price_per_day, pricing_tiers, is_active, sort_index, to_char(created_on, 'YYYY-MM-DD')`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var (
		v        domain.Vehicle
		classID  sql.NullInt32
		flat     sql.NullFloat64
		rawTiers []byte
	)
	if err := row.Scan(&v.ID, &v.Name, &classID, &flat, &rawTiers, &v.IsActive, &v.SortIndex, &v.CreatedOn); err != nil {
		return nil, err
	}
	if classID.Valid {
		v.ClassID = &classID.Int32
	}
	if flat.Valid {
		v.PricePerDay = &flat.Float64
	}
	if len(rawTiers) > 0 {
		if err := json.Unmarshal(rawTiers, &v.PricingTiers); err != nil {
			return nil, fmt.Errorf("decode pricing tiers for vehicle %d: %w", v.ID, err)
		}
	}
	return &v, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return v, err
}

func (r *vehicleRepository) ListActive(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE is_active = true ORDER BY sort_index, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) UpdatePricingTiers(ctx context.Context, id int32, tiers []domain.PricingTier) error {
	logger.EnterMethod("vehicleRepository.UpdatePricingTiers", "vehicleID", id, "tiers", len(tiers))

	raw, err := json.Marshal(tiers)
	if err != nil {
		logger.ExitMethodWithError("vehicleRepository.UpdatePricingTiers", err, "reason", "failed to marshal tiers")
		return err
	}

	logger.DatabaseCall("UPDATE", "vehicles", "vehicleID", id)
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET pricing_tiers = $1 WHERE id = $2`, raw, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "vehicleID", id)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, nil, "vehicleID", id)
	if n == 0 {
		return repository.ErrNotFound
	}
	logger.ExitMethod("vehicleRepository.UpdatePricingTiers", "vehicleID", id)
	return nil
}
