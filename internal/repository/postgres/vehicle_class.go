package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleClassRepository struct {
	db *sql.DB
}

func NewVehicleClassRepository(db *sql.DB) repository.VehicleClassRepository {
	return &vehicleClassRepository{db: db}
}

const vehicleClassColumns = `id, name, additional_50km_price, transfer_base_fare, transfer_multiplier, warranty_amount`

func nullFloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func scanVehicleClass(row rowScanner) (*domain.VehicleClass, error) {
	var (
		c                      domain.VehicleClass
		km50, fare, multiplier sql.NullFloat64
	)
	if err := row.Scan(&c.ID, &c.Name, &km50, &fare, &multiplier, &c.WarrantyAmount); err != nil {
		return nil, err
	}
	c.Additional50kmPrice = nullFloatPtr(km50)
	c.TransferBaseFare = nullFloatPtr(fare)
	c.TransferMultiplier = nullFloatPtr(multiplier)
	return &c, nil
}

func (r *vehicleClassRepository) GetByID(ctx context.Context, id int32) (*domain.VehicleClass, error) {
	query := `SELECT ` + vehicleClassColumns + ` FROM vehicle_classes WHERE id = $1`
	c, err := scanVehicleClass(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return c, err
}

func (r *vehicleClassRepository) List(ctx context.Context) ([]domain.VehicleClass, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleClassColumns+` FROM vehicle_classes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.VehicleClass
	for rows.Next() {
		c, err := scanVehicleClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *c)
	}
	return classes, rows.Err()
}

func (r *vehicleClassRepository) UpdatePricing(ctx context.Context, c *domain.VehicleClass) error {
	query := `UPDATE vehicle_classes
	          SET additional_50km_price = $1, transfer_base_fare = $2, transfer_multiplier = $3, warranty_amount = $4
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, c.Additional50kmPrice, c.TransferBaseFare, c.TransferMultiplier, c.WarrantyAmount, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
