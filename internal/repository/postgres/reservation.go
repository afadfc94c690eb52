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

	"github.com/lib/pq"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, reservation_number, vehicle_id, vehicle_name, customer_name, customer_email, customer_phone,
	to_char(pickup_date, 'YYYY-MM-DD'), to_char(return_date, 'YYYY-MM-DD'), pickup_time, return_time,
	pickup_location, return_location, features,
	days, base_price, base_price_before_season, seasonal_multiplier, seasonal_adjustment,
	delivery_fee, return_fee, additional_cost, is_scdw_selected, protection_cost, deductible_amount, total_price,
	status, notes, created_on`

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res         domain.Reservation
		rawFeatures []byte
		notes       sql.NullString
	)
	err := row.Scan(&res.ID, &res.ReservationNumber, &res.VehicleID, &res.VehicleName,
		&res.Customer.Name, &res.Customer.Email, &res.Customer.Phone,
		&res.PickupDate, &res.ReturnDate, &res.PickupTime, &res.ReturnTime,
		&res.PickupLocation, &res.ReturnLocation, &rawFeatures,
		&res.Days, &res.BasePrice, &res.BasePriceBeforeSeason, &res.SeasonalMultiplier, &res.SeasonalAdjustment,
		&res.DeliveryFee, &res.ReturnFee, &res.AdditionalCost, &res.IsSCDWSelected, &res.ProtectionCost, &res.DeductibleAmount, &res.TotalPrice,
		&res.Status, &notes, &res.CreatedOn)
	if err != nil {
		return nil, err
	}
	res.Notes = notes.String
	if len(rawFeatures) > 0 {
		if err := json.Unmarshal(rawFeatures, &res.Features); err != nil {
			return nil, fmt.Errorf("decode features for reservation %s: %w", res.ReservationNumber, err)
		}
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	logger.EnterMethod("reservationRepository.Create", "number", res.ReservationNumber, "vehicleID", res.VehicleID)

	rawFeatures, err := json.Marshal(res.Features)
	if err != nil {
		logger.ExitMethodWithError("reservationRepository.Create", err, "reason", "failed to marshal features")
		return err
	}

	query := `INSERT INTO reservations (reservation_number, vehicle_id, vehicle_name, customer_name, customer_email, customer_phone,
	              pickup_date, return_date, pickup_time, return_time, pickup_location, return_location, features,
	              days, base_price, base_price_before_season, seasonal_multiplier, seasonal_adjustment,
	              delivery_fee, return_fee, additional_cost, is_scdw_selected, protection_cost, deductible_amount, total_price,
	              status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
	              $19, $20, $21, $22, $23, $24, $25, $26, $27)
	          RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "reservations", "number", res.ReservationNumber)
	err = r.db.QueryRowContext(ctx, query,
		res.ReservationNumber, res.VehicleID, res.VehicleName, res.Customer.Name, res.Customer.Email, res.Customer.Phone,
		res.PickupDate, res.ReturnDate, res.PickupTime, res.ReturnTime, res.PickupLocation, res.ReturnLocation, rawFeatures,
		res.Days, res.BasePrice, res.BasePriceBeforeSeason, res.SeasonalMultiplier, res.SeasonalAdjustment,
		res.DeliveryFee, res.ReturnFee, res.AdditionalCost, res.IsSCDWSelected, res.ProtectionCost, res.DeductibleAmount, res.TotalPrice,
		res.Status, res.Notes,
	).Scan(&res.ID, &res.CreatedOn)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "number", res.ReservationNumber)
		logger.ExitMethodWithError("reservationRepository.Create", err)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "reservationID", res.ID)
	logger.ExitMethod("reservationRepository.Create", "reservationID", res.ID)
	return nil
}

func (r *reservationRepository) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_number = $1`
	res, err := scanReservation(r.db.QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return res, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var blockingStatuses = []string{string(domain.ReservationStatusPending), string(domain.ReservationStatusConfirmed)}

// CountOverlapping counts live reservations of the vehicle whose date range intersects [pickupDate, returnDate].
func (r *reservationRepository) CountOverlapping(ctx context.Context, vehicleID int32, pickupDate, returnDate string) (int32, error) {
	query := `SELECT count(*) FROM reservations
	          WHERE vehicle_id = $1 AND status = ANY($4)
	            AND pickup_date <= $3 AND return_date >= $2`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, pickupDate, returnDate, pq.Array(blockingStatuses)).Scan(&count)
	return count, err
}

func (r *reservationRepository) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE pickup_date = $1 AND status = $2 ORDER BY pickup_time, id`
	rows, err := r.db.QueryContext(ctx, query, pickupDate, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *res)
	}
	return list, rows.Err()
}
