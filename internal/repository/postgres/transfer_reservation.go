package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type transferReservationRepository struct {
	db *sql.DB
}

func NewTransferReservationRepository(db *sql.DB) repository.TransferReservationRepository {
	return &transferReservationRepository{db: db}
}

const transferReservationColumns = `id, reservation_number, class_id, customer_name, customer_email, customer_phone,
	pickup_address, dropoff_address, to_char(pickup_date, 'YYYY-MM-DD'), pickup_time, passengers, transfer_type, distance_km,
	base_fare, extra_km, tier_price_per_km, distance_charge, total_price, status, notes, created_on`

func scanTransferReservation(row rowScanner) (*domain.TransferReservation, error) {
	var (
		t     domain.TransferReservation
		notes sql.NullString
	)
	err := row.Scan(&t.ID, &t.ReservationNumber, &t.ClassID, &t.Customer.Name, &t.Customer.Email, &t.Customer.Phone,
		&t.PickupAddress, &t.DropoffAddress, &t.PickupDate, &t.PickupTime, &t.Passengers, &t.TransferType, &t.DistanceKm,
		&t.BaseFare, &t.ExtraKm, &t.TierPricePerKm, &t.DistanceCharge, &t.TotalPrice, &t.Status, &notes, &t.CreatedOn)
	if err != nil {
		return nil, err
	}
	t.Notes = notes.String
	return &t, nil
}

func (r *transferReservationRepository) Create(ctx context.Context, t *domain.TransferReservation) error {
	logger.EnterMethod("transferReservationRepository.Create", "number", t.ReservationNumber, "classID", t.ClassID)

	query := `INSERT INTO transfer_reservations (reservation_number, class_id, customer_name, customer_email, customer_phone,
	              pickup_address, dropoff_address, pickup_date, pickup_time, passengers, transfer_type, distance_km,
	              base_fare, extra_km, tier_price_per_km, distance_charge, total_price, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "transfer_reservations", "number", t.ReservationNumber)
	err := r.db.QueryRowContext(ctx, query,
		t.ReservationNumber, t.ClassID, t.Customer.Name, t.Customer.Email, t.Customer.Phone,
		t.PickupAddress, t.DropoffAddress, t.PickupDate, t.PickupTime, t.Passengers, t.TransferType, t.DistanceKm,
		t.BaseFare, t.ExtraKm, t.TierPricePerKm, t.DistanceCharge, t.TotalPrice, t.Status, t.Notes,
	).Scan(&t.ID, &t.CreatedOn)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "number", t.ReservationNumber)
		logger.ExitMethodWithError("transferReservationRepository.Create", err)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "transferID", t.ID)
	logger.ExitMethod("transferReservationRepository.Create", "transferID", t.ID)
	return nil
}

func (r *transferReservationRepository) GetByNumber(ctx context.Context, number string) (*domain.TransferReservation, error) {
	query := `SELECT ` + transferReservationColumns + ` FROM transfer_reservations WHERE reservation_number = $1`
	t, err := scanTransferReservation(r.db.QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return t, err
}

func (r *transferReservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE transfer_reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transferReservationRepository) ListByPickupDate(ctx context.Context, pickupDate string, status domain.ReservationStatus) ([]domain.TransferReservation, error) {
	query := `SELECT ` + transferReservationColumns + ` FROM transfer_reservations WHERE pickup_date = $1 AND status = $2 ORDER BY pickup_time, id`
	rows, err := r.db.QueryContext(ctx, query, pickupDate, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.TransferReservation
	for rows.Next() {
		t, err := scanTransferReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}
