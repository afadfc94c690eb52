package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.VehicleClassRepository
	repository.SeasonRepository
	repository.CurrentSeasonRepository
	repository.TransferTierRepository
	repository.ReservationRepository
	repository.TransferReservationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		VehicleRepository:             NewVehicleRepository(db),
		VehicleClassRepository:        NewVehicleClassRepository(db),
		SeasonRepository:              NewSeasonRepository(db),
		CurrentSeasonRepository:       NewCurrentSeasonRepository(db),
		TransferTierRepository:        NewTransferTierRepository(db),
		ReservationRepository:         NewReservationRepository(db),
		TransferReservationRepository: NewTransferReservationRepository(db),
	}
}
