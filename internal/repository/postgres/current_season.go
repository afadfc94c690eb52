package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type currentSeasonRepository struct {
	db *sql.DB
}

func NewCurrentSeasonRepository(db *sql.DB) repository.CurrentSeasonRepository {
	return &currentSeasonRepository{db: db}
}

func (r *currentSeasonRepository) Get(ctx context.Context) (*domain.CurrentSeason, error) {
	var (
		cs    domain.CurrentSeason
		setBy sql.NullString
	)
	query := `SELECT season_id, set_at, set_by FROM current_season WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&cs.SeasonID, &cs.SetAt, &setBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if setBy.Valid {
		cs.SetBy = &setBy.String
	}
	return &cs, nil
}

// Set replaces the pointer atomically; the table holds at most the row with id 1.
func (r *currentSeasonRepository) Set(ctx context.Context, cs *domain.CurrentSeason) error {
	query := `INSERT INTO current_season (id, season_id, set_at, set_by) VALUES (1, $1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET season_id = EXCLUDED.season_id, set_at = EXCLUDED.set_at, set_by = EXCLUDED.set_by`
	_, err := r.db.ExecContext(ctx, query, cs.SeasonID, cs.SetAt, cs.SetBy)
	return err
}

func (r *currentSeasonRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM current_season WHERE id = 1`)
	return err
}
