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

type seasonRepository struct {
	db *sql.DB
}

func NewSeasonRepository(db *sql.DB) repository.SeasonRepository {
	return &seasonRepository{db: db}
}

const seasonColumns = `id, name, multiplier, periods, is_active, to_char(created_on, 'YYYY-MM-DD')`

func scanSeason(row rowScanner) (*domain.Season, error) {
	var (
		s          domain.Season
		rawPeriods []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Multiplier, &rawPeriods, &s.IsActive, &s.CreatedOn); err != nil {
		return nil, err
	}
	if len(rawPeriods) > 0 {
		if err := json.Unmarshal(rawPeriods, &s.Periods); err != nil {
			return nil, fmt.Errorf("decode periods for season %d: %w", s.ID, err)
		}
	}
	return &s, nil
}

func encodePeriods(periods []domain.SeasonPeriod) ([]byte, error) {
	if periods == nil {
		periods = []domain.SeasonPeriod{}
	}
	return json.Marshal(periods)
}

func (r *seasonRepository) Create(ctx context.Context, s *domain.Season) error {
	logger.EnterMethod("seasonRepository.Create", "name", s.Name, "multiplier", s.Multiplier)

	raw, err := encodePeriods(s.Periods)
	if err != nil {
		logger.ExitMethodWithError("seasonRepository.Create", err, "reason", "failed to marshal periods")
		return err
	}

	query := `INSERT INTO seasons (name, multiplier, periods, is_active)
	          VALUES ($1, $2, $3, $4) RETURNING id, to_char(created_on, 'YYYY-MM-DD')`
	logger.DatabaseCall("INSERT", "seasons", "name", s.Name)
	err = r.db.QueryRowContext(ctx, query, s.Name, s.Multiplier, raw, s.IsActive).Scan(&s.ID, &s.CreatedOn)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "name", s.Name)
		logger.ExitMethodWithError("seasonRepository.Create", err)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "seasonID", s.ID)
	logger.ExitMethod("seasonRepository.Create", "seasonID", s.ID)
	return nil
}

func (r *seasonRepository) GetByID(ctx context.Context, id int32) (*domain.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE id = $1`
	s, err := scanSeason(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return s, err
}

func (r *seasonRepository) Update(ctx context.Context, s *domain.Season) error {
	raw, err := encodePeriods(s.Periods)
	if err != nil {
		return err
	}
	query := `UPDATE seasons SET name = $1, multiplier = $2, periods = $3, is_active = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Multiplier, raw, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *seasonRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *seasonRepository) List(ctx context.Context) ([]domain.Season, error) {
	return r.list(ctx, `SELECT `+seasonColumns+` FROM seasons ORDER BY id`)
}

func (r *seasonRepository) ListActive(ctx context.Context) ([]domain.Season, error) {
	return r.list(ctx, `SELECT `+seasonColumns+` FROM seasons WHERE is_active = true ORDER BY id`)
}

func (r *seasonRepository) list(ctx context.Context, query string) ([]domain.Season, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []domain.Season
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, *s)
	}
	return seasons, rows.Err()
}
