package postgres

import (
	"database/sql"

	"github.com/reclaimhq/reclaim/internal/models"
)

func (s *Store) AddStreak(streak models.Streak) error {
	_, err := s.db.Exec(`
		INSERT INTO streaks (id, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4)`,
		streak.ID,
		streak.StartDate,
		streak.EndDate,
		streak.IsActive,
	)
	return err
}

func (s *Store) GetStreak(id string) (models.Streak, error) {
	row := s.db.QueryRow(`
		SELECT id, start_date, end_date, is_active
		FROM streaks WHERE id = $1`, id)
	return scanStreak(row)
}

func (s *Store) GetAllStreaks() ([]models.Streak, error) {
	return s.queryStreaks(`
		SELECT id, start_date, end_date, is_active
		FROM streaks ORDER BY start_date DESC`)
}

func (s *Store) GetActiveStreaks() ([]models.Streak, error) {
	return s.queryStreaks(`
		SELECT id, start_date, end_date, is_active
		FROM streaks WHERE is_active ORDER BY start_date DESC`)
}

func (s *Store) UpdateStreak(streak models.Streak) error {
	res, err := s.db.Exec(`
		UPDATE streaks SET start_date = $1, end_date = $2, is_active = $3
		WHERE id = $4`,
		streak.StartDate,
		streak.EndDate,
		streak.IsActive,
		streak.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteStreak(id string) error {
	res, err := s.db.Exec(`DELETE FROM streaks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) queryStreaks(query string, args ...any) ([]models.Streak, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streaks []models.Streak
	for rows.Next() {
		st, err := scanStreak(rows)
		if err != nil {
			return nil, err
		}
		streaks = append(streaks, st)
	}
	return streaks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStreak(row rowScanner) (models.Streak, error) {
	var st models.Streak
	var endDate sql.NullTime

	if err := row.Scan(&st.ID, &st.StartDate, &endDate, &st.IsActive); err != nil {
		return models.Streak{}, err
	}
	if endDate.Valid {
		t := endDate.Time
		st.EndDate = &t
	}

	return st, nil
}
