package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
)

func (s *Store) AddStreak(streak models.Streak) error {
	_, err := s.db.Exec(`
		INSERT INTO streaks (id, start_date, end_date, is_active)
		VALUES (?, ?, ?, ?)`,
		streak.ID,
		streak.StartDate.UTC().Format(time.RFC3339),
		nullableTime(streak.EndDate),
		boolToInt(streak.IsActive),
	)
	return err
}

func (s *Store) GetStreak(id string) (models.Streak, error) {
	row := s.db.QueryRow(`
		SELECT id, start_date, end_date, is_active
		FROM streaks WHERE id = ?`, id)
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
		FROM streaks WHERE is_active = 1 ORDER BY start_date DESC`)
}

func (s *Store) UpdateStreak(streak models.Streak) error {
	res, err := s.db.Exec(`
		UPDATE streaks SET start_date = ?, end_date = ?, is_active = ?
		WHERE id = ?`,
		streak.StartDate.UTC().Format(time.RFC3339),
		nullableTime(streak.EndDate),
		boolToInt(streak.IsActive),
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
	res, err := s.db.Exec(`DELETE FROM streaks WHERE id = ?`, id)
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
	var startDate string
	var endDate sql.NullString
	var isActive int

	if err := row.Scan(&st.ID, &startDate, &endDate, &isActive); err != nil {
		return models.Streak{}, err
	}

	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return models.Streak{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	st.StartDate = start
	if endDate.Valid {
		end, err := time.Parse(time.RFC3339, endDate.String)
		if err != nil {
			return models.Streak{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		st.EndDate = &end
	}
	st.IsActive = isActive != 0

	return st, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
