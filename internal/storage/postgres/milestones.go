package postgres

func (s *Store) GetNotifiedThresholds() ([]int, error) {
	rows, err := s.db.Query(`SELECT days FROM notified_milestones ORDER BY days`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (s *Store) SaveNotifiedThresholds(days []int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM notified_milestones`); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, d := range days {
		if _, err := tx.Exec(`INSERT INTO notified_milestones (days) VALUES ($1)`, d); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
