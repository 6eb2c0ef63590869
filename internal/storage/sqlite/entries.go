package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
)

func (s *Store) AddEntry(entry models.JournalEntry) error {
	var note any
	if entry.Note != nil {
		note = *entry.Note
	}
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, entry_date, energy, confidence, focus, mood, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Date.UTC().Format(time.RFC3339),
		entry.Energy,
		entry.Confidence,
		entry.Focus,
		entry.Mood,
		note,
	)
	return err
}

func (s *Store) GetEntry(id string) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, entry_date, energy, confidence, focus, mood, note
		FROM journal_entries WHERE id = ?`, id)
	return scanEntry(row)
}

func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	return s.queryEntries(`
		SELECT id, entry_date, energy, confidence, focus, mood, note
		FROM journal_entries ORDER BY entry_date DESC`)
}

func (s *Store) GetEntriesBetween(start, end time.Time) ([]models.JournalEntry, error) {
	return s.queryEntries(`
		SELECT id, entry_date, energy, confidence, focus, mood, note
		FROM journal_entries WHERE entry_date >= ? AND entry_date < ?
		ORDER BY entry_date DESC`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
}

func (s *Store) GetEntriesSince(cutoff time.Time) ([]models.JournalEntry, error) {
	return s.queryEntries(`
		SELECT id, entry_date, energy, confidence, focus, mood, note
		FROM journal_entries WHERE entry_date >= ?
		ORDER BY entry_date DESC`,
		cutoff.UTC().Format(time.RFC3339),
	)
}

func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
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

func (s *Store) queryEntries(query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var e models.JournalEntry
	var date string
	var note sql.NullString

	if err := row.Scan(&e.ID, &date, &e.Energy, &e.Confidence, &e.Focus, &e.Mood, &note); err != nil {
		return models.JournalEntry{}, err
	}

	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse entry_date: %w", err)
	}
	e.Date = parsed
	if note.Valid {
		e.Note = &note.String
	}

	return e, nil
}
