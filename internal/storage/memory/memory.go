// Package memory implements an in-memory Provider for development and
// testing. It mirrors the ordering guarantees of the SQL backends.
package memory

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage"
)

// Store implements storage.Provider entirely in memory. Optional failure
// hooks let tests inject gateway faults per operation.
type Store struct {
	mu         sync.Mutex
	streaks    []models.Streak
	entries    []models.JournalEntry
	notified   []int
	settings   models.Settings
	hasSet     bool
	configPath string

	// FailWith, when non-nil, is returned by every mutating and querying
	// operation. Tests use it to simulate gateway I/O failures.
	FailWith error
}

var _ storage.Provider = (*Store)(nil)

func New() *Store {
	return &Store{configPath: ":memory:"}
}

func (m *Store) Init() error { return m.FailWith }
func (m *Store) Load() error { return m.FailWith }
func (m *Store) Close() error { return nil }

func (m *Store) GetConfigPath() string { return m.configPath }

func (m *Store) GetSettings() (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return models.Settings{}, m.FailWith
	}
	if !m.hasSet {
		return models.DefaultSettings(), nil
	}
	return m.settings, nil
}

func (m *Store) SaveSettings(settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.settings = settings
	m.hasSet = true
	return nil
}

func (m *Store) AddStreak(streak models.Streak) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.streaks = append(m.streaks, streak)
	return nil
}

func (m *Store) GetStreak(id string) (models.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return models.Streak{}, m.FailWith
	}
	for _, s := range m.streaks {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Streak{}, sql.ErrNoRows
}

func (m *Store) GetAllStreaks() ([]models.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	out := make([]models.Streak, len(m.streaks))
	copy(out, m.streaks)
	sortStreaksNewestFirst(out)
	return out, nil
}

func (m *Store) GetActiveStreaks() ([]models.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []models.Streak
	for _, s := range m.streaks {
		if s.IsActive {
			out = append(out, s)
		}
	}
	sortStreaksNewestFirst(out)
	return out, nil
}

func (m *Store) UpdateStreak(streak models.Streak) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	for i, s := range m.streaks {
		if s.ID == streak.ID {
			m.streaks[i] = streak
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *Store) DeleteStreak(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	for i, s := range m.streaks {
		if s.ID == id {
			m.streaks = append(m.streaks[:i], m.streaks[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *Store) AddEntry(entry models.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *Store) GetEntry(id string) (models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return models.JournalEntry{}, m.FailWith
	}
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, sql.ErrNoRows
}

func (m *Store) GetAllEntries() ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	out := make([]models.JournalEntry, len(m.entries))
	copy(out, m.entries)
	sortEntriesNewestFirst(out)
	return out, nil
}

func (m *Store) GetEntriesBetween(start, end time.Time) ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []models.JournalEntry
	for _, e := range m.entries {
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, e)
		}
	}
	sortEntriesNewestFirst(out)
	return out, nil
}

func (m *Store) GetEntriesSince(cutoff time.Time) ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []models.JournalEntry
	for _, e := range m.entries {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	sortEntriesNewestFirst(out)
	return out, nil
}

func (m *Store) DeleteEntry(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *Store) GetNotifiedThresholds() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	out := make([]int, len(m.notified))
	copy(out, m.notified)
	sort.Ints(out)
	return out, nil
}

func (m *Store) SaveNotifiedThresholds(days []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.notified = make([]int, len(days))
	copy(m.notified, days)
	return nil
}

func sortStreaksNewestFirst(streaks []models.Streak) {
	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].StartDate.After(streaks[j].StartDate)
	})
}

func sortEntriesNewestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
