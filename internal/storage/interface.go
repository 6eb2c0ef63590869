package storage

import (
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
)

// Provider is the persistence gateway consumed by the streak, journal, and
// milestone managers. The managers depend on this interface only, never on a
// concrete store; backends are SQLite, Postgres, and an in-memory double for
// tests. Provider errors are generic I/O failures; translation into the
// application error taxonomy happens at the manager boundary.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Streaks
	AddStreak(models.Streak) error
	GetStreak(id string) (models.Streak, error)
	// GetAllStreaks returns every streak ordered by start date descending.
	GetAllStreaks() ([]models.Streak, error)
	// GetActiveStreaks returns all streaks flagged active, newest first. By
	// invariant there is at most one; returning a slice lets the lifecycle
	// manager detect integrity faults instead of having the store mask them.
	GetActiveStreaks() ([]models.Streak, error)
	UpdateStreak(models.Streak) error
	DeleteStreak(id string) error

	// Journal entries
	AddEntry(models.JournalEntry) error
	GetEntry(id string) (models.JournalEntry, error)
	// GetAllEntries returns every entry ordered by date descending.
	GetAllEntries() ([]models.JournalEntry, error)
	// GetEntriesBetween returns entries with start <= date < end, newest first.
	GetEntriesBetween(start, end time.Time) ([]models.JournalEntry, error)
	// GetEntriesSince returns entries with date >= cutoff, newest first.
	GetEntriesSince(cutoff time.Time) ([]models.JournalEntry, error)
	DeleteEntry(id string) error

	// Notified milestone thresholds: the set of day counts the user has
	// already been congratulated on, kept so celebrations fire at most once
	// across process restarts.
	GetNotifiedThresholds() ([]int, error)
	SaveNotifiedThresholds(days []int) error

	// Utils
	GetConfigPath() string
}
