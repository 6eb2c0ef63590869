// Package journal records and queries daily self-report check-ins.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage"
	"github.com/reclaimhq/reclaim/internal/timecalc"
)

// Manager validates and records check-ins. Validation happens before any
// persistence call; a rejected entry is never partially written.
type Manager struct {
	store storage.Provider
	calc  timecalc.Calculator
	now   func() time.Time
}

func NewManager(store storage.Provider, calc timecalc.Calculator) *Manager {
	return &Manager{store: store, calc: calc, now: time.Now}
}

// NewManagerWithClock injects the time source; tests use it for determinism.
func NewManagerWithClock(store storage.Provider, calc timecalc.Calculator, now func() time.Time) *Manager {
	return &Manager{store: store, calc: calc, now: now}
}

// CreateEntry validates the four ratings, normalizes the note, persists the
// entry, and returns it. Validation fails on the first out-of-range field,
// naming the field and the allowed range.
func (m *Manager) CreateEntry(energy, confidence, focus, mood int, note string) (models.JournalEntry, error) {
	fields := []struct {
		name  string
		value int
	}{
		{"energy", energy},
		{"confidence", confidence},
		{"focus", focus},
		{"mood", mood},
	}
	for _, f := range fields {
		if f.value < constants.MinRating || f.value > constants.MaxRating {
			appErr := errors.ValidationFailed(fmt.Sprintf("%s must be between %d and %d", f.name, constants.MinRating, constants.MaxRating))
			errors.Log(appErr, "journal.CreateEntry")
			return models.JournalEntry{}, appErr
		}
	}

	entry := models.NewJournalEntry(m.now(), energy, confidence, focus, mood, normalizeNote(note))
	if err := m.store.AddEntry(entry); err != nil {
		appErr := errors.DataSaveFailure("could not save the check-in", err)
		errors.Log(appErr, "journal.CreateEntry")
		return models.JournalEntry{}, appErr
	}
	return entry, nil
}

// FetchAll returns every entry, newest first.
func (m *Manager) FetchAll() ([]models.JournalEntry, error) {
	entries, err := m.store.GetAllEntries()
	if err != nil {
		appErr := errors.DataFetchFailure("could not load journal entries", err)
		errors.Log(appErr, "journal.FetchAll")
		return nil, appErr
	}
	return entries, nil
}

// HasCheckedInToday reports whether at least one entry falls within the
// reference instant's calendar day. It is a query, not a uniqueness
// constraint: a second check-in on the same day is permitted, this only
// gates the prompt.
func (m *Manager) HasCheckedInToday(referenceNow time.Time) (bool, error) {
	start := m.calc.StartOfDay(referenceNow)
	end := start.AddDate(0, 0, 1)

	entries, err := m.store.GetEntriesBetween(start, end)
	if err != nil {
		appErr := errors.DataFetchFailure("could not check today's entries", err)
		errors.Log(appErr, "journal.HasCheckedInToday")
		return false, appErr
	}
	return len(entries) > 0, nil
}

// EntriesForPeriod returns entries dated within the trailing window of the
// given number of 24-hour days, newest first.
func (m *Manager) EntriesForPeriod(days int) ([]models.JournalEntry, error) {
	cutoff := m.now().Add(-time.Duration(days) * 24 * time.Hour)
	entries, err := m.store.GetEntriesSince(cutoff)
	if err != nil {
		appErr := errors.DataFetchFailure("could not load journal entries for the period", err)
		errors.Log(appErr, "journal.EntriesForPeriod")
		return nil, appErr
	}
	return entries, nil
}

// DeleteEntry removes an entry by id. Entries are immutable; deletion is the
// only post-creation mutation the model allows.
func (m *Manager) DeleteEntry(id string) error {
	if _, err := m.store.GetEntry(id); err != nil {
		appErr := errors.JournalEntryNotFound()
		errors.Log(appErr, "journal.DeleteEntry")
		return appErr
	}
	if err := m.store.DeleteEntry(id); err != nil {
		appErr := errors.DataDeleteFailure("could not delete the entry", err)
		errors.Log(appErr, "journal.DeleteEntry")
		return appErr
	}
	return nil
}

// AverageMood is the arithmetic mean of mood over the given entries. An
// empty collection yields 0, a sentinel meaning "no data"; it is not a
// valid mood value and consumers must treat it specially.
func AverageMood(entries []models.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(entries))
}

// normalizeNote trims whitespace and maps empty notes to absent.
func normalizeNote(note string) *string {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
