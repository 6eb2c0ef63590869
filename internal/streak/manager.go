// Package streak owns the streak lifecycle: starting, ending, and resetting
// streaks while holding the single-active-streak invariant.
package streak

import (
	"fmt"
	"time"

	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage"
)

// Manager coordinates streak state through the persistence gateway. Gateway
// failures are translated into the application error taxonomy and logged with
// a context label before being returned.
type Manager struct {
	store storage.Provider
	now   func() time.Time
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewManagerWithClock injects the time source; tests use it for determinism.
func NewManagerWithClock(store storage.Provider, now func() time.Time) *Manager {
	return &Manager{store: store, now: now}
}

// FetchAll returns every streak, newest start date first.
func (m *Manager) FetchAll() ([]models.Streak, error) {
	streaks, err := m.store.GetAllStreaks()
	if err != nil {
		appErr := errors.DataFetchFailure("could not load streak history", err)
		errors.Log(appErr, "streak.FetchAll")
		return nil, appErr
	}
	return streaks, nil
}

// FetchActive returns the active streak, or nil when none exists. Finding
// more than one active record is a data-integrity fault: it is reported, not
// silently repaired.
func (m *Manager) FetchActive() (*models.Streak, error) {
	active, err := m.store.GetActiveStreaks()
	if err != nil {
		appErr := errors.DataFetchFailure("could not look up the active streak", err)
		errors.Log(appErr, "streak.FetchActive")
		return nil, appErr
	}
	switch len(active) {
	case 0:
		return nil, nil
	case 1:
		s := active[0]
		return &s, nil
	default:
		appErr := errors.Unknown(fmt.Sprintf("data integrity fault: %d active streaks found, expected at most 1", len(active)), nil)
		errors.Log(appErr, "streak.FetchActive")
		return nil, appErr
	}
}

// StartNewStreak creates and persists a new active streak starting now.
// Callers must guarantee no streak is currently active; starting over an
// existing active streak is a programmer error and surfaces as a fault
// rather than being silently corrected (ResetStreak is the end-then-start
// composite).
func (m *Manager) StartNewStreak() (models.Streak, error) {
	active, err := m.FetchActive()
	if err != nil {
		return models.Streak{}, err
	}
	if active != nil {
		appErr := errors.Unknown("startNewStreak called while a streak is already active", nil)
		errors.Log(appErr, "streak.StartNewStreak")
		return models.Streak{}, appErr
	}

	s := models.NewStreak(m.now())
	if err := m.store.AddStreak(s); err != nil {
		appErr := errors.DataSaveFailure("could not save the new streak", err)
		errors.Log(appErr, "streak.StartNewStreak")
		return models.Streak{}, appErr
	}
	return s, nil
}

// EndCurrentStreak marks the active streak inactive with an end date of now.
// Returns StreakNotFound when no streak is active.
func (m *Manager) EndCurrentStreak() (models.Streak, error) {
	active, err := m.FetchActive()
	if err != nil {
		return models.Streak{}, err
	}
	if active == nil {
		appErr := errors.StreakNotFound()
		errors.Log(appErr, "streak.EndCurrentStreak")
		return models.Streak{}, appErr
	}

	end := m.now()
	active.IsActive = false
	active.EndDate = &end
	if err := m.store.UpdateStreak(*active); err != nil {
		appErr := errors.DataSaveFailure("could not end the current streak", err)
		errors.Log(appErr, "streak.EndCurrentStreak")
		return models.Streak{}, appErr
	}
	return *active, nil
}

// ResetStreak ends the current streak (treating a missing one as a no-op)
// and starts a fresh one. Either the new active streak is returned, or the
// prior streak stays ended and the fault propagates to the caller; the
// system never settles with zero active streaks silently.
func (m *Manager) ResetStreak() (models.Streak, error) {
	if _, err := m.EndCurrentStreak(); err != nil {
		// StreakNotFound is expected here: resetting with no active streak
		// just starts a new one. Anything else aborts the reset.
		if !errors.From(err).Is(errors.ErrStreakNotFound) {
			errors.Log(err, "streak.ResetStreak")
			return models.Streak{}, err
		}
	}

	s, err := m.StartNewStreak()
	if err != nil {
		errors.Log(err, "streak.ResetStreak")
		return models.Streak{}, err
	}
	return s, nil
}

// Delete removes a streak record outright. This is an administrative escape
// hatch; normal flow never deletes streaks.
func (m *Manager) Delete(id string) error {
	if _, err := m.store.GetStreak(id); err != nil {
		appErr := errors.StreakNotFound()
		errors.Log(appErr, "streak.Delete")
		return appErr
	}
	if err := m.store.DeleteStreak(id); err != nil {
		appErr := errors.DataDeleteFailure("could not delete the streak", err)
		errors.Log(appErr, "streak.Delete")
		return appErr
	}
	return nil
}
