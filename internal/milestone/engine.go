// Package milestone derives unlock state for the fixed threshold catalog
// from a streak's elapsed day count. The only persisted state is the set of
// thresholds the user has already been congratulated on, which suppresses
// repeat celebrations across restarts.
package milestone

import (
	"sort"

	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage"
)

type Engine struct {
	store storage.Provider
}

func NewEngine(store storage.Provider) *Engine {
	return &Engine{store: store}
}

// DeriveUnlocked returns the full catalog in order with Unlocked set for
// every threshold at or below currentDays.
func (e *Engine) DeriveUnlocked(currentDays int) []models.Milestone {
	out := make([]models.Milestone, len(models.Milestones))
	copy(out, models.Milestones)
	for i := range out {
		out[i].Unlocked = currentDays >= out[i].Days
	}
	return out
}

// DetectNewlyUnlocked returns the highest crossed threshold the user has not
// yet been congratulated on, or nil if there is nothing new. When several
// thresholds were crossed since the last check (the app may have been closed
// for weeks), only the highest is returned but all of them are recorded as
// seen so none fires later. The updated set is persisted before returning,
// independent of whether the caller ever shows the celebration.
func (e *Engine) DetectNewlyUnlocked(currentDays int) (*models.Milestone, error) {
	notified, err := e.store.GetNotifiedThresholds()
	if err != nil {
		appErr := errors.DataFetchFailure("unable to load celebrated milestones", err)
		errors.Log(appErr, "milestone.DetectNewlyUnlocked")
		return nil, appErr
	}

	seen := make(map[int]bool, len(notified))
	for _, d := range notified {
		seen[d] = true
	}

	var newest *models.Milestone
	var crossed []int
	for i := range models.Milestones {
		m := models.Milestones[i]
		if currentDays < m.Days || seen[m.Days] {
			continue
		}
		crossed = append(crossed, m.Days)
		m.Unlocked = true
		newest = &m
	}
	if newest == nil {
		return nil, nil
	}

	merged := append(notified, crossed...)
	sort.Ints(merged)
	if err := e.store.SaveNotifiedThresholds(merged); err != nil {
		appErr := errors.DataSaveFailure("unable to record celebrated milestones", err)
		errors.Log(appErr, "milestone.DetectNewlyUnlocked")
		return nil, appErr
	}
	return newest, nil
}

// NextMilestone returns the lowest threshold strictly above currentDays, or
// nil when the whole catalog is unlocked.
func (e *Engine) NextMilestone(currentDays int) *models.Milestone {
	for i := range models.Milestones {
		if models.Milestones[i].Days > currentDays {
			m := models.Milestones[i]
			return &m
		}
	}
	return nil
}

// DaysUntilNext returns how many more days until the next locked threshold,
// 0 when everything is unlocked.
func (e *Engine) DaysUntilNext(currentDays int) int {
	next := e.NextMilestone(currentDays)
	if next == nil {
		return 0
	}
	return next.Days - currentDays
}

// ProgressToNext reports the fraction of the way from the last unlocked
// threshold to the next one, in [0,1]. Returns 1 when the whole catalog is
// unlocked.
func (e *Engine) ProgressToNext(currentDays int) float64 {
	next := e.NextMilestone(currentDays)
	if next == nil {
		return 1
	}
	previous := 0
	for i := range models.Milestones {
		if models.Milestones[i].Days <= currentDays {
			previous = models.Milestones[i].Days
		}
	}
	span := next.Days - previous
	if span <= 0 {
		// Unreachable with a strictly increasing catalog.
		return 1
	}
	frac := float64(currentDays-previous) / float64(span)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// UnlockedCount returns how many catalog thresholds currentDays has reached.
func (e *Engine) UnlockedCount(currentDays int) int {
	count := 0
	for i := range models.Milestones {
		if currentDays >= models.Milestones[i].Days {
			count++
		}
	}
	return count
}
