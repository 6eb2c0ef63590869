// Package stats computes aggregate summaries over streak history and
// journal entries. Everything here is pure derivation from fetched records.
package stats

import (
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
)

// StreakSummary aggregates the full streak history.
type StreakSummary struct {
	// Count is the total number of streaks ever started.
	Count int
	// CurrentDays is the day count of the active streak, 0 when none.
	CurrentDays int
	// LongestDays is the longest streak on record, the active one included.
	LongestDays int
	// TotalCleanDays sums the day counts of every streak.
	TotalCleanDays int
}

// SummarizeStreaks derives a summary from the full streak history. Ended
// streaks are measured start to end; the active streak is measured up to
// now.
func SummarizeStreaks(streaks []models.Streak, now time.Time) StreakSummary {
	s := StreakSummary{Count: len(streaks)}
	for _, st := range streaks {
		days := st.Days(now)
		s.TotalCleanDays += days
		if days > s.LongestDays {
			s.LongestDays = days
		}
		if st.IsActive {
			s.CurrentDays = days
		}
	}
	return s
}

// RatingAverages holds per-field means over a set of journal entries. All
// fields are 0 when Entries is 0; consumers must treat that as "no data",
// not as a rating.
type RatingAverages struct {
	Entries    int
	Energy     float64
	Confidence float64
	Focus      float64
	Mood       float64
	Overall    float64
}

// AverageRatings computes per-field rating means over a collection.
func AverageRatings(entries []models.JournalEntry) RatingAverages {
	r := RatingAverages{Entries: len(entries)}
	if len(entries) == 0 {
		return r
	}

	var energy, confidence, focus, mood int
	for _, e := range entries {
		energy += e.Energy
		confidence += e.Confidence
		focus += e.Focus
		mood += e.Mood
	}

	n := float64(len(entries))
	r.Energy = float64(energy) / n
	r.Confidence = float64(confidence) / n
	r.Focus = float64(focus) / n
	r.Mood = float64(mood) / n
	r.Overall = (r.Energy + r.Confidence + r.Focus + r.Mood) / 4
	return r
}

// CheckInRate reports the fraction of the last periodDays calendar days
// with at least one entry, in [0,1]. Multiple entries on one day count
// once.
func CheckInRate(entries []models.JournalEntry, periodDays int, now time.Time, loc *time.Location) float64 {
	if periodDays <= 0 {
		return 0
	}
	if loc == nil {
		loc = time.Local
	}

	cutoff := now.Add(-time.Duration(periodDays) * 24 * time.Hour)
	days := make(map[string]bool)
	for _, e := range entries {
		if e.Date.Before(cutoff) || e.Date.After(now) {
			continue
		}
		days[e.Date.In(loc).Format("2006-01-02")] = true
	}
	rate := float64(len(days)) / float64(periodDays)
	if rate > 1 {
		return 1
	}
	return rate
}
