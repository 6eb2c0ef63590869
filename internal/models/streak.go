package models

import (
	"time"

	"github.com/google/uuid"
)

// Streak is a contiguous interval of tracked clean time, bounded by a start
// event and an optional end event. At most one streak is active at any moment;
// an inactive streak always has a non-nil EndDate >= StartDate.
type Streak struct {
	ID        string     `json:"id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// NewStreak creates an active streak starting at the given instant.
func NewStreak(start time.Time) Streak {
	return Streak{
		ID:        uuid.NewString(),
		StartDate: start,
		IsActive:  true,
	}
}

// Duration is the elapsed time of the streak. Active streaks are measured
// against the supplied reference instant; ended streaks against their end
// date. Duration is always recomputed from the raw timestamps, never cached.
func (s Streak) Duration(now time.Time) time.Duration {
	end := now
	if s.EndDate != nil {
		end = *s.EndDate
	}
	d := end.Sub(s.StartDate)
	if d < 0 {
		return 0
	}
	return d
}

// Days is the whole number of 24-hour periods the streak has lasted.
func (s Streak) Days(now time.Time) int {
	return int(s.Duration(now) / (24 * time.Hour))
}
