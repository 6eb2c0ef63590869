package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a daily self-report check-in: four ratings on a 1-10 scale
// plus an optional free-text note. Entries are immutable once created.
type JournalEntry struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Energy     int       `json:"energy"`
	Confidence int       `json:"confidence"`
	Focus      int       `json:"focus"`
	Mood       int       `json:"mood"`
	Note       *string   `json:"note,omitempty"`
}

// NewJournalEntry creates an entry dated at the given instant. Note may be
// nil; callers are expected to have validated the ratings and normalized the
// note beforehand.
func NewJournalEntry(date time.Time, energy, confidence, focus, mood int, note *string) JournalEntry {
	return JournalEntry{
		ID:         uuid.NewString(),
		Date:       date,
		Energy:     energy,
		Confidence: confidence,
		Focus:      focus,
		Mood:       mood,
		Note:       note,
	}
}

// AverageScore is the mean of the four ratings. It is derived on read and
// never persisted.
func (e JournalEntry) AverageScore() float64 {
	return float64(e.Energy+e.Confidence+e.Focus+e.Mood) / 4.0
}

// MoodLabel buckets the mood rating into a short descriptive word.
func (e JournalEntry) MoodLabel() string {
	switch {
	case e.Mood >= 1 && e.Mood <= 3:
		return "low"
	case e.Mood <= 5:
		return "flat"
	case e.Mood <= 7:
		return "okay"
	case e.Mood <= 9:
		return "good"
	case e.Mood == 10:
		return "great"
	default:
		return "flat"
	}
}
