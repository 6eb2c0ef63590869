package stats

import (
	"testing"
	"time"

	"github.com/reclaimhq/reclaim/internal/models"
)

func endedStreak(start time.Time, days int) models.Streak {
	s := models.NewStreak(start)
	end := start.Add(time.Duration(days) * 24 * time.Hour)
	s.EndDate = &end
	s.IsActive = false
	return s
}

func TestSummarizeStreaks(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		streaks []models.Streak
		want    StreakSummary
	}{
		{
			name:    "no history",
			streaks: nil,
			want:    StreakSummary{},
		},
		{
			name: "single active streak",
			streaks: []models.Streak{
				models.NewStreak(now.Add(-5 * 24 * time.Hour)),
			},
			want: StreakSummary{Count: 1, CurrentDays: 5, LongestDays: 5, TotalCleanDays: 5},
		},
		{
			name: "active streak is the longest",
			streaks: []models.Streak{
				models.NewStreak(now.Add(-30 * 24 * time.Hour)),
				endedStreak(now.Add(-100*24*time.Hour), 12),
			},
			want: StreakSummary{Count: 2, CurrentDays: 30, LongestDays: 30, TotalCleanDays: 42},
		},
		{
			name: "ended streak is the longest",
			streaks: []models.Streak{
				models.NewStreak(now.Add(-3 * 24 * time.Hour)),
				endedStreak(now.Add(-400*24*time.Hour), 90),
				endedStreak(now.Add(-200*24*time.Hour), 7),
			},
			want: StreakSummary{Count: 3, CurrentDays: 3, LongestDays: 90, TotalCleanDays: 100},
		},
		{
			name: "history with no active streak",
			streaks: []models.Streak{
				endedStreak(now.Add(-100*24*time.Hour), 12),
			},
			want: StreakSummary{Count: 1, CurrentDays: 0, LongestDays: 12, TotalCleanDays: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeStreaks(tt.streaks, now); got != tt.want {
				t.Errorf("SummarizeStreaks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAverageRatings(t *testing.T) {
	entries := []models.JournalEntry{
		{Energy: 4, Confidence: 6, Focus: 8, Mood: 10},
		{Energy: 6, Confidence: 8, Focus: 10, Mood: 4},
	}

	got := AverageRatings(entries)
	if got.Entries != 2 {
		t.Errorf("Entries = %d, want 2", got.Entries)
	}
	if got.Energy != 5 || got.Confidence != 7 || got.Focus != 9 || got.Mood != 7 {
		t.Errorf("per-field means = %+v", got)
	}
	if got.Overall != 7 {
		t.Errorf("Overall = %v, want 7", got.Overall)
	}
}

func TestAverageRatingsEmpty(t *testing.T) {
	got := AverageRatings(nil)
	if got != (RatingAverages{}) {
		t.Errorf("empty collection should be the zero summary, got %+v", got)
	}
}

func TestCheckInRate(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		{Date: now.Add(-1 * time.Hour)},
		{Date: now.Add(-2 * time.Hour)},           // same day as above
		{Date: now.Add(-2 * 24 * time.Hour)},      // second distinct day
		{Date: now.Add(-10 * 24 * time.Hour)},     // outside window
	}

	got := CheckInRate(entries, 7, now, time.UTC)
	want := 2.0 / 7.0
	if got != want {
		t.Errorf("CheckInRate() = %v, want %v", got, want)
	}

	if got := CheckInRate(nil, 7, now, time.UTC); got != 0 {
		t.Errorf("no entries should give rate 0, got %v", got)
	}
	if got := CheckInRate(entries, 0, now, time.UTC); got != 0 {
		t.Errorf("zero-day period should give rate 0, got %v", got)
	}
}
