package milestone

import (
	stderrors "errors"
	"testing"

	apperrors "github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage/memory"
)

func TestDeriveUnlocked(t *testing.T) {
	engine := NewEngine(memory.New())

	tests := []struct {
		name         string
		days         int
		wantUnlocked int
	}{
		{"day zero", 0, 0},
		{"first day", 1, 1},
		{"mid catalog", 45, 5},
		{"full year", 365, 9},
		{"beyond catalog", 1000, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			milestones := engine.DeriveUnlocked(tt.days)
			if len(milestones) != len(models.Milestones) {
				t.Fatalf("len = %d, want full catalog", len(milestones))
			}
			unlocked := 0
			for _, m := range milestones {
				if m.Unlocked {
					unlocked++
				}
				if m.Unlocked != (tt.days >= m.Days) {
					t.Errorf("threshold %d: unlocked = %v at %d days", m.Days, m.Unlocked, tt.days)
				}
			}
			if unlocked != tt.wantUnlocked {
				t.Errorf("unlocked count = %d, want %d", unlocked, tt.wantUnlocked)
			}
			if unlocked != engine.UnlockedCount(tt.days) {
				t.Errorf("UnlockedCount disagrees with DeriveUnlocked")
			}
		})
	}
}

func TestDeriveUnlockedMonotonic(t *testing.T) {
	engine := NewEngine(memory.New())

	prev := 0
	for days := 0; days <= 400; days += 5 {
		count := engine.UnlockedCount(days)
		if count < prev {
			t.Fatalf("unlocked count decreased from %d to %d at %d days", prev, count, days)
		}
		prev = count
	}
}

func TestDetectNewlyUnlockedHighestWins(t *testing.T) {
	store := memory.New()
	engine := NewEngine(store)

	m, err := engine.DetectNewlyUnlocked(45)
	if err != nil {
		t.Fatalf("DetectNewlyUnlocked() error = %v", err)
	}
	if m == nil {
		t.Fatal("expected a newly unlocked milestone")
	}
	if m.Days != 30 {
		t.Errorf("celebrated threshold = %d, want 30 (highest crossed)", m.Days)
	}
	if m.Title != "One Month Legend" {
		t.Errorf("Title = %q, want the 30-day entry", m.Title)
	}

	notified, err := store.GetNotifiedThresholds()
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]bool{1: true, 3: true, 7: true, 14: true, 30: true}
	if len(notified) != len(want) {
		t.Fatalf("notified = %v, want all crossed thresholds marked seen", notified)
	}
	for _, d := range notified {
		if !want[d] {
			t.Errorf("unexpected notified threshold %d", d)
		}
	}

	// Same day count again: nothing new fires.
	m, err = engine.DetectNewlyUnlocked(45)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("second detection at same day count returned %d, want none", m.Days)
	}
}

func TestDetectNewlyUnlockedIncremental(t *testing.T) {
	store := memory.New()
	engine := NewEngine(store)

	expected := map[int]int{1: 1, 3: 3, 7: 7, 14: 14, 30: 30}
	fired := map[int]int{}
	for days := 0; days <= 30; days++ {
		m, err := engine.DetectNewlyUnlocked(days)
		if err != nil {
			t.Fatal(err)
		}
		if m != nil {
			if _, dup := fired[m.Days]; dup {
				t.Fatalf("threshold %d celebrated twice", m.Days)
			}
			fired[m.Days] = days
		}
	}
	for threshold, day := range expected {
		if fired[threshold] != day {
			t.Errorf("threshold %d fired on day %d, want day %d", threshold, fired[threshold], day)
		}
	}
}

func TestDetectNewlyUnlockedNothingCrossed(t *testing.T) {
	store := memory.New()
	engine := NewEngine(store)

	m, err := engine.DetectNewlyUnlocked(0)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("day 0 should cross nothing, got threshold %d", m.Days)
	}

	// No persistence side effect when nothing fires.
	notified, err := store.GetNotifiedThresholds()
	if err != nil {
		t.Fatal(err)
	}
	if len(notified) != 0 {
		t.Errorf("notified = %v, want empty", notified)
	}
}

func TestDetectNewlyUnlockedStoreFailure(t *testing.T) {
	store := memory.New()
	store.FailWith = stderrors.New("disk full")
	engine := NewEngine(store)

	_, err := engine.DetectNewlyUnlocked(10)
	if apperrors.From(err).Kind != apperrors.KindDataFetchFailure {
		t.Errorf("load failure should map to DataFetchFailure, got %v", err)
	}
}

func TestProgressToNext(t *testing.T) {
	engine := NewEngine(memory.New())

	tests := []struct {
		name string
		days int
		want float64
	}{
		{"fresh start", 0, 0},
		{"halfway between 3 and 7", 5, 0.5},
		{"exactly at a threshold", 3, 0},
		{"all unlocked", 365, 1},
		{"beyond catalog", 400, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.ProgressToNext(tt.days); got != tt.want {
				t.Errorf("ProgressToNext(%d) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestNextMilestone(t *testing.T) {
	engine := NewEngine(memory.New())

	if next := engine.NextMilestone(0); next == nil || next.Days != 1 {
		t.Errorf("NextMilestone(0) = %v, want threshold 1", next)
	}
	if next := engine.NextMilestone(45); next == nil || next.Days != 60 {
		t.Errorf("NextMilestone(45) = %v, want threshold 60", next)
	}
	if next := engine.NextMilestone(365); next != nil {
		t.Errorf("NextMilestone(365) = %v, want none", next)
	}

	if got := engine.DaysUntilNext(45); got != 15 {
		t.Errorf("DaysUntilNext(45) = %d, want 15", got)
	}
	if got := engine.DaysUntilNext(365); got != 0 {
		t.Errorf("DaysUntilNext(365) = %d, want 0", got)
	}
}
