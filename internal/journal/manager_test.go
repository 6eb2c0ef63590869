package journal

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage/memory"
	"github.com/reclaimhq/reclaim/internal/timecalc"
)

func newTestManager(store *memory.Store, now time.Time) *Manager {
	return NewManagerWithClock(store, timecalc.New(time.UTC), func() time.Time { return now })
}

func TestCreateEntryValidation(t *testing.T) {
	tests := []struct {
		name                            string
		energy, confidence, focus, mood int
		wantField                       string
	}{
		{"energy below range", 0, 5, 5, 5, "energy"},
		{"energy above range", 11, 5, 5, 5, "energy"},
		{"confidence below range", 5, 0, 5, 5, "confidence"},
		{"focus above range", 5, 5, 11, 5, "focus"},
		{"mood below range", 5, 5, 5, 0, "mood"},
		{"first failing field wins", 0, 0, 0, 0, "energy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			mgr := newTestManager(store, time.Now())

			_, err := mgr.CreateEntry(tt.energy, tt.confidence, tt.focus, tt.mood, "")
			if err == nil {
				t.Fatal("CreateEntry() should fail validation")
			}
			appErr := apperrors.From(err)
			if appErr.Kind != apperrors.KindValidationFailed {
				t.Errorf("kind = %d, want KindValidationFailed", appErr.Kind)
			}
			if !strings.Contains(appErr.Detail, tt.wantField) {
				t.Errorf("detail %q should name field %q", appErr.Detail, tt.wantField)
			}
			if !strings.Contains(appErr.Detail, "between 1 and 10") {
				t.Errorf("detail %q should state the allowed range", appErr.Detail)
			}

			// No partial writes.
			entries, err := store.GetAllEntries()
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Error("rejected entry must not be persisted")
			}
		})
	}
}

func TestCreateEntrySuccess(t *testing.T) {
	now := time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC)
	store := memory.New()
	mgr := newTestManager(store, now)

	entry, err := mgr.CreateEntry(10, 1, 1, 1, "  kept my phone in the drawer  ")
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}
	if got := entry.AverageScore(); got != 3.25 {
		t.Errorf("AverageScore() = %v, want 3.25", got)
	}
	if !entry.Date.Equal(now) {
		t.Errorf("Date = %v, want %v", entry.Date, now)
	}
	if entry.Note == nil || *entry.Note != "kept my phone in the drawer" {
		t.Errorf("Note = %v, want trimmed text", entry.Note)
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("persisted entries = %d, want 1", len(entries))
	}
}

func TestCreateEntryNormalizesEmptyNote(t *testing.T) {
	for _, note := range []string{"", "   ", "\t\n"} {
		mgr := newTestManager(memory.New(), time.Now())
		entry, err := mgr.CreateEntry(5, 5, 5, 5, note)
		if err != nil {
			t.Fatalf("CreateEntry() error = %v", err)
		}
		if entry.Note != nil {
			t.Errorf("note %q should normalize to absent, got %q", note, *entry.Note)
		}
	}
}

func TestCreateEntryBoundaryValues(t *testing.T) {
	mgr := newTestManager(memory.New(), time.Now())
	if _, err := mgr.CreateEntry(1, 10, 1, 10, ""); err != nil {
		t.Errorf("ratings at the range bounds should pass, got %v", err)
	}
}

func TestHasCheckedInToday(t *testing.T) {
	ref := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		entryDate time.Time
		want      bool
	}{
		{"entry earlier today", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), true},
		{"entry just before midnight", time.Date(2025, 5, 10, 23, 59, 59, 0, time.UTC), true},
		{"entry yesterday", time.Date(2025, 5, 9, 23, 59, 59, 0, time.UTC), false},
		{"entry tomorrow", time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			if err := store.AddEntry(models.NewJournalEntry(tt.entryDate, 5, 5, 5, 5, nil)); err != nil {
				t.Fatal(err)
			}
			mgr := newTestManager(store, ref)
			got, err := mgr.HasCheckedInToday(ref)
			if err != nil {
				t.Fatalf("HasCheckedInToday() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasCheckedInToday() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasCheckedInTodayRespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// 23:00 UTC on May 10 is 08:00 on May 11 in Tokyo.
	entryDate := time.Date(2025, 5, 10, 23, 0, 0, 0, time.UTC)
	ref := time.Date(2025, 5, 11, 12, 0, 0, 0, loc)

	store := memory.New()
	if err := store.AddEntry(models.NewJournalEntry(entryDate, 5, 5, 5, 5, nil)); err != nil {
		t.Fatal(err)
	}

	mgr := NewManagerWithClock(store, timecalc.New(loc), func() time.Time { return ref })
	got, err := mgr.HasCheckedInToday(ref)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("entry on the same Tokyo calendar day should count as checked in")
	}
}

func TestHasCheckedInTodayAllowsMultipleEntries(t *testing.T) {
	ref := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
	store := memory.New()
	mgr := newTestManager(store, ref)

	for i := 0; i < 2; i++ {
		if _, err := mgr.CreateEntry(5, 5, 5, 5, ""); err != nil {
			t.Fatalf("second same-day entry should be permitted: %v", err)
		}
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 (no uniqueness constraint)", len(entries))
	}
}

func TestEntriesForPeriod(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	store := memory.New()

	dates := []time.Time{
		now.Add(-2 * time.Hour),          // in window
		now.Add(-6 * 24 * time.Hour),     // in window
		now.Add(-8 * 24 * time.Hour),     // outside 7-day window
		now.Add(-7*24*time.Hour - time.Second), // just outside
	}
	for _, d := range dates {
		if err := store.AddEntry(models.NewJournalEntry(d, 5, 5, 5, 5, nil)); err != nil {
			t.Fatal(err)
		}
	}

	mgr := newTestManager(store, now)
	entries, err := mgr.EntriesForPeriod(7)
	if err != nil {
		t.Fatalf("EntriesForPeriod() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries in 7-day window = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Date.Before(entries[1].Date) {
		t.Error("entries should be ordered newest first")
	}
}

func TestAverageMood(t *testing.T) {
	if got := AverageMood(nil); got != 0 {
		t.Errorf("AverageMood(empty) = %v, want 0 sentinel", got)
	}

	entries := []models.JournalEntry{
		{Mood: 4}, {Mood: 6}, {Mood: 8},
	}
	if got := AverageMood(entries); got != 6 {
		t.Errorf("AverageMood() = %v, want 6", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	store := memory.New()
	mgr := newTestManager(store, time.Now())

	entry, err := mgr.CreateEntry(5, 5, 5, 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := mgr.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if err := mgr.DeleteEntry(entry.ID); !stderrors.Is(err, apperrors.ErrJournalEntryNotFound) {
		t.Errorf("DeleteEntry() of missing entry = %v, want JournalEntryNotFound", err)
	}
}

func TestGatewayFailureTranslation(t *testing.T) {
	store := memory.New()
	store.FailWith = stderrors.New("connection refused")
	mgr := newTestManager(store, time.Now())

	if _, err := mgr.FetchAll(); apperrors.From(err).Kind != apperrors.KindDataFetchFailure {
		t.Errorf("FetchAll failure should map to DataFetchFailure, got %v", err)
	}
	if _, err := mgr.CreateEntry(5, 5, 5, 5, ""); apperrors.From(err).Kind != apperrors.KindDataSaveFailure {
		t.Errorf("CreateEntry failure should map to DataSaveFailure, got %v", err)
	}
}
