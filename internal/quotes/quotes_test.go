package quotes

import (
	"testing"
	"time"
)

func TestCatalogsNonEmpty(t *testing.T) {
	if len(Motivational) == 0 || len(BrainScience) == 0 || len(ActivitySuggestions) == 0 {
		t.Fatal("quote catalogs must not be empty")
	}
	for i, q := range Motivational {
		if q.Text == "" || q.Author == "" {
			t.Errorf("quote %d has empty fields", i)
		}
	}
	for i, a := range ActivitySuggestions {
		if a.Text == "" {
			t.Errorf("activity %d has empty text", i)
		}
	}
}

func TestRandomDrawsFromCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Motivational {
		seen[q.Text] = true
	}
	for i := 0; i < 50; i++ {
		if !seen[Random().Text] {
			t.Fatal("Random() returned a quote outside the catalog")
		}
	}
}

func TestForDayStableWithinDay(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 30, 0, 0, time.UTC)
	morning := ForDay(day)
	evening := ForDay(day.Add(23 * time.Hour))
	if morning != evening {
		t.Errorf("ForDay changed within a day: %q vs %q", morning.Text, evening.Text)
	}

	next := ForDay(day.AddDate(0, 0, 1))
	if next == morning {
		t.Error("ForDay returned the same quote on consecutive days")
	}
}
