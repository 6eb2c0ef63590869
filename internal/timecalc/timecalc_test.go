package timecalc

import (
	"testing"
	"time"
)

func TestComponents(t *testing.T) {
	calc := New(time.UTC)
	base := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want Components
	}{
		{
			name: "identical instants are all zero",
			from: base,
			to:   base,
			want: Zero,
		},
		{
			name: "to before from is all zero, never negative",
			from: base,
			to:   base.Add(-time.Second),
			want: Zero,
		},
		{
			name: "sub-minute",
			from: base,
			to:   base.Add(42 * time.Second),
			want: Components{Seconds: 42},
		},
		{
			name: "full decomposition",
			from: base,
			to:   base.Add(3*24*time.Hour + 5*time.Hour + 7*time.Minute + 9*time.Second),
			want: Components{Days: 3, Hours: 5, Minutes: 7, Seconds: 9},
		},
		{
			name: "exactly one day",
			from: base,
			to:   base.Add(24 * time.Hour),
			want: Components{Days: 1},
		},
		{
			name: "truncates sub-second remainder",
			from: base,
			to:   base.Add(time.Second + 999*time.Millisecond),
			want: Components{Seconds: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.Components(tt.from, tt.to); got != tt.want {
				t.Errorf("Components() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	calc := New(time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "crossing midnight counts a day even under 24h elapsed",
			from: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "ten calendar days",
			from: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "reversed is negative",
			from: time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	calc := New(loc)

	// US spring-forward 2025: March 9. The midnight-to-midnight span is 23h.
	from := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	to := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	if got := calc.DaysBetween(from, to); got != 2 {
		t.Errorf("DaysBetween() across DST = %d, want 2", got)
	}
}

func TestIsSameDay(t *testing.T) {
	calc := New(time.UTC)
	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if !calc.IsSameDay(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), ref) {
		t.Error("midnight should be the same day as noon")
	}
	if !calc.IsSameDay(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), ref) {
		t.Error("23:59:59 should be the same day as noon")
	}
	if calc.IsSameDay(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), ref) {
		t.Error("next midnight should not be the same day")
	}
}

func TestIsSameDayRespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	calc := New(loc)

	// 23:00 UTC March 10 is already March 11 in Tokyo.
	a := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	ref := time.Date(2025, 3, 11, 9, 0, 0, 0, loc)
	if !calc.IsSameDay(a, ref) {
		t.Error("instants on the same Tokyo day should match regardless of their zone")
	}
}

func TestStartOfDay(t *testing.T) {
	calc := New(time.UTC)
	got := calc.StartOfDay(time.Date(2025, 3, 10, 17, 45, 12, 500, time.UTC))
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/London", timezone: "Europe/London", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestComponentsFormatted(t *testing.T) {
	c := Components{Days: 3, Hours: 5, Minutes: 7, Seconds: 9}
	if got := c.Formatted(); got != "3d 05h 07m 09s" {
		t.Errorf("Formatted() = %q", got)
	}
}
