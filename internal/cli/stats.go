package cli

import (
	"fmt"
	"time"

	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/stats"
)

// StatsCmd prints aggregate streak and check-in statistics.
type StatsCmd struct {
	Period int `help:"Check-in window in days." default:"30"`
}

func (cmd *StatsCmd) Run(ctx *Context) error {
	now := time.Now()

	streaks, err := ctx.Streaks().FetchAll()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}
	summary := stats.SummarizeStreaks(streaks, now)

	fmt.Println("Streaks")
	fmt.Printf("  current:          %d day(s)\n", summary.CurrentDays)
	fmt.Printf("  longest:          %d day(s)\n", summary.LongestDays)
	fmt.Printf("  total clean days: %d\n", summary.TotalCleanDays)
	fmt.Printf("  attempts:         %d\n", summary.Count)

	period := cmd.Period
	if period <= 0 {
		period = constants.PeriodMonth
	}
	entries, err := ctx.Journal().EntriesForPeriod(period)
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	fmt.Printf("\nCheck-ins (last %d days)\n", period)
	averages := stats.AverageRatings(entries)
	if averages.Entries == 0 {
		fmt.Println("  no entries in this window")
		return nil
	}

	calc := ctx.Calculator()
	fmt.Printf("  entries:      %d\n", averages.Entries)
	fmt.Printf("  check-in rate: %.0f%%\n", stats.CheckInRate(entries, period, now, calc.Location())*100)
	fmt.Printf("  energy:       %.2f\n", averages.Energy)
	fmt.Printf("  confidence:   %.2f\n", averages.Confidence)
	fmt.Printf("  focus:        %.2f\n", averages.Focus)
	fmt.Printf("  mood:         %.2f\n", averages.Mood)
	fmt.Printf("  overall:      %.2f\n", averages.Overall)
	return nil
}
