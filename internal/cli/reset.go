package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/reclaimhq/reclaim/internal/errors"
)

// ResetCmd ends the current streak and immediately starts a fresh one. This
// is the "I slipped" action.
type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (cmd *ResetCmd) Run(ctx *Context) error {
	mgr := ctx.Streaks()

	active, err := mgr.FetchActive()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	if !cmd.Force && active != nil {
		days := active.Days(time.Now())
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Reset your %d-day streak?", days)).
			Description("The current streak ends now and a new one starts immediately. Slipping is part of recovery.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Streak kept. Stay strong.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	fresh, err := mgr.ResetStreak()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	fmt.Printf("✓ Fresh start at %s. Day zero is where every streak begins.\n",
		fresh.StartDate.Local().Format("15:04"))
	return nil
}

// EndCmd ends the current streak without starting a new one. Unlike reset,
// a missing active streak is an error here.
type EndCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (cmd *EndCmd) Run(ctx *Context) error {
	if !cmd.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("End the current streak?").
			Description("No new streak will be started. Use 'reclaim reset' to start over instead.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	ended, err := ctx.Streaks().EndCurrentStreak()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	fmt.Printf("✓ Streak ended after %d day(s).\n", ended.Days(*ended.EndDate))
	return nil
}

// HistoryCmd lists every streak on record, newest first.
type HistoryCmd struct{}

func (cmd *HistoryCmd) Run(ctx *Context) error {
	streaks, err := ctx.Streaks().FetchAll()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}
	if len(streaks) == 0 {
		fmt.Println("No streaks yet. Run 'reclaim reset' to start one.")
		return nil
	}

	now := time.Now()
	for _, s := range streaks {
		fmt.Printf("%s  %d day(s)\n", FormatStreak(s), s.Days(now))
	}
	return nil
}
