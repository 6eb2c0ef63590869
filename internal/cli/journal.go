package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/journal"
	"github.com/reclaimhq/reclaim/internal/models"
)

// JournalListCmd prints recent check-ins, newest first.
type JournalListCmd struct {
	Period int  `help:"Only show entries from the last N days." default:"0"`
	IDs    bool `help:"Include entry IDs in the output."`
}

func (cmd *JournalListCmd) Run(ctx *Context) error {
	mgr := ctx.Journal()

	var entries []models.JournalEntry
	var err error
	if cmd.Period > 0 {
		entries, err = mgr.EntriesForPeriod(cmd.Period)
	} else {
		entries, err = mgr.FetchAll()
	}
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	if len(entries) == 0 {
		fmt.Println("No check-ins yet. Run 'reclaim checkin' to record one.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  energy %2d  confidence %2d  focus %2d  mood %2d  avg %.2f\n",
			e.Date.Local().Format(constants.DateFormat+" "+constants.ClockFormat),
			e.Energy, e.Confidence, e.Focus, e.Mood, e.AverageScore())
		if cmd.IDs {
			fmt.Printf("    id: %s\n", e.ID)
		}
		if e.Note != nil {
			fmt.Printf("    %s\n", *e.Note)
		}
	}

	if avg := journal.AverageMood(entries); avg > 0 {
		fmt.Printf("\nAverage mood over %d entries: %.2f\n", len(entries), avg)
	}
	return nil
}

// JournalDeleteCmd removes a check-in by id.
type JournalDeleteCmd struct {
	ID    string `arg:"" help:"ID of the entry to delete (see 'journal list --ids')."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (cmd *JournalDeleteCmd) Run(ctx *Context) error {
	if !cmd.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("Delete this check-in?").
			Description("Entry " + cmd.ID + " will be removed permanently.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Journal().DeleteEntry(cmd.ID); err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}
	fmt.Println("✓ Check-in deleted")
	return nil
}
