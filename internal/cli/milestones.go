package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimhq/reclaim/internal/errors"
)

var (
	unlockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// MilestonesCmd prints the milestone catalog with unlock state for the
// active streak.
type MilestonesCmd struct {
	Facts bool `help:"Include the science fact for each unlocked milestone."`
}

func (cmd *MilestonesCmd) Run(ctx *Context) error {
	days, found, err := ctx.ActiveStreakDays()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}
	if !found {
		fmt.Println("No active streak. Run 'reclaim reset' to start one.")
		return nil
	}

	engine := ctx.Milestones()
	for _, m := range engine.DeriveUnlocked(days) {
		if m.Unlocked {
			fmt.Println(unlockedStyle.Render(fmt.Sprintf("✓ %3dd  %s", m.Days, m.Title)))
			fmt.Printf("        %s\n", m.Description)
			if cmd.Facts {
				fmt.Printf("        %s\n", m.ScienceFact)
			}
		} else {
			fmt.Println(lockedStyle.Render(fmt.Sprintf("  %3dd  %s", m.Days, m.Title)))
		}
	}

	if next := engine.NextMilestone(days); next != nil {
		fmt.Printf("\nDay %d. Next up: %s in %d day(s).\n", days, next.Title, engine.DaysUntilNext(days))
	} else {
		fmt.Printf("\nDay %d. The full catalog is unlocked.\n", days)
	}
	return nil
}
