package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/quotes"
)

var (
	statusTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	statusTimerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))

	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// StatusCmd prints a one-shot view of the current streak.
type StatusCmd struct{}

func (cmd *StatusCmd) Run(ctx *Context) error {
	active, err := ctx.Streaks().FetchActive()
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}
	if active == nil {
		fmt.Println("No active streak. Run 'reclaim reset' to start one.")
		return nil
	}

	now := time.Now()
	calc := ctx.Calculator()
	components := calc.Components(active.StartDate, now)
	days := active.Days(now)
	engine := ctx.Milestones()

	fmt.Println(statusTitleStyle.Render("Clean streak"))
	fmt.Println(statusTimerStyle.Render(components.Formatted()))
	fmt.Println(statusDimStyle.Render("since " + active.StartDate.Local().Format("2006-01-02 15:04")))
	fmt.Println()

	if next := engine.NextMilestone(days); next != nil {
		fmt.Printf("Next milestone: %s in %d day(s) (%.0f%% there)\n",
			next.Title, engine.DaysUntilNext(days), engine.ProgressToNext(days)*100)
	} else {
		fmt.Println("Every milestone unlocked. Mind reclaimed.")
	}
	fmt.Printf("Milestones unlocked: %d of %d\n", engine.UnlockedCount(days), len(engine.DeriveUnlocked(days)))

	checkedIn, err := ctx.Journal().HasCheckedInToday(now)
	if err == nil && !checkedIn {
		fmt.Println()
		fmt.Println(statusDimStyle.Render("You haven't checked in today. Run 'reclaim checkin'."))
	}

	q := quotes.ForDay(now)
	fmt.Println()
	fmt.Println(statusDimStyle.Render(fmt.Sprintf("%q - %s", q.Text, q.Author)))

	return nil
}
