package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reclaimhq/reclaim/internal/progress"
	"github.com/reclaimhq/reclaim/internal/tui"
)

// WatchCmd runs the live streak screen with a 1 Hz timer.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	sink := tui.NewEventSink(ctx.Notifier())
	coord := progress.New(ctx.Streaks(), ctx.Milestones(), ctx.Calculator(), sink)
	if err := coord.Setup(context.Background()); err != nil {
		return err
	}
	defer coord.Stop()

	p := tea.NewProgram(tui.NewModel(coord, sink), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
