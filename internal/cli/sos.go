package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimhq/reclaim/internal/quotes"
)

var (
	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(60)

	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Right)

	factStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// SosCmd is the urge-surfing command: a quote, a brain fact, and something
// to do instead of scrolling.
type SosCmd struct{}

func (cmd *SosCmd) Run(ctx *Context) error {
	q := quotes.Random()
	fmt.Println(quoteStyle.Render(q.Text + "\n" + authorStyle.Render("- "+q.Author)))
	fmt.Println()
	fmt.Println(factStyle.Render(quotes.RandomBrainFact()))
	fmt.Println()

	activity := quotes.RandomActivity()
	fmt.Printf("Try this instead: %s %s\n", activity.Icon, activity.Text)
	fmt.Println()
	fmt.Println("The urge peaks and passes within 15-20 minutes. You've got this.")
	return nil
}
