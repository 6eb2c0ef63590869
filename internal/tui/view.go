package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimhq/reclaim/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasSnap {
		return subtleStyle.Render("Loading streak...")
	}

	sections := []string{
		titleStyle.Render("reclaim"),
		"",
		timerStyle.Render(m.snap.Components.Formatted()),
		dayStyle.Render(fmt.Sprintf("Day %d clean", m.snap.Days)),
		"",
		m.viewMilestoneProgress(),
	}

	if m.resetErr != "" {
		sections = append(sections, "", dangerStyle.Render(m.resetErr))
	}

	switch {
	case m.celebration != nil:
		sections = append(sections, "", m.viewCelebration())
	case m.confirmReset:
		sections = append(sections, "", m.viewConfirmReset())
	case m.sosQuote != nil:
		sections = append(sections, "", m.viewSos())
	case m.showMilestones:
		sections = append(sections, "", m.viewMilestoneList())
	}

	sections = append(sections, "", m.help.View(m.keys))
	ui := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ui)
	}
	return ui
}

func (m Model) viewMilestoneProgress() string {
	if m.snap.Next == nil {
		return unlockedStyle.Render("All milestones unlocked!")
	}
	label := fmt.Sprintf("Next: %s in %d days", m.snap.Next.Title, m.snap.Next.Days-m.snap.Days)
	return lipgloss.JoinVertical(lipgloss.Center,
		m.bar.ViewAs(m.snap.Progress),
		subtleStyle.Render(label),
		subtleStyle.Render(fmt.Sprintf("%d/%d milestones unlocked", m.snap.Unlocked, len(models.Milestones))),
	)
}

func (m Model) viewCelebration() string {
	c := m.celebration
	return celebrationStyle.Render(fmt.Sprintf("🎉 %s  (%d days)\n%s", c.Title, c.Days, c.Description))
}

func (m Model) viewConfirmReset() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render(fmt.Sprintf("Reset your %d-day streak?", m.snap.Days)),
		"",
		"[y] Yes, start over   [n] No",
	)
}

func (m Model) viewSos() string {
	lines := []string{
		quoteStyle.Render("\""+m.sosQuote.Text+"\""),
		subtleStyle.Render("- " + m.sosQuote.Author),
		"",
		"Try this: " + m.sosActivity,
		subtleStyle.Render("The urge peaks and passes within 15-20 minutes."),
		"",
		subtleStyle.Render("[esc] dismiss"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewMilestoneList() string {
	var b strings.Builder
	for _, ms := range models.Milestones {
		line := fmt.Sprintf("%3dd  %s", ms.Days, ms.Title)
		if ms.Days <= m.snap.Days {
			b.WriteString(unlockedStyle.Render("✓ " + line))
		} else {
			b.WriteString(lockedStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
