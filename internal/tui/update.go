package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/progress"
	"github.com/reclaimhq/reclaim/internal/quotes"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := msg.Width - 12
		if w > 50 {
			w = 50
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case snapshotMsg:
		m.snap = progress.Snapshot(msg)
		m.hasSnap = true
		return m, waitForSnapshot(m.coord.Snapshots())

	case milestoneMsg:
		ms := models.Milestone(msg)
		m.celebration = &ms
		return m, tea.Batch(waitForMilestone(m.sink.Milestones()), expireCelebration())

	case celebrationExpiredMsg:
		m.celebration = nil
		return m, nil

	case resetErrMsg:
		m.resetErr = errors.Format(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch msg.String() {
		case "y", "Y":
			m.confirmReset = false
			m.resetErr = ""
			return m, m.doReset()
		case "n", "N", "esc", "q":
			m.confirmReset = false
			return m, nil
		}
		return m, nil
	}

	if m.sosQuote != nil {
		switch msg.String() {
		case "esc", "q", "s", "enter":
			m.sosQuote = nil
			m.sosActivity = ""
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
		return m, nil
	case key.Matches(msg, m.keys.Milestones):
		m.showMilestones = !m.showMilestones
		return m, nil
	case key.Matches(msg, m.keys.Sos):
		q := quotes.Random()
		a := quotes.RandomActivity()
		m.sosQuote = &q
		m.sosActivity = a.Icon + " " + a.Text
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}
