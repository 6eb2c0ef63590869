package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/progress"
	"github.com/reclaimhq/reclaim/internal/quotes"
)

const celebrationDuration = 8 * time.Second

type snapshotMsg progress.Snapshot

type milestoneMsg models.Milestone

type celebrationExpiredMsg struct{}

type resetErrMsg struct{ err error }

type sosDismissedMsg struct{}

// Model is the live watch screen. It renders the latest coordinator
// snapshot and reacts to key presses; all streak state lives in the
// coordinator, never here.
type Model struct {
	coord   *progress.Coordinator
	sink    *EventSink
	keys    KeyMap
	help    help.Model
	bar     progressbar.Model
	snap    progress.Snapshot
	hasSnap bool

	celebration    *models.Milestone
	confirmReset   bool
	showMilestones bool
	sosQuote       *quotes.Quote
	sosActivity    string
	resetErr       string
	quitting       bool

	width  int
	height int
}

func NewModel(coord *progress.Coordinator, sink *EventSink) Model {
	bar := progressbar.New(progressbar.WithDefaultGradient())
	bar.Width = 40
	return Model{
		coord: coord,
		sink:  sink,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		bar:   bar,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.coord.Snapshots()),
		waitForMilestone(m.sink.Milestones()),
	)
}

func waitForSnapshot(ch <-chan progress.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

func waitForMilestone(ch <-chan models.Milestone) tea.Cmd {
	return func() tea.Msg {
		ms, ok := <-ch
		if !ok {
			return nil
		}
		return milestoneMsg(ms)
	}
}

func expireCelebration() tea.Cmd {
	return tea.Tick(celebrationDuration, func(time.Time) tea.Msg {
		return celebrationExpiredMsg{}
	})
}

func (m Model) doReset() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.coord.Reset(); err != nil {
			return resetErrMsg{err: err}
		}
		return nil
	}
}
