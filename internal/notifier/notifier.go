// Package notifier surfaces milestone celebrations and faults to the user.
// Delivery is fire-and-forget: the domain engine never waits on, or fails
// because of, a notification.
package notifier

import (
	"fmt"

	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/logger"
	"github.com/reclaimhq/reclaim/internal/models"
)

// Sink receives events from the domain engine.
type Sink interface {
	// ReportError records a fault with a label identifying the originating
	// operation.
	ReportError(err error, context string)
	// AnnounceMilestone celebrates a newly unlocked milestone.
	AnnounceMilestone(m models.Milestone)
}

// LogSink writes every event to the application log. It is the fallback
// sink and is always safe to use.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) ReportError(err error, context string) {
	errors.Log(err, context)
}

func (s *LogSink) AnnounceMilestone(m models.Milestone) {
	logger.Info("milestone unlocked", "days", m.Days, "title", m.Title)
}

// DesktopSink forwards milestone celebrations to the tray companion app
// when it is running, and falls back to the log otherwise. Errors always go
// to the log; popping a desktop toast for every fault would be noise.
type DesktopSink struct {
	log  *LogSink
	tray *TrayClient
}

func NewDesktopSink() *DesktopSink {
	return &DesktopSink{log: NewLogSink(), tray: NewTrayClient()}
}

func (s *DesktopSink) ReportError(err error, context string) {
	s.log.ReportError(err, context)
}

func (s *DesktopSink) AnnounceMilestone(m models.Milestone) {
	s.log.AnnounceMilestone(m)
	text := fmt.Sprintf("%s (%d days): %s", m.Title, m.Days, m.Description)
	if err := s.tray.Notify(text); err != nil {
		logger.Debug("tray notification skipped", "err", err)
	}
}
