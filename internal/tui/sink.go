package tui

import (
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/notifier"
)

// EventSink forwards milestone celebrations into a channel the watch model
// drains, so they render in the terminal as well as through the wrapped
// sink (log or desktop notifications).
type EventSink struct {
	events   chan models.Milestone
	delegate notifier.Sink
}

func NewEventSink(delegate notifier.Sink) *EventSink {
	return &EventSink{
		events:   make(chan models.Milestone, 4),
		delegate: delegate,
	}
}

func (s *EventSink) ReportError(err error, context string) {
	s.delegate.ReportError(err, context)
}

func (s *EventSink) AnnounceMilestone(m models.Milestone) {
	s.delegate.AnnounceMilestone(m)
	select {
	case s.events <- m:
	default:
		// Buffer full. The delegate sink already recorded the milestone.
	}
}

// Milestones returns the channel celebrations are published on.
func (s *EventSink) Milestones() <-chan models.Milestone {
	return s.events
}
