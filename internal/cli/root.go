package cli

import (
	"time"

	"github.com/reclaimhq/reclaim/internal/backup"
	"github.com/reclaimhq/reclaim/internal/journal"
	"github.com/reclaimhq/reclaim/internal/logger"
	"github.com/reclaimhq/reclaim/internal/milestone"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/notifier"
	"github.com/reclaimhq/reclaim/internal/storage"
	"github.com/reclaimhq/reclaim/internal/streak"
	"github.com/reclaimhq/reclaim/internal/timecalc"
)

// Context is shared by every command. Commands construct their managers
// from it so they all observe the same store and settings-driven timezone.
type Context struct {
	Store storage.Provider
	Debug bool
}

// Calculator builds a time calculator in the timezone from settings,
// falling back to local time when settings cannot be read.
func (c *Context) Calculator() timecalc.Calculator {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("failed to read settings, using local timezone", "err", err)
		return timecalc.New(time.Local)
	}
	calc, err := timecalc.NewInTimezone(settings.Timezone)
	if err != nil {
		logger.Warn("invalid timezone in settings, using local", "timezone", settings.Timezone, "err", err)
		return timecalc.New(time.Local)
	}
	return calc
}

// Streaks returns a streak lifecycle manager bound to the store.
func (c *Context) Streaks() *streak.Manager {
	return streak.NewManager(c.Store)
}

// Journal returns a check-in manager bound to the store.
func (c *Context) Journal() *journal.Manager {
	return journal.NewManager(c.Store, c.Calculator())
}

// Milestones returns a milestone engine bound to the store.
func (c *Context) Milestones() *milestone.Engine {
	return milestone.NewEngine(c.Store)
}

// Notifier returns the celebration sink honoring the notifications setting:
// the desktop tray when enabled, the log otherwise.
func (c *Context) Notifier() notifier.Sink {
	settings, err := c.Store.GetSettings()
	if err == nil && settings.NotificationsEnabled {
		return notifier.NewDesktopSink()
	}
	return notifier.NewLogSink()
}

// ActiveStreakDays returns the day count of the active streak, or 0 with
// found=false when no streak is active.
func (c *Context) ActiveStreakDays() (days int, found bool, err error) {
	active, err := c.Streaks().FetchActive()
	if err != nil {
		return 0, false, err
	}
	if active == nil {
		return 0, false, nil
	}
	return active.Days(time.Now()), true, nil
}

// PerformAutomaticBackup snapshots the database without interrupting the
// user's workflow on failure.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// FormatStreak renders a streak's span for list output.
func FormatStreak(s models.Streak) string {
	if s.IsActive {
		return s.StartDate.Local().Format("2006-01-02 15:04") + "  (active)"
	}
	end := "?"
	if s.EndDate != nil {
		end = s.EndDate.Local().Format("2006-01-02 15:04")
	}
	return s.StartDate.Local().Format("2006-01-02 15:04") + " to " + end
}
