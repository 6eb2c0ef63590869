package settings

import (
	"fmt"

	"github.com/reclaimhq/reclaim/internal/cli"
	"github.com/reclaimhq/reclaim/internal/timecalc"
)

// ShowCmd prints the current settings.
type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	fmt.Printf("timezone:      %s\n", settings.Timezone)
	fmt.Printf("notifications: %v\n", settings.NotificationsEnabled)
	return nil
}

// SetCmd updates settings fields. Only flags that are passed change.
type SetCmd struct {
	Timezone      string `help:"IANA timezone for calendar-day boundaries (e.g. Europe/Berlin, or 'Local')."`
	Notifications string `help:"Enable or disable milestone notifications." enum:"on,off," default:""`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	changed := false
	if c.Timezone != "" {
		if _, err := timecalc.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
		}
		settings.Timezone = c.Timezone
		changed = true
	}
	if c.Notifications != "" {
		settings.NotificationsEnabled = c.Notifications == "on"
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change. Pass --timezone or --notifications.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("✓ Settings updated")
	return nil
}
