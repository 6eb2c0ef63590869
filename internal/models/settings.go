package models

// Settings holds user preferences that affect core behavior. Timezone drives
// calendar-day math ("has checked in today" is calendar-day based, not
// duration based); an empty or "Local" value means the system timezone.
type Settings struct {
	Timezone             string `json:"timezone"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:             "Local",
		NotificationsEnabled: true,
	}
}
