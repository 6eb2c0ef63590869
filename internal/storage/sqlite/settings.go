package sqlite

import (
	"github.com/reclaimhq/reclaim/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`SELECT timezone, notifications_enabled FROM settings WHERE id = 1`)

	var settings models.Settings
	var notificationsEnabled int
	if err := row.Scan(&settings.Timezone, &notificationsEnabled); err != nil {
		return models.Settings{}, err
	}
	settings.NotificationsEnabled = notificationsEnabled != 0

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, notifications_enabled)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			notifications_enabled = excluded.notifications_enabled`,
		settings.Timezone,
		boolToInt(settings.NotificationsEnabled),
	)
	return err
}
