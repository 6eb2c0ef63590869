package postgres

import (
	"github.com/reclaimhq/reclaim/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`SELECT timezone, notifications_enabled FROM settings WHERE id = 1`)

	var settings models.Settings
	if err := row.Scan(&settings.Timezone, &settings.NotificationsEnabled); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, notifications_enabled)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			notifications_enabled = EXCLUDED.notifications_enabled`,
		settings.Timezone,
		settings.NotificationsEnabled,
	)
	return err
}
