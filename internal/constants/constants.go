package constants

import "time"

const (
	AppName            = "reclaim"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/reclaim/reclaim.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the time-of-day format used when displaying timestamps
	ClockFormat = "15:04"

	// Rating bounds for check-in scores
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 5

	// TickInterval is how often live streak progress is recomputed
	TickInterval = time.Second

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "reclaim-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "reclaim-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.reclaimhq.reclaim"
)

// Time periods in days used by journal queries and stats
const (
	PeriodWeek    = 7
	PeriodMonth   = 30
	PeriodQuarter = 90
	PeriodYear    = 365
)
