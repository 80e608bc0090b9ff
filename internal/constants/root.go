package constants

import "time"

// PrayerStatus represents the resolution state of a single prayer
type PrayerStatus string

// PrayerName identifies one of the five daily prayers
type PrayerName string

// RunStatus represents the state of an active dhikr run
type RunStatus string

const (
	AppName            = "ibadah"
	DefaultKeyringUser = "database-connection"
	SMTPKeyringUser    = "smtp-password"
	DefaultConfigDir   = "~/.config/ibadah"
	DefaultDBPath      = "~/.config/ibadah/ibadah.db"
	DefaultConfigFile  = "config.yaml"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is used when listing timestamps such as backups
	DateTimeFormat = "2006-01-02 15:04:05"

	// Persistence keys, one per domain
	KeyPrayerRecords = "prayer_records"
	KeyReflections   = "reflections"
	KeyBadges        = "badges"
	KeySettings      = "settings"
	KeyDhikrRoutines = "dhikr_routines"
	KeyDhikrSessions = "dhikr_sessions"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ibadah-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "ibadah-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.ibadah"
	TrayExecutablePrefix   = "ibadah-tray"
	TraySecretHeader       = "X-Ibadah-Secret"
	ReminderTitle          = "Dhikr Reminder"

	// Write-behind queue
	WriterQueueSize    = 64
	WriterFlushTimeout = 5 * time.Second

	// Prayer status constants
	StatusPending PrayerStatus = "pending"
	StatusOnTime  PrayerStatus = "on-time"
	StatusLate    PrayerStatus = "late"
	StatusMissed  PrayerStatus = "missed"

	// Prayer names, in daily order
	Fajr    PrayerName = "Fajr"
	Dhuhr   PrayerName = "Dhuhr"
	Asr     PrayerName = "Asr"
	Maghrib PrayerName = "Maghrib"
	Isha    PrayerName = "Isha"

	// PrayersPerDay is the fixed number of prayers in a day record
	PrayersPerDay = 5

	// Run states
	RunRunning RunStatus = "running"
	RunPaused  RunStatus = "paused"

	// Reflection limits
	MaxReflectionTitle = 100
)

// Prayers lists the five daily prayers in order.
var Prayers = [PrayersPerDay]PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}

// StorageKeys lists every persistence key owned by the app.
var StorageKeys = []string{
	KeyPrayerRecords,
	KeyReflections,
	KeyBadges,
	KeySettings,
	KeyDhikrRoutines,
	KeyDhikrSessions,
}
