package constants

const (
	// Default Settings Values
	DefaultNotificationsEnabled = true
	DefaultReminderMinutes      = 720 // 2 times a day
	DefaultCalculationMethod    = "ISNA"
	DefaultTimezone             = "Local" // Use system local timezone by default

	// Fallback location (Brussels) used when no coordinates are configured
	DefaultLatitude  = 50.8503
	DefaultLongitude = 4.3517
	DefaultLocation  = "Europe/Brussels"

	// Kaaba coordinates used for the qibla bearing
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

// ReminderFrequencies are the reminder intervals offered in settings, in minutes.
var ReminderFrequencies = []int{30, 60, 120, 240, 360, 720, 1440}
