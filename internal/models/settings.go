package models

import "github.com/julianstephens/ibadah/internal/constants"

// Location is a pair of geographic coordinates in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	ReminderMinutes      int       `json:"reminderMinutes"`   // interval between reminders
	CalculationMethod    string    `json:"calculationMethod"` // prayer-time method label, e.g. "ISNA"
	Location             *Location `json:"location"`          // nil means the default region
	Timezone             string    `json:"timezone,omitempty"`
}

// SettingsPatch is a partial settings update; nil fields are left alone.
type SettingsPatch struct {
	NotificationsEnabled *bool
	ReminderMinutes      *int      `validate:"omitnil,gte=1,lte=10080"`
	CalculationMethod    *string   `validate:"omitnil,oneof=MWL ISNA Egypt Makkah Karachi"`
	Location             *Location `validate:"omitnil"`
	ClearLocation        bool
	Timezone             *string
}

// TouchesNotifications reports whether the patch changes reminder behavior.
func (p SettingsPatch) TouchesNotifications() bool {
	return p.NotificationsEnabled != nil || p.ReminderMinutes != nil
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		ReminderMinutes:      constants.DefaultReminderMinutes,
		CalculationMethod:    constants.DefaultCalculationMethod,
		Timezone:             constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings fills zero values left by older or partial blobs.
func ApplyDefaultSettings(settings *Settings) {
	if settings.ReminderMinutes <= 0 {
		settings.ReminderMinutes = constants.DefaultReminderMinutes
	}
	if settings.CalculationMethod == "" {
		settings.CalculationMethod = constants.DefaultCalculationMethod
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// Apply merges the patch into s.
func (s *Settings) Apply(p SettingsPatch) {
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.ReminderMinutes != nil {
		s.ReminderMinutes = *p.ReminderMinutes
	}
	if p.CalculationMethod != nil {
		s.CalculationMethod = *p.CalculationMethod
	}
	if p.ClearLocation {
		s.Location = nil
	}
	if p.Location != nil {
		loc := *p.Location
		s.Location = &loc
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
}
