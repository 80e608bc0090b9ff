package store

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	apperrors "github.com/julianstephens/ibadah/internal/errors"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/storage"
	"github.com/julianstephens/ibadah/internal/utils"
)

// SettingsStore owns the singleton settings record.
type SettingsStore struct {
	env    env
	repo   *storage.Repository[models.Settings]
	notify notifier.Service

	mu       sync.Mutex
	settings models.Settings
	loc      *time.Location
}

func newSettingsStore(e env, repo *storage.Repository[models.Settings], notify notifier.Service) *SettingsStore {
	return &SettingsStore{env: e, repo: repo, notify: notify, settings: models.DefaultSettings(), loc: time.Local}
}

// Hydrate loads stored settings over the defaults.
func (s *SettingsStore) Hydrate(ctx context.Context) {
	settings := models.DefaultSettings()
	hydrate(ctx, s.repo, &settings)
	models.ApplyDefaultSettings(&settings)

	s.mu.Lock()
	s.settings = settings
	s.loc = resolveLocation(settings.Timezone)
	s.mu.Unlock()
}

// Get returns the current settings.
func (s *SettingsStore) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSettings(s.settings)
}

// Location is the zone configured for calendar dates.
func (s *SettingsStore) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc
}

// Update merges patch and persists. When reminder settings change the
// notification service is rescheduled; its failures are logged, never
// returned.
func (s *SettingsStore) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	if err := s.env.validate.Struct(patch); err != nil {
		return models.Settings{}, err
	}
	if patch.Timezone != nil && !utils.ValidateTimezone(*patch.Timezone) {
		return models.Settings{}, apperrors.Invalid("timezone", "is not a known IANA zone")
	}

	s.mu.Lock()
	s.settings.Apply(patch)
	s.loc = resolveLocation(s.settings.Timezone)
	persist(s.repo, s.settings)
	updated := cloneSettings(s.settings)
	s.mu.Unlock()

	if patch.TouchesNotifications() {
		s.Reschedule(ctx)
	}
	return updated, nil
}

// Reschedule cancels every reminder and, if enabled and permitted,
// schedules the configured one.
func (s *SettingsStore) Reschedule(ctx context.Context) {
	if s.notify == nil {
		return
	}
	settings := s.Get()

	if err := s.notify.CancelAll(ctx); err != nil {
		logger.Error("Cancelling reminders failed", "error", err)
	}
	if !settings.NotificationsEnabled {
		return
	}
	if !s.notify.RequestPermission(ctx) {
		logger.Warn("Reminders not scheduled, permission denied")
		return
	}
	interval := time.Duration(settings.ReminderMinutes) * time.Minute
	if _, err := s.notify.ScheduleRecurring(ctx, interval, constants.ReminderMessages); err != nil {
		logger.Error("Scheduling reminders failed", "every", interval, "error", err)
	}
}

func (s *SettingsStore) reset() {
	s.mu.Lock()
	s.settings = models.DefaultSettings()
	s.loc = time.Local
	s.mu.Unlock()
}

func resolveLocation(tz string) *time.Location {
	loc, err := utils.LoadLocation(tz)
	if err != nil {
		logger.Warn("Unknown timezone in settings, using local", "timezone", tz, "error", err)
		return time.Local
	}
	return loc
}

func cloneSettings(s models.Settings) models.Settings {
	if s.Location != nil {
		loc := *s.Location
		s.Location = &loc
	}
	return s
}
