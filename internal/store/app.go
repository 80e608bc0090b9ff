package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/stats"
	"github.com/julianstephens/ibadah/internal/storage"
	"github.com/julianstephens/ibadah/internal/validation"
)

// App wires every domain store over one kv.Store and one Writer.
type App struct {
	Prayers     *PrayerStore
	Reflections *ReflectionStore
	Dhikr       *DhikrStore
	Badges      *BadgeStore
	Settings    *SettingsStore

	env      env
	kv       kv.Store
	writer   *storage.Writer
	notifier notifier.Service
	onBadges func([]models.Badge)
}

// New builds the stores. Call Hydrate before reading from them.
func New(store kv.Store, opts ...Option) *App {
	o := options{now: time.Now, newID: NewID}
	for _, opt := range opts {
		opt(&o)
	}

	w := storage.NewWriter(store)
	a := &App{kv: store, writer: w, notifier: o.notifier, onBadges: o.onBadges}

	a.env = env{now: o.now, newID: o.newID, validate: validation.New()}
	a.Settings = newSettingsStore(a.env, storage.NewRepository[models.Settings](constants.KeySettings, store, w), o.notifier)
	if o.location != nil {
		loc := o.location
		a.env.location = func() *time.Location { return loc }
	} else {
		a.env.location = a.Settings.Location
	}
	a.Settings.env = a.env

	a.Prayers = newPrayerStore(a.env, storage.NewRepository[models.PrayerLog](constants.KeyPrayerRecords, store, w))
	a.Reflections = newReflectionStore(a.env, storage.NewRepository[[]models.Reflection](constants.KeyReflections, store, w))
	a.Dhikr = newDhikrStore(a.env,
		storage.NewRepository[[]models.DhikrRoutine](constants.KeyDhikrRoutines, store, w),
		storage.NewRepository[[]models.DhikrSession](constants.KeyDhikrSessions, store, w))
	a.Badges = newBadgeStore(a.env, storage.NewRepository[[]models.Badge](constants.KeyBadges, store, w))

	a.Prayers.onChange = a.award
	a.Reflections.onCreate = a.award
	a.Dhikr.onComplete = a.award
	return a
}

// Hydrate reads every collection once. Failures fall back to defaults and
// are logged; the app is always usable afterwards.
func (a *App) Hydrate(ctx context.Context) {
	a.Settings.Hydrate(ctx)
	a.Prayers.Hydrate(ctx)
	a.Reflections.Hydrate(ctx)
	a.Dhikr.Hydrate(ctx)
	a.Badges.Hydrate(ctx)
	logger.Debug("Stores hydrated", "today", a.Today())
}

// Today is the current calendar date in the configured zone.
func (a *App) Today() string {
	return a.env.today()
}

// Now is the injected clock.
func (a *App) Now() time.Time {
	return a.env.now().In(a.env.location())
}

// Summary computes every domain summary as of today.
func (a *App) Summary() stats.Summary {
	today := a.Today()
	return stats.Summary{
		Prayers:     stats.Prayers(a.Prayers.Log(), today),
		Reflections: stats.Reflections(a.Reflections.List(), today, a.env.location()),
		Dhikr:       stats.Dhikr(a.Dhikr.Sessions(), today),
	}
}

// award recomputes the summary and stores newly earned badges.
func (a *App) award() {
	earned := a.Badges.Award(a.Summary())
	if len(earned) == 0 {
		return
	}
	for _, b := range earned {
		logger.Info("Badge earned", "id", b.ID)
	}
	if a.onBadges != nil {
		a.onBadges(earned)
	}
}

// ClearAllData wipes every collection, resets settings, removes every key
// and cancels reminders.
func (a *App) ClearAllData(ctx context.Context) error {
	a.Prayers.reset()
	a.Reflections.reset()
	a.Dhikr.reset()
	a.Badges.reset()
	a.Settings.reset()

	for _, key := range constants.StorageKeys {
		a.writer.Remove(key)
	}
	if a.notifier != nil {
		if err := a.notifier.CancelAll(ctx); err != nil {
			logger.Error("Cancelling reminders failed", "error", err)
		}
	}
	return a.writer.Flush(ctx)
}

// Flush waits until every queued write has reached the kv store.
func (a *App) Flush(ctx context.Context) error {
	return a.writer.Flush(ctx)
}

// WriteFailures counts writes the kv store rejected.
func (a *App) WriteFailures() int64 {
	return a.writer.Failures()
}

// Backend is the underlying kv store.
func (a *App) Backend() kv.Store {
	return a.kv
}

// Close flushes pending writes and stops the writer. The kv store stays
// open; its owner closes it. Closing twice is a no-op.
func (a *App) Close(ctx context.Context) error {
	err := a.writer.Flush(ctx)
	if errors.Is(err, storage.ErrWriterClosed) {
		return nil
	}
	if cerr := a.writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}
	return nil
}
