// Package store holds the authoritative in-memory collections. Each store
// hydrates once from a kv.Store and writes the full collection back through
// a shared storage.Writer after every mutation.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/storage"
	"github.com/julianstephens/ibadah/internal/utils"
	"github.com/julianstephens/ibadah/internal/validation"
)

// env carries the injectable clock, id source and display zone shared by
// every store.
type env struct {
	now      func() time.Time
	newID    func() string
	location func() *time.Location
	validate *validation.Validator
}

func (e env) today() string {
	return utils.DateKey(e.now().In(e.location()))
}

// NewID returns a time-ordered UUIDv7, falling back to a random UUID.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type options struct {
	now      func() time.Time
	newID    func() string
	location *time.Location
	notifier notifier.Service
	onBadges func([]models.Badge)
}

// Option configures an App.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces NewID.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithLocation pins the zone used for "today", ignoring the timezone setting.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithNotifier sets the service the settings store reschedules reminders on.
func WithNotifier(n notifier.Service) Option {
	return func(o *options) { o.notifier = n }
}

// WithBadgeListener is called with newly earned badges after a mutation.
func WithBadgeListener(fn func([]models.Badge)) Option {
	return func(o *options) { o.onBadges = fn }
}

// hydrate loads repo into dst. Absent keys keep the default; read or decode
// failures are logged and also keep the default.
func hydrate[T any](ctx context.Context, repo *storage.Repository[T], dst *T) bool {
	value, found, err := repo.Load(ctx)
	if err != nil {
		logger.Error("Hydration failed, using defaults", "key", repo.Key(), "error", err)
		return false
	}
	if !found {
		return false
	}
	*dst = value
	return true
}

// persist saves value, logging encode failures.
func persist[T any](repo *storage.Repository[T], value T) {
	if err := repo.Save(value); err != nil {
		logger.Error("Persisting failed", "key", repo.Key(), "error", err)
	}
}
