package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/julianstephens/ibadah/internal/constants"
	apperrors "github.com/julianstephens/ibadah/internal/errors"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/storage"
	"github.com/julianstephens/ibadah/internal/utils"
)

// PrayerStore owns the prayer log.
type PrayerStore struct {
	env  env
	repo *storage.Repository[models.PrayerLog]

	mu  sync.Mutex
	log models.PrayerLog

	onChange func()
}

func newPrayerStore(e env, repo *storage.Repository[models.PrayerLog]) *PrayerStore {
	return &PrayerStore{env: e, repo: repo, log: models.PrayerLog{}}
}

// Hydrate replaces the in-memory log with the stored one.
func (s *PrayerStore) Hydrate(ctx context.Context) {
	log := models.PrayerLog{}
	hydrate(ctx, s.repo, &log)

	s.mu.Lock()
	s.log = log
	s.mu.Unlock()
}

// EnsureToday creates today's record if it does not exist yet and returns it.
func (s *PrayerStore) EnsureToday() models.DayRecord {
	today := s.env.today()

	s.mu.Lock()
	rec, ok := s.log[today]
	if !ok {
		rec = models.NewDayRecord()
		s.log[today] = rec
		persist(s.repo, s.log)
	}
	out := rec.Clone()
	s.mu.Unlock()
	return out
}

// Today returns today's record, pending if untouched. It does not create it.
func (s *PrayerStore) Today() models.DayRecord {
	rec, ok := s.Day(s.env.today())
	if !ok {
		return models.NewDayRecord()
	}
	return rec
}

// Day returns the record for date.
func (s *PrayerStore) Day(date string) (models.DayRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.log[date]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// Log returns a copy of the whole log.
func (s *PrayerStore) Log() models.PrayerLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Clone()
}

// Mark sets the status of one prayer, creating the day record if needed.
func (s *PrayerStore) Mark(date string, name constants.PrayerName, status constants.PrayerStatus) error {
	name, err := checkPrayer(date, name)
	if err != nil {
		return err
	}
	if !models.ValidStatus(status) {
		return apperrors.Invalid("status", fmt.Sprintf("%q is not a prayer status", status))
	}

	s.mutate(date, func(rec models.DayRecord) bool {
		p := rec[name]
		p.SetStatus(status, s.env.now())
		rec[name] = p
		return true
	})
	return nil
}

// MarkAll sets every pending prayer of date to status and returns how many
// changed.
func (s *PrayerStore) MarkAll(date string, status constants.PrayerStatus) (int, error) {
	if !utils.ValidateDate(date) {
		return 0, apperrors.Invalid("date", "must be YYYY-MM-DD")
	}
	if !models.ValidStatus(status) || status == constants.StatusPending {
		return 0, apperrors.Invalid("status", fmt.Sprintf("%q cannot be applied to all prayers", status))
	}

	changed := 0
	s.mutate(date, func(rec models.DayRecord) bool {
		now := s.env.now()
		for _, name := range constants.Prayers {
			p := rec[name]
			if p.Status != constants.StatusPending {
				continue
			}
			p.SetStatus(status, now)
			rec[name] = p
			changed++
		}
		return changed > 0
	})
	return changed, nil
}

// SetNote attaches a note to one prayer. An empty note clears it.
func (s *PrayerStore) SetNote(date string, name constants.PrayerName, note string) error {
	name, err := checkPrayer(date, name)
	if err != nil {
		return err
	}
	s.mutate(date, func(rec models.DayRecord) bool {
		p := rec[name]
		p.Note = note
		rec[name] = p
		return true
	})
	return nil
}

// mutate applies fn to date's record under the lock, persists when fn
// reports a change, then fires onChange outside the lock.
func (s *PrayerStore) mutate(date string, fn func(models.DayRecord) bool) {
	s.mu.Lock()
	rec, ok := s.log[date]
	if !ok {
		rec = models.NewDayRecord()
	}
	changed := fn(rec)
	if changed || !ok {
		s.log[date] = rec
		persist(s.repo, s.log)
	}
	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange()
	}
}

func (s *PrayerStore) reset() {
	s.mu.Lock()
	s.log = models.PrayerLog{}
	s.mu.Unlock()
}

// checkPrayer validates date and returns the canonical spelling of name.
func checkPrayer(date string, name constants.PrayerName) (constants.PrayerName, error) {
	if !utils.ValidateDate(date) {
		return "", apperrors.Invalid("date", "must be YYYY-MM-DD")
	}
	canonical, err := models.ParsePrayerName(string(name))
	if err != nil {
		return "", apperrors.Invalid("prayer", fmt.Sprintf("%q is not one of the five daily prayers", name))
	}
	return canonical, nil
}
