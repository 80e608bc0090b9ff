package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/julianstephens/ibadah/internal/catalog"
	"github.com/julianstephens/ibadah/internal/constants"
	apperrors "github.com/julianstephens/ibadah/internal/errors"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/storage"
)

// DhikrStore owns routines, completed sessions and the single active run.
type DhikrStore struct {
	env      env
	routines *storage.Repository[[]models.DhikrRoutine]
	sessions *storage.Repository[[]models.DhikrSession]

	mu          sync.Mutex
	routineList []models.DhikrRoutine
	sessionList []models.DhikrSession

	run    *models.RunState
	active models.DhikrRoutine // snapshot taken at Start

	onComplete func()
}

func newDhikrStore(e env, routines *storage.Repository[[]models.DhikrRoutine], sessions *storage.Repository[[]models.DhikrSession]) *DhikrStore {
	return &DhikrStore{env: e, routines: routines, sessions: sessions}
}

// Hydrate loads routines and sessions. The active run is never persisted.
func (s *DhikrStore) Hydrate(ctx context.Context) {
	var routines []models.DhikrRoutine
	var sessions []models.DhikrSession
	hydrate(ctx, s.routines, &routines)
	hydrate(ctx, s.sessions, &sessions)

	s.mu.Lock()
	s.routineList = routines
	s.sessionList = sessions
	s.run = nil
	s.mu.Unlock()
}

// Routines returns every routine in creation order.
func (s *DhikrStore) Routines() []models.DhikrRoutine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DhikrRoutine, len(s.routineList))
	for i, r := range s.routineList {
		out[i] = r.Clone()
	}
	return out
}

// Routine finds a routine by id.
func (s *DhikrStore) Routine(id string) (models.DhikrRoutine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.routineIndex(id); i >= 0 {
		return s.routineList[i].Clone(), true
	}
	return models.DhikrRoutine{}, false
}

// CreateRoutine snapshots the selected catalog items and returns the new
// routine's id so the caller can start it right away.
func (s *DhikrStore) CreateRoutine(input models.RoutineInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.env.validate.Struct(input); err != nil {
		return "", err
	}

	items := make([]models.DhikrItem, 0, len(input.Items))
	for _, sel := range input.Items {
		item, ok := catalog.Find(sel.ID)
		if !ok {
			return "", apperrors.Invalid("dhikr", fmt.Sprintf("%q is not in the catalog", sel.ID))
		}
		if sel.Count > 0 {
			item.Count = sel.Count
		}
		items = append(items, item)
	}

	r := models.DhikrRoutine{
		ID:        s.env.newID(),
		Name:      input.Name,
		Items:     items,
		CreatedAt: s.env.now(),
	}

	s.mu.Lock()
	s.routineList = append(s.routineList, r)
	s.saveRoutines()
	s.mu.Unlock()
	return r.ID, nil
}

// UpdateRoutine merges patch. It reports false when id does not exist.
func (s *DhikrStore) UpdateRoutine(id string, patch models.RoutinePatch) (bool, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := s.env.validate.Struct(patch); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.routineIndex(id)
	if i < 0 {
		return false, nil
	}
	r := &s.routineList[i]
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.CompletedCount != nil {
		r.CompletedCount = *patch.CompletedCount
	}
	if patch.TotalSessions != nil {
		r.TotalSessions = *patch.TotalSessions
	}
	s.saveRoutines()
	return true, nil
}

// DeleteRoutine removes a routine and clears the run if it was active.
// Sessions keep their now dangling routine id. It reports false when id
// does not exist.
func (s *DhikrStore) DeleteRoutine(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.routineIndex(id)
	if i < 0 {
		return false
	}
	s.routineList = append(s.routineList[:i:i], s.routineList[i+1:]...)
	if s.run != nil && s.run.RoutineID == id {
		s.run = nil
	}
	s.saveRoutines()
	return true
}

// Sessions returns every completed session in completion order.
func (s *DhikrStore) Sessions() []models.DhikrSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.sessionList)
}

// TodaySessions returns the sessions completed today.
func (s *DhikrStore) TodaySessions() []models.DhikrSession {
	today := s.env.today()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.DhikrSession
	for _, sess := range s.sessionList {
		if sess.Date == today {
			out = append(out, sess)
		}
	}
	return cloneSessions(out)
}

// Run returns the active run and the routine snapshot it counts against.
func (s *DhikrStore) Run() (models.RunState, models.DhikrRoutine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil {
		return models.RunState{}, models.DhikrRoutine{}, false
	}
	return *s.run, s.active.Clone(), true
}

// Start begins a run of routine id. Starting the routine that is already
// active resumes it without losing position; starting another replaces the
// current run. It reports false when the routine does not exist or is empty.
func (s *DhikrStore) Start(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil && s.run.RoutineID == id {
		s.run.Status = constants.RunRunning
		return true
	}

	i := s.routineIndex(id)
	if i < 0 || len(s.routineList[i].Items) == 0 {
		return false
	}
	if s.run != nil {
		logger.Debug("Replacing active dhikr run", "previous", s.run.RoutineID, "routine", id)
	}
	s.active = s.routineList[i].Clone()
	s.run = &models.RunState{
		RoutineID: id,
		Status:    constants.RunRunning,
		StartedAt: s.env.now(),
	}
	return true
}

// Pause stops counting taps, keeping position.
func (s *DhikrStore) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil || !s.run.Running() {
		return false
	}
	s.run.Status = constants.RunPaused
	return true
}

// Resume continues a paused run.
func (s *DhikrStore) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil || s.run.Running() {
		return false
	}
	s.run.Status = constants.RunRunning
	return true
}

// Reset abandons the active run without recording a session.
func (s *DhikrStore) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil {
		return false
	}
	s.run = nil
	return true
}

// Increment counts one tap. Reaching the item's target advances to the next
// item; finishing the last item completes the run and returns the recorded
// session. Taps while idle or paused are ignored.
func (s *DhikrStore) Increment() *models.DhikrSession {
	return s.step(func(run *models.RunState, item models.DhikrItem) bool {
		run.Count++
		return run.Count >= item.Count
	})
}

// Next skips to the following item, completing the run on the last one.
func (s *DhikrStore) Next() *models.DhikrSession {
	return s.step(func(*models.RunState, models.DhikrItem) bool { return true })
}

// step applies tap to the current item; a true result advances.
func (s *DhikrStore) step(tap func(*models.RunState, models.DhikrItem) bool) *models.DhikrSession {
	s.mu.Lock()
	if s.run == nil || !s.run.Running() || s.run.Index >= len(s.active.Items) {
		s.mu.Unlock()
		return nil
	}

	if !tap(s.run, s.active.Items[s.run.Index]) {
		s.mu.Unlock()
		return nil
	}
	if s.run.Index < len(s.active.Items)-1 {
		s.run.Index++
		s.run.Count = 0
		s.mu.Unlock()
		return nil
	}

	session := s.complete()
	onComplete := s.onComplete
	s.mu.Unlock()

	if onComplete != nil {
		onComplete()
	}
	return &session
}

// complete records the session and bumps the routine counters. Caller holds mu.
func (s *DhikrStore) complete() models.DhikrSession {
	now := s.env.now()
	ids := make([]string, len(s.active.Items))
	for i, item := range s.active.Items {
		ids[i] = item.ID
	}
	session := models.DhikrSession{
		ID:             s.env.newID(),
		RoutineID:      s.active.ID,
		Date:           s.env.today(),
		CompletedDhikr: ids,
		TotalCount:     s.active.TotalTarget(),
		DurationMs:     now.Sub(s.run.StartedAt).Milliseconds(),
	}

	s.sessionList = append(s.sessionList, session)
	if i := s.routineIndex(s.active.ID); i >= 0 {
		s.routineList[i].CompletedCount++
		s.routineList[i].TotalSessions++
	}
	s.run = nil

	persist(s.sessions, append([]models.DhikrSession{}, s.sessionList...))
	s.saveRoutines()
	return session
}

func (s *DhikrStore) saveRoutines() {
	persist(s.routines, append([]models.DhikrRoutine{}, s.routineList...))
}

func (s *DhikrStore) routineIndex(id string) int {
	for i := range s.routineList {
		if s.routineList[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *DhikrStore) reset() {
	s.mu.Lock()
	s.routineList = nil
	s.sessionList = nil
	s.run = nil
	s.mu.Unlock()
}

func cloneSessions(in []models.DhikrSession) []models.DhikrSession {
	out := make([]models.DhikrSession, len(in))
	for i, sess := range in {
		sess.CompletedDhikr = append([]string(nil), sess.CompletedDhikr...)
		out[i] = sess
	}
	return out
}
