package store

import (
	"context"
	"strings"
	"sync"

	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/storage"
)

// ReflectionStore owns the journal, newest entry first.
type ReflectionStore struct {
	env  env
	repo *storage.Repository[[]models.Reflection]

	mu   sync.Mutex
	list []models.Reflection

	onCreate func()
}

func newReflectionStore(e env, repo *storage.Repository[[]models.Reflection]) *ReflectionStore {
	return &ReflectionStore{env: e, repo: repo}
}

// Hydrate replaces the in-memory journal with the stored one.
func (s *ReflectionStore) Hydrate(ctx context.Context) {
	var list []models.Reflection
	hydrate(ctx, s.repo, &list)

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
}

// List returns the journal, newest first.
func (s *ReflectionStore) List() []models.Reflection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reflection(nil), s.list...)
}

// Get finds a reflection by id.
func (s *ReflectionStore) Get(id string) (models.Reflection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.list[i], true
	}
	return models.Reflection{}, false
}

// Create trims and validates input, prepends the new entry and returns its id.
func (s *ReflectionStore) Create(input models.ReflectionInput) (string, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if err := s.env.validate.Struct(input); err != nil {
		return "", err
	}

	now := s.env.now()
	r := models.Reflection{
		ID:        s.env.newID(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.list = append([]models.Reflection{r}, s.list...)
	persist(s.repo, s.snapshot())
	onCreate := s.onCreate
	s.mu.Unlock()

	if onCreate != nil {
		onCreate()
	}
	return r.ID, nil
}

// Update merges patch into the entry and refreshes UpdatedAt. It reports
// false when id does not exist.
func (s *ReflectionStore) Update(id string, patch models.ReflectionPatch) (bool, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		patch.Content = &content
	}
	if err := s.env.validate.Struct(patch); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	r := &s.list[i]
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Content != nil {
		r.Content = *patch.Content
	}
	r.UpdatedAt = s.env.now()
	persist(s.repo, s.snapshot())
	return true, nil
}

// Delete removes the entry. It reports false when id does not exist.
func (s *ReflectionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}
	s.list = append(s.list[:i:i], s.list[i+1:]...)
	persist(s.repo, s.snapshot())
	return true
}

func (s *ReflectionStore) index(id string) int {
	for i := range s.list {
		if s.list[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot returns a copy for the writer; never nil so an empty journal
// encodes as [].
func (s *ReflectionStore) snapshot() []models.Reflection {
	return append([]models.Reflection{}, s.list...)
}

func (s *ReflectionStore) reset() {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()
}
