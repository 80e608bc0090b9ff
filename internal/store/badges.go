package store

import (
	"context"
	"sync"

	"github.com/julianstephens/ibadah/internal/badges"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/stats"
	"github.com/julianstephens/ibadah/internal/storage"
)

// BadgeStore owns the earned badges. A badge id is never awarded twice.
type BadgeStore struct {
	env  env
	repo *storage.Repository[[]models.Badge]

	mu   sync.Mutex
	list []models.Badge
}

func newBadgeStore(e env, repo *storage.Repository[[]models.Badge]) *BadgeStore {
	return &BadgeStore{env: e, repo: repo}
}

// Hydrate replaces the in-memory badges with the stored ones.
func (s *BadgeStore) Hydrate(ctx context.Context) {
	var list []models.Badge
	hydrate(ctx, s.repo, &list)

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
}

// List returns earned badges in award order.
func (s *BadgeStore) List() []models.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Badge(nil), s.list...)
}

// Award evaluates summary against the catalog, stores any new badges and
// returns only those.
func (s *BadgeStore) Award(summary stats.Summary) []models.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()

	earned := badges.Evaluate(summary, badges.EarnedIDs(s.list), s.env.now())
	if len(earned) == 0 {
		return nil
	}
	s.list = append(s.list, earned...)
	persist(s.repo, append([]models.Badge{}, s.list...))
	return earned
}

func (s *BadgeStore) reset() {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()
}
