// internal/store/bottle_store.go
package store

import (
	"sync"

	"github.com/cavea-app/cavea-backend/internal/models"
)

// BottleStore holds the canonical catalog. Bottles are loaded once at
// startup and are immutable afterward; List returns them in catalog
// (listing input) order.
type BottleStore struct {
	mu      sync.RWMutex
	byID    map[string]models.CanonicalBottle
	ordered []string
}

func NewBottleStore() *BottleStore {
	return &BottleStore{byID: make(map[string]models.CanonicalBottle)}
}

func (s *BottleStore) Load(bottles []models.CanonicalBottle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]models.CanonicalBottle, len(bottles))
	s.ordered = make([]string, 0, len(bottles))
	for _, b := range bottles {
		if _, ok := s.byID[b.ID]; !ok {
			s.ordered = append(s.ordered, b.ID)
		}
		s.byID[b.ID] = b
	}
}

func (s *BottleStore) Get(id string) (models.CanonicalBottle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	if !ok {
		return models.CanonicalBottle{}, ErrNotFound
	}
	return b, nil
}

func (s *BottleStore) List() []models.CanonicalBottle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CanonicalBottle, 0, len(s.ordered))
	for _, id := range s.ordered {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *BottleStore) ListByCategory(category string) []models.CanonicalBottle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CanonicalBottle
	for _, id := range s.ordered {
		if b := s.byID[id]; b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

func (s *BottleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
