// internal/store/user_store.go
package store

import (
	"sync"

	"github.com/cavea-app/cavea-backend/internal/models"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	ordered []string
}

func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]models.User)}
}

func (s *UserStore) Load(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]models.User, len(users))
	s.ordered = make([]string, 0, len(users))
	for _, u := range users {
		if _, ok := s.byID[u.ID]; !ok {
			s.ordered = append(s.ordered, u.ID)
		}
		s.byID[u.ID] = u
	}
}

func (s *UserStore) Get(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *UserStore) Update(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; !ok {
		return ErrNotFound
	}
	s.byID[u.ID] = u
	return nil
}

func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.ordered))
	for _, id := range s.ordered {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
