// internal/store/collection_store.go
package store

import "sync"

// CollectionStore carries the mutable per-user view state of the mockup:
// favorites as a set of bottle ids and a cart as bottle id -> quantity.
// Each user owns their collections exclusively; insertion order is
// irrelevant and listings are returned sorted by the caller if needed.
type CollectionStore struct {
	mu        sync.RWMutex
	favorites map[string]map[string]struct{}
	carts     map[string]map[string]int
}

func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		favorites: make(map[string]map[string]struct{}),
		carts:     make(map[string]map[string]int),
	}
}

// AddFavorite reports whether the bottle was newly added.
func (s *CollectionStore) AddFavorite(userID, bottleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.favorites[userID]
	if !ok {
		set = make(map[string]struct{})
		s.favorites[userID] = set
	}
	if _, dup := set[bottleID]; dup {
		return false
	}
	set[bottleID] = struct{}{}
	return true
}

func (s *CollectionStore) RemoveFavorite(userID, bottleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.favorites[userID]
	if !ok {
		return false
	}
	if _, present := set[bottleID]; !present {
		return false
	}
	delete(set, bottleID)
	return true
}

func (s *CollectionStore) IsFavorite(userID, bottleID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[userID][bottleID]
	return ok
}

func (s *CollectionStore) Favorites(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.favorites[userID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// SetCartQuantity sets the cart line for a bottle; quantity <= 0 removes
// the line.
func (s *CollectionStore) SetCartQuantity(userID, bottleID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		if quantity <= 0 {
			return
		}
		cart = make(map[string]int)
		s.carts[userID] = cart
	}
	if quantity <= 0 {
		delete(cart, bottleID)
		return
	}
	cart[bottleID] = quantity
}

func (s *CollectionStore) Cart(userID string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.carts[userID]))
	for id, qty := range s.carts[userID] {
		out[id] = qty
	}
	return out
}
