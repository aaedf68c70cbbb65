// internal/services/collection_service.go
package services

import (
	"sort"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

// CollectionService exposes the per-user favorites and cart. Quantities
// and membership are owned by one user each; there is no sharing.
type CollectionService struct {
	collections *store.CollectionStore
	bottles     *store.BottleStore
}

type CartLine struct {
	Bottle   models.CanonicalBottle `json:"bottle"`
	Quantity int                    `json:"quantity"`
}

func NewCollectionService(collections *store.CollectionStore, bottles *store.BottleStore) *CollectionService {
	return &CollectionService{collections: collections, bottles: bottles}
}

func (s *CollectionService) AddFavorite(userID, bottleID string) (bool, error) {
	if _, err := s.bottles.Get(bottleID); err != nil {
		return false, err
	}
	return s.collections.AddFavorite(userID, bottleID), nil
}

func (s *CollectionService) RemoveFavorite(userID, bottleID string) bool {
	return s.collections.RemoveFavorite(userID, bottleID)
}

// Favorites resolves the user's favorite set against the catalog, in
// catalog id order for a stable payload.
func (s *CollectionService) Favorites(userID string) []models.CanonicalBottle {
	ids := s.collections.Favorites(userID)
	sort.Strings(ids)
	out := make([]models.CanonicalBottle, 0, len(ids))
	for _, id := range ids {
		if bottle, err := s.bottles.Get(id); err == nil {
			out = append(out, bottle)
		}
	}
	return out
}

func (s *CollectionService) SetCartQuantity(userID, bottleID string, quantity int) error {
	if quantity > 0 {
		if _, err := s.bottles.Get(bottleID); err != nil {
			return err
		}
	}
	s.collections.SetCartQuantity(userID, bottleID, quantity)
	return nil
}

// Cart returns resolved cart lines sorted by bottle id.
func (s *CollectionService) Cart(userID string) []CartLine {
	quantities := s.collections.Cart(userID)
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]CartLine, 0, len(ids))
	for _, id := range ids {
		if bottle, err := s.bottles.Get(id); err == nil {
			lines = append(lines, CartLine{Bottle: bottle, Quantity: quantities[id]})
		}
	}
	return lines
}
