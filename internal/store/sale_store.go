// internal/store/sale_store.go
package store

import (
	"sync"

	"github.com/cavea-app/cavea-backend/internal/models"
)

// SaleStore holds observed sale records, append-only. Records are indexed
// per bottle in insertion order so every query over a bottle's history
// traverses deterministically.
type SaleStore struct {
	mu       sync.RWMutex
	byBottle map[string][]models.SaleRecord
	all      []models.SaleRecord
}

func NewSaleStore() *SaleStore {
	return &SaleStore{byBottle: make(map[string][]models.SaleRecord)}
}

func (s *SaleStore) Append(records ...models.SaleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.byBottle[r.BottleID] = append(s.byBottle[r.BottleID], r)
		s.all = append(s.all, r)
	}
}

// ForBottle returns a copy of the bottle's sale history in insertion
// order. An unknown bottle yields an empty slice, never an error.
func (s *SaleStore) ForBottle(bottleID string) []models.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.byBottle[bottleID]
	out := make([]models.SaleRecord, len(records))
	copy(out, records)
	return out
}

func (s *SaleStore) All() []models.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SaleRecord, len(s.all))
	copy(out, s.all)
	return out
}

func (s *SaleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}
