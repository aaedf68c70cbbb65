// internal/store/store.go
package store

import "errors"

// The stores are in-memory by design: the marketplace mockup is seeded
// once at startup and never persists anything. Each store guards its maps
// with a RWMutex and keeps an insertion-order index wherever callers
// depend on deterministic iteration.

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotParticipant = errors.New("not a conversation participant")
)
