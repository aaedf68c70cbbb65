// internal/store/conversation_store.go
package store

import (
	"sync"

	"github.com/cavea-app/cavea-backend/internal/models"
)

// ConversationStore holds the messaging inbox. Messages within a
// conversation are kept in send order.
type ConversationStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.Conversation
	ordered []string
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{byID: make(map[string]*models.Conversation)}
}

func (s *ConversationStore) Create(c models.Conversation) (models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[c.ID]; ok {
		return models.Conversation{}, ErrAlreadyExists
	}
	stored := c
	s.byID[c.ID] = &stored
	s.ordered = append(s.ordered, c.ID)
	return copyConversation(&stored), nil
}

func (s *ConversationStore) Get(id string) (models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return models.Conversation{}, ErrNotFound
	}
	return copyConversation(c), nil
}

// ListForUser returns the conversations the user participates in, in
// creation order.
func (s *ConversationStore) ListForUser(userID string) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Conversation
	for _, id := range s.ordered {
		if c := s.byID[id]; c.HasParticipant(userID) {
			out = append(out, copyConversation(c))
		}
	}
	return out
}

func (s *ConversationStore) AppendMessage(conversationID string, m models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[conversationID]
	if !ok {
		return ErrNotFound
	}
	c.Messages = append(c.Messages, m)
	return nil
}

// MarkRead flags every message addressed to the reader as read and
// returns how many flipped.
func (s *ConversationStore) MarkRead(conversationID, readerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[conversationID]
	if !ok {
		return 0, ErrNotFound
	}
	flipped := 0
	for i := range c.Messages {
		if c.Messages[i].SenderID != readerID && !c.Messages[i].Read {
			c.Messages[i].Read = true
			flipped++
		}
	}
	return flipped, nil
}

func (s *ConversationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func copyConversation(c *models.Conversation) models.Conversation {
	out := *c
	out.Messages = make([]models.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}
