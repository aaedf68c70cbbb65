// internal/services/message_service.go
package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
	"github.com/cavea-app/cavea-backend/internal/utils"
)

// MessageService drives the inbox: conversation listing, thread fetch,
// sending and read receipts. All state lives in the conversation store.
type MessageService struct {
	conversations *store.ConversationStore
	users         *store.UserStore
	now           func() time.Time
}

type StartConversationRequest struct {
	BuyerID  string `json:"buyer_id" validate:"required"`
	SellerID string `json:"seller_id" validate:"required"`
	BottleID string `json:"bottle_id,omitempty"`
	Body     string `json:"body" validate:"required,min=1,max=2000"`
}

type SendMessageRequest struct {
	SenderID string `json:"sender_id" validate:"required"`
	Body     string `json:"body" validate:"required,min=1,max=2000"`
}

func NewMessageService(conversations *store.ConversationStore, users *store.UserStore) *MessageService {
	return &MessageService{conversations: conversations, users: users, now: time.Now}
}

// Inbox lists the user's conversations newest-activity first, each with
// its last message and unread count filled in.
func (s *MessageService) Inbox(userID string) []models.Conversation {
	conversations := s.conversations.ListForUser(userID)
	for i := range conversations {
		decorate(&conversations[i], userID)
		// The thread body is not part of the inbox payload.
		conversations[i].Messages = nil
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return lastActivity(conversations[i]).After(lastActivity(conversations[j]))
	})
	return conversations
}

func (s *MessageService) GetConversation(conversationID, userID string) (*models.Conversation, error) {
	c, err := s.conversations.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(userID) {
		return nil, store.ErrNotParticipant
	}
	decorate(&c, userID)
	return &c, nil
}

func (s *MessageService) StartConversation(req *StartConversationRequest) (*models.Conversation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.BuyerID == req.SellerID {
		return nil, errors.New("cannot start a conversation with yourself")
	}
	if _, err := s.users.Get(req.BuyerID); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(req.SellerID); err != nil {
		return nil, err
	}

	now := s.now()
	conversation := models.Conversation{
		ID:        uuid.NewString(),
		BuyerID:   req.BuyerID,
		SellerID:  req.SellerID,
		BottleID:  req.BottleID,
		Status:    models.ConversationActive,
		CreatedAt: now,
		Messages: []models.Message{{
			ID:       uuid.NewString(),
			SenderID: req.BuyerID,
			Body:     req.Body,
			SentAt:   now,
		}},
	}
	conversation.Messages[0].ConversationID = conversation.ID

	created, err := s.conversations.Create(conversation)
	if err != nil {
		return nil, err
	}
	decorate(&created, req.BuyerID)
	return &created, nil
}

func (s *MessageService) SendMessage(conversationID string, req *SendMessageRequest) (*models.Message, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.conversations.Get(conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(req.SenderID) {
		return nil, store.ErrNotParticipant
	}

	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		Body:           req.Body,
		SentAt:         s.now(),
	}
	if err := s.conversations.AppendMessage(conversationID, message); err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead marks every message addressed to the reader as read.
func (s *MessageService) MarkRead(conversationID, readerID string) (int, error) {
	c, err := s.conversations.Get(conversationID)
	if err != nil {
		return 0, err
	}
	if !c.HasParticipant(readerID) {
		return 0, store.ErrNotParticipant
	}
	return s.conversations.MarkRead(conversationID, readerID)
}

func decorate(c *models.Conversation, userID string) {
	unread := 0
	for i := range c.Messages {
		if c.Messages[i].SenderID != userID && !c.Messages[i].Read {
			unread++
		}
	}
	c.UnreadCount = unread
	if len(c.Messages) > 0 {
		last := c.Messages[len(c.Messages)-1]
		c.LastMessage = &last
	}
}

func lastActivity(c models.Conversation) time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.SentAt
	}
	return c.CreatedAt
}
