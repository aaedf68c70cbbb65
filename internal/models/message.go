// internal/models/message.go
package models

import "time"

// Conversation is a two-party thread between a buyer and a seller, usually
// anchored to a bottle the buyer asked about.
type Conversation struct {
	ID           string             `json:"id"`
	BuyerID      string             `json:"buyer_id"`
	SellerID     string             `json:"seller_id"`
	BottleID     string             `json:"bottle_id,omitempty"`
	Status       ConversationStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	LastMessage  *Message           `json:"last_message,omitempty"`
	UnreadCount  int                `json:"unread_count"`
	Messages     []Message          `json:"messages,omitempty"`
}

func (c Conversation) HasParticipant(userID string) bool {
	return c.BuyerID == userID || c.SellerID == userID
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
	Read           bool      `json:"read"`
}
