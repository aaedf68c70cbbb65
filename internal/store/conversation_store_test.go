// internal/store/conversation_store_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
)

func seedConversation() models.Conversation {
	return models.Conversation{
		ID:        "c-1",
		BuyerID:   "u-buyer",
		SellerID:  "u-seller",
		Status:    models.ConversationActive,
		CreatedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Messages: []models.Message{{
			ID:       "m-1",
			SenderID: "u-buyer",
			Body:     "Bonjour",
			SentAt:   time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC),
		}},
	}
}

func TestConversationStoreCreateAndGet(t *testing.T) {
	s := NewConversationStore()

	_, err := s.Create(seedConversation())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())

	_, err = s.Create(seedConversation())
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.Get("c-1")
	require.NoError(t, err)
	assert.Equal(t, "u-buyer", got.BuyerID)

	_, err = s.Get("c-ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationStoreReturnsCopies(t *testing.T) {
	s := NewConversationStore()
	_, err := s.Create(seedConversation())
	require.NoError(t, err)

	got, err := s.Get("c-1")
	require.NoError(t, err)
	got.Messages[0].Body = "mutated"
	got.BuyerID = "u-hacker"

	fresh, err := s.Get("c-1")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", fresh.Messages[0].Body)
	assert.Equal(t, "u-buyer", fresh.BuyerID)
}

func TestConversationStoreListForUser(t *testing.T) {
	s := NewConversationStore()
	_, err := s.Create(seedConversation())
	require.NoError(t, err)

	other := seedConversation()
	other.ID = "c-2"
	other.BuyerID = "u-third"
	_, err = s.Create(other)
	require.NoError(t, err)

	assert.Len(t, s.ListForUser("u-seller"), 2)
	assert.Len(t, s.ListForUser("u-buyer"), 1)
	assert.Empty(t, s.ListForUser("u-ghost"))
}

func TestConversationStoreAppendAndMarkRead(t *testing.T) {
	s := NewConversationStore()
	_, err := s.Create(seedConversation())
	require.NoError(t, err)

	err = s.AppendMessage("c-1", models.Message{
		ID:       "m-2",
		SenderID: "u-seller",
		Body:     "Réponse",
		SentAt:   time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, s.AppendMessage("c-ghost", models.Message{ID: "m-3"}), ErrNotFound)

	// The buyer reads the seller's reply; their own opener is untouched.
	flipped, err := s.MarkRead("c-1", "u-buyer")
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	got, err := s.Get("c-1")
	require.NoError(t, err)
	assert.False(t, got.Messages[0].Read)
	assert.True(t, got.Messages[1].Read)
}
