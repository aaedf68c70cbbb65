// internal/mockdata/conversations.go
package mockdata

import (
	"time"

	"github.com/cavea-app/cavea-backend/internal/models"
)

func Conversations(now time.Time) []models.Conversation {
	return []models.Conversation{
		{
			ID: "c-001", BuyerID: "u-camille", SellerID: "u-marcel",
			BottleID: "bottle-l-002", Status: models.ConversationActive,
			CreatedAt: now.AddDate(0, 0, -6),
			Messages: []models.Message{
				{
					ID: "m-001", ConversationID: "c-001", SenderID: "u-camille",
					Body:   "Bonjour, la Springbank est-elle toujours disponible ? Le niveau est bon ?",
					SentAt: now.AddDate(0, 0, -6), Read: true,
				},
				{
					ID: "m-002", ConversationID: "c-001", SenderID: "u-marcel",
					Body:   "Bonjour ! Oui, niveau parfait, conservée debout à l'abri de la lumière.",
					SentAt: now.AddDate(0, 0, -5), Read: true,
				},
				{
					ID: "m-003", ConversationID: "c-001", SenderID: "u-camille",
					Body:   "Parfait. Vous accepteriez 220 € avec remise en main propre à Lyon ?",
					SentAt: now.AddDate(0, 0, -2),
				},
			},
		},
		{
			ID: "c-002", BuyerID: "u-antoine", SellerID: "u-jeanne",
			BottleID: "bottle-l-007", Status: models.ConversationActive,
			CreatedAt: now.AddDate(0, 0, -3),
			Messages: []models.Message{
				{
					ID: "m-004", ConversationID: "c-002", SenderID: "u-antoine",
					Body:   "Bonsoir, le Talbot 2016 est-il en caisse bois d'origine ?",
					SentAt: now.AddDate(0, 0, -3), Read: true,
				},
				{
					ID: "m-005", ConversationID: "c-002", SenderID: "u-jeanne",
					Body:   "Bonsoir, oui, caisse bois de 6 jamais ouverte. Je vends à l'unité aussi.",
					SentAt: now.AddDate(0, 0, -1),
				},
			},
		},
		{
			ID: "c-003", BuyerID: "u-sophie", SellerID: "u-camille",
			BottleID: "bottle-l-003", Status: models.ConversationArchived,
			CreatedAt: now.AddDate(0, -2, 0),
			Messages: []models.Message{
				{
					ID: "m-006", ConversationID: "c-003", SenderID: "u-sophie",
					Body:   "Bonjour, je cherche un Yamazaki pour un cadeau, envoi possible ?",
					SentAt: now.AddDate(0, -2, 0), Read: true,
				},
				{
					ID: "m-007", ConversationID: "c-003", SenderID: "u-camille",
					Body:   "Bonjour, oui, envoi assuré avec emballage renforcé. Vendu depuis, désolée !",
					SentAt: now.AddDate(0, -2, 3), Read: true,
				},
			},
		},
	}
}
