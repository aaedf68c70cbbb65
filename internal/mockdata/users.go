// internal/mockdata/users.go
package mockdata

import (
	"time"

	"github.com/cavea-app/cavea-backend/internal/models"
)

func Users(now time.Time) []models.User {
	return []models.User{
		{
			ID: "u-marcel", Username: "marcel_cave", DisplayName: "Marcel D.",
			AvatarURL: "/avatars/marcel.jpg", Bio: "Collectionneur de single malts tourbés depuis vingt ans.",
			Region: "Lyon", MemberSince: now.AddDate(-4, 0, 0), SalesCount: 87, Rating: 4.9,
		},
		{
			ID: "u-camille", Username: "camille_spirits", DisplayName: "Camille R.",
			AvatarURL: "/avatars/camille.jpg", Bio: "Whiskies japonais et irlandais, échanges possibles.",
			Region: "Paris", MemberSince: now.AddDate(-2, -3, 0), SalesCount: 34, Rating: 4.7,
		},
		{
			ID: "u-jeanne", Username: "jeanne_grandscrus", DisplayName: "Jeanne B.",
			AvatarURL: "/avatars/jeanne.jpg", Bio: "Grands crus classés, conservation en cave enterrée.",
			Region: "Bordeaux", MemberSince: now.AddDate(-5, -6, 0), SalesCount: 152, Rating: 5.0,
		},
		{
			ID: "u-antoine", Username: "antoine33", DisplayName: "Antoine L.",
			Region: "Toulouse", MemberSince: now.AddDate(-1, 0, 0), SalesCount: 12, Rating: 4.4,
		},
		{
			ID: "u-sophie", Username: "sophie_bulles", DisplayName: "Sophie M.",
			AvatarURL: "/avatars/sophie.jpg", Bio: "Champagnes de vignerons et grandes maisons.",
			Region: "Reims", MemberSince: now.AddDate(-3, -1, 0), SalesCount: 61, Rating: 4.8,
		},
	}
}
