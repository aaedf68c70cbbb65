// internal/mockdata/seed.go
package mockdata

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cavea-app/cavea-backend/internal/services"
	"github.com/cavea-app/cavea-backend/internal/store"
)

// Stores bundles every in-memory store the seeder fills.
type Stores struct {
	Bottles       *store.BottleStore
	Sales         *store.SaleStore
	Users         *store.UserStore
	Conversations *store.ConversationStore
	Collections   *store.CollectionStore
}

func NewStores() *Stores {
	return &Stores{
		Bottles:       store.NewBottleStore(),
		Sales:         store.NewSaleStore(),
		Users:         store.NewUserStore(),
		Conversations: store.NewConversationStore(),
		Collections:   store.NewCollectionStore(),
	}
}

// Seed builds the whole mock world: normalizes the listing fixture into
// the catalog, synthesizes each bottle's sale history from the given
// seed, and loads the demo members and their inbox.
func Seed(stores *Stores, seed int64, now time.Time) {
	catalog := services.NewCatalogService(stores.Bottles)
	bottles := catalog.Reload(Listings())

	r := rand.New(rand.NewSource(seed))
	sales := GenerateSales(r, bottles, now)
	stores.Sales.Append(sales...)

	stores.Users.Load(Users(now))
	for _, c := range Conversations(now) {
		if _, err := stores.Conversations.Create(c); err != nil {
			logrus.WithError(err).WithField("conversation_id", c.ID).Warn("Skipping duplicate seed conversation")
		}
	}

	// A few starting favorites so the demo account isn't empty.
	stores.Collections.AddFavorite("u-camille", "bottle-l-001")
	stores.Collections.AddFavorite("u-camille", "bottle-l-005")

	logrus.WithFields(logrus.Fields{
		"bottles": stores.Bottles.Count(),
		"sales":   stores.Sales.Count(),
		"users":   stores.Users.Count(),
	}).Info("Mock data seeded")
}
