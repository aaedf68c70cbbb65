// internal/mockdata/seed_test.go
package mockdata

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/services"
)

var seedNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func TestListingsNormalizeCleanly(t *testing.T) {
	listings := Listings()
	require.NotEmpty(t, listings)

	svc := services.NewCatalogService(nil)
	bottles := svc.Normalize(listings)

	// The accessory and gift box entries never reach the catalog.
	assert.Less(t, len(bottles), len(listings))
	for _, b := range bottles {
		assert.NotEqual(t, models.CategoryAccessory, b.Category, "bottle %s", b.ID)
		assert.NotEqual(t, models.CategoryGiftBox, b.Category, "bottle %s", b.ID)
		assert.NotEmpty(t, b.Producer, "bottle %s", b.ID)
		assert.NotEmpty(t, b.Name, "bottle %s", b.ID)
		assert.NotEmpty(t, b.Country, "bottle %s", b.ID)
		assert.Greater(t, b.VolumeMl, 0, "bottle %s", b.ID)
	}
}

func TestGenerateSalesVolumesAndBounds(t *testing.T) {
	svc := services.NewCatalogService(nil)
	bottles := svc.Normalize(Listings())

	r := rand.New(rand.NewSource(42))
	sales := GenerateSales(r, bottles, seedNow)
	require.NotEmpty(t, sales)

	byBottle := make(map[string][]models.SaleRecord)
	priceByID := make(map[string]float64)
	rarityByID := make(map[string]string)
	stockByID := make(map[string]int)
	for _, b := range bottles {
		priceByID[b.ID] = b.ListingPrice
		rarityByID[b.ID] = b.Rarity
		stockByID[b.ID] = b.Stock
	}
	for _, s := range sales {
		byBottle[s.BottleID] = append(byBottle[s.BottleID], s)
	}

	for _, b := range bottles {
		history := byBottle[b.ID]
		want := salesPerBottle
		switch {
		case b.Rarity == "rare":
			want = salesPerRareBottle
		case b.Stock >= highStockThreshold:
			want = salesPerHighStockBottle
		}
		assert.Len(t, history, want, "bottle %s", b.ID)
	}

	yearAgo := seedNow.AddDate(0, 0, -365)
	for _, s := range sales {
		assert.False(t, s.SoldAt.Before(yearAgo), "sale %s predates the window", s.ID)
		assert.False(t, s.SoldAt.After(seedNow), "sale %s is in the future", s.ID)

		reference := priceByID[s.BottleID]
		assert.GreaterOrEqual(t, s.PriceAmount, float64(int(reference*0.85)), "sale %s", s.ID)
		assert.LessOrEqual(t, s.PriceAmount, float64(int(reference*1.15+1)), "sale %s", s.ID)

		assert.Equal(t, "EUR", s.Currency)
		assert.Equal(t, "simulation", s.Source)
		assert.GreaterOrEqual(t, s.LotSize, 1)
	}
}

func TestGenerateSalesDeterministic(t *testing.T) {
	svc := services.NewCatalogService(nil)
	bottles := svc.Normalize(Listings())

	first := GenerateSales(rand.New(rand.NewSource(42)), bottles, seedNow)
	second := GenerateSales(rand.New(rand.NewSource(42)), bottles, seedNow)
	assert.Equal(t, first, second)

	other := GenerateSales(rand.New(rand.NewSource(7)), bottles, seedNow)
	assert.NotEqual(t, first, other)
}

func TestSeedFillsEveryStore(t *testing.T) {
	stores := NewStores()
	Seed(stores, 42, seedNow)

	assert.Greater(t, stores.Bottles.Count(), 0)
	assert.Greater(t, stores.Sales.Count(), 0)
	assert.Greater(t, stores.Users.Count(), 0)
	assert.Greater(t, stores.Conversations.Count(), 0)
	assert.NotEmpty(t, stores.Collections.Favorites("u-camille"))

	// Every sale points at a catalog bottle.
	for _, s := range stores.Sales.All() {
		_, err := stores.Bottles.Get(s.BottleID)
		assert.NoError(t, err, "sale %s", s.ID)
	}

	// Every conversation participant exists.
	for _, u := range []string{"u-marcel", "u-camille", "u-jeanne"} {
		_, err := stores.Users.Get(u)
		assert.NoError(t, err)
	}
}
