// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

func TestVolumeToMl(t *testing.T) {
	tests := []struct {
		volume string
		want   int
	}{
		{"70cl", 700},
		{"70 cl", 700},
		{"75CL", 750},
		{"700ml", 700},
		{"700 ml", 700},
		{"1L", 1000},
		{"1l", 1000},
		{"1.5L", 1500},
		{"1,5 l", 1500},
		{"0.7l", 700},
		{"bouteille standard", 700},
		{"", 700},
		{"magnum", 700},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VolumeToMl(tt.volume), "volume %q", tt.volume)
	}
}

func TestParseABV(t *testing.T) {
	abv := parseABV("43,2%")
	require.NotNil(t, abv)
	assert.Equal(t, 43.2, *abv)

	abv = parseABV("40%")
	require.NotNil(t, abv)
	assert.Equal(t, 40.0, *abv)

	assert.Nil(t, parseABV(""))
	assert.Nil(t, parseABV("inconnu"))
}

func TestInferCountry(t *testing.T) {
	assert.Equal(t, "Écosse", inferCountry("Islay, Écosse"))
	assert.Equal(t, "Écosse", inferCountry("Scotland"))
	assert.Equal(t, "Japon", inferCountry("Japon"))
	assert.Equal(t, "États-Unis", inferCountry("Kentucky"))
	assert.Equal(t, "Irlande", inferCountry("Irlande"))
	assert.Equal(t, "France", inferCountry("Bourgogne"))
	assert.Equal(t, "France", inferCountry(""))
}

func TestStripParenthetical(t *testing.T) {
	assert.Equal(t, "Château Margaux", stripParenthetical("Château Margaux (2015)"))
	assert.Equal(t, "Ardbeg 10 ans", stripParenthetical("Ardbeg 10 ans"))
	assert.Equal(t, "Krug (Grande Cuvée)", stripParenthetical("Krug (Grande Cuvée) (NV)"))
}

func TestExtractAgeStatement(t *testing.T) {
	assert.Equal(t, "10 ans", extractAgeStatement("Ardbeg 10 ans"))
	assert.Equal(t, "21 ans", extractAgeStatement("Springbank 21 Ans Single Malt"))
	assert.Equal(t, "1 ans", extractAgeStatement("Rhum 1 an"))
	assert.Equal(t, "", extractAgeStatement("Château Margaux (2015)"))
}

func TestNormalizeSkipsAccessories(t *testing.T) {
	svc := NewCatalogService(store.NewBottleStore())
	bottles := svc.Normalize([]models.Listing{
		{ID: "l-1", Title: "Ardbeg 10 ans", Category: models.CategoryWhisky, Volume: "70cl"},
		{ID: "l-2", Title: "Carafe à décanter", Category: models.CategoryAccessory},
		{ID: "l-3", Title: "Coffret dégustation", Category: models.CategoryGiftBox},
		{ID: "l-4", Title: "Talisker 10 ans", Category: models.CategoryWhisky, Volume: "70cl"},
	})

	require.Len(t, bottles, 2)
	assert.Equal(t, "bottle-l-1", bottles[0].ID)
	assert.Equal(t, "bottle-l-4", bottles[1].ID)
}

func TestNormalizePreservesOrderAndDerivesFields(t *testing.T) {
	svc := NewCatalogService(store.NewBottleStore())
	bottles := svc.Normalize([]models.Listing{
		{
			ID:       "l-1",
			Title:    "Château Margaux (2015)",
			Category: models.CategoryRouge,
			Volume:   "75cl",
			Price:    850,
			Specs: models.ListingSpecs{
				Producer: "Château Margaux",
				Origin:   "Bordeaux, France",
				Region:   "Margaux",
				Vintage:  "2015",
				ABV:      "13,5%",
			},
		},
		{
			ID:       "l-2",
			Title:    "Yamazaki 12 ans",
			Category: models.CategoryWhisky,
			Volume:   "70cl",
			Specs:    models.ListingSpecs{Origin: "Japon"},
		},
	})

	require.Len(t, bottles, 2)

	margaux := bottles[0]
	assert.Equal(t, "bottle-l-1", margaux.ID)
	assert.Equal(t, "l-1", margaux.ListingID)
	assert.Equal(t, "Château Margaux", margaux.Name)
	assert.Equal(t, "Château Margaux", margaux.Producer)
	assert.Equal(t, "2015", margaux.Vintage)
	assert.Equal(t, "France", margaux.Country)
	assert.Equal(t, 750, margaux.VolumeMl)
	require.NotNil(t, margaux.ABV)
	assert.Equal(t, 13.5, *margaux.ABV)

	yamazaki := bottles[1]
	// No producer spec: the first title word stands in.
	assert.Equal(t, "Yamazaki", yamazaki.Producer)
	assert.Equal(t, "12 ans", yamazaki.AgeStatement)
	assert.Equal(t, "Japon", yamazaki.Country)
	assert.Nil(t, yamazaki.ABV)
}

func TestReloadReplacesCatalog(t *testing.T) {
	bottles := store.NewBottleStore()
	svc := NewCatalogService(bottles)

	svc.Reload([]models.Listing{
		{ID: "l-1", Title: "Ardbeg 10 ans", Category: models.CategoryWhisky, Volume: "70cl"},
	})
	require.Equal(t, 1, bottles.Count())

	svc.Reload([]models.Listing{
		{ID: "l-2", Title: "Talisker 10 ans", Category: models.CategoryWhisky, Volume: "70cl"},
		{ID: "l-3", Title: "Lagavulin 16 ans", Category: models.CategoryWhisky, Volume: "70cl"},
	})
	assert.Equal(t, 2, bottles.Count())

	_, err := svc.Get("bottle-l-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := svc.Get("bottle-l-2")
	require.NoError(t, err)
	assert.Equal(t, "Talisker 10 ans", got.Name)
}
