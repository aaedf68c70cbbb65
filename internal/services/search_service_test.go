// internal/services/search_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

func newSearchFixture(t *testing.T, bottles []models.CanonicalBottle, users []models.User) *SearchService {
	t.Helper()
	bottleStore := store.NewBottleStore()
	bottleStore.Load(bottles)
	userStore := store.NewUserStore()
	userStore.Load(users)
	return NewSearchService(bottleStore, userStore)
}

func testBottle(id, producer, name, region, category string) models.CanonicalBottle {
	return models.CanonicalBottle{
		ID:       id,
		Producer: producer,
		Name:     name,
		Region:   region,
		Category: category,
	}
}

func TestSearchBottlesEmptyQuery(t *testing.T) {
	svc := newSearchFixture(t, []models.CanonicalBottle{
		testBottle("b-1", "Ardbeg", "Ardbeg 10 ans", "Islay", models.CategoryWhisky),
	}, nil)

	assert.Empty(t, svc.SearchBottles(""))
	assert.Empty(t, svc.SearchBottles("   "))
	assert.NotNil(t, svc.SearchBottles(""))
}

func TestSearchBottlesIgnoresAccentsAndCase(t *testing.T) {
	svc := newSearchFixture(t, []models.CanonicalBottle{
		testBottle("b-1", "Château Margaux", "Château Margaux", "Margaux", models.CategoryRouge),
	}, nil)

	for _, query := range []string{"chateau", "CHÂTEAU", "margaux", "teau marg"} {
		results := svc.SearchBottles(query)
		require.Len(t, results, 1, "query %q", query)
		assert.Equal(t, "b-1", results[0].Bottle.ID)
	}
}

func TestSearchBottlesSubstringMatch(t *testing.T) {
	svc := newSearchFixture(t, []models.CanonicalBottle{
		testBottle("b-1", "Ardbeg", "Ardbeg 10 ans", "Islay", models.CategoryWhisky),
		testBottle("b-2", "Talisker", "Talisker 10 ans", "Skye", models.CategoryWhisky),
		testBottle("b-3", "Dom Pérignon", "Dom Pérignon Vintage 2013", "Champagne", models.CategoryChampagne),
	}, nil)

	results := svc.SearchBottles("10 ans")
	require.Len(t, results, 2)
	assert.Equal(t, "b-1", results[0].Bottle.ID)
	assert.Equal(t, "b-2", results[1].Bottle.ID)

	results = svc.SearchBottles("perignon")
	require.Len(t, results, 1)
	assert.Equal(t, "b-3", results[0].Bottle.ID)

	assert.Empty(t, svc.SearchBottles("lagavulin"))
}

func TestSearchBottlesConfidence(t *testing.T) {
	svc := newSearchFixture(t, []models.CanonicalBottle{
		testBottle("b-1", "Ardbeg", "Ardbeg 10 ans", "Islay", models.CategoryWhisky),
	}, nil)

	results := svc.SearchBottles("ardbeg")
	require.Len(t, results, 1)
	assert.Equal(t, models.MatchStrict, results[0].Confidence)

	results = svc.SearchBottles("Ardbeg 10 ans")
	require.Len(t, results, 1)
	assert.Equal(t, models.MatchStrict, results[0].Confidence)

	results = svc.SearchBottles("islay")
	require.Len(t, results, 1)
	assert.Equal(t, models.MatchFuzzy, results[0].Confidence)
}

func TestSearchBottlesCapsResults(t *testing.T) {
	bottles := make([]models.CanonicalBottle, 0, MaxSearchResults+5)
	for i := 0; i < MaxSearchResults+5; i++ {
		id := fmt.Sprintf("b-%02d", i)
		bottles = append(bottles, testBottle(id, "Ardbeg", fmt.Sprintf("Ardbeg réserve %02d", i), "Islay", models.CategoryWhisky))
	}
	svc := newSearchFixture(t, bottles, nil)

	results := svc.SearchBottles("ardbeg")
	require.Len(t, results, MaxSearchResults)
	// Catalog order, first N.
	assert.Equal(t, "b-00", results[0].Bottle.ID)
	assert.Equal(t, fmt.Sprintf("b-%02d", MaxSearchResults-1), results[len(results)-1].Bottle.ID)
}

func TestSearchUsers(t *testing.T) {
	svc := newSearchFixture(t, nil, []models.User{
		{ID: "u-1", Username: "marcel_cave", DisplayName: "Marcel"},
		{ID: "u-2", Username: "camille33", DisplayName: "Camille Vigne"},
	})

	results := svc.SearchUsers("camille")
	require.Len(t, results, 1)
	assert.Equal(t, "u-2", results[0].User.ID)
	assert.Equal(t, models.MatchFuzzy, results[0].Confidence)

	results = svc.SearchUsers("marcel_cave")
	require.Len(t, results, 1)
	assert.Equal(t, models.MatchStrict, results[0].Confidence)

	assert.Empty(t, svc.SearchUsers(""))
	assert.Empty(t, svc.SearchUsers("zéphyr"))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Château Margaux", "chateau margaux"},
		{"  Dom   Pérignon  ", "dom perignon"},
		{"michter's", "michter s"},
		{"WHISKY", "whisky"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeVolumeTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ardbeg 70cl", "ardbeg 700ml"},
		{"magnum 1,5l", "magnum 1500ml"},
		{"1L", "1000ml"},
		{"700ml", "700ml"},
		{"ardbeg 10 ans", "ardbeg 10 ans"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeVolumeTokens(tt.in), "input %q", tt.in)
	}
}
