// internal/services/collection_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

func newCollectionFixture(t *testing.T) *CollectionService {
	t.Helper()
	bottles := store.NewBottleStore()
	bottles.Load([]models.CanonicalBottle{
		{ID: "bottle-a", Name: "Ardbeg 10 ans", Category: models.CategoryWhisky},
		{ID: "bottle-b", Name: "Talisker 10 ans", Category: models.CategoryWhisky},
	})
	return NewCollectionService(store.NewCollectionStore(), bottles)
}

func TestFavoritesLifecycle(t *testing.T) {
	svc := newCollectionFixture(t)

	added, err := svc.AddFavorite("u-1", "bottle-b")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.AddFavorite("u-1", "bottle-a")
	require.NoError(t, err)
	assert.True(t, added)

	// Adding twice is not an error, just a no-op.
	added, err = svc.AddFavorite("u-1", "bottle-a")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = svc.AddFavorite("u-1", "bottle-ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)

	favorites := svc.Favorites("u-1")
	require.Len(t, favorites, 2)
	assert.Equal(t, "bottle-a", favorites[0].ID)
	assert.Equal(t, "bottle-b", favorites[1].ID)

	assert.True(t, svc.RemoveFavorite("u-1", "bottle-a"))
	assert.False(t, svc.RemoveFavorite("u-1", "bottle-a"))
	assert.Len(t, svc.Favorites("u-1"), 1)

	assert.Empty(t, svc.Favorites("u-2"))
}

func TestCartLifecycle(t *testing.T) {
	svc := newCollectionFixture(t)

	require.NoError(t, svc.SetCartQuantity("u-1", "bottle-b", 2))
	require.NoError(t, svc.SetCartQuantity("u-1", "bottle-a", 1))

	lines := svc.Cart("u-1")
	require.Len(t, lines, 2)
	assert.Equal(t, "bottle-a", lines[0].Bottle.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "bottle-b", lines[1].Bottle.ID)
	assert.Equal(t, 2, lines[1].Quantity)

	// Quantity zero drops the line.
	require.NoError(t, svc.SetCartQuantity("u-1", "bottle-b", 0))
	assert.Len(t, svc.Cart("u-1"), 1)

	err := svc.SetCartQuantity("u-1", "bottle-ghost", 3)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Removing an unknown bottle is harmless.
	require.NoError(t, svc.SetCartQuantity("u-1", "bottle-ghost", 0))

	assert.Empty(t, svc.Cart("u-2"))
}
