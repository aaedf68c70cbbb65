// internal/services/user_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

func newUserFixture(t *testing.T) *UserService {
	t.Helper()
	users := store.NewUserStore()
	users.Load([]models.User{{
		ID:          "u-1",
		Username:    "marcel_cave",
		DisplayName: "Marcel",
		Bio:         "Collectionneur de whiskys tourbés.",
		Region:      "Bordeaux",
		MemberSince: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		SalesCount:  42,
		Rating:      4.8,
	}})
	return NewUserService(users)
}

func TestGetUser(t *testing.T) {
	svc := newUserFixture(t)

	u, err := svc.GetUser("u-1")
	require.NoError(t, err)
	assert.Equal(t, "marcel_cave", u.Username)
	assert.Equal(t, "Collectionneur de whiskys tourbés.", u.Bio)

	_, err = svc.GetUser("u-ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetPublicProfileHidesBio(t *testing.T) {
	svc := newUserFixture(t)

	u, err := svc.GetPublicProfile("u-1")
	require.NoError(t, err)
	assert.Equal(t, "marcel_cave", u.Username)
	assert.Empty(t, u.Bio)
	assert.Equal(t, 42, u.SalesCount)
	assert.Equal(t, 4.8, u.Rating)
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserFixture(t)

	u, err := svc.UpdateProfile("u-1", &UpdateProfileRequest{
		DisplayName: "Marcel C.",
		Region:      "Gironde",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marcel C.", u.DisplayName)
	assert.Equal(t, "Gironde", u.Region)
	// Untouched fields keep their values.
	assert.Equal(t, "marcel_cave", u.Username)
	assert.Equal(t, "Collectionneur de whiskys tourbés.", u.Bio)

	_, err = svc.UpdateProfile("u-1", &UpdateProfileRequest{AvatarURL: "not a url"})
	assert.Error(t, err)

	_, err = svc.UpdateProfile("u-ghost", &UpdateProfileRequest{Region: "Paris"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
