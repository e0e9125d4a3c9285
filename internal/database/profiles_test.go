package database

import (
	"context"
	"testing"

	"chefbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProfile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	profile := &models.Profile{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Role:         models.RoleUser,
		PasswordHash: "hash",
	}
	require.NoError(t, db.CreateProfile(ctx, profile))
	assert.NotEmpty(t, profile.ID)

	got, err := db.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, models.RoleUser, got.Role)

	byEmail, err := db.GetProfileByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byEmail.ID)
}

func TestCreateProfile_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := &models.Profile{FirstName: "Jane", Email: "jane@example.com", Role: models.RoleUser, PasswordHash: "h"}
	require.NoError(t, db.CreateProfile(ctx, first))

	dup := &models.Profile{FirstName: "Janet", Email: "jane@example.com", Role: models.RoleUser, PasswordHash: "h"}
	assert.ErrorIs(t, db.CreateProfile(ctx, dup), ErrDuplicateEmail)
}

func TestUpdateProfile_LeavesRoleAlone(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	profile := &models.Profile{FirstName: "Jane", Email: "jane@example.com", Role: models.RoleAdmin, PasswordHash: "h"}
	require.NoError(t, db.CreateProfile(ctx, profile))

	profile.FirstName = "Janet"
	profile.Phone = "+1 555 0101"
	profile.Role = models.RoleUser // must not be written
	require.NoError(t, db.UpdateProfile(ctx, profile))

	got, err := db.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", got.FirstName)
	assert.Equal(t, "+1 555 0101", got.Phone)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestGetProfile_Missing(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
