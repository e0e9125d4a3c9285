package service

import (
	"context"
	"testing"

	"chefbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateKeepsRoleAndEmail(t *testing.T) {
	store := new(mockStore)
	svc := NewProfileService(store, testLogger())

	existing := &models.Profile{
		ID:        "user-1",
		FirstName: "Anna",
		LastName:  "Petrova",
		Email:     "anna@example.com",
		Role:      models.RoleUser,
	}
	store.On("GetProfile", mock.Anything, "user-1").Return(existing, nil)
	store.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.FirstName == "Ann" && p.Email == "anna@example.com" && p.Role == models.RoleUser
	})).Return(nil)

	first := "Ann"
	profile, err := svc.Update(context.Background(), "user-1", models.ProfilePatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.FirstName)
	assert.Equal(t, "Petrova", profile.LastName)

	store.AssertExpectations(t)
}

func TestProfileGet(t *testing.T) {
	store := new(mockStore)
	svc := NewProfileService(store, testLogger())

	store.On("GetProfile", mock.Anything, "user-1").Return(&models.Profile{ID: "user-1"}, nil)

	profile, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
}
