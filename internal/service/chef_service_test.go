package service

import (
	"context"
	"testing"

	"chefbook/internal/database"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestChefServiceCreateDefaultsStatus(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	svc := NewChefService(store, bus, testLogger())

	created := &models.Chef{ID: "chef-1", Name: "Mario Rossi", Status: models.ChefActive}
	store.On("CreateChef", mock.Anything, mock.MatchedBy(func(data models.CreateChefData) bool {
		return data.Status == models.ChefActive
	})).Return(created, nil)
	bus.On("PublishJSON", "chef_created", mock.Anything).Return(nil)

	chef, err := svc.Create(context.Background(), models.CreateChefData{Name: "Mario Rossi"})
	require.NoError(t, err)
	assert.Equal(t, "chef-1", chef.ID)

	store.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestChefServiceUpdateAppliesPatchFields(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	svc := NewChefService(store, bus, testLogger())

	existing := &models.Chef{
		ID:        "chef-1",
		Name:      "Mario Rossi",
		Specialty: "Italian Cuisine",
		Bio:       "old bio",
		Status:    models.ChefActive,
	}
	store.On("GetChef", mock.Anything, "chef-1").Return(existing, nil)
	store.On("UpdateChef", mock.Anything, mock.MatchedBy(func(chef *models.Chef) bool {
		return chef.Bio == "new bio" && chef.Name == "Mario Rossi" && chef.Specialty == "Italian Cuisine"
	})).Return(nil)
	bus.On("PublishJSON", "chef_updated", mock.Anything).Return(nil)

	bio := "new bio"
	chef, err := svc.Update(context.Background(), "chef-1", models.ChefPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "new bio", chef.Bio)
	// Untouched fields survive the patch.
	assert.Equal(t, "Italian Cuisine", chef.Specialty)

	store.AssertExpectations(t)
}

func TestChefServiceUpdateStatus(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	svc := NewChefService(store, bus, testLogger())

	existing := &models.Chef{ID: "chef-1", Name: "Mario Rossi", Status: models.ChefActive}
	store.On("GetChef", mock.Anything, "chef-1").Return(existing, nil)
	store.On("UpdateChef", mock.Anything, mock.MatchedBy(func(chef *models.Chef) bool {
		return chef.Status == models.ChefInactive
	})).Return(nil)
	bus.On("PublishJSON", "chef_updated", mock.Anything).Return(nil)

	chef, err := svc.UpdateStatus(context.Background(), "chef-1", models.ChefInactive)
	require.NoError(t, err)
	assert.Equal(t, models.ChefInactive, chef.Status)
}

func TestChefServiceUpdateMissingChef(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	svc := NewChefService(store, bus, testLogger())

	store.On("GetChef", mock.Anything, "absent").Return(nil, database.ErrNotFound)

	name := "x"
	_, err := svc.Update(context.Background(), "absent", models.ChefPatch{Name: &name})
	assert.ErrorIs(t, err, database.ErrNotFound)
	store.AssertNotCalled(t, "UpdateChef", mock.Anything, mock.Anything)
}

func TestChefServiceDeletePublishesEvent(t *testing.T) {
	store := new(mockStore)
	bus := new(mockEventBus)
	svc := NewChefService(store, bus, testLogger())

	existing := &models.Chef{ID: "chef-1", Name: "Mario Rossi"}
	store.On("GetChef", mock.Anything, "chef-1").Return(existing, nil)
	store.On("DeleteChef", mock.Anything, "chef-1").Return(nil)
	bus.On("PublishJSON", "chef_deleted", mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "chef-1"))
	bus.AssertExpectations(t)
}
