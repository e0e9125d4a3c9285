package service

import (
	"context"

	"chefbook/internal/domain"
	"chefbook/internal/events"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type ChefService struct {
	store    domain.Store
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewChefService(store domain.Store, eventBus domain.EventPublisher, logger *zerolog.Logger) *ChefService {
	return &ChefService{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *ChefService) List(ctx context.Context) ([]*models.Chef, error) {
	return s.store.GetAllChefs(ctx)
}

func (s *ChefService) Create(ctx context.Context, data models.CreateChefData) (*models.Chef, error) {
	if data.Status == "" {
		data.Status = models.ChefActive
	}

	chef, err := s.store.CreateChef(ctx, data)
	if err != nil {
		return nil, err
	}

	s.publishEvent(events.EventChefCreated, chef)
	return chef, nil
}

// Update reads the current row, applies the non-nil patch fields and writes
// the whole row back. Last write wins on concurrent edits.
func (s *ChefService) Update(ctx context.Context, id string, patch models.ChefPatch) (*models.Chef, error) {
	chef, err := s.store.GetChef(ctx, id)
	if err != nil {
		return nil, err
	}

	applyChefPatch(chef, patch)

	if err := s.store.UpdateChef(ctx, chef); err != nil {
		return nil, err
	}

	s.publishEvent(events.EventChefUpdated, chef)
	return chef, nil
}

func (s *ChefService) UpdateStatus(ctx context.Context, id string, status models.ChefStatus) (*models.Chef, error) {
	return s.Update(ctx, id, models.ChefPatch{Status: &status})
}

func (s *ChefService) Delete(ctx context.Context, id string) error {
	chef, err := s.store.GetChef(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteChef(ctx, id); err != nil {
		return err
	}

	s.publishEvent(events.EventChefDeleted, chef)
	return nil
}

func (s *ChefService) publishEvent(eventType string, chef *models.Chef) {
	payload := events.ChefEventPayload{
		ChefID:    chef.ID,
		Name:      chef.Name,
		Specialty: chef.Specialty,
		Status:    string(chef.Status),
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("failed to publish chef event")
	}
}

func applyChefPatch(chef *models.Chef, patch models.ChefPatch) {
	if patch.Name != nil {
		chef.Name = *patch.Name
	}
	if patch.Email != nil {
		chef.Email = *patch.Email
	}
	if patch.Phone != nil {
		chef.Phone = *patch.Phone
	}
	if patch.Specialty != nil {
		chef.Specialty = *patch.Specialty
	}
	if patch.Experience != nil {
		chef.Experience = *patch.Experience
	}
	if patch.Location != nil {
		chef.Location = *patch.Location
	}
	if patch.Bio != nil {
		chef.Bio = *patch.Bio
	}
	if patch.PriceRange != nil {
		chef.PriceRange = *patch.PriceRange
	}
	if patch.Status != nil {
		chef.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		chef.ImageURL = *patch.ImageURL
	}
}
