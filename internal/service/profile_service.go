package service

import (
	"context"

	"chefbook/internal/domain"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type ProfileService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewProfileService(store domain.Store, logger *zerolog.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	return s.store.GetProfile(ctx, id)
}

// Update applies the self-service patch. Role and email are not part of the
// patch and never change here.
func (s *ProfileService) Update(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error) {
	profile, err := s.store.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		profile.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}

	if err := s.store.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
