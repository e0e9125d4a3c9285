// Package store keeps in-memory collection snapshots fed by the services.
// Each store mirrors the persisted collection for fast reads and pushes a
// user-facing notice after every mutation.
package store

import (
	"context"
	"sync"

	"chefbook/internal/domain"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type ChefStore struct {
	service  domain.ChefService
	notifier domain.Notifier
	logger   *zerolog.Logger

	mu      sync.RWMutex
	chefs   []*models.Chef
	loading bool
}

func NewChefStore(service domain.ChefService, notifier domain.Notifier, logger *zerolog.Logger) *ChefStore {
	return &ChefStore{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// Load replaces the snapshot with the service's current listing. On failure
// the previous snapshot is kept so readers never see a partial wipe.
func (s *ChefStore) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	chefs, err := s.service.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch chefs")
		s.notifier.Error("Failed to fetch chefs")
		return err
	}

	s.mu.Lock()
	s.chefs = chefs
	s.mu.Unlock()
	return nil
}

func (s *ChefStore) Chefs() []*models.Chef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Chef(nil), s.chefs...)
}

func (s *ChefStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Add creates the chef and prepends it, keeping newest-first order without a
// full reload.
func (s *ChefStore) Add(ctx context.Context, data models.CreateChefData) (*models.Chef, error) {
	chef, err := s.service.Create(ctx, data)
	if err != nil {
		s.notifier.Error("Failed to add chef")
		return nil, err
	}

	s.mu.Lock()
	s.chefs = append([]*models.Chef{chef}, s.chefs...)
	s.mu.Unlock()

	s.notifier.Success("Chef added successfully!")
	return chef, nil
}

func (s *ChefStore) Update(ctx context.Context, id string, patch models.ChefPatch) (*models.Chef, error) {
	chef, err := s.service.Update(ctx, id, patch)
	if err != nil {
		s.notifier.Error("Failed to update chef")
		return nil, err
	}

	s.replace(chef)
	s.notifier.Success("Chef updated successfully!")
	return chef, nil
}

func (s *ChefStore) UpdateStatus(ctx context.Context, id string, status models.ChefStatus) (*models.Chef, error) {
	chef, err := s.service.UpdateStatus(ctx, id, status)
	if err != nil {
		s.notifier.Error("Failed to update chef status")
		return nil, err
	}

	s.replace(chef)
	s.notifier.Success("Chef status updated!")
	return chef, nil
}

func (s *ChefStore) Delete(ctx context.Context, id string) error {
	if err := s.service.Delete(ctx, id); err != nil {
		s.notifier.Error("Failed to delete chef")
		return err
	}

	s.mu.Lock()
	kept := s.chefs[:0]
	for _, chef := range s.chefs {
		if chef.ID != id {
			kept = append(kept, chef)
		}
	}
	s.chefs = kept
	s.mu.Unlock()

	s.notifier.Success("Chef deleted successfully!")
	return nil
}

func (s *ChefStore) replace(chef *models.Chef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.chefs {
		if existing.ID == chef.ID {
			s.chefs[i] = chef
			return
		}
	}
}

func (s *ChefStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
