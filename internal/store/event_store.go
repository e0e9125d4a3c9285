package store

import (
	"context"
	"sync"

	"chefbook/internal/domain"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type EventStore struct {
	service  domain.EventService
	notifier domain.Notifier
	logger   *zerolog.Logger

	mu      sync.RWMutex
	events  []*models.Event
	loading bool
}

func NewEventStore(service domain.EventService, notifier domain.Notifier, logger *zerolog.Logger) *EventStore {
	return &EventStore{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *EventStore) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	events, err := s.service.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch events")
		s.notifier.Error("Failed to fetch events")
		return err
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

func (s *EventStore) Events() []*models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Event(nil), s.events...)
}

func (s *EventStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Submit runs the booking submission and prepends the fresh event.
func (s *EventStore) Submit(ctx context.Context, data models.CreateEventData, userID, notes string) (*models.Event, error) {
	event, err := s.service.SubmitBooking(ctx, data, userID, notes)
	if err != nil {
		s.notifier.Error("Failed to submit booking request")
		return nil, err
	}

	s.mu.Lock()
	s.events = append([]*models.Event{event}, s.events...)
	s.mu.Unlock()

	s.notifier.Success("Booking request submitted successfully!")
	return event, nil
}

func (s *EventStore) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	event, err := s.service.Update(ctx, id, patch)
	if err != nil {
		s.notifier.Error("Failed to update event")
		return nil, err
	}

	s.replace(event)
	s.notifier.Success("Event updated successfully!")
	return event, nil
}

func (s *EventStore) UpdateStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error) {
	event, err := s.service.UpdateStatus(ctx, id, status)
	if err != nil {
		s.notifier.Error("Failed to update event status")
		return nil, err
	}

	s.replace(event)
	s.notifier.Success("Event status updated!")
	return event, nil
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	if err := s.service.Delete(ctx, id); err != nil {
		s.notifier.Error("Failed to delete event")
		return err
	}

	s.mu.Lock()
	kept := s.events[:0]
	for _, event := range s.events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}
	s.events = kept
	s.mu.Unlock()

	s.notifier.Success("Event deleted successfully!")
	return nil
}

func (s *EventStore) replace(event *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.events {
		if existing.ID == event.ID {
			s.events[i] = event
			return
		}
	}
}

func (s *EventStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
