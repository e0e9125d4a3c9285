package service

import (
	"context"

	"chefbook/internal/domain"
	"chefbook/internal/events"
	"chefbook/internal/metrics"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type EventService struct {
	store      domain.Store
	eventBus   domain.EventPublisher
	linkWorker domain.LinkWorker
	logger     *zerolog.Logger
}

func NewEventService(store domain.Store, eventBus domain.EventPublisher, linkWorker domain.LinkWorker, logger *zerolog.Logger) *EventService {
	return &EventService{
		store:      store,
		eventBus:   eventBus,
		linkWorker: linkWorker,
		logger:     logger,
	}
}

func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.store.GetAllEvents(ctx)
}

// SubmitBooking creates the event row and, for authenticated submissions,
// schedules the user-booking link as a background task. The link must never
// fail the submission itself.
func (s *EventService) SubmitBooking(ctx context.Context, data models.CreateEventData, userID, notes string) (*models.Event, error) {
	event, err := s.store.CreateEvent(ctx, data)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingSubmitted()
	s.publishEvent(events.EventBookingSubmitted, event)

	if userID != "" {
		if err := s.linkWorker.EnqueueLink(ctx, event.ID, userID, notes); err != nil {
			s.logger.Error().Err(err).
				Str("event_id", event.ID).
				Str("user_id", userID).
				Msg("failed to enqueue booking link")
		}
	}

	return event, nil
}

// Update reads the current row, applies the non-nil patch fields and writes
// the whole row back. Last write wins on concurrent edits.
func (s *EventService) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	applyEventPatch(event, patch)

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.publishEvent(events.EventBookingUpdated, event)
	return event, nil
}

func (s *EventService) UpdateStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error) {
	event, err := s.store.UpdateEventStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.EventConfirmed:
		s.publishEvent(events.EventBookingConfirmed, event)
	case models.EventCompleted:
		s.publishEvent(events.EventBookingCompleted, event)
	case models.EventCancelled:
		s.publishEvent(events.EventBookingCancelled, event)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return err
	}

	// Чистим связанные пользовательские брони в фоне
	if err := s.linkWorker.EnqueueUnlink(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("event_id", id).Msg("failed to enqueue booking unlink")
	}

	return nil
}

func (s *EventService) publishEvent(eventType string, event *models.Event) {
	payload := events.BookingEventPayload{
		EventID:     event.ID,
		Title:       event.Title,
		EventType:   event.Type,
		Date:        event.Date,
		ChefID:      event.ChefID,
		ClientName:  event.ClientName,
		ClientEmail: event.ClientEmail,
		Status:      string(event.Status),
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("failed to publish booking event")
	}
}

func applyEventPatch(event *models.Event, patch models.EventPatch) {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Guests != nil {
		event.Guests = *patch.Guests
	}
	if patch.ChefID != nil {
		event.ChefID = *patch.ChefID
	}
	if patch.ClientName != nil {
		event.ClientName = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		event.ClientEmail = *patch.ClientEmail
	}
	if patch.ClientPhone != nil {
		event.ClientPhone = *patch.ClientPhone
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
}
