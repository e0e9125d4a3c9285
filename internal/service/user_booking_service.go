package service

import (
	"context"
	"fmt"

	"chefbook/internal/database"
	"chefbook/internal/domain"
	"chefbook/internal/models"

	"github.com/rs/zerolog"
)

type UserBookingService struct {
	store  domain.Store
	logger *zerolog.Logger
}

func NewUserBookingService(store domain.Store, logger *zerolog.Logger) *UserBookingService {
	return &UserBookingService{
		store:  store,
		logger: logger,
	}
}

func (s *UserBookingService) ListForUser(ctx context.Context, userID string) ([]*models.UserBooking, error) {
	return s.store.GetUserBookings(ctx, userID)
}

func (s *UserBookingService) Link(ctx context.Context, userID, eventID, notes string) (*models.UserBooking, error) {
	// Событие должно существовать на момент привязки
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.store.CreateUserBooking(ctx, userID, eventID, notes)
}

// Unlink removes every user booking tied to a deleted event.
func (s *UserBookingService) Unlink(ctx context.Context, eventID string) error {
	return s.store.DeleteUserBookingsByEvent(ctx, eventID)
}

func (s *UserBookingService) UpdateReview(ctx context.Context, userID, bookingID string, rating int, review string) (*models.UserBooking, error) {
	if rating < models.MinReviewRating || rating > models.MaxReviewRating {
		return nil, fmt.Errorf("rating must be between %d and %d", models.MinReviewRating, models.MaxReviewRating)
	}

	booking, err := s.store.GetUserBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		// Чужая бронь не раскрывается
		return nil, database.ErrNotFound
	}

	return s.store.UpdateUserBookingReview(ctx, bookingID, rating, review)
}
