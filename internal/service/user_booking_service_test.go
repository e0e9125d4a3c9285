package service

import (
	"context"
	"testing"

	"chefbook/internal/database"
	"chefbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLinkRequiresExistingEvent(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	store.On("GetEvent", mock.Anything, "absent").Return(nil, database.ErrNotFound)

	_, err := svc.Link(context.Background(), "user-1", "absent", "")
	assert.ErrorIs(t, err, database.ErrNotFound)
	store.AssertNotCalled(t, "CreateUserBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkCreatesBooking(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	store.On("GetEvent", mock.Anything, "event-1").Return(&models.Event{ID: "event-1"}, nil)
	store.On("CreateUserBooking", mock.Anything, "user-1", "event-1", "notes").
		Return(&models.UserBooking{ID: "ub-1", UserID: "user-1", EventID: "event-1"}, nil)

	booking, err := svc.Link(context.Background(), "user-1", "event-1", "notes")
	require.NoError(t, err)
	assert.Equal(t, "ub-1", booking.ID)
}

func TestUnlinkRemovesEventBookings(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	store.On("DeleteUserBookingsByEvent", mock.Anything, "event-1").Return(nil)

	require.NoError(t, svc.Unlink(context.Background(), "event-1"))
	store.AssertExpectations(t)
}

func TestUpdateReviewRatingBounds(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.UpdateReview(context.Background(), "user-1", "ub-1", rating, "x")
		assert.Error(t, err)
	}
	store.AssertNotCalled(t, "GetUserBooking", mock.Anything, mock.Anything)
}

func TestUpdateReviewRejectsForeignBooking(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	store.On("GetUserBooking", mock.Anything, "ub-1").
		Return(&models.UserBooking{ID: "ub-1", UserID: "someone-else"}, nil)

	_, err := svc.UpdateReview(context.Background(), "user-1", "ub-1", 4, "great")
	assert.ErrorIs(t, err, database.ErrNotFound)
	store.AssertNotCalled(t, "UpdateUserBookingReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateReviewOwnBooking(t *testing.T) {
	store := new(mockStore)
	svc := NewUserBookingService(store, testLogger())

	rating := 5
	review := "great"
	store.On("GetUserBooking", mock.Anything, "ub-1").
		Return(&models.UserBooking{ID: "ub-1", UserID: "user-1"}, nil)
	store.On("UpdateUserBookingReview", mock.Anything, "ub-1", 5, "great").
		Return(&models.UserBooking{ID: "ub-1", UserID: "user-1", Rating: &rating, Review: &review}, nil)

	booking, err := svc.UpdateReview(context.Background(), "user-1", "ub-1", 5, "great")
	require.NoError(t, err)
	require.NotNil(t, booking.Rating)
	assert.Equal(t, 5, *booking.Rating)
}
