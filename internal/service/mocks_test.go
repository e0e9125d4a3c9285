package service

import (
	"context"
	"time"

	"chefbook/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetAllChefs(ctx context.Context) ([]*models.Chef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Chef), args.Error(1)
}
func (m *mockStore) GetChef(ctx context.Context, id string) (*models.Chef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chef), args.Error(1)
}
func (m *mockStore) CreateChef(ctx context.Context, data models.CreateChefData) (*models.Chef, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chef), args.Error(1)
}
func (m *mockStore) UpdateChef(ctx context.Context, chef *models.Chef) error {
	return m.Called(ctx, chef).Error(0)
}
func (m *mockStore) DeleteChef(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}
func (m *mockStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *mockStore) CreateEvent(ctx context.Context, data models.CreateEventData) (*models.Event, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *mockStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}
func (m *mockStore) UpdateEventStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *mockStore) DeleteEvent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore) CreateUserBooking(ctx context.Context, userID, eventID, notes string) (*models.UserBooking, error) {
	args := m.Called(ctx, userID, eventID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserBooking), args.Error(1)
}
func (m *mockStore) GetUserBooking(ctx context.Context, id string) (*models.UserBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserBooking), args.Error(1)
}
func (m *mockStore) GetUserBookings(ctx context.Context, userID string) ([]*models.UserBooking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserBooking), args.Error(1)
}
func (m *mockStore) UpdateUserBookingReview(ctx context.Context, id string, rating int, review string) (*models.UserBooking, error) {
	args := m.Called(ctx, id, rating, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserBooking), args.Error(1)
}
func (m *mockStore) DeleteUserBookingsByEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}
func (m *mockStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *mockStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}
func (m *mockStore) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}
func (m *mockStore) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *mockStore) CreateSyncTask(ctx context.Context, task *models.SyncTask) error {
	return m.Called(ctx, task).Error(0)
}
func (m *mockStore) GetPendingSyncTasks(ctx context.Context, limit int) ([]models.SyncTask, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SyncTask), args.Error(1)
}
func (m *mockStore) UpdateSyncTaskStatus(ctx context.Context, id int64, status, errMsg string, nextRetryAt *time.Time) error {
	return m.Called(ctx, id, status, errMsg, nextRetryAt).Error(0)
}

type mockEventBus struct {
	mock.Mock
}

func (m *mockEventBus) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}

type mockLinkWorker struct {
	mock.Mock
}

func (m *mockLinkWorker) EnqueueLink(ctx context.Context, eventID, userID, notes string) error {
	return m.Called(ctx, eventID, userID, notes).Error(0)
}
func (m *mockLinkWorker) EnqueueUnlink(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}
