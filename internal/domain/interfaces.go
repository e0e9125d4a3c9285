package domain

import (
	"context"
	"time"

	"chefbook/internal/models"
)

// Store is the persistence surface the services build on.
type Store interface {
	GetAllChefs(ctx context.Context) ([]*models.Chef, error)
	GetChef(ctx context.Context, id string) (*models.Chef, error)
	CreateChef(ctx context.Context, data models.CreateChefData) (*models.Chef, error)
	UpdateChef(ctx context.Context, chef *models.Chef) error
	DeleteChef(ctx context.Context, id string) error

	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, data models.CreateEventData) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	UpdateEventStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	CreateUserBooking(ctx context.Context, userID, eventID, notes string) (*models.UserBooking, error)
	GetUserBooking(ctx context.Context, id string) (*models.UserBooking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*models.UserBooking, error)
	UpdateUserBookingReview(ctx context.Context, id string, rating int, review string) (*models.UserBooking, error)
	DeleteUserBookingsByEvent(ctx context.Context, eventID string) error

	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	CreateSyncTask(ctx context.Context, task *models.SyncTask) error
	GetPendingSyncTasks(ctx context.Context, limit int) ([]models.SyncTask, error)
	UpdateSyncTaskStatus(ctx context.Context, id int64, status, errMsg string, nextRetryAt *time.Time) error
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// LinkWorker schedules follow-up writes that must not block or fail the
// primary operation.
type LinkWorker interface {
	EnqueueLink(ctx context.Context, eventID, userID, notes string) error
	EnqueueUnlink(ctx context.Context, eventID string) error
}

// Notifier receives the transient success/failure messages the stores emit
// after every mutating action.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// SessionRepository keeps authenticated sessions and per-user rate limits.
type SessionRepository interface {
	GetSession(ctx context.Context, token string) (*models.Session, error)
	SetSession(ctx context.Context, session *models.Session) error
	ClearSession(ctx context.Context, token string) error
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type ChefService interface {
	List(ctx context.Context) ([]*models.Chef, error)
	Create(ctx context.Context, data models.CreateChefData) (*models.Chef, error)
	Update(ctx context.Context, id string, patch models.ChefPatch) (*models.Chef, error)
	UpdateStatus(ctx context.Context, id string, status models.ChefStatus) (*models.Chef, error)
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	SubmitBooking(ctx context.Context, data models.CreateEventData, userID, notes string) (*models.Event, error)
	Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	UpdateStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type UserBookingService interface {
	ListForUser(ctx context.Context, userID string) ([]*models.UserBooking, error)
	Link(ctx context.Context, userID, eventID, notes string) (*models.UserBooking, error)
	Unlink(ctx context.Context, eventID string) error
	UpdateReview(ctx context.Context, userID, bookingID string, rating int, review string) (*models.UserBooking, error)
}

type ProfileService interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, id string, patch models.ProfilePatch) (*models.Profile, error)
}
