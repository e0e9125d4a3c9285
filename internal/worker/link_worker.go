package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chefbook/internal/database"
	"chefbook/internal/domain"
	"chefbook/internal/metrics"
	"chefbook/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	TaskLink   = "link"
	TaskUnlink = "unlink"
)

// linkTaskPayload is persisted in SyncTask.Payload as JSON.
type linkTaskPayload struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// LinkWorker consumes sync_queue tasks and maintains the user_bookings link
// table. A link failure never surfaces to the booking flow; the task retries
// with backoff and lands in the dead letter list when retries run out.
type LinkWorker struct {
	db            *database.DB
	redis         *redis.Client
	bookings      domain.UserBookingService
	retryPolicy   RetryPolicy
	queue         chan models.SyncTask
	redisQueueKey string
	deadLetterKey string
	pollInterval  time.Duration
	batchSize     int
	logger        *zerolog.Logger
}

// NewLinkWorker builds a worker with sane defaults. The bookings service owns
// the user_bookings writes; the worker only schedules and retries them.
func NewLinkWorker(db *database.DB, redisClient *redis.Client, bookings domain.UserBookingService, retry RetryPolicy, logger *zerolog.Logger) *LinkWorker {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = defaultMaxRetries
	}
	if retry.InitialDelay == 0 {
		retry.InitialDelay = defaultInitialDelay
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = defaultMaxDelay
	}
	if retry.BackoffFactor == 0 {
		retry.BackoffFactor = defaultBackoffFactor
	}

	return &LinkWorker{
		db:            db,
		redis:         redisClient,
		bookings:      bookings,
		retryPolicy:   retry,
		queue:         make(chan models.SyncTask, 128),
		redisQueueKey: "linker:queue",
		deadLetterKey: "linker:deadletter",
		pollInterval:  2 * time.Second,
		batchSize:     20,
		logger:        logger,
	}
}

// EnqueueLink schedules the user-booking row for a submitted event.
func (w *LinkWorker) EnqueueLink(ctx context.Context, eventID, userID, notes string) error {
	if eventID == "" || userID == "" {
		return errors.New("event id and user id are required")
	}
	return w.enqueue(ctx, TaskLink, linkTaskPayload{EventID: eventID, UserID: userID, Notes: notes})
}

// EnqueueUnlink schedules cleanup of user bookings after an event is removed.
func (w *LinkWorker) EnqueueUnlink(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("event id is required")
	}
	return w.enqueue(ctx, TaskUnlink, linkTaskPayload{EventID: eventID})
}

func (w *LinkWorker) enqueue(ctx context.Context, taskType string, payload linkTaskPayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	syncTask := models.SyncTask{
		TaskType:  taskType,
		EventID:   payload.EventID,
		Payload:   string(payloadBytes),
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	if err := w.db.CreateSyncTask(ctx, &syncTask); err != nil {
		return fmt.Errorf("persist sync task: %w", err)
	}

	// Try redis first for durability.
	if w.redis != nil {
		if err := w.pushRedis(ctx, syncTask); err != nil {
			w.logger.Warn().Err(err).Msg("link_worker: redis push failed, fallback to memory queue")
		} else {
			return nil
		}
	}

	// Fallback to in-memory queue if redis missing or failed.
	select {
	case w.queue <- syncTask:
	default:
		w.logger.Warn().Int64("task_id", syncTask.ID).Msg("link_worker: in-memory queue full, task dropped to polling")
	}

	return nil
}

// Start launches main loop; stops when ctx is done.
func (w *LinkWorker) Start(ctx context.Context) {
	w.logger.Info().Msg("link_worker: started")
	defer w.logger.Info().Msg("link_worker: stopped")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if t, ok := w.tryLocalQueue(); ok {
			w.processTask(ctx, &t)
			continue
		}

		if t, ok := w.tryRedis(ctx); ok {
			w.processTask(ctx, &t)
			continue
		}

		tasks, err := w.db.GetPendingSyncTasks(ctx, w.batchSize)
		if err != nil {
			w.logger.Error().Err(err).Msg("link_worker: fetch pending")
			time.Sleep(w.pollInterval)
			continue
		}
		if len(tasks) == 0 {
			time.Sleep(w.pollInterval)
			continue
		}

		for i := range tasks {
			w.processTask(ctx, &tasks[i])
		}
	}
}

func (w *LinkWorker) tryLocalQueue() (models.SyncTask, bool) {
	select {
	case t := <-w.queue:
		return t, true
	default:
		return models.SyncTask{}, false
	}
}

func (w *LinkWorker) tryRedis(ctx context.Context) (models.SyncTask, bool) {
	if w.redis == nil {
		return models.SyncTask{}, false
	}
	res, err := w.redis.BRPop(ctx, time.Second, w.redisQueueKey).Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.Nil) {
			return models.SyncTask{}, false
		}
		w.logger.Error().Err(err).Msg("link_worker: redis BRPOP error")
		return models.SyncTask{}, false
	}
	if len(res) != 2 {
		return models.SyncTask{}, false
	}
	var task models.SyncTask
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		w.logger.Error().Err(err).Msg("link_worker: decode redis task")
		return models.SyncTask{}, false
	}
	return task, true
}

func (w *LinkWorker) processTask(ctx context.Context, task *models.SyncTask) {
	payload, err := w.decodePayload(task.Payload)
	if err != nil {
		w.failTask(ctx, task, fmt.Errorf("decode payload: %w", err))
		return
	}

	if err := w.handleLinkTask(ctx, task.TaskType, payload); err != nil {
		w.retryOrFail(ctx, task, err)
		return
	}

	if err := w.db.UpdateSyncTaskStatus(ctx, task.ID, "completed", "", nil); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: mark completed")
	}
}

func (w *LinkWorker) handleLinkTask(ctx context.Context, taskType string, payload linkTaskPayload) error {
	switch taskType {
	case TaskLink:
		if payload.EventID == "" || payload.UserID == "" {
			return errors.New("event id or user id missing")
		}
		// Событие могло быть удалено, пока задача ждала в очереди;
		// Link вернет ErrNotFound и задача уйдет в retry
		_, err := w.bookings.Link(ctx, payload.UserID, payload.EventID, payload.Notes)
		return err
	case TaskUnlink:
		if payload.EventID == "" {
			return errors.New("event id missing")
		}
		return w.bookings.Unlink(ctx, payload.EventID)
	default:
		return fmt.Errorf("unknown task type: %s", taskType)
	}
}

func (w *LinkWorker) retryOrFail(ctx context.Context, task *models.SyncTask, cause error) {
	attempt := task.RetryCount + 1
	if attempt >= w.retryPolicy.MaxRetries {
		if err := w.db.UpdateSyncTaskStatus(ctx, task.ID, "failed", cause.Error(), nil); err != nil {
			w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: mark failed")
		}
		w.pushDeadLetter(ctx, task)
		return
	}

	metrics.IncLinkTaskRetry()
	nextDelay := w.retryPolicy.NextDelay(attempt)
	nextTime := time.Now().Add(nextDelay)
	if err := w.db.UpdateSyncTaskStatus(ctx, task.ID, "retry", cause.Error(), &nextTime); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: mark retry")
	}
}

func (w *LinkWorker) failTask(ctx context.Context, task *models.SyncTask, cause error) {
	if err := w.db.UpdateSyncTaskStatus(ctx, task.ID, "failed", cause.Error(), nil); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: mark failed")
	}
	w.pushDeadLetter(ctx, task)
}

func (w *LinkWorker) decodePayload(raw string) (linkTaskPayload, error) {
	var payload linkTaskPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func (w *LinkWorker) pushRedis(ctx context.Context, task models.SyncTask) error {
	if w.redis == nil {
		return errors.New("redis client is nil")
	}
	data, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return w.redis.LPush(ctx, w.redisQueueKey, data).Err()
}

func (w *LinkWorker) pushDeadLetter(ctx context.Context, task *models.SyncTask) {
	if w.redis == nil {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: encode deadletter")
		return
	}
	if err := w.redis.LPush(ctx, w.deadLetterKey, data).Err(); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("link_worker: deadletter push")
	}
}
