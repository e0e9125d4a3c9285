package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chefbook/internal/models"

	"github.com/google/uuid"
)

const eventColumns = `e.id, e.title, e.type, e.date, e.time, e.location, e.guests,
                 e.chef_id, e.client_name, e.client_email, e.client_phone, e.status,
                 e.price, e.description, e.created_at, e.updated_at,
                 c.name, c.specialty`

// eventJoin resolves the weak chef reference. A missing chef leaves the
// joined columns NULL instead of dropping the event.
const eventJoin = ` FROM events e LEFT JOIN chefs c ON c.id = e.chef_id`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	var eventTime, location, chefID, clientPhone, description sql.NullString
	var chefName, chefSpecialty sql.NullString
	var rawStatus string
	err := row.Scan(
		&e.ID, &e.Title, &e.Type, &e.Date, &eventTime, &location, &e.Guests,
		&chefID, &e.ClientName, &e.ClientEmail, &clientPhone, &rawStatus,
		&e.Price, &description, &e.CreatedAt, &e.UpdatedAt,
		&chefName, &chefSpecialty,
	)
	if err != nil {
		return nil, err
	}

	e.Time = eventTime.String
	e.Location = location.String
	e.ChefID = chefID.String
	e.ClientPhone = clientPhone.String
	e.Description = description.String

	e.Status, err = models.ParseEventStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.ID, err)
	}

	if chefName.Valid {
		e.Chef = &models.EventChef{Name: chefName.String, Specialty: chefSpecialty.String}
	}
	return &e, nil
}

// GetAllEvents returns every event with chef info joined, newest first.
func (db *DB) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + eventJoin + ` ORDER BY e.created_at DESC, e.id DESC`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (db *DB) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + eventJoin + ` WHERE e.id = ?`
	e, err := scanEvent(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts a booking submission. Status always starts pending.
func (db *DB) CreateEvent(ctx context.Context, data models.CreateEventData) (*models.Event, error) {
	query := `INSERT INTO events (
				id, title, type, date, time, location, guests, chef_id,
				client_name, client_email, client_phone, status, price, description,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	id := uuid.NewString()

	var chefID any
	if data.ChefID != "" {
		chefID = data.ChefID
	}

	_, err := db.ExecContext(ctx, query,
		id,
		data.Title,
		data.Type,
		data.Date,
		data.Time,
		data.Location,
		data.Guests,
		chefID,
		data.ClientName,
		data.ClientEmail,
		data.ClientPhone,
		string(models.EventPending),
		data.Price,
		data.Description,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Re-read to resolve the chef join for the returned entity.
	return db.GetEvent(ctx, id)
}

// UpdateEventStatus applies a transition inside a transaction so the
// reachability check and the write observe the same row.
func (db *DB) UpdateEventStatus(ctx context.Context, id string, status models.EventStatus) (*models.Event, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var rawStatus string
	err = tx.QueryRowContext(ctx, `SELECT status FROM events WHERE id = ?`, id).Scan(&rawStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event status: %w", err)
	}

	current, err := models.ParseEventStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, err)
	}
	if !current.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return db.GetEvent(ctx, id)
}

// UpdateEvent writes the mutable event fields and stamps updated_at.
func (db *DB) UpdateEvent(ctx context.Context, event *models.Event) error {
	query := `UPDATE events SET title = ?, type = ?, date = ?, time = ?, location = ?,
				guests = ?, chef_id = ?, client_name = ?, client_email = ?, client_phone = ?,
				price = ?, description = ?, updated_at = ?
			WHERE id = ?`
	now := time.Now()

	var chefID any
	if event.ChefID != "" {
		chefID = event.ChefID
	}

	result, err := db.ExecContext(ctx, query,
		event.Title,
		event.Type,
		event.Date,
		event.Time,
		event.Location,
		event.Guests,
		chefID,
		event.ClientName,
		event.ClientEmail,
		event.ClientPhone,
		event.Price,
		event.Description,
		now,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	event.UpdatedAt = now
	return nil
}

func (db *DB) DeleteEvent(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
