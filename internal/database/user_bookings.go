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

const userBookingColumns = `id, user_id, event_id, notes, rating, review, created_at, updated_at`

func scanUserBooking(row interface{ Scan(...any) error }) (*models.UserBooking, error) {
	var b models.UserBooking
	var notes sql.NullString
	var rating sql.NullInt64
	var review sql.NullString
	err := row.Scan(&b.ID, &b.UserID, &b.EventID, &notes, &rating, &review, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Notes = notes.String
	if rating.Valid {
		v := int(rating.Int64)
		b.Rating = &v
	}
	if review.Valid {
		v := review.String
		b.Review = &v
	}
	return &b, nil
}

// CreateUserBooking links a user to an event.
func (db *DB) CreateUserBooking(ctx context.Context, userID, eventID, notes string) (*models.UserBooking, error) {
	query := `INSERT INTO user_bookings (id, user_id, event_id, notes, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now()
	id := uuid.NewString()
	_, err := db.ExecContext(ctx, query, id, userID, eventID, notes, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create user booking: %w", err)
	}

	return &models.UserBooking{
		ID:        id,
		UserID:    userID,
		EventID:   eventID,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetUserBookings returns the user's bookings, newest first.
func (db *DB) GetUserBookings(ctx context.Context, userID string) ([]*models.UserBooking, error) {
	query := `SELECT ` + userBookingColumns + ` FROM user_bookings
              WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.UserBooking
	for rows.Next() {
		b, err := scanUserBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (db *DB) GetUserBooking(ctx context.Context, id string) (*models.UserBooking, error) {
	query := `SELECT ` + userBookingColumns + ` FROM user_bookings WHERE id = ?`
	b, err := scanUserBooking(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user booking: %w", err)
	}
	return b, nil
}

// UpdateUserBookingReview stores the post-event rating and review text.
func (db *DB) UpdateUserBookingReview(ctx context.Context, id string, rating int, review string) (*models.UserBooking, error) {
	query := `UPDATE user_bookings SET rating = ?, review = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, rating, review, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking review: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, ErrNotFound
	}
	return db.GetUserBooking(ctx, id)
}

// DeleteUserBookingsByEvent removes all links pointing at an event.
func (db *DB) DeleteUserBookingsByEvent(ctx context.Context, eventID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM user_bookings WHERE event_id = ?`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete user bookings for event: %w", err)
	}
	return nil
}
