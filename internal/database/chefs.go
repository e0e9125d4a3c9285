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

const chefColumns = `id, name, email, phone, specialty, experience, rating,
                 location, bio, price_range, status, image_url, created_at, updated_at`

func scanChef(row interface{ Scan(...any) error }) (*models.Chef, error) {
	var c models.Chef
	var phone, location, bio, priceRange, imageURL sql.NullString
	var rawStatus string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &phone, &c.Specialty, &c.Experience, &c.Rating,
		&location, &bio, &priceRange, &rawStatus, &imageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Phone = phone.String
	c.Location = location.String
	c.Bio = bio.String
	c.PriceRange = priceRange.String
	c.ImageURL = imageURL.String

	// Status crosses a trust boundary here; parse, never cast.
	c.Status, err = models.ParseChefStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("chef %s: %w", c.ID, err)
	}
	return &c, nil
}

// GetAllChefs returns every chef, newest first.
func (db *DB) GetAllChefs(ctx context.Context) ([]*models.Chef, error) {
	query := `SELECT ` + chefColumns + ` FROM chefs ORDER BY created_at DESC, id DESC`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get chefs: %w", err)
	}
	defer rows.Close()

	var chefs []*models.Chef
	for rows.Next() {
		c, err := scanChef(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chef: %w", err)
		}
		chefs = append(chefs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return chefs, nil
}

func (db *DB) GetChef(ctx context.Context, id string) (*models.Chef, error) {
	query := `SELECT ` + chefColumns + ` FROM chefs WHERE id = ?`
	c, err := scanChef(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chef: %w", err)
	}
	return c, nil
}

// CreateChef inserts a new chef, assigning id, timestamps and the
// server-owned zero rating.
func (db *DB) CreateChef(ctx context.Context, data models.CreateChefData) (*models.Chef, error) {
	query := `INSERT INTO chefs (
				id, name, email, phone, specialty, experience, rating,
				location, bio, price_range, status, image_url, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	id := uuid.NewString()
	_, err := db.ExecContext(ctx, query,
		id,
		data.Name,
		data.Email,
		data.Phone,
		data.Specialty,
		data.Experience,
		0,
		data.Location,
		data.Bio,
		data.PriceRange,
		string(data.Status),
		data.ImageURL,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chef: %w", err)
	}

	return &models.Chef{
		ID:         id,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Specialty:  data.Specialty,
		Experience: data.Experience,
		Rating:     0,
		Location:   data.Location,
		Bio:        data.Bio,
		PriceRange: data.PriceRange,
		Status:     data.Status,
		ImageURL:   data.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// UpdateChef writes the full chef row and stamps updated_at. Partial merge
// happens in the service layer before calling this.
func (db *DB) UpdateChef(ctx context.Context, chef *models.Chef) error {
	query := `UPDATE chefs SET name = ?, email = ?, phone = ?, specialty = ?, experience = ?,
				location = ?, bio = ?, price_range = ?, status = ?, image_url = ?, updated_at = ?
			WHERE id = ?`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		chef.Name,
		chef.Email,
		chef.Phone,
		chef.Specialty,
		chef.Experience,
		chef.Location,
		chef.Bio,
		chef.PriceRange,
		string(chef.Status),
		chef.ImageURL,
		now,
		chef.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chef: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	chef.UpdatedAt = now
	return nil
}

func (db *DB) DeleteChef(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM chefs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chef: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
