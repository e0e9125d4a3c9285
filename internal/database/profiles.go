package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"chefbook/internal/models"

	"github.com/google/uuid"
)

const profileColumns = `id, first_name, last_name, email, phone, role, password_hash, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	var lastName, phone sql.NullString
	var rawRole string
	err := row.Scan(&p.ID, &p.FirstName, &lastName, &p.Email, &phone, &rawRole, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.LastName = lastName.String
	p.Phone = phone.String

	p.Role, err = models.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.ID, err)
	}
	return &p, nil
}

func (db *DB) CreateProfile(ctx context.Context, profile *models.Profile) error {
	query := `INSERT INTO profiles (id, first_name, last_name, email, phone, role, password_hash, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, query,
		profile.ID,
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.Phone,
		string(profile.Role),
		profile.PasswordHash,
		now,
		now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return nil
}

func (db *DB) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	p, err := scanProfile(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = ?`
	p, err := scanProfile(db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

// UpdateProfile writes the self-service fields only. Role and email are not
// touched here.
func (db *DB) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	query := `UPDATE profiles SET first_name = ?, last_name = ?, phone = ?, updated_at = ? WHERE id = ?`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		now,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	profile.UpdatedAt = now
	return nil
}
