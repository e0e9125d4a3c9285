package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chefbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.Nop()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestChef(t *testing.T, db *DB, name string) *models.Chef {
	t.Helper()
	chef, err := db.CreateChef(context.Background(), models.CreateChefData{
		Name:       name,
		Email:      name + "@example.com",
		Specialty:  "Italian Cuisine",
		Experience: 5,
		Status:     models.ChefActive,
	})
	require.NoError(t, err)
	return chef
}

func createTestEvent(t *testing.T, db *DB, chefID string) *models.Event {
	t.Helper()
	event, err := db.CreateEvent(context.Background(), models.CreateEventData{
		Title:       "Private dinner",
		Type:        "dinner",
		Date:        "2026-10-01",
		Time:        "19:00",
		Location:    "Brooklyn, NY",
		Guests:      8,
		ChefID:      chefID,
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		Price:       450,
	})
	require.NoError(t, err)
	return event
}

func TestNewDB_DirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()

	dbPath := filepath.Join(tempDir, "nested", "dir", "test.db")
	logger := zerolog.Nop()

	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, dbPath)
}

func TestNewDB_Reopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "db_test_reopen")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	logger := zerolog.Nop()

	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	createTestChef(t, db, "Chef Mario")
	require.NoError(t, db.Close())

	// Reopening must not fail on existing tables.
	db, err = NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	chefs, err := db.GetAllChefs(context.Background())
	require.NoError(t, err)
	assert.Len(t, chefs, 1)
}

func TestDB_Ping(t *testing.T) {
	db := setupTestDB(t)

	err := db.PingContext(context.Background())
	assert.NoError(t, err)
}
