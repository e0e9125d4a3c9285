package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeConfig(t, `
app:
  name: chefbook
  environment: test
database:
  path: /tmp/chefbook.db
auth:
  jwt_secret: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chefbook", cfg.App.Name)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 60, cfg.Auth.AccessTTLMin)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.NotEmpty(t, cfg.Specialties)
}

func TestLoadMissingDatabasePath(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: test-secret
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path")
}

func TestLoadMissingJWTSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/chefbook.db
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("CHEFBOOK_TEST_SECRET", "expanded-secret")

	path := writeConfig(t, `
database:
  path: /tmp/chefbook.db
auth:
  jwt_secret: ${CHEFBOOK_TEST_SECRET}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Auth.JWTSecret)
}

func TestValidateSpecialties(t *testing.T) {
	assert.NoError(t, ValidateSpecialties([]string{"Italian Cuisine", "French Cuisine"}))
	assert.Error(t, ValidateSpecialties([]string{"Italian Cuisine", "Italian Cuisine"}))
	assert.Error(t, ValidateSpecialties([]string{""}))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
