package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Pin the variables to empty so ambient values in the test environment
	// cannot leak into the defaults.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("MIGRATIONS_PATH", "")

	cfg := Load()

	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://other:other@db:5432/other_db")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_HOST", "")

	cfg := Load()

	assert.Equal(t, "postgresql://other:other@db:5432/other_db", cfg.DatabaseURL)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.AppHost)
}
