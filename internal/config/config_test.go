package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_DRIVER", "DATABASE_URL", "MIGRATIONS_PATH", "LOG_FORMAT", "LOG_LEVEL", "SWISS_DEFAULT_ROUNDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "./migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 5, cfg.SwissDefaultRounds)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/brackets?sslmode=disable")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SWISS_DEFAULT_ROUNDS", "7")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/brackets?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 7, cfg.SwissDefaultRounds)
}

func TestLoadIgnoresBadSwissRounds(t *testing.T) {
	t.Setenv("SWISS_DEFAULT_ROUNDS", "-1")
	assert.Equal(t, 5, Load().SwissDefaultRounds)

	t.Setenv("SWISS_DEFAULT_ROUNDS", "lots")
	assert.Equal(t, 5, Load().SwissDefaultRounds)
}
