package config

import (
	"log"
	"os"
	"strconv"

	"github.com/AdamBeresnev/bracket-forge/internal/bracket"
	"github.com/AdamBeresnev/bracket-forge/internal/logging"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	Database DatabaseConfig
	Log      logging.Config

	// Used when a start request does not say how many Swiss rounds to play
	SwissDefaultRounds int
}

type DatabaseConfig struct {
	Driver         string // "sqlite3" | "postgres"
	DSN            string
	MigrationsPath string
}

// Load reads configuration from the environment, after pulling in a .env file if one
// exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Addr: getenvDefault("ADDR", ":8080"),
		Database: DatabaseConfig{
			Driver:         getenvDefault("DB_DRIVER", "sqlite3"),
			DSN:            getenvDefault("DATABASE_URL", "brackets.db?_journal_mode=WAL"),
			MigrationsPath: getenvDefault("MIGRATIONS_PATH", "./migrations"),
		},
		Log: logging.Config{
			Format: getenvDefault("LOG_FORMAT", "text"),
			Level:  getenvDefault("LOG_LEVEL", "info"),
		},
		SwissDefaultRounds: getenvInt("SWISS_DEFAULT_ROUNDS", bracket.DefaultSwissRounds),
	}
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return parsed
}
