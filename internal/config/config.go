package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates the runtime settings of the application process.
// User-facing preferences live in Settings and are persisted in the
// store, not here.
type Config struct {
	DataDir       string
	DBPath        string
	DiagPath      string
	DiagRetention time.Duration
	Logger        LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the CLI can run with zero setup.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	dataDir := getString("SHADOW_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".shadowconsole")
	}

	cfg := &Config{
		DataDir:       dataDir,
		DBPath:        getString("SHADOW_DB_PATH", filepath.Join(dataDir, "shadow.db")),
		DiagPath:      getString("SHADOW_DIAG_PATH", filepath.Join(dataDir, "diag.db")),
		DiagRetention: getDuration("SHADOW_DIAG_RETENTION", 7*24*time.Hour),
		Logger: LoggerConfig{
			Level:    getString("SHADOW_LOG_LEVEL", "info"),
			Encoding: getString("SHADOW_LOG_ENCODING", "console"),
		},
	}
	return cfg, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
