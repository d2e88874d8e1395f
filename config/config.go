package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client reads from the environment.
type Config struct {
	APIURL        string
	PollInterval  time.Duration
	RedirectDelay time.Duration
	LogFile       string
	SessionFile   string
}

// Load reads an optional .env file, then the environment, falling back to
// defaults. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:        getenv("MEDSCAN_API_URL", "http://localhost:8000/api"),
		PollInterval:  getDuration("MEDSCAN_POLL_INTERVAL", 3*time.Second),
		RedirectDelay: getDuration("MEDSCAN_REDIRECT_DELAY", 2*time.Second),
		LogFile:       getenv("MEDSCAN_LOG_FILE", defaultPath("medscan.log")),
		SessionFile:   getenv("MEDSCAN_SESSION_FILE", defaultPath("session.json")),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".config", "medscan", name)
}
