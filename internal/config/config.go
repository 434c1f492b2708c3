package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/powerdrill/internal/logger"
)

type Config struct {
	Addr                   string
	DBPath                 string
	LogLevel               string
	LogFile                string
	FeedbackDelayMS        int
	DefaultDurationMinutes int
	Sound                  bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:                   envOr("ADDR", ":8080"),
		DBPath:                 envOr("DB_PATH", "file:powerdrill.db"),
		LogLevel:               strings.ToUpper(envOr("LOG_LEVEL", "INFO")),
		LogFile:                envOr("LOG_FILE", "powerdrill.log"),
		FeedbackDelayMS:        envIntOr("FEEDBACK_DELAY_MS", 500),
		DefaultDurationMinutes: envIntOr("DEFAULT_DURATION_MINUTES", 1),
		Sound:                  envBoolOr("SOUND", true),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.FeedbackDelayMS < 0 || c.FeedbackDelayMS > 5000 {
		errs = append(errs, fmt.Errorf("FEEDBACK_DELAY_MS must be between 0 and 5000 (got %d)", c.FeedbackDelayMS))
	}
	if c.DefaultDurationMinutes < 1 || c.DefaultDurationMinutes > 60 {
		errs = append(errs, fmt.Errorf("DEFAULT_DURATION_MINUTES must be between 1 and 60 (got %d)", c.DefaultDurationMinutes))
	}
	return errors.Join(errs...)
}

// FeedbackDelay is the pause between a correct answer and the next question.
func (c Config) FeedbackDelay() time.Duration {
	return time.Duration(c.FeedbackDelayMS) * time.Millisecond
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
