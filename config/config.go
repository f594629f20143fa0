package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/logging"
)

// Defaults used when the matching environment variable is not set
const (
	DefaultMailFrom         = "notifications@vitalcheck.app"
	DefaultReminderSchedule = "0 6 * * *"
	DefaultReminderTimezone = "America/New_York"
	DefaultConflictWindow   = 30 * time.Minute
)

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	Env              string
	JWTSecret        string
	SendGridAPIKey   string
	MailFrom         string
	ReminderSchedule string
	ReminderTimezone string
	ConflictWindow   time.Duration
	InstanceID       string
}

// New sets up all config related services
func New() *Config {
	env := os.Getenv("ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	instanceID := os.Getenv("DYNO")
	if instanceID == "" {
		instanceID = "instance-" + uuid.NewString()
	}

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		Env:              env,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		MailFrom:         getenv("MAIL_FROM", DefaultMailFrom),
		ReminderSchedule: getenv("REMINDER_SCHEDULE", DefaultReminderSchedule),
		ReminderTimezone: getenv("REMINDER_TIMEZONE", DefaultReminderTimezone),
		ConflictWindow:   minutes(os.Getenv("CONFLICT_WINDOW_MINUTES"), DefaultConflictWindow),
		InstanceID:       instanceID,
	}
}

// Location returns the reminder time zone, falling back to UTC when it does not load
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReminderTimezone)
	if err != nil {
		zap.S().Warnw("unknown reminder timezone, using UTC", "timezone", c.ReminderTimezone, "error", err)
		return time.UTC
	}
	return loc
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"response": fmt.Sprintf("%s, %v", message, err),
	})
}

func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func minutes(raw string, fallback time.Duration) time.Duration {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Minute
}
