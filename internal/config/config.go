package config

import (
	"crypto/rand"
	"os"
	"strconv"
	"time"
)

// Config holds all server configuration.
// Values are loaded from environment variables with defaults.
type Config struct {
	// Server
	Port      int
	DBPath    string
	LogLevel  string
	LogFormat string

	// Advisor (Gemini generateContent API)
	AdvisorURL     string
	AdvisorAPIKey  string
	AdvisorModel   string
	AdvisorTimeout time.Duration

	// PIN session. Without JWT_SECRET a random secret is generated per
	// process and sessions end on restart.
	JWTSecret          string
	JWTSecretGenerated bool
	SessionTTL         time.Duration

	// Observability
	OTLPEndpoint string

	// Reminder e-mail; SMTPAddr empty means log-only reminders
	SMTPAddr     string
	SMTPUser     string
	SMTPPassword string
	ReminderFrom string
	ReminderTo   string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	cfg := &Config{
		Port:      getEnvInt("PORT", 8080),
		DBPath:    getEnv("DB_PATH", "./data/fintrack.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		AdvisorURL:     getEnv("ADVISOR_URL", "https://generativelanguage.googleapis.com"),
		AdvisorAPIKey:  getEnv("ADVISOR_API_KEY", ""),
		AdvisorModel:   getEnv("ADVISOR_MODEL", "gemini-3-flash-preview"),
		AdvisorTimeout: getEnvDuration("ADVISOR_TIMEOUT", 30*time.Second),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		SessionTTL: getEnvDuration("SESSION_TTL", 12*time.Hour),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),

		SMTPAddr:     getEnv("SMTP_ADDR", ""),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		ReminderFrom: getEnv("REMINDER_FROM", ""),
		ReminderTo:   getEnv("REMINDER_TO", ""),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = rand.Text() + rand.Text()
		cfg.JWTSecretGenerated = true
	}
	return cfg
}

// EmailEnabled reports whether reminders should also be mailed.
func (c *Config) EmailEnabled() bool {
	return c.SMTPAddr != "" && c.ReminderTo != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
