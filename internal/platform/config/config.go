package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort        = errors.New("config: invalid PORT number")
	errInvalidLintAPIURL  = errors.New("config: LINT_API_URL must be an absolute http(s) URL")
	errInvalidLintTimeout = errors.New("config: LINT_TIMEOUT must be positive")
	errInvalidLayout      = errors.New("config: REPORT_LAYOUT must be \"sectioned\" or \"flat\"")
	errCapacityOutOfRange = errors.New("config: SESSION_CAPACITY must be 1-100000")
	errInvalidSessionTTL  = errors.New("config: SESSION_TTL must be positive")
)

// Layout names accepted by REPORT_LAYOUT.
const (
	LayoutSectioned = "sectioned"
	LayoutFlat      = "flat"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port            string
	LogLevel        string
	LintAPIURL      string
	LintTimeout     time.Duration
	ReportLayout    string
	SessionCapacity int
	SessionTTL      time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "ERROR"),
		LintAPIURL:      getEnv("LINT_API_URL", "http://localhost:8000"),
		LintTimeout:     getEnvAsDuration("LINT_TIMEOUT", 60*time.Second),
		ReportLayout:    getEnv("REPORT_LAYOUT", LayoutSectioned),
		SessionCapacity: getEnvAsInt("SESSION_CAPACITY", 1000),
		SessionTTL:      getEnvAsDuration("SESSION_TTL", time.Hour),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	u, err := url.Parse(c.LintAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidLintAPIURL, c.LintAPIURL)
	}

	if c.LintTimeout <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidLintTimeout, c.LintTimeout)
	}

	if c.ReportLayout != LayoutSectioned && c.ReportLayout != LayoutFlat {
		return fmt.Errorf("%w: got %q", errInvalidLayout, c.ReportLayout)
	}

	if c.SessionCapacity < 1 || c.SessionCapacity > 100000 {
		return fmt.Errorf("%w: got %d", errCapacityOutOfRange, c.SessionCapacity)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidSessionTTL, c.SessionTTL)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return v
}
