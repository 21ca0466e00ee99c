package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL      = "postgres://localhost:5432/calpages?sslmode=disable"
	defaultListenAddr       = "127.0.0.1:3000"
	defaultMigrationsPath   = "migrations"
	defaultLocale           = "en"
	defaultUpgradeURL       = "https://cal.com/upgrade"
	defaultOnboardingCutoff = "2021-09-01T00:00:00Z"
	defaultShutdownTimeout  = 5 * time.Second

	minSessionSecretLen = 16
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
	ListenAddr     string
	// PublicAppURL is the base of every public booking link, without a
	// trailing slash.
	PublicAppURL  string
	SessionSecret string
	DefaultLocale string
	UpgradeURL    string
	LogLevel      slog.Level
	DiscordToken  string

	OnboardingIntroducedAt time.Time
	ShutdownTimeout        time.Duration
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getenvDefault("DATABASE_URL", defaultDatabaseURL),
		MigrationsPath: getenvDefault("MIGRATIONS_PATH", defaultMigrationsPath),
		ListenAddr:     getenvDefault("LISTEN_ADDR", defaultListenAddr),
		PublicAppURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_APP_URL")), "/"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DefaultLocale:  getenvDefault("DEFAULT_LOCALE", defaultLocale),
		UpgradeURL:     getenvDefault("UPGRADE_URL", defaultUpgradeURL),
		DiscordToken:   strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenvDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL invalid: %w", err)
	}

	cutoff := getenvDefault("ONBOARDING_INTRODUCED_AT", defaultOnboardingCutoff)
	t, err := time.Parse(time.RFC3339, cutoff)
	if err != nil {
		return nil, fmt.Errorf("config: ONBOARDING_INTRODUCED_AT must be RFC3339 (%q): %w", cutoff, err)
	}
	cfg.OnboardingIntroducedAt = t

	cfg.ShutdownTimeout = defaultShutdownTimeout
	if v := getenvDefault("SHUTDOWN_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: SHUTDOWN_TIMEOUT invalid (%q): %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether the Discord adapter should start.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// validate applies every rule on the loaded configuration.
func (c *Config) validate() error {
	if c.PublicAppURL == "" {
		return fmt.Errorf("config: PUBLIC_APP_URL is required")
	}
	if err := requireHTTPURL("PUBLIC_APP_URL", c.PublicAppURL); err != nil {
		return err
	}
	if err := requireHTTPURL("UPGRADE_URL", c.UpgradeURL); err != nil {
		return err
	}

	if len(c.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("config: SESSION_SECRET must be at least %d bytes", minSessionSecretLen)
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be > 0")
	}

	return nil
}

func requireHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", key, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: %s must be an absolute http(s) URL (%q)", key, raw)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
