package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `env:"BOT_TOKEN,notEmpty"`
	PollTimeout time.Duration `env:"POLL_TIMEOUT" envDefault:"10s"`

	// CalendarYear is applied to every "day.month." date; 0 means the current year
	CalendarYear int    `env:"CALENDAR_YEAR"`
	Timezone     string `env:"TIMEZONE" envDefault:"Europe/Helsinki"`

	LogLevel      string         `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsURL string         `env:"MIGRATIONS_URL" envDefault:"file://migrations"`
	Database      DatabaseConfig `envPrefix:"DB_"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"calendar"`
	User     string `env:"USER" envDefault:"calendar"`
	Password string `env:"PASSWORD,notEmpty"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	if cfg.CalendarYear < 0 || cfg.CalendarYear > 9999 {
		return nil, fmt.Errorf("invalid CALENDAR_YEAR %d", cfg.CalendarYear)
	}

	return cfg, nil
}

// Location returns the time zone used to decide what "today" is
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN returns the lib/pq connection URL; credentials are escaped
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
