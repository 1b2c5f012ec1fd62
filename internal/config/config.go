package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Sensor   SensorConfig
	Session  SessionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds PostgreSQL connection configuration.
// When Enabled is false the service runs on the in-memory demo stores.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
	Enabled  bool
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// SensorConfig holds settings for the ThingSpeak sensor feed.
// An empty ChannelID disables the live feed and serves mock readings only.
type SensorConfig struct {
	BaseURL      string
	ChannelID    string
	ReadAPIKey   string
	PollInterval time.Duration
	Timeout      time.Duration
}

// SessionConfig holds the identity used when a request carries none.
type SessionConfig struct {
	DefaultUser string
}

// LiveFeedEnabled reports whether a ThingSpeak channel is configured.
func (s SensorConfig) LiveFeedEnabled() bool {
	return s.ChannelID != ""
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "agricure")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")
	v.SetDefault("SENSOR_BASE_URL", "https://api.thingspeak.com")
	v.SetDefault("SENSOR_POLL_INTERVAL", "2m")
	v.SetDefault("SENSOR_TIMEOUT", "5s")
	v.SetDefault("SESSION_DEFAULT_USER", "John Farmer")

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Enabled:  v.GetBool("DB_ENABLED"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		Sensor: SensorConfig{
			BaseURL:      strings.TrimRight(v.GetString("SENSOR_BASE_URL"), "/"),
			ChannelID:    v.GetString("SENSOR_CHANNEL_ID"),
			ReadAPIKey:   v.GetString("SENSOR_READ_API_KEY"),
			PollInterval: v.GetDuration("SENSOR_POLL_INTERVAL"),
			Timeout:      v.GetDuration("SENSOR_TIMEOUT"),
		},
		Session: SessionConfig{
			DefaultUser: strings.TrimSpace(v.GetString("SESSION_DEFAULT_USER")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
// Database settings are only checked when the database is enabled.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Enabled {
		if err := c.Database.validate(); err != nil {
			return err
		}
	}

	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	if c.Sensor.PollInterval < time.Second {
		return fmt.Errorf("SENSOR_POLL_INTERVAL must be at least 1s")
	}
	if c.Sensor.Timeout <= 0 {
		return fmt.Errorf("SENSOR_TIMEOUT must be positive")
	}
	if c.Sensor.LiveFeedEnabled() && c.Sensor.BaseURL == "" {
		return fmt.Errorf("SENSOR_BASE_URL is required when SENSOR_CHANNEL_ID is set")
	}

	if c.Session.DefaultUser == "" {
		return fmt.Errorf("SESSION_DEFAULT_USER is required")
	}

	return nil
}

func (d DatabaseConfig) validate() error {
	if d.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if d.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if d.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if d.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if d.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if d.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if d.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if d.PoolMin > d.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}
	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
