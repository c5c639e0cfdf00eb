package config

import (
	"errors"
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	GinMode       string
	Port          string
}

// ErrMissingSessionSecret is returned when SESSION_SECRET is not set.
// Without it no session token can be signed or verified, so startup must abort.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is not defined")

func Load() (*Config, error) {
	cfg := &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "taskuser"),
		DBPassword:    getEnv("DB_PASSWORD", "taskpassword"),
		DBName:        getEnv("DB_NAME", "taskmanager"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
	}

	if cfg.SessionSecret == "" {
		return nil, ErrMissingSessionSecret
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in release mode.
// Session cookies are only marked Secure in production.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
