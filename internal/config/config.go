// Package config loads service configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/balanceforge/balance-api/internal/errors"
)

// Config holds the runtime configuration for the server
type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
}

// Load reads configuration from a .env file (when present) and the
// process environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	return cfg, nil
}
