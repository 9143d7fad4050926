package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey doubles as the admin password and the token signing key,
	// matching what deployed terminals and admin tooling expect.
	SecretKey     string `env:"SECRET_KEY"`
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`

	// HardwareAPIKey is the shared key the check-in terminals present.
	HardwareAPIKey string `env:"HARDWARE_API_KEY"`

	TokenTTL     time.Duration `env:"TOKEN_TTL,      default=15m"`
	ReplayWindow time.Duration `env:"REPLAY_WINDOW,  default=30s"`

	CheckinWorkers int `env:"CHECKIN_WORKERS, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=attendance_system"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate rejects a configuration the auth gates cannot run with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("config: SECRET_KEY is required")
	}
	if c.HardwareAPIKey == "" {
		return fmt.Errorf("config: HARDWARE_API_KEY is required")
	}
	return nil
}
