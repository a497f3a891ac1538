// Package config loads the terminal client's settings from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	APIURL      string        `env:"LIFEASSIST_API_URL,      default=http://localhost:8080/api/"`
	HTTPTimeout time.Duration `env:"LIFEASSIST_HTTP_TIMEOUT, default=0s"`
	Env         string        `env:"ENV,                     default=development"`
	LogLevel    string        `env:"LOG_LEVEL,               default=warn"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Backend string `env:"LIFEASSIST_SESSION_BACKEND, default=file"`
	// Path defaults to the user config directory when empty.
	Path    string `env:"LIFEASSIST_SESSION_PATH"`
	Profile string `env:"LIFEASSIST_SESSION_PROFILE, default=default"`
	// Secret, when set, seals the stored password.
	Secret  string `env:"LIFEASSIST_SESSION_SECRET"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether ENV selects production output.
func (c *Config) Production() bool { return c.Env == "production" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l and checks the backend choice.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	switch cfg.Session.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
