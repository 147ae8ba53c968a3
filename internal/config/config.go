// Package config loads the service configuration from the environment.
//
// Variables are read with koanf (optionally seeded from a `.env` file),
// mapped onto Config and validated before anything else starts, so that a
// bad deployment fails at boot rather than on the first request.
//
//	APP_ENV, PORT, LOOKUP_BACKEND  -> top level
//	PG_*                           -> Config.Database
//	HTTP_*                         -> Config.Server
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"infinite-experiment/airport-lookup/internal/constants"
)

type Config struct {
	AppEnv   string         `koanf:"app_env" validate:"required,oneof=development production test"`
	Port     int            `koanf:"port" validate:"required,min=1,max=65535"`
	Backend  string         `koanf:"lookup_backend" validate:"required,oneof=sqlx gorm"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`

	// RateLimit is requests per second per client IP. 0, the default,
	// disables limiting and with it the 429 response.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`

	// CORSOrigins is a comma separated list. Defaults to the local
	// development origin only.
	CORSOrigins string `koanf:"cors_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	DB              string        `koanf:"db" validate:"required"`
	SSLMode         string        `koanf:"sslmode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnectRetries  int           `koanf:"connect_retries" validate:"gte=1"`
}

// Default returns the configuration used for any variable left unset.
func Default() *Config {
	return &Config{
		AppEnv:  "development",
		Port:    3000,
		Backend: string(constants.LookupBackendSQLX),
		Server: ServerConfig{
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			RateLimit:       0,
			RateBurst:       40,
			CORSOrigins:     "http://localhost:8081",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnectRetries:  10,
		},
	}
}

// Load reads the environment on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable onto its koanf path. Variables the
// service does not own map to "" and are skipped by the provider.
func envKey(s string) string {
	key := strings.ToLower(s)

	switch {
	case key == "app_env", key == "port", key == "lookup_backend":
		return key
	case strings.HasPrefix(key, "pg_"):
		return "database." + strings.TrimPrefix(key, "pg_")
	case strings.HasPrefix(key, "http_"):
		return "server." + strings.TrimPrefix(key, "http_")
	}

	return ""
}

// DSN builds the Postgres connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.DB,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// AllowedOrigins splits CORSOrigins, dropping blanks.
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(s.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
