package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is the prefix for every environment variable read by LoadConfig.
// Example: AIRJUSTICE_SERVER_PORT, AIRJUSTICE_DB_DRIVER. The unprefixed names
// (SERVER_PORT, DB_DRIVER, ...) are honoured as a fallback.
const EnvPrefix = "AIRJUSTICE"

// Complaint store drivers
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerHost    string   `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort    string   `envconfig:"SERVER_PORT" default:"8000"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS" default:"*"`
	PublicBaseURL string   `envconfig:"PUBLIC_BASE_URL" default:"https://airjustice.tech"` // tracking links

	// Complaint store. "memory" keeps the ledger in-process (lost on restart).
	DBDriver   string `envconfig:"DB_DRIVER" default:"memory"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"airjustice"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/airjustice.db"`

	// Authority / admin access
	JWTSecret     string `envconfig:"JWT_SECRET" default:"airjustice-dev-secret-change-in-production"`
	AdminToken    string `envconfig:"ADMIN_TOKEN"` // empty = admin routes disabled
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`

	// Ledger events. No brokers = log-only publisher.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"airjustice.complaints"`

	// Status refresh worker (robfig/cron spec)
	StatusWorkerEnabled  bool   `envconfig:"STATUS_WORKER_ENABLED" default:"true"`
	StatusWorkerSchedule string `envconfig:"STATUS_WORKER_SCHEDULE" default:"@every 10m"`

	Timezone   string `envconfig:"TIMEZONE" default:"Local"`
	RandomSeed int64  `envconfig:"RANDOM_SEED" default:"0"` // 0 = seed from wall clock
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads configuration from .env (if present) and environment variables.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the store driver, timezone and token TTL.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMemory, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}
	return nil
}

// Location resolves the configured timezone. Hour-of-day curves are evaluated in this zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// MySQLDSN builds the go-sql-driver DSN (UTC for consistent timestamps)
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}
