package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Contact is the static identity returned by GET /api/contact.
type Contact struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type Config struct {
	Port     string
	GRPCPort string // empty = grpc disabled
	GinMode  string

	DatabaseURL string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	DBMaxConns  int32

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel  string
	LogFormat string

	Contact Contact
}

// Load reads .env (if present) and then the environment. Unset or empty
// variables fall back to their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	c := &Config{
		Port:        env("PORT", "3000"),
		GRPCPort:    os.Getenv("GRPC_PORT"),
		GinMode:     env("GIN_MODE", "release"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      env("PGHOST", "postgres"),
		DBUser:      env("PGUSER", "postgres"),
		DBPassword:  env("PGPASSWORD", "postgrespw"),
		DBName:      env("PGDATABASE", "digital_card"),
		LogLevel:    env("LOG_LEVEL", "info"),
		LogFormat:   env("LOG_FORMAT", "text"),
		Contact: Contact{
			Name:  env("MY_NAME", "Your Name"),
			Title: env("MY_TITLE", "Trainer - Kubernetes (OpenShift)"),
			Email: env("MY_EMAIL", "you@example.com"),
			Bio:   env("MY_BIO", "I teach Kubernetes & OpenShift."),
		},
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q", c.GinMode)
	}

	var err error
	if c.DBPort, err = strconv.Atoi(env("PGPORT", "5432")); err != nil {
		return nil, fmt.Errorf("PGPORT: %w", err)
	}
	maxConns, err := strconv.ParseInt(env("PG_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("PG_MAX_CONNS: %w", err)
	}
	if maxConns < 1 {
		return nil, fmt.Errorf("PG_MAX_CONNS: must be positive, got %d", maxConns)
	}
	c.DBMaxConns = int32(maxConns)

	if c.RateLimitRPS, err = strconv.ParseFloat(env("RATE_LIMIT_RPS", "0"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if c.RateLimitBurst, err = strconv.Atoi(env("RATE_LIMIT_BURST", "10")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: must be positive when RATE_LIMIT_RPS is set, got %d", c.RateLimitBurst)
	}
	return c, nil
}

// DSN is the pgx connection string. DATABASE_URL wins over the PG* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
