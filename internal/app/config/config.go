package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Session  Session    `mapstructure:",squash"`
	Upstream Upstream   `mapstructure:",squash"`
	Offers   Offers     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type Session struct {
	SigningKey string `mapstructure:"SESSION_SIGNING_KEY"`
}

// Upstream holds the travel API configuration. The service never owns
// storage; offers, itineraries, cities and pesquisas all live behind
// this API.
type Upstream struct {
	BaseURL      string        `mapstructure:"UPSTREAM_BASE_URL"`
	Timeout      time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	MaxRetries   int           `mapstructure:"UPSTREAM_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"UPSTREAM_RATE_LIMIT"`
}

type Offers struct {
	CacheExpiration   time.Duration `mapstructure:"OFFER_CACHE_EXPIRATION"`
	LockTimeout       time.Duration `mapstructure:"OFFER_LOCK_TIMEOUT"`
	EnrichmentWorkers int           `mapstructure:"OFFER_ENRICHMENT_WORKERS"`
	CityCacheTTL      time.Duration `mapstructure:"CITY_CACHE_TTL"`
}
