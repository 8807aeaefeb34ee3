package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Fact sources selectable with FACT_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration
	PlotlyURL       string
	Facts           FactsConfig
	Redis           RedisConfig
}

// FactsConfig selects where the fact table is loaded from at startup.
type FactsConfig struct {
	Source      string
	File        string
	DatabaseURL string
	RedisPrefix string
}

// RedisConfig holds connection settings for the Redis fact source.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getEnv("SKINATLAS_ADDR", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		PlotlyURL:       os.Getenv("PLOTLY_URL"),
		Facts: FactsConfig{
			Source:      getEnv("FACT_SOURCE", SourceEmbedded),
			File:        os.Getenv("FACT_FILE"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			RedisPrefix: getEnv("REDIS_KEY_PREFIX", "skinatlas:facts"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

// IsProduction reports whether the service runs in production mode.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// Validate rejects source selections that are missing their settings.
func (s Server) Validate() error {
	switch s.Facts.Source {
	case SourceEmbedded:
	case SourceFile:
		if s.Facts.File == "" {
			return fmt.Errorf("FACT_SOURCE=file requires FACT_FILE")
		}
	case SourcePostgres:
		if s.Facts.DatabaseURL == "" {
			return fmt.Errorf("FACT_SOURCE=postgres requires DATABASE_URL")
		}
	case SourceRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("FACT_SOURCE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown FACT_SOURCE %q", s.Facts.Source)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
