package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries the runtime settings of an engine host process.
type Config struct {
	// SnapshotTimeout bounds the wait for an order book snapshot reply.
	SnapshotTimeout time.Duration

	// OrderBookLimit is the number of price levels per side shown to callers.
	OrderBookLimit int

	// QueueSize of the engine worker task queue.
	QueueSize int

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string

	// MetricsAddr is the listen address of the Prometheus metrics endpoint.
	MetricsAddr string
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present. Missing variables fall back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment only")
	}

	return &Config{
		SnapshotTimeout: time.Duration(envInt("SNAPSHOT_TIMEOUT_MS", 1000)) * time.Millisecond,
		OrderBookLimit:  envInt("ORDER_BOOK_LIMIT", 20),
		QueueSize:       envInt("COMMAND_QUEUE_SIZE", 256),
		LogLevel:        envString("LOG_LEVEL", "info"),
		MetricsAddr:     envString("METRICS_ADDR", ":9091"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("invalid integer in environment, using default")
		return fallback
	}
	return n
}
