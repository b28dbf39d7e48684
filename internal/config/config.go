// Package config reads process configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/example/storefront/internal/auth"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	HTTPAddr        string
	WebDir          string
	LogLevel        string
	LogFormat       string
	PasswordHashing string

	SnapshotConfig SnapshotConfig
	KafkaConfig    KafkaConfig
	SMTPConfig     SMTPConfig
}

type SnapshotConfig struct {
	Backend        string
	DatabaseURL    string
	RedisAddr      string
	RedisKeyPrefix string
}

// KafkaConfig configures event publishing. No brokers disables it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// SMTPConfig configures order confirmation mail. An empty host disables it.
type SMTPConfig struct {
	Host string
	Port string
	From string
}

// Load reads the configuration. Values already in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	conf := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		WebDir:          os.Getenv("WEB_DIR"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		PasswordHashing: getEnv("PASSWORD_HASHING", auth.ModePlaintext),
		SnapshotConfig: SnapshotConfig{
			Backend:        getEnv("SNAPSHOT_BACKEND", BackendMemory),
			DatabaseURL:    os.Getenv("DATABASE_URL"),
			RedisAddr:      os.Getenv("REDIS_ADDR"),
			RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "storefront:snapshot:"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "storefront-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "storefront-notifier"),
		},
		SMTPConfig: SMTPConfig{
			Host: os.Getenv("SMTP_HOST"),
			Port: getEnv("SMTP_PORT", "1025"),
			From: getEnv("SMTP_FROM", "noreply@example.com"),
		},
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks that the selected backends have what they need
func (c *Config) Validate() error {
	switch c.SnapshotConfig.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.SnapshotConfig.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres backend", ErrInvalidConfig)
		}
	case BackendRedis:
		if c.SnapshotConfig.RedisAddr == "" {
			return fmt.Errorf("%w: REDIS_ADDR is required for the redis backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown SNAPSHOT_BACKEND %q", ErrInvalidConfig, c.SnapshotConfig.Backend)
	}

	if _, err := auth.NewHasher(c.PasswordHashing); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: HTTP_ADDR must not be empty", ErrInvalidConfig)
	}
	return nil
}

// KafkaEnabled reports whether brokers are configured
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaConfig.Brokers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
