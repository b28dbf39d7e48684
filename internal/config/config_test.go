package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "WEB_DIR", "LOG_LEVEL", "LOG_FORMAT", "PASSWORD_HASHING",
		"SNAPSHOT_BACKEND", "DATABASE_URL", "REDIS_ADDR", "REDIS_KEY_PREFIX",
		"KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP_ID",
		"SMTP_HOST", "SMTP_PORT", "SMTP_FROM",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	conf, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", conf.HTTPAddr)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "plaintext", conf.PasswordHashing)
	assert.Equal(t, BackendMemory, conf.SnapshotConfig.Backend)
	assert.Equal(t, "storefront:snapshot:", conf.SnapshotConfig.RedisKeyPrefix)
	assert.False(t, conf.KafkaEnabled())
	assert.Equal(t, "storefront-events", conf.KafkaConfig.Topic)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SNAPSHOT_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("PASSWORD_HASHING", "bcrypt")

	conf, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", conf.HTTPAddr)
	assert.Equal(t, BackendRedis, conf.SnapshotConfig.Backend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.KafkaConfig.Brokers)
	assert.True(t, conf.KafkaEnabled())
	assert.Equal(t, "bcrypt", conf.PasswordHashing)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"postgres without url", func(c *Config) { c.SnapshotConfig.Backend = BackendPostgres }, "DATABASE_URL"},
		{"postgres with url", func(c *Config) {
			c.SnapshotConfig.Backend = BackendPostgres
			c.SnapshotConfig.DatabaseURL = "postgres://localhost/db"
		}, ""},
		{"redis without addr", func(c *Config) { c.SnapshotConfig.Backend = BackendRedis }, "REDIS_ADDR"},
		{"unknown backend", func(c *Config) { c.SnapshotConfig.Backend = "sqlite" }, "SNAPSHOT_BACKEND"},
		{"unknown hashing", func(c *Config) { c.PasswordHashing = "md5" }, "hashing"},
		{"empty addr", func(c *Config) { c.HTTPAddr = "" }, "HTTP_ADDR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				HTTPAddr:        ":8080",
				PasswordHashing: "plaintext",
				SnapshotConfig:  SnapshotConfig{Backend: BackendMemory},
			}
			tt.modify(c)

			err := c.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
