package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 6, cfg.Pagination.PageSize)
	assert.NotEmpty(t, cfg.Database.URL)

	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: "8080"},
			Database:   DatabaseConfig{URL: "postgres://localhost/items"},
			Redis:      RedisConfig{Addr: "localhost:6379"},
			Session:    SessionConfig{TTL: 2 * time.Hour},
			Pagination: PaginationConfig{PageSize: 6},
		}
	}

	cfg := base()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Database.URL = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Session.TTL = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Pagination.PageSize = 0
	assert.Error(t, cfg.Validate())
}
