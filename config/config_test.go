package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	c, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", c.App.LogLevel)
	assert.Equal(t, 8080, c.Host.Port)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.Equal(t, "HS256", c.JWT.Algorithm)
	assert.Equal(t, 30*time.Minute, c.JWT.TTL)
	assert.Equal(t, "argon2id", c.Security.PasswordHasher)
	assert.Equal(t, "test-secret", c.JWT.Secret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("HOST_CORS", "http://a.test,http://b.test")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=localhost user=dance dbname=dance")

	c, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, c.JWT.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Host.CORS)
	assert.Equal(t, "postgres", c.Database.Driver)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(viper.New())
	assert.ErrorIs(t, err, ErrNoJWTSecret)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value any
	}{
		"log level":  {"app.log_level", "verbose"},
		"port":       {"host.port", 0},
		"driver":     {"database.driver", "mysql"},
		"algorithm":  {"jwt.algorithm", "RS256"},
		"ttl":        {"jwt.ttl", "0s"},
		"hasher":     {"security.password_hasher", "md5"},
		"rate limit": {"security.rate_limit", -1},
		"cache type": {"cache.type", "memcached"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")

			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
