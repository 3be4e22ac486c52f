package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"todolist/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DB_MAX_OPEN_CONNS", "CORS_ALLOWED_ORIGINS", "AUDIT_WRITE_TIMEOUT", "TRANSLATION_FOLDER"} {
		t.Setenv(key, "")
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DbDriver)
	assert.Equal(t, 2*time.Second, cfg.AuditWriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 25, cfg.DbMaxOpenConns)
	assert.Equal(t, "pkg/translator/translation", cfg.TranslationFolder)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", " SQLite3 ")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("AUDIT_WRITE_TIMEOUT", "500ms")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "sqlite3", cfg.DbDriver)
	assert.Equal(t, ":memory:", cfg.SqlitePath)
	assert.Equal(t, 7, cfg.DbMaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.DbConnMaxLifetime)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.AuditWriteTimeout)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_OPEN_CONNS", -3)
	v.Set("AUDIT_WRITE_TIMEOUT", "not-a-duration")

	cfg := config.FromViper(v)

	require.NotNil(t, cfg)
	assert.Equal(t, 25, cfg.DbMaxOpenConns)
	assert.Equal(t, 5, cfg.DbMaxIdleConns)
	assert.Equal(t, 2*time.Second, cfg.AuditWriteTimeout)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestFromViper_LogsFallbacks(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	v := viper.New()
	v.Set("DB_MAX_IDLE_CONNS", "many")
	v.Set("AUDIT_WRITE_TIMEOUT", "-1s")

	cfg := config.FromViper(v)

	assert.Equal(t, 5, cfg.DbMaxIdleConns)
	assert.Equal(t, 2*time.Second, cfg.AuditWriteTimeout)

	warnings := logs.FilterMessage("invalid config value, using default")
	require.Equal(t, 2, warnings.Len())
	keys := []string{
		warnings.All()[0].ContextMap()["key"].(string),
		warnings.All()[1].ContextMap()["key"].(string),
	}
	assert.ElementsMatch(t, []string{"DB_MAX_IDLE_CONNS", "AUDIT_WRITE_TIMEOUT"}, keys)
}

func TestFromViper_UnsetValuesUseDefaultsQuietly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	cfg := config.FromViper(viper.New())

	assert.Equal(t, 25, cfg.DbMaxOpenConns)
	assert.Zero(t, logs.Len())
}
