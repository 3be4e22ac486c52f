package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	keyAppPort            = "APP_PORT"
	KeyLogLevel           = "LOG_LEVEL"
	keyDbDriver           = "DB_DRIVER"
	keyDbHost             = "DB_HOST"
	keyDbPort             = "DB_PORT"
	keyDbUser             = "DB_USER"
	keyDbPassword         = "DB_PASSWORD"
	keyDbName             = "DB_NAME"
	keyDbParams           = "DB_PARAMS"
	keySqlitePath         = "SQLITE_PATH"
	keyDbMaxOpenConns     = "DB_MAX_OPEN_CONNS"
	keyDbMaxIdleConns     = "DB_MAX_IDLE_CONNS"
	keyDbConnMaxLifetime  = "DB_CONN_MAX_LIFETIME"
	keyTrustedProxies     = "TRUSTED_PROXIES"
	keyCorsAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	keyAuditWriteTimeout  = "AUDIT_WRITE_TIMEOUT"
	keyTranslationFolder  = "TRANSLATION_FOLDER"
)

type Config struct {
	AppPort  string
	LogLevel string

	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration

	TrustedProxies     []string
	CorsAllowedOrigins []string

	AuditWriteTimeout time.Duration
	TranslationFolder string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	return FromViper(NewViper())
}

// NewViper loads .env into the environment and returns a viper reading it
// with defaults applied.
func NewViper() *viper.Viper {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAppPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(keyDbDriver, "mysql")
	v.SetDefault(keyDbHost, "db")
	v.SetDefault(keyDbPort, "3306")
	v.SetDefault(keyDbUser, "todolist")
	v.SetDefault(keyDbPassword, "todolist")
	v.SetDefault(keyDbName, "todolist")
	v.SetDefault(keySqlitePath, "todolist.db")
	v.SetDefault(keyDbMaxOpenConns, 25)
	v.SetDefault(keyDbMaxIdleConns, 5)
	v.SetDefault(keyDbConnMaxLifetime, 5*time.Minute)
	v.SetDefault(keyCorsAllowedOrigins, "*")
	v.SetDefault(keyAuditWriteTimeout, 2*time.Second)
	v.SetDefault(keyTranslationFolder, "pkg/translator/translation")
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:            v.GetString(keyAppPort),
		LogLevel:           v.GetString(KeyLogLevel),
		DbDriver:           strings.ToLower(strings.TrimSpace(v.GetString(keyDbDriver))),
		DbHost:             v.GetString(keyDbHost),
		DbPort:             v.GetString(keyDbPort),
		DbUser:             v.GetString(keyDbUser),
		DbPassword:         v.GetString(keyDbPassword),
		DbName:             v.GetString(keyDbName),
		DbParams:           v.GetString(keyDbParams),
		SqlitePath:         v.GetString(keySqlitePath),
		DbMaxOpenConns:     getPositiveIntOrDefault(v, keyDbMaxOpenConns, 25),
		DbMaxIdleConns:     getPositiveIntOrDefault(v, keyDbMaxIdleConns, 5),
		DbConnMaxLifetime:  v.GetDuration(keyDbConnMaxLifetime),
		TrustedProxies:     parseList(v.GetString(keyTrustedProxies)),
		CorsAllowedOrigins: parseList(v.GetString(keyCorsAllowedOrigins)),
		AuditWriteTimeout:  getPositiveDurationOrDefault(v, keyAuditWriteTimeout, 2*time.Second),
		TranslationFolder:  v.GetString(keyTranslationFolder),
	}
}

func getPositiveIntOrDefault(v *viper.Viper, key string, defaultValue int) int {
	if value := v.GetInt(key); value > 0 {
		return value
	}
	warnFallback(v, key, defaultValue)
	return defaultValue
}

func getPositiveDurationOrDefault(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	if value := v.GetDuration(key); value > 0 {
		return value
	}
	warnFallback(v, key, defaultValue)
	return defaultValue
}

func warnFallback(v *viper.Viper, key string, defaultValue any) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return
	}
	zap.L().Warn("invalid config value, using default",
		zap.String("key", key),
		zap.String("value", raw),
		zap.Any("default", defaultValue),
	)
}

// parseList splits a comma separated value, dropping blank items.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
