// internal/config/config.go
package config

import (
	"os"
	"time"
)

type DatabaseConfig struct {
	Host       string `json:"host"`
	Port       string `json:"port"`
	User       string `json:"user"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	SSLMode    string `json:"sslmode"`
	SearchPath string `json:"schema"`
}

type Config struct {
	// Database is the current (authoritative) store.
	Database DatabaseConfig `json:"database"`
	// LegacyDatabase is the secondary store being decommissioned; writes to
	// it are best-effort mirrors.
	LegacyDatabase DatabaseConfig `json:"legacy_database"`
	Store          struct {
		// CallTimeout bounds every individual store call so a stalled legacy
		// store cannot delay the authoritative-only success path.
		CallTimeout time.Duration `json:"call_timeout"`
	} `json:"store"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Auth struct {
		// DebugEmailFallback allows resolving the caller from a query
		// parameter. Diagnostics only; must stay off in production.
		DebugEmailFallback bool `json:"debug_email_fallback"`
	} `json:"auth"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Invitation struct {
		DefaultTTL time.Duration `json:"default_ttl"`
	} `json:"invitation"`
	BaseURL string `json:"base_url"`
}

func Load() *Config {
	cfg := &Config{}

	// Current store
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "classloop")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// Legacy store
	cfg.LegacyDatabase.Host = getEnv("LEGACY_DB_HOST", "localhost")
	cfg.LegacyDatabase.Port = getEnv("LEGACY_DB_PORT", "5432")
	cfg.LegacyDatabase.User = getEnv("LEGACY_DB_USER", "postgres")
	cfg.LegacyDatabase.Password = getEnv("LEGACY_DB_PASSWORD", "")
	cfg.LegacyDatabase.Name = getEnv("LEGACY_DB_NAME", "classloop_legacy")
	cfg.LegacyDatabase.SSLMode = getEnv("LEGACY_DB_SSLMODE", "disable")
	cfg.LegacyDatabase.SearchPath = getEnv("LEGACY_DB_SCHEMA", "public")

	cfg.Store.CallTimeout = getEnvDuration("STORE_CALL_TIMEOUT", 3*time.Second)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.Auth.DebugEmailFallback = getEnv("AUTH_DEBUG_FALLBACK", "") == "true"

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	cfg.Invitation.DefaultTTL = getEnvDuration("INVITATION_TTL", 7*24*time.Hour)

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
