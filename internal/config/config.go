package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Backend BackendConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
	Archive ArchiveConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// DBConfig holds PostgreSQL connection settings for the history store.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// BackendConfig holds settings for the remote credit backend.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds session cookie settings.
type SessionConfig struct {
	CookieDomain  string `mapstructure:"cookie_domain"`
	AccessMaxAge  int    `mapstructure:"access_max_age"`
	RefreshMaxAge int    `mapstructure:"refresh_max_age"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ArchiveConfig holds report archive settings.
type ArchiveConfig struct {
	Provider  string `mapstructure:"provider"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// EmailConfig holds report delivery email settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// Load reads configuration from environment variables with the CREDIGATE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CREDIGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "credigate")
	v.SetDefault("db.password", "credigate_secret")
	v.SetDefault("db.name", "credigate_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Backend defaults
	v.SetDefault("backend.base_url", "http://localhost:4000/api")
	v.SetDefault("backend.timeout", "30s")

	// Session defaults: access 24h, refresh 7d, in seconds
	v.SetDefault("session.cookie_domain", "")
	v.SetDefault("session.access_max_age", 60*60*24)
	v.SetDefault("session.refresh_max_age", 60*60*24*7)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Archive defaults
	v.SetDefault("archive.provider", "noop")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "credigate-reports")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.key_prefix", "reports/")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "sa-east-1")
	v.SetDefault("email.from_address", "noreply@credigate.com.br")
	v.SetDefault("email.from_name", "CrediGate")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "CREDIGATE_SERVER_PORT",
		"server.read_timeout":     "CREDIGATE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "CREDIGATE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "CREDIGATE_SERVER_ENVIRONMENT",
		"db.host":                 "CREDIGATE_DB_HOST",
		"db.port":                 "CREDIGATE_DB_PORT",
		"db.user":                 "CREDIGATE_DB_USER",
		"db.password":             "CREDIGATE_DB_PASSWORD",
		"db.name":                 "CREDIGATE_DB_NAME",
		"db.sslmode":              "CREDIGATE_DB_SSLMODE",
		"db.max_open":             "CREDIGATE_DB_MAX_OPEN",
		"db.max_idle":             "CREDIGATE_DB_MAX_IDLE",
		"backend.base_url":        "CREDIGATE_BACKEND_BASE_URL",
		"backend.timeout":         "CREDIGATE_BACKEND_TIMEOUT",
		"session.cookie_domain":   "CREDIGATE_SESSION_COOKIE_DOMAIN",
		"session.access_max_age":  "CREDIGATE_SESSION_ACCESS_MAX_AGE",
		"session.refresh_max_age": "CREDIGATE_SESSION_REFRESH_MAX_AGE",
		"cors.allowed_origins":    "CREDIGATE_CORS_ALLOWED_ORIGINS",
		"log.level":               "CREDIGATE_LOG_LEVEL",
		"log.format":              "CREDIGATE_LOG_FORMAT",
		"archive.provider":        "CREDIGATE_ARCHIVE_PROVIDER",
		"archive.region":          "CREDIGATE_ARCHIVE_REGION",
		"archive.bucket":          "CREDIGATE_ARCHIVE_BUCKET",
		"archive.endpoint":        "CREDIGATE_ARCHIVE_ENDPOINT",
		"archive.access_key":      "CREDIGATE_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":      "CREDIGATE_ARCHIVE_SECRET_KEY",
		"archive.key_prefix":      "CREDIGATE_ARCHIVE_KEY_PREFIX",
		"email.provider":          "CREDIGATE_EMAIL_PROVIDER",
		"email.region":            "CREDIGATE_EMAIL_REGION",
		"email.from_address":      "CREDIGATE_EMAIL_FROM_ADDRESS",
		"email.from_name":         "CREDIGATE_EMAIL_FROM_NAME",
		"email.frontend_url":      "CREDIGATE_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CREDIGATE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CREDIGATE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Backend = BackendConfig{
		BaseURL: v.GetString("backend.base_url"),
		Timeout: v.GetDuration("backend.timeout"),
	}
	cfg.Session = SessionConfig{
		CookieDomain:  v.GetString("session.cookie_domain"),
		AccessMaxAge:  v.GetInt("session.access_max_age"),
		RefreshMaxAge: v.GetInt("session.refresh_max_age"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Archive = ArchiveConfig{
		Provider:  v.GetString("archive.provider"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
		KeyPrefix: v.GetString("archive.key_prefix"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
