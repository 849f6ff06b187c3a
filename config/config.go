package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	minJWTSecretLen = 32
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	JWT       JWTConfig
	Cookie    CookieConfig
	Encrypter EncrypterConfig

	Discord DiscordConfig
	Reading ReadingConfig
}

type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"development"`
}

type HTTPServerConfig struct {
	Host           string   `env:"HOST" envDefault:""`
	Port           int      `env:"APP_PORT" envDefault:"8080"`
	Mode           string   `env:"API_MODE" envDefault:"debug"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"debug"`
	Mode         string `env:"LOGGER_MODE" envDefault:"development"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"tracker"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// DSN renders a lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type MinIOConfig struct {
	Endpoint      string        `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey     string        `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey     string        `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	UseSSL        bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	Region        string        `env:"MINIO_REGION" envDefault:"us-east-1"`
	Bucket        string        `env:"MINIO_BUCKET" envDefault:"tracker-attachments"`
	PresignExpiry time.Duration `env:"MINIO_PRESIGN_EXPIRY" envDefault:"15m"`
	MaxUploadSize int64         `env:"MINIO_MAX_UPLOAD_SIZE" envDefault:"26214400"`
}

type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"168h"`
}

// CookieConfig is the configuration for HttpOnly cookie authentication.
type CookieConfig struct {
	Name     string `env:"COOKIE_NAME" envDefault:"tracker_auth"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite string `env:"COOKIE_SAMESITE" envDefault:"Lax"`
	MaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"604800"`
}

type EncrypterConfig struct {
	Key string `env:"ENCRYPT_KEY"`
}

type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_REPORT_BUG_ID"`
	WebhookToken string `env:"DISCORD_REPORT_BUG_TOKEN"`
}

// Enabled reports whether error reporting has a webhook to post to.
func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

type ReadingConfig struct {
	DeviceKey    string        `env:"READING_DEVICE_KEY"`
	TicketTTL    time.Duration `env:"READING_WS_TICKET_TTL" envDefault:"1m"`
	StreamBuffer int           `env:"READING_STREAM_BUFFER" envDefault:"64"`
}

// Load parses the environment into Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if len(c.JWT.SecretKey) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLen))
	}
	switch len(c.Encrypter.Key) {
	case 16, 24, 32:
	default:
		errs = append(errs, errors.New("ENCRYPT_KEY must be 16, 24 or 32 bytes"))
	}
	if c.Reading.DeviceKey == "" {
		errs = append(errs, errors.New("READING_DEVICE_KEY is required"))
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT %d out of range", c.HTTPServer.Port))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
