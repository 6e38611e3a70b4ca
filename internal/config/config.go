package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string   // Listen address for the HTTP server
	Environment    string   // "development" or "production"
	LogLevel       string   // zap level name (debug, info, warn, error)
	AllowedOrigins []string // CORS origins; empty reflects any origin
	Mail           MailConfig
	QRCode         QRCodeConfig
}

// MailConfig describes the outbound mail relay and delivery mode.
type MailConfig struct {
	Host       string
	Port       int
	Username   string // From MAIL_CREDENTIALS
	Password   string // From MAIL_CREDENTIALS
	From       string
	Timeout    time.Duration // 0 disables the client timeout
	Async      bool          // Deliver through the background queue
	QueueSize  int
	Workers    int
	MaxRetries int
}

// QRCodeConfig controls attendance code generation.
type QRCodeConfig struct {
	RotateEvery time.Duration
	ImageSize   int
}

// Configured reports whether relay credentials were supplied.
func (m MailConfig) Configured() bool {
	return m.Username != "" && m.Password != ""
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

var ErrMalformedCredentials = errors.New("MAIL_CREDENTIALS must be in the form username:password")

func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	username, password, err := parseCredentials(getEnv("MAIL_CREDENTIALS", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:           getEnv("ADDR", ":8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		Mail: MailConfig{
			Host:       getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:       getEnvInt("MAIL_PORT", 465),
			Username:   username,
			Password:   password,
			From:       getEnv("MAIL_FROM", username),
			Timeout:    time.Duration(getEnvInt("MAIL_TIMEOUT_SECONDS", 30)) * time.Second,
			Async:      getEnvBool("MAIL_ASYNC", false),
			QueueSize:  getEnvInt("MAIL_QUEUE_SIZE", 100),
			Workers:    getEnvInt("MAIL_WORKERS", 2),
			MaxRetries: getEnvInt("MAIL_MAX_RETRIES", 3),
		},
		QRCode: QRCodeConfig{
			RotateEvery: time.Duration(getEnvInt("QR_ROTATE_SECONDS", 60)) * time.Second,
			ImageSize:   getEnvInt("QR_IMAGE_SIZE", 256),
		},
	}

	if cfg.Mail.Port <= 0 {
		return nil, fmt.Errorf("MAIL_PORT must be positive, got %d", cfg.Mail.Port)
	}
	if cfg.Mail.QueueSize <= 0 {
		cfg.Mail.QueueSize = 1
	}
	if cfg.Mail.Workers <= 0 {
		cfg.Mail.Workers = 1
	}
	if cfg.Mail.MaxRetries < 0 {
		cfg.Mail.MaxRetries = 0
	}
	if cfg.QRCode.RotateEvery <= 0 {
		cfg.QRCode.RotateEvery = 60 * time.Second
	}
	if cfg.QRCode.ImageSize <= 0 {
		cfg.QRCode.ImageSize = 256
	}

	return cfg, nil
}

// parseCredentials splits "username:password" at the first colon so that
// passwords may themselves contain colons. An empty value means unconfigured.
func parseCredentials(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", nil
	}
	username, password, ok := strings.Cut(raw, ":")
	if !ok || username == "" || password == "" {
		return "", "", ErrMalformedCredentials
	}
	return username, password, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
