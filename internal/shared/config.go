package shared

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func (c SMTPConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// AppConfig is built once at startup and treated as read only afterwards.
type AppConfig struct {
	Environment    string
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	Domain         string

	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration
	OTPTTL        time.Duration

	SMTP      SMTPConfig
	RateLimit RateLimitConfig

	OTLPEndpoint string
}

func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads the environment, loading a .env file first when present.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Environment:    envOr("APP_ENV", "development"),
		Port:           envOr("PORT", "3000"),
		DatabaseURL:    envOr("DATABASE_URL", "database.db"),
		AllowedOrigins: splitOrigins(envOr("ALLOWED_ORIGINS", "*")),
		Domain:         envOr("DOMAIN", "http://localhost:3000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       envDuration("TOKEN_TTL", 24*time.Hour),
		ResetTokenTTL:  envDuration("RESET_TOKEN_TTL", time.Minute),
		OTPTTL:         envDuration("OTP_TTL", time.Minute),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     envOr("SMTP_FROM", os.Getenv("SMTP_USER")),
			FromName: envOr("SMTP_FROM_NAME", "Todo API"),
		},
		RateLimit: RateLimitConfig{
			Requests: envInt("RATE_LIMIT_REQUESTS", 100),
			Window:   envDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET is not set")
		}
		cfg.JWTSecret = "development-secret"
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return origins
}
