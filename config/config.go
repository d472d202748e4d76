package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// defaultJWTSecret is used when JWT_SECRET is not set
const defaultJWTSecret = "restaurant_orders_secret_2024"

type Config struct {
	DB     DBConfig
	HTTP   HTTPConfig
	Auth   AuthConfig
	Log    LogConfig
	Strict bool // re-check foreign keys on update
}

type DBConfig struct {
	Path     string
	LogLevel logger.LogLevel
}

type HTTPConfig struct {
	Port    string
	GinMode string
}

type AuthConfig struct {
	JWTSecret []byte
	TokenTTL  time.Duration
	Users     map[string]string // username -> password
}

type LogConfig struct {
	Level slog.Level
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	strict, err := strconv.ParseBool(getEnv("STRICT_REFERENCES", "false"))
	if err != nil {
		return nil, fmt.Errorf("STRICT_REFERENCES: %w", err)
	}
	users, err := parseUsers(getEnv("AUTH_USERS", "admin:admin123,gerente:gerente123"))
	if err != nil {
		return nil, fmt.Errorf("AUTH_USERS: %w", err)
	}
	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	gormLevel, err := parseGormLevel(getEnv("GORM_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("GORM_LOG_LEVEL: %w", err)
	}

	return &Config{
		DB: DBConfig{
			Path:     getEnv("DB_PATH", "restaurant.db"),
			LogLevel: gormLevel,
		},
		HTTP: HTTPConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: os.Getenv("GIN_MODE"),
		},
		Auth: AuthConfig{
			JWTSecret: []byte(getEnv("JWT_SECRET", defaultJWTSecret)),
			TokenTTL:  ttl,
			Users:     users,
		},
		Log:    LogConfig{Level: level},
		Strict: strict,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseUsers reads "user:pass,user2:pass2"
func parseUsers(s string) (map[string]string, error) {
	users := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, pass, ok := strings.Cut(pair, ":")
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("malformed entry %q, expected user:password", pair)
		}
		users[name] = pass
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users configured")
	}
	return users, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}

func parseGormLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
