package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	PostgresDSN string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	EmailAPIKey string
	EmailSender string

	NatsURL string
}

// Load reads .env when present and builds the config from the
// environment. Missing optional values fall back to defaults; the two
// signing secrets are required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		ListenAddr:      GetEnvAsString("LISTEN_ADDR", ":8080"),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		RedisHost:       GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:       GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         GetEnvAsInt("REDIS_DB", 0),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RefreshSecret:   os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		EmailAPIKey:     os.Getenv("EMAIL_API_KEY"),
		EmailSender:     os.Getenv("EMAIL_SENDER"),
		NatsURL:         os.Getenv("NATS_URL"),
	}

	if cfg.JWTSecret == "" || cfg.RefreshSecret == "" {
		log.Fatal("JWT_SECRET and REFRESH_TOKEN_SECRET must be set")
	}

	return cfg
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
