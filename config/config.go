package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Env        string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RabbitURL       string
	UpstreamBaseURL string

	SessionCookie string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8083"),
		Env:        getEnv("APP_ENV", "development"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "venue_booking_db"),

		RabbitURL:       os.Getenv("RABBITMQ_URL"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8000"),

		SessionCookie: getEnv("SESSION_COOKIE_NAME", "sessionid"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// ReceiptsEnabled reports whether a database is configured.
func (c *Config) ReceiptsEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) PublishingEnabled() bool {
	return c.RabbitURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
