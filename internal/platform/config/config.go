package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host    string
	APIPort string

	// SessionSecret signs the flash cookie.
	SessionSecret []byte
	FlashTTL      time.Duration

	SeedDemoData bool
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	AppConfig = FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	return &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		APIPort:       getEnv("API_PORT", "5000"),
		SessionSecret: []byte(getEnv("SESSION_SECRET", "university-dashboard-secret-key")),
		FlashTTL:      time.Duration(getEnvAsInt("FLASH_TTL_SECONDS", 300)) * time.Second,
		SeedDemoData:  getEnvAsBool("SEED_DEMO_DATA", true),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.APIPort
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
