package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	FrontendURL string

	Store             string
	MongoURI          string
	MongoDB           string
	MongoTimeout      time.Duration
	MongoTransactions bool

	RateLimitPerMinute int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env
func FromEnv() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		Store:              strings.ToLower(getEnv("STORE", StoreMongo)),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "tasktracker"),
		MongoTimeout:       time.Duration(getEnvInt("MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		MongoTransactions:  getEnvBool("MONGO_TRANSACTIONS", false),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}
