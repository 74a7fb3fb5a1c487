package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultMongoURI = "mongodb://localhost:27017/career_compass"
	DefaultDBName   = "career_compass"
	DefaultPort     = "5000"
)

// Config holds the application configuration.
type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

// Load reads configuration from the environment, after pulling in a .env
// file when one is present.
func Load() *Config {
	// Ignore error in production — env vars set directly
	_ = godotenv.Load()

	return &Config{
		MongoURI: getEnv("MONGO_URI", DefaultMongoURI),
		DBName:   getEnv("DB_NAME", DefaultDBName),
		Port:     getEnv("PORT", DefaultPort),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
