package config

import (
	"os"
)

type Config struct {
	Port             string
	GenerationAPIURL string
}

// Load reads service configuration from the environment. godotenv is loaded
// by main before this runs.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		GenerationAPIURL: getEnv("GENERATION_API_URL", "http://localhost:9000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
