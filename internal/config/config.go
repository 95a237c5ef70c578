package config

import "os"

// Config holds application configuration
type Config struct {
	Port              string
	DBPath            string
	DailySalt         string
	EntitlementSecret string
	ClientOrigin      string
	LogLevel          string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5175"),
		DBPath:            getEnv("DB_PATH", "./data/puzzlepack.db"),
		DailySalt:         getEnv("DAILY_SALT", "local_dev_salt"),
		EntitlementSecret: getEnv("ENTITLEMENT_SECRET", "dev_secret_change_me"),
		ClientOrigin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
