package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string

	// MaxEmptyLimit caps the max_empty request parameter: search cost grows
	// exponentially with the number of empty squares.
	MaxEmptyLimit int
}

// LoadServerConfig loads configuration from environment variables. A .env
// file in the working directory is loaded first when present.
func LoadServerConfig() *ServerConfig {
	// Ignore error: a .env file is optional.
	_ = godotenv.Load()

	return &ServerConfig{
		ServerHost:        getEnvMust("PUZZLES_SERVER_HOST"),
		ServerPort:        getEnvMust("PUZZLES_SERVER_PORT"),
		RedisURL:          getEnvMust("PUZZLES_REDIS_URL"),
		PostgresURL:       getEnvMust("PUZZLES_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("PUZZLES_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("PUZZLES_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("PUZZLES_SERVER_TOKEN"),
		MaxEmptyLimit:     getEnvIntDefault("PUZZLES_MAX_EMPTY_LIMIT", 12),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

// getEnvIntDefault returns the integer environment variable, or the fallback
// if it is not set.
func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
