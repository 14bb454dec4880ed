package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RoleEncoding string
	Logging      LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		RoleEncoding: getEnv("ROLE_ENCODING", "name"),
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
