package config

import (
	"os"
)

type Config struct {
	Port           string
	Environment    string
	DBPath         string
	AttachmentsDir string
	CORSOrigins    string
	// Debug flags
	Debug bool
}

// Load builds the configuration from an optional YAML file overlaid with
// environment variables. Precedence: env > file > default.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	file := loadFile(getEnv("WORKLOG_CONFIG", defaultConfigFile))

	return &Config{
		Port:           getEnv("PORT", fallback(file.Port, "8080")),
		Environment:    env,
		DBPath:         getEnv("WORKLOG_DB_PATH", fallback(file.DBPath, ".worklog.db")),
		AttachmentsDir: getEnv("WORKLOG_ATTACHMENTS_DIR", fallback(file.AttachmentsDir, "attachments")),
		CORSOrigins:    getEnv("CORS_ORIGINS", fallback(file.CORSOrigins, "http://localhost:3000")),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func fallback(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
