package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
)

// Config represents the complete application configuration
type Config struct {
	Defaults profile.Options
	LogLevel string
}

// Load reads configuration from a .env file (when present) and environment
// variables. Every optional profiling section can be enabled by default via
// PROFILE_* flags; callers still override per call through profile.Options.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	config := &Config{
		Defaults: profile.Options{
			Associations: getEnvBoolOrDefault("PROFILE_ASSOCIATIONS", false),
			Keys:         getEnvBoolOrDefault("PROFILE_KEYS", false),
			Missingness:  getEnvBoolOrDefault("PROFILE_MISSINGNESS", false),
			Outliers:     getEnvBoolOrDefault("PROFILE_OUTLIERS", false),
			Entropy:      getEnvBoolOrDefault("PROFILE_ENTROPY", false),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
