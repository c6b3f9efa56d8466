package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

// Config holds application configuration
type Config struct {
	// API settings
	APIPort string

	// Analysis settings
	TopN             int    // default size of top-N tables
	MediaPlaceholder string // body the export uses for omitted attachments

	// Logging settings
	LogLevel string
}

// LoadConfig loads configuration from config.ini file or environment variables
func LoadConfig() *Config {
	config := &Config{
		// API settings
		APIPort: getEnv("CHATLENS_PORT", "8080"),

		// Analysis settings
		TopN:             getEnvInt("CHATLENS_TOP_N", 20),
		MediaPlaceholder: getEnv("CHATLENS_MEDIA_PLACEHOLDER", "<Media omitted>"),

		// Logging settings
		LogLevel: getEnv("CHATLENS_LOG_LEVEL", "info"),
	}

	// Try to load from config.ini file
	if err := loadFromINI(config); err != nil {
		log.Debug().Err(err).Msg("config.ini not loaded, using environment variables or defaults")
	}

	return config
}

// loadFromINI loads configuration from config.ini file
func loadFromINI(config *Config) error {
	cfg, err := ini.Load("config.ini")
	if err != nil {
		return err
	}

	if apiSection := cfg.Section("api"); apiSection != nil {
		if port := apiSection.Key("port").String(); port != "" {
			config.APIPort = port
		}
	}

	if analysisSection := cfg.Section("analysis"); analysisSection != nil {
		if topN := analysisSection.Key("top_n").String(); topN != "" {
			if val, err := strconv.Atoi(topN); err == nil && val >= 0 {
				config.TopN = val
			}
		}
		if placeholder := analysisSection.Key("media_placeholder").String(); placeholder != "" {
			config.MediaPlaceholder = placeholder
		}
	}

	if logSection := cfg.Section("log"); logSection != nil {
		if level := logSection.Key("level").String(); level != "" {
			config.LogLevel = level
		}
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
