package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	CacheDBPath     string
	RemoteDBType    string
	RemoteDBURL     string
	RemoteDBPath    string
	DeepLAPIKey     string
	DeepLAPIURL     string
	TTSAudioDir     string
	DefaultLanguage string
	CallDelay       time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		CacheDBPath:     getEnv("CACHE_DB_PATH", "./lingoswipe_cache.db"),
		RemoteDBType:    getEnv("REMOTE_DB_TYPE", "sqlite"),
		RemoteDBURL:     getEnv("REMOTE_DB_URL", ""),
		RemoteDBPath:    getEnv("REMOTE_DB_PATH", "./lingoswipe.db"),
		DeepLAPIKey:     getEnv("DEEPL_API_KEY", ""),
		DeepLAPIURL:     getEnv("DEEPL_API_URL", ""),
		TTSAudioDir:     getEnv("TTS_AUDIO_DIR", "./audio"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "spanish"),
		CallDelay:       75 * time.Millisecond,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
