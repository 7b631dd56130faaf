package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the CLI reads from the environment.
type Config struct {
	// Spotify credentials. Both empty means unauthenticated requests,
	// which is enough for test doubles but not for the live service.
	SpotifyClientID     string
	SpotifyClientSecret string

	// APIBaseURL is the artists collection endpoint.
	APIBaseURL string

	// Debug
	Debug    bool
	LogLevel string
}

func Load() *Config {
	return &Config{
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		APIBaseURL:          getEnvOrDefault("SPOTIFY_API_BASE_URL", "https://api.spotify.com/v1/artists"),
		Debug:               getEnvBoolOrDefault("DEBUG", false),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	if (c.SpotifyClientID == "") != (c.SpotifyClientSecret == "") {
		return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set together")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("SPOTIFY_API_BASE_URL must not be empty")
	}
	return nil
}

// HasCredentials reports whether a client-credentials pair is configured.
func (c *Config) HasCredentials() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
