// Package tmdb provides a client for The Movie Database HTTP API.
package tmdb

import (
	"os"
	"time"
)

// DefaultBaseURL is the production TMDB API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Config holds configuration for the TMDB API client.
type Config struct {
	APIKey  string        // API key attached to every request
	BaseURL string        // Base URL for the API (e.g., "https://api.themoviedb.org/3")
	Timeout time.Duration // HTTP request timeout; requests fail closed after this
}

// LoadConfig loads TMDB configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("TMDB_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("TMDB_API_KEY"),
		BaseURL: base,
		Timeout: 5 * time.Second,
	}
}
