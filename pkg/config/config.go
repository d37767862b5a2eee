// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, news pipeline, generation service and logging

package config

import (
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"

	"donaldking-api/pkg/utils/parse"
)

const (
	// DefaultFeedURL is the Google News search feed polled for headlines
	DefaultFeedURL = "https://news.google.com/rss/search?q=Donald%20trump&hl=en-US&gl=US&ceid=US%3Aen"

	// DefaultUserAgent identifies the bot to feed providers
	DefaultUserAgent = "DonaldKingBot/1.0 (+https://github.com/)"

	// DefaultGenerationURL is the OpenAI-compatible Fireworks inference endpoint
	DefaultGenerationURL = "https://api.fireworks.ai/inference/v1"

	// DefaultModel is used when FIREWORKS_MODEL is not set
	DefaultModel = "accounts/fireworks/models/llama-v3-8b-instruct"

	// APIKeyEnv is the environment variable holding the generation service key
	APIKeyEnv = "FIREWORKS_API_KEY"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// News contains feed configuration for the news pipeline
	News NewsConfig

	// Generation contains text-generation service configuration
	Generation GenerationConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeout is the outbound HTTP client timeout in seconds, 0 disables it
	HTTPTimeout int
}

// NewsConfig holds feed configuration
type NewsConfig struct {
	// FeedURL is the RSS feed polled for headlines
	FeedURL string

	// UserAgent is sent with every feed request
	UserAgent string
}

// GenerationConfig holds configuration for the chat-completion service
type GenerationConfig struct {
	// BaseURL is the OpenAI-compatible API root
	BaseURL string

	// APIKey authenticates against the service. Checked per request, not at startup.
	APIKey string

	// Model is the model identifier sent with every completion
	Model string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is "text" or "json"
	Format string

	// File, when set, receives a rotated copy of the log output
	File string
}

// LoadDotEnv loads variables from a dotenv file without overriding the environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return gotenv.Load(path)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			HTTPTimeout: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30),
		},
		News: NewsConfig{
			FeedURL:   getEnvOrDefault("NEWS_RSS_URL", DefaultFeedURL),
			UserAgent: getEnvOrDefault("NEWS_USER_AGENT", DefaultUserAgent),
		},
		Generation: GenerationConfig{
			BaseURL: getEnvOrDefault("FIREWORKS_API_URL", DefaultGenerationURL),
			APIKey:  strings.TrimSpace(os.Getenv(APIKeyEnv)),
			Model:   getEnvOrDefault("FIREWORKS_MODEL", DefaultModel),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the trimmed environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOrDefault(os.Getenv(key), defaultValue)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeout < 0 {
		return errors.New("http timeout cannot be negative")
	}

	if !isHTTPURL(c.News.FeedURL) {
		return errors.New("news feed URL must be an absolute http(s) URL")
	}

	if !isHTTPURL(c.Generation.BaseURL) {
		return errors.New("generation base URL must be an absolute http(s) URL")
	}

	if c.Generation.Model == "" {
		return errors.New("model cannot be empty")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.New("log level is not a valid level name")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

// HasAPIKey reports whether the generation service key is configured
func (c *Config) HasAPIKey() bool {
	return c.Generation.APIKey != ""
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
