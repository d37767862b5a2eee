package config

import (
	"os"
	"path/filepath"
	"testing"
)

var configKeys = []string{
	"PORT", "HTTP_TIMEOUT_SECONDS", "NEWS_RSS_URL", "NEWS_USER_AGENT",
	"FIREWORKS_API_URL", "FIREWORKS_API_KEY", "FIREWORKS_MODEL",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

// clearConfigEnv blanks every key LoadFromEnv reads; empty values count as unset
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedPort  string
		expectedFeed  string
		expectedModel string
	}{
		{
			name:          "defaults when nothing is set",
			envVars:       map[string]string{},
			expectedPort:  "8000",
			expectedFeed:  DefaultFeedURL,
			expectedModel: DefaultModel,
		},
		{
			name:          "uses PORT env var when set",
			envVars:       map[string]string{"PORT": "3000"},
			expectedPort:  "3000",
			expectedFeed:  DefaultFeedURL,
			expectedModel: DefaultModel,
		},
		{
			name:          "feed URL override",
			envVars:       map[string]string{"NEWS_RSS_URL": "https://example.com/rss"},
			expectedPort:  "8000",
			expectedFeed:  "https://example.com/rss",
			expectedModel: DefaultModel,
		},
		{
			name:          "model override is trimmed",
			envVars:       map[string]string{"FIREWORKS_MODEL": "  accounts/fireworks/models/other  "},
			expectedPort:  "8000",
			expectedFeed:  DefaultFeedURL,
			expectedModel: "accounts/fireworks/models/other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}
			if cfg.News.FeedURL != tt.expectedFeed {
				t.Errorf("FeedURL = %v, want %v", cfg.News.FeedURL, tt.expectedFeed)
			}
			if cfg.Generation.Model != tt.expectedModel {
				t.Errorf("Model = %v, want %v", cfg.Generation.Model, tt.expectedModel)
			}
		})
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.News.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %v, want %v", cfg.News.UserAgent, DefaultUserAgent)
	}
	if cfg.Generation.BaseURL != DefaultGenerationURL {
		t.Errorf("BaseURL = %v, want %v", cfg.Generation.BaseURL, DefaultGenerationURL)
	}
	if cfg.Server.HTTPTimeout != 30 {
		t.Errorf("HTTPTimeout = %v, want 30", cfg.Server.HTTPTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.File != "" {
		t.Errorf("Log = %+v, want info/text/no file", cfg.Log)
	}
	if cfg.HasAPIKey() {
		t.Error("HasAPIKey() = true with no FIREWORKS_API_KEY set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate without an API key, got %v", err)
	}
}

func TestLoadFromEnv_InvalidTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	// Should use default value when parsing fails
	if cfg.Server.HTTPTimeout != 30 {
		t.Errorf("HTTPTimeout = %v, want %v (default)", cfg.Server.HTTPTimeout, 30)
	}
}

func TestLoadFromEnv_APIKey(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(APIKeyEnv, " secret ")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Generation.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", cfg.Generation.APIKey, "secret")
	}
	if !cfg.HasAPIKey() {
		t.Error("HasAPIKey() = false, want true")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9100")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "FIREWORKS_MODEL=from-dotenv\nPORT=1234\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	// gotenv only fills keys that are absent, so drop the blanked one
	os.Unsetenv("FIREWORKS_MODEL")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Generation.Model != "from-dotenv" {
		t.Errorf("Model = %v, want from-dotenv", cfg.Generation.Model)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("Port = %v, want existing env value 9100", cfg.Server.Port)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() on missing file error = %v, want nil", err)
	}
}

func validConfig() Config {
	return Config{
		Server:     ServerConfig{Port: "8000", HTTPTimeout: 30},
		News:       NewsConfig{FeedURL: DefaultFeedURL, UserAgent: DefaultUserAgent},
		Generation: GenerationConfig{BaseURL: DefaultGenerationURL, Model: DefaultModel},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Server.HTTPTimeout = -1 },
			wantErr: true,
			errMsg:  "http timeout cannot be negative",
		},
		{
			name:    "relative feed URL",
			mutate:  func(c *Config) { c.News.FeedURL = "/rss" },
			wantErr: true,
			errMsg:  "news feed URL must be an absolute http(s) URL",
		},
		{
			name:    "non-http generation URL",
			mutate:  func(c *Config) { c.Generation.BaseURL = "ftp://example.com" },
			wantErr: true,
			errMsg:  "generation base URL must be an absolute http(s) URL",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.Generation.Model = "" },
			wantErr: true,
			errMsg:  "model cannot be empty",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log level is not a valid level name",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log format must be 'text' or 'json'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
