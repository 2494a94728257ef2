// Package config provides centralized configuration management for the MCP MultiTool server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// OpenAI configuration
	OpenAI struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	// GroundX document ingestion and search
	GroundX struct {
		APIKey   string
		BaseURL  string
		BucketID string
	}

	// WeatherAPI.com
	Weather struct {
		APIKey  string
		BaseURL string
	}

	// Brave Search
	Brave struct {
		APIKey  string
		BaseURL string
	}

	// Local notes file
	Notes struct {
		Path          string
		RecordResults bool
	}

	LogLevel string
}

var (
	once   sync.Once
	config *Config
	// loadErr is kept so repeated Load calls report the same failure.
	loadErr error
)

// Load reads the configuration once from an optional .env file in the working
// directory, overlaid by the process environment.
func Load() (*Config, error) {
	once.Do(func() {
		config, loadErr = Read(".env")
	})

	return config, loadErr
}

// Read builds a Config from envFile (skipped when absent) and the environment.
func Read(envFile string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("openai_model", "gpt-4o")
	v.SetDefault("groundx_base_url", "https://api.groundx.ai")
	v.SetDefault("weather_base_url", "http://api.weatherapi.com")
	v.SetDefault("brave_base_url", "https://api.search.brave.com")
	v.SetDefault("notes_file", "notes.txt")
	v.SetDefault("notes_record_results", true)
	v.SetDefault("log_level", "info")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
	}

	// Load from environment variables
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.OpenAI.APIKey = v.GetString("openai_api_key")
	cfg.OpenAI.Model = v.GetString("openai_model")
	cfg.OpenAI.BaseURL = v.GetString("openai_base_url")

	cfg.GroundX.APIKey = v.GetString("groundx_api_key")
	cfg.GroundX.BaseURL = v.GetString("groundx_base_url")
	cfg.GroundX.BucketID = v.GetString("bucket_id")

	cfg.Weather.APIKey = v.GetString("weather_api_key")
	cfg.Weather.BaseURL = v.GetString("weather_base_url")

	cfg.Brave.APIKey = v.GetString("brave_api_key")
	cfg.Brave.BaseURL = v.GetString("brave_base_url")

	cfg.Notes.Path = v.GetString("notes_file")
	cfg.Notes.RecordResults = v.GetBool("notes_record_results")

	cfg.LogLevel = v.GetString("log_level")

	return cfg, nil
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var missing []string

	for _, required := range []struct {
		key   string
		value string
	}{
		{"OPENAI_API_KEY", c.OpenAI.APIKey},
		{"GROUNDX_API_KEY", c.GroundX.APIKey},
		{"BUCKET_ID", c.GroundX.BucketID},
		{"WEATHER_API_KEY", c.Weather.APIKey},
		{"BRAVE_API_KEY", c.Brave.APIKey},
	} {
		if required.value == "" {
			missing = append(missing, required.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuration validation failed: missing %v", missing)
	}

	return nil
}
