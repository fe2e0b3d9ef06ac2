// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can be
// provided via CLI flags and environment variables.
type Config struct {
	// Paths
	ProjectsDir string `json:"projects_dir,omitempty"` // Directory holding project YAML files
	ExportsDir  string `json:"exports_dir,omitempty"`  // Directory resume exports are written to

	// LLM
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Ranking and selection
	RelevanceThreshold float64 `json:"relevance_threshold,omitempty"`  // Minimum relevance score (0.0-1.0)
	MaxRecommendations int     `json:"max_recommendations,omitempty"`  // Ranked projects returned by recommendations
	MaxPerSection      int     `json:"max_per_section,omitempty"`      // Projects per resume section
	SharedProjectsPool bool    `json:"shared_projects_pool,omitempty"` // Projects section shares the dedup pool

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the run archive
	JWTSecret   string `json:"jwt_secret,omitempty"`   // Secret for bearer auth on mutating routes

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		ProjectsDir:        "projects",
		ExportsDir:         "exports",
		EmbeddingModel:     "text-embedding-004",
		RelevanceThreshold: 0.3,
		MaxRecommendations: 5,
		MaxPerSection:      3,
		Port:               8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.RelevanceThreshold < 0 || c.RelevanceThreshold > 1 {
		return fmt.Errorf("config error: 'relevance_threshold' must be between 0.0 and 1.0")
	}
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("config error: 'max_recommendations' must be non-negative")
	}
	if c.MaxPerSection < 0 {
		return fmt.Errorf("config error: 'max_per_section' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Config file values win over defaults; set fields are kept.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProjectsDir == "" {
		result.ProjectsDir = defaults.ProjectsDir
	}
	if result.ExportsDir == "" {
		result.ExportsDir = defaults.ExportsDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.RelevanceThreshold == 0 {
		result.RelevanceThreshold = defaults.RelevanceThreshold
	}
	if result.MaxRecommendations == 0 {
		result.MaxRecommendations = defaults.MaxRecommendations
	}
	if result.MaxPerSection == 0 {
		result.MaxPerSection = defaults.MaxPerSection
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// ApplyEnv overlays environment variables onto the configuration. Env values
// win over both the config file and defaults.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("RESUME_PILOT_PROJECTS_DIR"); v != "" {
		c.ProjectsDir = v
	}
	if v := os.Getenv("RESUME_PILOT_EXPORTS_DIR"); v != "" {
		c.ExportsDir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_PILOT_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseFloat(v, 64); err == nil {
			c.RelevanceThreshold = threshold
		}
	}
}
