// Package config provides configuration loading and management for newsdig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete newsdig configuration
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Chunking ChunkingConfig `yaml:"chunking"`
	Model    ModelConfig    `yaml:"model"`
	Output   OutputConfig   `yaml:"output"`
}

// SourceConfig configures the document source
type SourceConfig struct {
	// URL is the document to analyze when none is given on the command line
	URL string `yaml:"url"`
	// MaxContentChars caps the extracted text length before chunking
	MaxContentChars int `yaml:"max_content_chars"`
	// UserAgent is sent with fetch requests
	UserAgent string `yaml:"user_agent"`
	// Timeout is the maximum time to wait for the page fetch
	Timeout time.Duration `yaml:"timeout"`
}

// ChunkingConfig configures how documents are split for extraction
type ChunkingConfig struct {
	// Size is the number of characters per chunk
	Size int `yaml:"size"`
	// Overlap is the number of characters shared between adjacent chunks
	Overlap int `yaml:"overlap"`
}

// ModelConfig configures the LLM model settings
type ModelConfig struct {
	// Provider selects the API adapter: "ollama", "openai", or "anthropic"
	Provider string `yaml:"provider"`
	// Default is the default model to use (e.g., "gpt-oss:latest")
	Default string `yaml:"default"`
	// Endpoint is the provider API endpoint (default: http://localhost:11434/v1)
	Endpoint string `yaml:"endpoint"`
	// Temperature controls randomness (0.0-1.0, default: 0 for extraction)
	Temperature float64 `yaml:"temperature"`
	// Timeout is the maximum time to wait for model responses
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig configures where results are written
type OutputConfig struct {
	// Path is the JSON results file
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:             "https://gestornormativo.creg.gov.co/gestor/entorno/docs/resolucion_minminas_40505_2025.htm",
			MaxContentChars: 50000,
			UserAgent:       "newsdig/1.0 (+https://github.com/newsdig/newsdig)",
			Timeout:         60 * time.Second,
		},
		Chunking: ChunkingConfig{
			Size:    2000,
			Overlap: 100,
		},
		Model: ModelConfig{
			Provider:    "ollama",
			Default:     "gpt-oss:latest",
			Endpoint:    "http://localhost:11434/v1",
			Temperature: 0,
			Timeout:     5 * time.Minute,
		},
		Output: OutputConfig{
			Path: "data.json",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.MaxContentChars <= 0 {
		return fmt.Errorf("source.max_content_chars must be positive")
	}
	if c.Chunking.Size <= 0 {
		return fmt.Errorf("chunking.size must be positive")
	}
	if c.Chunking.Overlap < 0 {
		return fmt.Errorf("chunking.overlap must not be negative")
	}
	if c.Chunking.Overlap >= c.Chunking.Size {
		return fmt.Errorf("chunking.overlap must be smaller than chunking.size")
	}
	if c.Model.Provider == "" {
		return fmt.Errorf("model.provider is required")
	}
	if c.Model.Default == "" {
		return fmt.Errorf("model.default is required")
	}
	if c.Model.Endpoint == "" {
		return fmt.Errorf("model.endpoint is required")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 1 {
		return fmt.Errorf("model.temperature must be between 0 and 1")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Source
	if other.Source.URL != "" {
		c.Source.URL = other.Source.URL
	}
	if other.Source.MaxContentChars != 0 {
		c.Source.MaxContentChars = other.Source.MaxContentChars
	}
	if other.Source.UserAgent != "" {
		c.Source.UserAgent = other.Source.UserAgent
	}
	if other.Source.Timeout != 0 {
		c.Source.Timeout = other.Source.Timeout
	}

	// Chunking
	if other.Chunking.Size != 0 {
		c.Chunking.Size = other.Chunking.Size
	}
	if other.Chunking.Overlap != 0 {
		c.Chunking.Overlap = other.Chunking.Overlap
	}

	// Model
	if other.Model.Provider != "" {
		c.Model.Provider = other.Model.Provider
	}
	if other.Model.Default != "" {
		c.Model.Default = other.Model.Default
	}
	if other.Model.Endpoint != "" {
		c.Model.Endpoint = other.Model.Endpoint
	}
	if other.Model.Temperature != 0 {
		c.Model.Temperature = other.Model.Temperature
	}
	if other.Model.Timeout != 0 {
		c.Model.Timeout = other.Model.Timeout
	}

	// Output
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
}
