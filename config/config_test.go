package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ollama", cfg.Model.Provider)
	assert.Equal(t, "gpt-oss:latest", cfg.Model.Default)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Model.Endpoint)
	assert.Equal(t, 2000, cfg.Chunking.Size)
	assert.Equal(t, 100, cfg.Chunking.Overlap)
	assert.Equal(t, 50000, cfg.Source.MaxContentChars)
	assert.Equal(t, "data.json", cfg.Output.Path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero chunk size",
			mutate:  func(c *Config) { c.Chunking.Size = 0 },
			wantErr: "chunking.size",
		},
		{
			name:    "overlap equals size",
			mutate:  func(c *Config) { c.Chunking.Overlap = c.Chunking.Size },
			wantErr: "chunking.overlap",
		},
		{
			name:    "negative overlap",
			mutate:  func(c *Config) { c.Chunking.Overlap = -1 },
			wantErr: "chunking.overlap",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.Model.Default = "" },
			wantErr: "model.default",
		},
		{
			name:    "missing provider",
			mutate:  func(c *Config) { c.Model.Provider = "" },
			wantErr: "model.provider",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.Model.Temperature = 1.5 },
			wantErr: "model.temperature",
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: "output.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsdig.yaml")
	content := `
source:
  url: https://example.org/news
chunking:
  size: 1500
model:
  default: qwen3:14b
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Explicit values applied, defaults preserved elsewhere
	assert.Equal(t, "https://example.org/news", cfg.Source.URL)
	assert.Equal(t, 1500, cfg.Chunking.Size)
	assert.Equal(t, 100, cfg.Chunking.Overlap)
	assert.Equal(t, "qwen3:14b", cfg.Model.Default)
	assert.Equal(t, "data.json", cfg.Output.Path)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Source:   SourceConfig{URL: "https://example.org/doc"},
		Chunking: ChunkingConfig{Size: 3000},
		Model:    ModelConfig{Provider: "openai", Timeout: time.Minute},
		Output:   OutputConfig{Path: "out/results.json"},
	})

	assert.Equal(t, "https://example.org/doc", base.Source.URL)
	assert.Equal(t, 3000, base.Chunking.Size)
	assert.Equal(t, 100, base.Chunking.Overlap, "zero overlap in overlay keeps default")
	assert.Equal(t, "openai", base.Model.Provider)
	assert.Equal(t, time.Minute, base.Model.Timeout)
	assert.Equal(t, "gpt-oss:latest", base.Model.Default)
	assert.Equal(t, "out/results.json", base.Output.Path)
}

func TestConfig_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Model.Default = "llama3.2"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", loaded.Model.Default)
	assert.Equal(t, cfg.Chunking, loaded.Chunking)
}
