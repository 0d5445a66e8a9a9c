// Package config holds runtime configuration for the chat harness.
package config

import (
	"path/filepath"
	"strings"
)

// Inference backends understood by the wrapper.
const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
)

// DefaultModelPath locates the model artifacts when nothing overrides it.
// A bare invocation of the harness uses exactly this path.
const DefaultModelPath = "models/vera-llm-3b"

// DefaultOllamaHost is where a local Ollama daemon listens.
const DefaultOllamaHost = "http://127.0.0.1:11434"

// Config holds all runtime configuration for the harness.
type Config struct {
	ModelPath string
	Backend   string
	Verbose   bool

	// OpenAI-compatible backend settings.
	APIKey  string
	BaseURL string
	Model   string

	// Ollama backend settings.
	OllamaHost string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		ModelPath:  DefaultModelPath,
		Backend:    BackendOpenAI,
		OllamaHost: DefaultOllamaHost,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.ModelPath = strings.TrimSpace(cfg.ModelPath)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.OllamaHost = strings.TrimSpace(cfg.OllamaHost)

	if cfg.ModelPath == "" {
		cfg.ModelPath = DefaultModelPath
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendOpenAI
	}
	if cfg.OllamaHost == "" {
		cfg.OllamaHost = DefaultOllamaHost
	}
	if cfg.Model == "" {
		cfg.Model = ModelName(cfg.ModelPath)
	}
	return cfg
}

// ModelName derives the served model name from the model path's base name.
// The path itself is never checked for existence.
func ModelName(modelPath string) string {
	return filepath.Base(filepath.Clean(modelPath))
}
