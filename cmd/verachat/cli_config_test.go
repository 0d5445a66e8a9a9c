package main

import (
	"testing"

	configpkg "github.com/verahq/verachat/pkg/config"
)

func TestApplyEnvOverlaysNonEmptyValues(t *testing.T) {
	cfg := applyEnv(configpkg.DefaultConfig(), envConfig{
		ModelPath: "/opt/models/custom",
		Backend:   "ollama",
		APIKey:    "sk-test",
	})
	if cfg.ModelPath != "/opt/models/custom" {
		t.Fatalf("model path not applied: %q", cfg.ModelPath)
	}
	if cfg.Backend != "ollama" {
		t.Fatalf("backend not applied: %q", cfg.Backend)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("api key not applied: %q", cfg.APIKey)
	}
	if cfg.OllamaHost != configpkg.DefaultOllamaHost {
		t.Fatalf("untouched field changed: %q", cfg.OllamaHost)
	}
}

func TestApplyEnvKeepsDefaultsForEmptyValues(t *testing.T) {
	cfg := applyEnv(configpkg.DefaultConfig(), envConfig{})
	if cfg.ModelPath != configpkg.DefaultModelPath {
		t.Fatalf("default model path lost: %q", cfg.ModelPath)
	}
	if cfg.Backend != configpkg.BackendOpenAI {
		t.Fatalf("default backend lost: %q", cfg.Backend)
	}
}
