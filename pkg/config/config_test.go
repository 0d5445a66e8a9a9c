package config

import "testing"

func TestDefaultConfigUsesHardcodedModelPath(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ModelPath != DefaultModelPath {
		t.Fatalf("unexpected model path: %q", cfg.ModelPath)
	}
	if cfg.Backend != BackendOpenAI {
		t.Fatalf("unexpected backend: %q", cfg.Backend)
	}
}

func TestNormalizeTrimsAndDefaults(t *testing.T) {
	cfg := Normalize(Config{
		ModelPath: "  ",
		Backend:   " Ollama ",
		APIKey:    " key ",
	})
	if cfg.ModelPath != DefaultModelPath {
		t.Fatalf("empty model path not defaulted: %q", cfg.ModelPath)
	}
	if cfg.Backend != BackendOllama {
		t.Fatalf("backend not lowercased: %q", cfg.Backend)
	}
	if cfg.APIKey != "key" {
		t.Fatalf("api key not trimmed: %q", cfg.APIKey)
	}
	if cfg.OllamaHost != DefaultOllamaHost {
		t.Fatalf("ollama host not defaulted: %q", cfg.OllamaHost)
	}
}

func TestNormalizeDerivesModelNameFromPath(t *testing.T) {
	cfg := Normalize(Config{ModelPath: "/opt/models/vera-llm-3b/"})
	if cfg.Model != "vera-llm-3b" {
		t.Fatalf("unexpected derived model name: %q", cfg.Model)
	}
}

func TestNormalizeKeepsExplicitModelName(t *testing.T) {
	cfg := Normalize(Config{Model: "llama3.2:1b"})
	if cfg.Model != "llama3.2:1b" {
		t.Fatalf("explicit model name overwritten: %q", cfg.Model)
	}
}
