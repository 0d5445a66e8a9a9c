package main

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	configpkg "github.com/verahq/verachat/pkg/config"
)

// envConfig maps the environment surface onto configuration fields. Every
// field is optional; a bare invocation runs on the hardcoded defaults.
type envConfig struct {
	ModelPath  string `env:"VERA_MODEL_PATH"`
	Backend    string `env:"VERA_BACKEND"`
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Model      string `env:"OPENAI_MODEL"`
	OllamaHost string `env:"OLLAMA_HOST"`
}

// parseCLIConfig loads .env + environment + flags into runtime config.
// Flags win over environment; environment wins over defaults.
func parseCLIConfig() (configpkg.Config, error) {
	_ = godotenv.Load()

	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return configpkg.Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg := applyEnv(configpkg.DefaultConfig(), env)

	modelPath := flag.String("model_path", cfg.ModelPath, "Path to the model artifacts")
	backend := flag.String("backend", cfg.Backend, "Inference backend: openai or ollama")
	verbose := flag.Bool("verbose", cfg.Verbose, "Verbose loop and wrapper logging")
	flag.Parse()

	cfg.ModelPath = *modelPath
	cfg.Backend = *backend
	cfg.Verbose = *verbose
	return configpkg.Normalize(cfg), nil
}

// applyEnv overlays non-empty environment values on the defaults.
func applyEnv(cfg configpkg.Config, env envConfig) configpkg.Config {
	if env.ModelPath != "" {
		cfg.ModelPath = env.ModelPath
	}
	if env.Backend != "" {
		cfg.Backend = env.Backend
	}
	if env.APIKey != "" {
		cfg.APIKey = env.APIKey
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
	if env.Model != "" {
		cfg.Model = env.Model
	}
	if env.OllamaHost != "" {
		cfg.OllamaHost = env.OllamaHost
	}
	return cfg
}
