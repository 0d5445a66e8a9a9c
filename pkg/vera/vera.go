// Package vera wraps a conversational model behind a pluggable inference
// provider and exposes the single blocking Generate operation the chat
// harness drives.
package vera

import (
	"context"
	"errors"
	"fmt"
	"strings"

	configpkg "github.com/verahq/verachat/pkg/config"
	loggerpkg "github.com/verahq/verachat/pkg/logger"
	"github.com/verahq/verachat/pkg/persona"
	"github.com/verahq/verachat/pkg/transcript"
)

// Vera holds the wrapper state: resolved config, the base system prompt
// assembled from the model directory, and the inference provider.
type Vera struct {
	config       configpkg.Config
	provider     Provider
	systemPrompt string

	logger  loggerpkg.Logger
	verbose bool
}

// New constructs the wrapper for the model at cfg.ModelPath. Construction
// failure is fatal to the caller; nothing here is retried.
func New(ctx context.Context, cfg configpkg.Config, opts ...Option) (*Vera, error) {
	cfg = configpkg.Normalize(cfg)
	d := deps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(cfg.Verbose, d.logger, "vera init", map[string]any{
		"model_path": cfg.ModelPath,
		"backend":    cfg.Backend,
		"model":      cfg.Model,
		"base_url":   cfg.BaseURL,
	})

	personas, err := persona.LoadFromDir(cfg.ModelPath)
	if err != nil {
		return nil, fatal("load personas", err)
	}
	loggerpkg.Debug(cfg.Verbose, d.logger, "personas loaded", map[string]any{
		"count": len(personas),
	})

	systemPrompt := persona.BuildSystemPrompt(personas)
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fatal("build system prompt", errors.New("system prompt is empty"))
	}

	provider := d.provider
	if provider == nil {
		provider, err = newProvider(cfg)
		if err != nil {
			return nil, fatal("build provider", err)
		}
	}
	loggerpkg.Debug(cfg.Verbose, d.logger, "provider ready", map[string]any{
		"name": provider.Name(),
	})

	return &Vera{
		config:       cfg,
		provider:     provider,
		systemPrompt: systemPrompt,
		logger:       d.logger,
		verbose:      cfg.Verbose,
	}, nil
}

// newProvider builds the backend client selected by cfg.Backend.
func newProvider(cfg configpkg.Config) (Provider, error) {
	switch cfg.Backend {
	case configpkg.BackendOpenAI:
		if cfg.APIKey == "" && cfg.BaseURL == "" {
			return nil, errors.New("OPENAI_API_KEY or OPENAI_BASE_URL is required for the openai backend")
		}
		return newOpenAIProvider(cfg), nil
	case configpkg.BackendOllama:
		return newOllamaProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// BaseSystemPrompt returns the prompt that seeds every transcript.
func (v *Vera) BaseSystemPrompt() string {
	return v.systemPrompt
}

// Generate forwards the full ordered transcript to the provider and blocks
// until it returns a reply. No timeout, no retry; any provider error is
// classified fatal and propagates.
func (v *Vera) Generate(ctx context.Context, turns []transcript.Turn) (string, error) {
	loggerpkg.Debug(v.verbose, v.logger, "generate", map[string]any{
		"turns":   len(turns),
		"backend": v.provider.Name(),
	})

	reply, err := v.provider.Complete(ctx, turns)
	if err != nil {
		return "", fatal("generate reply", err)
	}

	loggerpkg.Debug(v.verbose, v.logger, "generate done", map[string]any{
		"reply_bytes": len(reply),
	})
	return reply, nil
}
