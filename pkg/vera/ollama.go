package vera

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollamaapi "github.com/ollama/ollama/api"

	configpkg "github.com/verahq/verachat/pkg/config"
	"github.com/verahq/verachat/pkg/transcript"
)

// ollamaProvider talks to a local Ollama daemon. The served model name is
// derived from the model path's base name.
type ollamaProvider struct {
	client *ollamaapi.Client
	model  string
}

func newOllamaProvider(cfg configpkg.Config) (*ollamaProvider, error) {
	host, err := url.Parse(cfg.OllamaHost)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host %q: %w", cfg.OllamaHost, err)
	}
	return &ollamaProvider{
		client: ollamaapi.NewClient(host, http.DefaultClient),
		model:  cfg.Model,
	}, nil
}

func (p *ollamaProvider) Name() string { return "ollama" }

func (p *ollamaProvider) Complete(ctx context.Context, turns []transcript.Turn) (string, error) {
	builder := &strings.Builder{}
	builder.Grow(1024)

	err := p.client.Chat(ctx, &ollamaapi.ChatRequest{
		Model:    p.model,
		Messages: toOllamaMessages(turns),
		Stream:   boolPtr(false),
	}, func(response ollamaapi.ChatResponse) error {
		builder.WriteString(response.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return builder.String(), nil
}

func toOllamaMessages(turns []transcript.Turn) []ollamaapi.Message {
	out := make([]ollamaapi.Message, len(turns))
	for i, turn := range turns {
		out[i] = ollamaapi.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		}
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}
