package vera

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/verahq/verachat/pkg/config"
	"github.com/verahq/verachat/pkg/transcript"
)

// openaiProvider talks to any OpenAI-compatible chat completions endpoint
// (llama.cpp server, vLLM, OpenAI itself).
type openaiProvider struct {
	client openai.Client
	model  openai.ChatModel
}

func newOpenAIProvider(cfg configpkg.Config) *openaiProvider {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &openaiProvider{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel(cfg.Model),
	}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Complete(ctx context.Context, turns []transcript.Turn) (string, error) {
	messages, err := toOpenAIMessages(turns)
	if err != nil {
		return "", err
	}

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    p.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// toOpenAIMessages converts transcript turns into API message params,
// preserving order.
func toOpenAIMessages(turns []transcript.Turn) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case transcript.RoleSystem:
			out = append(out, openai.SystemMessage(turn.Content))
		case transcript.RoleUser:
			out = append(out, openai.UserMessage(turn.Content))
		case transcript.RoleAssistant:
			out = append(out, openai.AssistantMessage(turn.Content))
		default:
			return nil, fmt.Errorf("invalid role %q", turn.Role)
		}
	}
	return out, nil
}
