// README: Groq chat-completions backend via the OpenAI-compatible API.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider is the primary text-generation backend. Groq exposes the
// OpenAI chat-completions wire format, so the stock OpenAI client pointed at
// Groq's base URL is all it takes.
type GroqProvider struct {
	client openai.Client
	model  string
}

func NewGroqProvider(apiKey, model string) (*GroqProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("groq: missing api key")
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqProvider{client: client, model: model}, nil
}

func (p *GroqProvider) Name() string { return "groq" }

func (p *GroqProvider) Complete(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    toChatParams(messages),
		Temperature: openai.Float(float64(temperature)),
		MaxTokens:   openai.Int(int64(maxTokens)),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: API returned empty choices array")
	}
	return resp.Choices[0].Message.Content, nil
}

func toChatParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
