package providers

import (
	"context"
	"fmt"

	"pizzaiolo/internal/conversation"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Defaults match the original service parameters: bounded replies, moderately
// creative sampling.
const (
	DefaultMaxTokens   = 300
	DefaultTemperature = 0.7
)

// OpenAIProvider implements Provider backed by the OpenAI chat API.
type OpenAIProvider struct {
	client      *openai.LLM
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}, nil
}

// Complete submits the message list and returns the assistant's reply text.
func (p *OpenAIProvider) Complete(ctx context.Context, messages []conversation.Message) (string, error) {
	response, err := p.client.GenerateContent(ctx, toContent(messages),
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(p.temperature),
		llms.WithModel(p.model),
	)
	if err != nil {
		return "", &UpstreamError{Provider: "openai", Err: err}
	}

	if response == nil || len(response.Choices) == 0 {
		return "", &UpstreamError{Provider: "openai", Err: fmt.Errorf("empty response")}
	}

	return response.Choices[0].Content, nil
}

// SetTemperature adjusts sampling temperature for subsequent calls.
func (p *OpenAIProvider) SetTemperature(temp float64) {
	p.temperature = temp
}

// SetMaxTokens bounds reply length for subsequent calls.
func (p *OpenAIProvider) SetMaxTokens(tokens int) {
	p.maxTokens = tokens
}

// toContent converts chat messages to the langchaingo content format.
func toContent(messages []conversation.Message) []llms.MessageContent {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case "system":
			msgType = schema.ChatMessageTypeSystem
		case conversation.RoleAssistant:
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}
	return content
}
