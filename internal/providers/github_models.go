package providers

import (
	"context"
	"fmt"
	"os"

	"pizzaiolo/internal/conversation"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GitHubModelsProvider implements Provider via GitHub Models, which exposes
// an OpenAI-compatible API. Useful for development without an OpenAI key.
type GitHubModelsProvider struct {
	client      *openai.LLM
	model       string
	temperature float64
	maxTokens   int
}

// NewGitHubModelsProvider creates a GitHub Models provider. Requires
// GITHUB_TOKEN in the environment.
func NewGitHubModelsProvider(model string) (*GitHubModelsProvider, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is required for GitHub Models")
	}

	client, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL("https://models.inference.ai.azure.com"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Models client: %w", err)
	}

	return &GitHubModelsProvider{
		client:      client,
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}, nil
}

// Complete submits the message list and returns the assistant's reply text.
func (p *GitHubModelsProvider) Complete(ctx context.Context, messages []conversation.Message) (string, error) {
	response, err := p.client.GenerateContent(ctx, toContent(messages),
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(p.temperature),
		llms.WithModel(p.model),
	)
	if err != nil {
		return "", &UpstreamError{Provider: "github_models", Err: err}
	}

	if response == nil || len(response.Choices) == 0 {
		return "", &UpstreamError{Provider: "github_models", Err: fmt.Errorf("empty response")}
	}

	return response.Choices[0].Content, nil
}

// SetTemperature adjusts sampling temperature for subsequent calls.
func (p *GitHubModelsProvider) SetTemperature(temp float64) {
	p.temperature = temp
}

// SetMaxTokens bounds reply length for subsequent calls.
func (p *GitHubModelsProvider) SetMaxTokens(tokens int) {
	p.maxTokens = tokens
}
