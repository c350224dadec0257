package generator

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// OpenAIGenerator generates drafts through the OpenAI chat API.
type OpenAIGenerator struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIGenerator creates an OpenAI-backed generator.
func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// Generate requests a draft for the keyword and decodes the JSON response.
func (g *OpenAIGenerator) Generate(ctx context.Context, keyword string, internalLinks []domain.PublishedPost) (*domain.Draft, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(keyword, internalLinks)),
		},
	})
	if err != nil {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("openai API error: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("no response from openai")}
	}

	return decodeDraft(resp.Choices[0].Message.Content)
}
