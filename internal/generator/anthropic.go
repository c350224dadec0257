package generator

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// AnthropicGenerator generates drafts through the Anthropic messages API.
type AnthropicGenerator struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropicGenerator creates an Anthropic-backed generator.
func NewAnthropicGenerator(apiKey string) *AnthropicGenerator {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGenerator{
		client: &client,
		model:  anthropic.ModelClaudeSonnet4_0,
	}
}

// Generate requests a draft for the keyword and decodes the JSON response.
func (g *AnthropicGenerator) Generate(ctx context.Context, keyword string, internalLinks []domain.PublishedPost) (*domain.Draft, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: 4000,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(keyword, internalLinks))),
		},
	})
	if err != nil {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("anthropic API error: %w", err)}
	}

	if len(resp.Content) == 0 {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("no response from anthropic")}
	}

	return decodeDraft(resp.Content[0].Text)
}
