// Package generator wraps the external text-generation collaborators. Two
// providers are supported; both return a structured draft for a keyword.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// Generator produces a structured article draft for a focus keyword.
// internalLinks are existing published posts the model should link to.
type Generator interface {
	Generate(ctx context.Context, keyword string, internalLinks []domain.PublishedPost) (*domain.Draft, error)
}

const systemPrompt = `You are an SEO content writer for NL Beauty, a UK beauty and skincare site.

Rules:
1. Write in English (UK)
2. NO unnecessary hyphens (e.g., "real time" not "real-time", "cutting edge" not "cutting-edge")
3. Write professionally for a beauty audience
4. Include 2-4 internal links naturally throughout the content
5. Include an FAQ section at the end
6. Output as JSON with: title, meta_description, content (HTML), focus_keyword

Output ONLY valid JSON, no markdown formatting.`

func buildUserPrompt(keyword string, internalLinks []domain.PublishedPost) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate an SEO optimised article for the keyword: %s\n", keyword)

	if len(internalLinks) > 0 {
		sb.WriteString("\nRelevant existing pages on the site for internal linking:\n")
		for i, p := range internalLinks {
			if i >= 10 {
				break
			}
			fmt.Fprintf(&sb, "- %s: %s\n", p.Title, p.URL)
		}
	}

	sb.WriteString("\nGenerate the article now.")
	return sb.String()
}
