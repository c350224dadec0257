package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// decodeDraft parses a model response into a Draft. Models sometimes wrap
// the JSON object in code fences or surrounding prose, so the first
// well-formed object is extracted before unmarshalling. Any failure is
// reported as GenerationFailed.
func decodeDraft(raw string) (*domain.Draft, error) {
	cleaned, err := extractJSON(raw)
	if err != nil {
		return nil, &domain.GenerationFailedError{Err: err}
	}

	var draft domain.Draft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("parse draft JSON: %w", err)}
	}

	if draft.Title == "" || draft.Content == "" {
		return nil, &domain.GenerationFailedError{Err: fmt.Errorf("draft missing title or content")}
	}

	return &draft, nil
}

// extractJSON returns the first JSON object found in content.
func extractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return content[start : end+1], nil
}
