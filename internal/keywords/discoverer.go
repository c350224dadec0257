// Package keywords turns a seed topic into candidate focus keywords.
package keywords

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// Discoverer produces candidate keywords for a seed topic. Discovery never
// touches article state.
type Discoverer interface {
	Discover(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error)
}

// maxSuggestions caps how many candidates a discovery call returns.
const maxSuggestions = 20

// SerpDiscoverer queries a SERP API and extracts keyword candidates from
// organic result titles.
type SerpDiscoverer struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewSerpDiscoverer wires an HTTP client; a nil client gets a default with
// a 30s timeout.
func NewSerpDiscoverer(client *http.Client, baseURL, apiKey string) *SerpDiscoverer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SerpDiscoverer{client: client, apiKey: apiKey, baseURL: baseURL}
}

type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// Discover searches for the topic and returns deduplicated result titles
// as keyword candidates.
func (d *SerpDiscoverer) Discover(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error) {
	query := url.Values{}
	query.Set("api_key", d.apiKey)
	query.Set("q", topic)
	query.Set("num", "50")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("serp returned %s: %s", resp.Status, msg)
	}

	var data serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode serp response: %w", err)
	}

	seen := map[string]struct{}{}
	suggestions := make([]domain.KeywordSuggestion, 0, maxSuggestions)
	for _, r := range data.OrganicResults {
		if len(suggestions) >= maxSuggestions {
			break
		}
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}

		if len(title) > 200 {
			title = title[:200]
		}
		snippet := r.Snippet
		if len(snippet) > 300 {
			snippet = snippet[:300]
		}
		suggestions = append(suggestions, domain.KeywordSuggestion{
			Keyword: title,
			URL:     r.Link,
			Snippet: snippet,
		})
	}

	return suggestions, nil
}

// TemplateDiscoverer expands a topic into fixed search-intent templates.
// It is pure and needs no API key, so it also serves as the fallback when
// no SERP key is configured.
type TemplateDiscoverer struct{}

// NewTemplateDiscoverer creates a TemplateDiscoverer.
func NewTemplateDiscoverer() *TemplateDiscoverer {
	return &TemplateDiscoverer{}
}

// Discover returns the intent-template expansion of the topic.
func (d *TemplateDiscoverer) Discover(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error) {
	return []domain.KeywordSuggestion{
		{Keyword: topic + " UK", Snippet: "UK-focused search"},
		{Keyword: "best " + topic, Snippet: "Best of searches"},
		{Keyword: topic + " prices", Snippet: "Price search intent"},
		{Keyword: "buy " + topic, Snippet: "Purchase intent"},
		{Keyword: topic + " near me", Snippet: "Local search"},
	}, nil
}
