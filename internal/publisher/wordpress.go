// Package publisher talks to the publishing backend (a WordPress site via
// the REST v2 API). The pipeline hands it a pre-normalized slug and does
// not retry; retry policy belongs to callers of the HTTP API.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// PublishRequest carries everything the backend needs for one post.
type PublishRequest struct {
	Slug            string
	Title           string
	Content         string
	MetaDescription string
	FocusKeyword    string
}

// PublishResult is the backend's reference for a published post.
type PublishResult struct {
	ExternalID string
	URL        string
}

// Publisher is the publishing collaborator consumed by the pipeline.
type Publisher interface {
	Publish(ctx context.Context, req PublishRequest) (*PublishResult, error)
	ListPosts(ctx context.Context, perPage int) ([]domain.PublishedPost, error)
}

// WordPressPublisher publishes posts through the WordPress REST v2 API
// using application-password basic auth.
type WordPressPublisher struct {
	client   *http.Client
	siteURL  string
	username string
	password string
}

// NewWordPressPublisher wires an HTTP client; a nil client gets a default
// with a 30s timeout.
func NewWordPressPublisher(client *http.Client, siteURL, username, password string) *WordPressPublisher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &WordPressPublisher{
		client:   client,
		siteURL:  siteURL,
		username: username,
		password: password,
	}
}

type wpPostPayload struct {
	Title   string         `json:"title"`
	Slug    string         `json:"slug"`
	Content string         `json:"content"`
	Status  string         `json:"status"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type wpPostResponse struct {
	ID    int `json:"id"`
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Link string `json:"link"`
	Slug string `json:"slug"`
}

// Publish creates a published post and returns its external reference.
func (p *WordPressPublisher) Publish(ctx context.Context, req PublishRequest) (*PublishResult, error) {
	payload := wpPostPayload{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  "publish",
		Meta: map[string]any{
			"_yoast_wpseo_title":    req.Title,
			"_yoast_wpseo_metadesc": req.MetaDescription,
			"_yoast_wpseo_focuskw":  req.FocusKeyword,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode post: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.siteURL+"/wp-json/wp/v2/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.SetBasicAuth(p.username, p.password)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post to wordpress: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("wordpress returned %s: %s", resp.Status, msg)
	}

	var post wpPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &PublishResult{
		ExternalID: strconv.Itoa(post.ID),
		URL:        post.Link,
	}, nil
}

// ListPosts returns published posts for internal-linking candidates.
func (p *WordPressPublisher) ListPosts(ctx context.Context, perPage int) ([]domain.PublishedPost, error) {
	url := fmt.Sprintf("%s/wp-json/wp/v2/posts?per_page=%d&status=publish", p.siteURL, perPage)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.SetBasicAuth(p.username, p.password)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("wordpress returned %s: %s", resp.Status, msg)
	}

	var raw []wpPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.PublishedPost, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, domain.PublishedPost{
			ID:    r.ID,
			Title: r.Title.Rendered,
			URL:   r.Link,
			Slug:  r.Slug,
		})
	}
	return posts, nil
}
