package service

import (
	"context"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// PipelineServiceInterface defines the article pipeline operations.
// Used for dependency injection and mocking in tests.
type PipelineServiceInterface interface {
	// DiscoverKeywords returns candidate keywords for a seed topic. No
	// article state is touched.
	DiscoverKeywords(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error)
	// GenerateDraft asks the text generator for draft fields. No article
	// state is touched; callers submit the (possibly edited) draft via
	// CreateDraft.
	GenerateDraft(ctx context.Context, keyword string) (*domain.Draft, error)
	// CreateDraft validates and stores a draft article with affiliate
	// links injected.
	CreateDraft(ctx context.Context, keyword string, draft *domain.Draft) (*domain.Article, error)
	// ListArticles returns summaries in insertion order.
	ListArticles(ctx context.Context) []domain.ArticleSummary
	// GetArticle returns one article by id.
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	// Preview returns a preview snapshot, moving a draft to previewed.
	Preview(ctx context.Context, id string) (*domain.PreviewPayload, error)
	// Publish pushes the article to the publishing backend and marks it
	// published. Publishing an already-published article is a no-op that
	// returns the stored record.
	Publish(ctx context.Context, id string) (*domain.Article, error)
	// ListPublishedPosts returns existing CMS posts for internal linking.
	ListPublishedPosts(ctx context.Context) ([]domain.PublishedPost, error)
}
