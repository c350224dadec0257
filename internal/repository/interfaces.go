package repository

import (
	"context"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// ArticleStore defines the article storage contract consumed by the
// pipeline service. Implementations must serialize operations on the same
// article id.
type ArticleStore interface {
	// Create generates a fresh id, runs affiliate link selection and content
	// injection exactly once, stores the article as a draft and returns the
	// stored record (not a detached copy).
	Create(ctx context.Context, keyword, title, content, metaDescription string) (*domain.Article, error)
	// Get returns the article for id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Article, error)
	// List returns summaries of all articles in insertion order.
	List(ctx context.Context) []domain.ArticleSummary
	// Transition moves the article to the target status as one serialized
	// read-validate-commit unit. When commit is non-nil it runs while the
	// article is exclusively held; a commit error aborts the transition and
	// leaves the prior status in place.
	Transition(ctx context.Context, id string, to domain.Status, commit func(a *domain.Article) error) (*domain.Article, error)
}
