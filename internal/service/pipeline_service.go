package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/generator"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/keywords"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/logger"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/metrics"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/publisher"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/repository"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/validator"
)

// internalLinkCandidates is how many existing posts are offered to the
// generator for internal linking.
const internalLinkCandidates = 50

// PipelineService orchestrates the article lifecycle: keyword discovery,
// draft generation, storage, preview and publishing. All validation and
// lookup errors are returned before any store mutation; external failures
// are translated at the call boundary and never leave an article in a
// half-transitioned status.
type PipelineService struct {
	store      repository.ArticleStore
	gen        generator.Generator
	pub        publisher.Publisher
	discoverer keywords.Discoverer
	validator  *validator.Validator
}

// NewPipelineService creates a PipelineService.
func NewPipelineService(
	store repository.ArticleStore,
	gen generator.Generator,
	pub publisher.Publisher,
	discoverer keywords.Discoverer,
	v *validator.Validator,
) *PipelineService {
	return &PipelineService{
		store:      store,
		gen:        gen,
		pub:        pub,
		discoverer: discoverer,
		validator:  v,
	}
}

// DiscoverKeywords returns keyword candidates for a topic.
func (s *PipelineService) DiscoverKeywords(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error) {
	if err := s.validator.ValidateTopic(topic); err != nil {
		return nil, &domain.ValidationError{Err: err}
	}

	start := time.Now()
	suggestions, err := s.discoverer.Discover(ctx, topic)
	metrics.ObserveCollaboratorCall("keywords", start, err)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "discovered keywords",
		slog.String("topic", topic),
		slog.Int("count", len(suggestions)))
	return suggestions, nil
}

// GenerateDraft asks the text generator for a draft. Existing CMS posts
// are offered as internal-linking candidates on a best-effort basis; a
// failing post listing never blocks generation.
func (s *PipelineService) GenerateDraft(ctx context.Context, keyword string) (*domain.Draft, error) {
	if err := s.validator.ValidateKeyword(keyword); err != nil {
		return nil, &domain.ValidationError{Err: err}
	}

	internalLinks, err := s.pub.ListPosts(ctx, internalLinkCandidates)
	if err != nil {
		logger.WarnContext(ctx, "listing posts for internal links failed",
			slog.String("error", err.Error()))
		internalLinks = nil
	}

	start := time.Now()
	draft, err := s.gen.Generate(ctx, keyword, internalLinks)
	metrics.ObserveCollaboratorCall("generator", start, err)
	if err != nil {
		return nil, err
	}

	if draft.FocusKeyword == "" {
		draft.FocusKeyword = keyword
	}

	logger.InfoContext(ctx, "generated draft",
		slog.String("keyword", keyword),
		slog.String("title", draft.Title))
	return draft, nil
}

// CreateDraft validates the submission and stores it as a draft article.
// Affiliate link selection and injection happen exactly once, here.
func (s *PipelineService) CreateDraft(ctx context.Context, keyword string, draft *domain.Draft) (*domain.Article, error) {
	if err := s.validator.ValidateDraftSubmission(keyword, draft); err != nil {
		return nil, &domain.ValidationError{Err: err}
	}

	article, err := s.store.Create(ctx, keyword, draft.Title, draft.Content, draft.MetaDescription)
	if err != nil {
		return nil, err
	}

	metrics.ObserveArticleCreated(len(article.AffiliateLinks))
	logger.WithArticleID(article.ID).InfoContext(ctx, "draft created",
		slog.String("keyword", keyword),
		slog.Int("affiliate_links", len(article.AffiliateLinks)))
	return article, nil
}

// ListArticles returns summaries in insertion order.
func (s *PipelineService) ListArticles(ctx context.Context) []domain.ArticleSummary {
	return s.store.List(ctx)
}

// GetArticle returns one article by id.
func (s *PipelineService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.store.Get(ctx, id)
}

// Preview returns a preview snapshot of the article. A draft moves to
// previewed; previewing again is idempotent. Content is never mutated.
func (s *PipelineService) Preview(ctx context.Context, id string) (*domain.PreviewPayload, error) {
	article, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if article.Status == domain.StatusDraft {
		transitioned, err := s.store.Transition(ctx, id, domain.StatusPreviewed, nil)
		metrics.ObserveTransition(string(domain.StatusPreviewed), err)
		if err == nil {
			article = transitioned
		} else if !domain.IsInvalidTransition(err) {
			return nil, err
		}
		// a concurrent preview already moved it forward; keep going
	}

	return &domain.PreviewPayload{
		ID:              article.ID,
		Title:           article.Title,
		MetaDescription: article.MetaDescription,
		Content:         article.Content,
		FocusKeyword:    article.Keyword,
		Slug:            Slug(article.Keyword),
		AffiliateLinks:  article.AffiliateLinks,
		Status:          article.Status,
	}, nil
}

// Publish pushes the article to the publishing backend and transitions it
// to published. The external call runs inside the store's per-article
// transition unit, so racing publishers trigger at most one CMS call.
// Publishing an already-published article is an idempotent no-op returning
// the stored record; a failed backend call leaves the status untouched.
func (s *PipelineService) Publish(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status == domain.StatusPublished {
		return article, nil
	}

	slug := Slug(article.Keyword)

	published, err := s.store.Transition(ctx, id, domain.StatusPublished, func(a *domain.Article) error {
		start := time.Now()
		result, pubErr := s.pub.Publish(ctx, publisher.PublishRequest{
			Slug:            slug,
			Title:           a.Title,
			Content:         a.Content,
			MetaDescription: a.MetaDescription,
			FocusKeyword:    a.Keyword,
		})
		metrics.ObserveCollaboratorCall("publisher", start, pubErr)
		if pubErr != nil {
			return &domain.PublishFailedError{Err: pubErr}
		}
		a.PublishedRef = result.ExternalID
		return nil
	})
	metrics.ObserveTransition(string(domain.StatusPublished), err)
	if err != nil {
		if domain.IsInvalidTransition(err) {
			// lost the race to another publisher; return its result
			if current, getErr := s.store.Get(ctx, id); getErr == nil && current.Status == domain.StatusPublished {
				return current, nil
			}
		}
		return nil, err
	}

	logger.WithArticleID(published.ID).InfoContext(ctx, "article published",
		slog.String("slug", slug),
		slog.String("published_ref", published.PublishedRef))
	return published, nil
}

// ListPublishedPosts returns existing CMS posts for internal linking.
func (s *PipelineService) ListPublishedPosts(ctx context.Context) ([]domain.PublishedPost, error) {
	start := time.Now()
	posts, err := s.pub.ListPosts(ctx, internalLinkCandidates)
	metrics.ObserveCollaboratorCall("publisher", start, err)
	if err != nil {
		return nil, err
	}
	return posts, nil
}
