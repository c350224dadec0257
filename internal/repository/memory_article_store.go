package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/affiliate"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/content"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// MemoryArticleStore keeps every article in process memory for the process
// lifetime. Articles are never destroyed; durability is out of scope.
type MemoryArticleStore struct {
	selector *affiliate.Selector
	injector *content.Injector
	maxLinks int

	mu       sync.RWMutex
	articles map[string]*articleEntry
	order    []string
}

// articleEntry pairs an article with the mutex that serializes all
// read-modify-write operations on its id. The lock is held across the
// whole transition unit, including any external call made by the commit
// callback, so two racing publishers can never both reach the backend.
type articleEntry struct {
	mu      sync.Mutex
	article *domain.Article
}

// NewMemoryArticleStore creates an empty store. maxLinks caps how many
// affiliate links each article is created with; values below 1 fall back
// to the default cap.
func NewMemoryArticleStore(selector *affiliate.Selector, injector *content.Injector, maxLinks int) *MemoryArticleStore {
	if maxLinks < 1 {
		maxLinks = affiliate.DefaultMaxLinks
	}
	return &MemoryArticleStore{
		selector: selector,
		injector: injector,
		maxLinks: maxLinks,
		articles: make(map[string]*articleEntry),
	}
}

// Create builds and stores a new draft. Link selection and injection run
// exactly once, before the article becomes visible to other callers.
func (s *MemoryArticleStore) Create(ctx context.Context, keyword, title, articleContent, metaDescription string) (*domain.Article, error) {
	links := s.selector.SelectLinks(keyword, s.maxLinks)

	injected, err := s.injector.InjectLinks(articleContent, links)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:              uuid.New().String(),
		Keyword:         keyword,
		Title:           title,
		MetaDescription: metaDescription,
		Content:         injected,
		AffiliateLinks:  links,
		Status:          domain.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	s.articles[article.ID] = &articleEntry{article: article}
	s.order = append(s.order, article.ID)
	s.mu.Unlock()

	return article, nil
}

// Get returns the stored article for id.
func (s *MemoryArticleStore) Get(ctx context.Context, id string) (*domain.Article, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.article, nil
}

// List returns article summaries in insertion order.
func (s *MemoryArticleStore) List(ctx context.Context) []domain.ArticleSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]domain.ArticleSummary, 0, len(s.order))
	for _, id := range s.order {
		entry := s.articles[id]
		entry.mu.Lock()
		summaries = append(summaries, entry.article.Summary())
		entry.mu.Unlock()
	}
	return summaries
}

// Transition moves the article forward to the target status. The article
// lock is held for the whole unit, so at most one of two racing callers
// passes the status check, runs commit and mutates the record.
func (s *MemoryArticleStore) Transition(ctx context.Context, id string, to domain.Status, commit func(a *domain.Article) error) (*domain.Article, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !domain.CanTransition(entry.article.Status, to) {
		return nil, &domain.InvalidTransitionError{From: entry.article.Status, To: to}
	}

	if commit != nil {
		if err := commit(entry.article); err != nil {
			return nil, err
		}
	}

	entry.article.Status = to
	entry.article.UpdatedAt = time.Now().UTC()
	return entry.article, nil
}

func (s *MemoryArticleStore) entry(id string) (*articleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}
