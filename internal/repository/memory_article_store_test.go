package repository_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/affiliate"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/content"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/repository"
)

func newTestStore() *repository.MemoryArticleStore {
	selector := affiliate.NewSelector(affiliate.DefaultCatalog(), rand.New(rand.NewSource(1)))
	return repository.NewMemoryArticleStore(selector, content.NewInjector(), affiliate.DefaultMaxLinks)
}

func TestMemoryArticleStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores draft with injected links", func(t *testing.T) {
		store := newTestStore()

		article, err := store.Create(ctx, "skincare serum", "T", "<p>intro</p><p>more</p>", "")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, article.Status)
		assert.NotEmpty(t, article.ID)
		assert.Equal(t, "skincare serum", article.Keyword)

		// disclaimer plus exactly one inline anchor, placed after the first paragraph
		assert.Contains(t, article.Content, content.DefaultDisclaimer)
		assert.Equal(t, 1, strings.Count(article.Content, "affiliate-link"))
		assert.Less(t, strings.Index(article.Content, "intro"), strings.Index(article.Content, "affiliate-link"))
		assert.Less(t, strings.Index(article.Content, "affiliate-link"), strings.Index(article.Content, "more"))

		// default offer first, elemis offer matched via "serum"
		require.Len(t, article.AffiliateLinks, 2)
		assert.Contains(t, article.AffiliateLinks[1].URL, "elemis.com")
	})

	t.Run("ids are unique across creates", func(t *testing.T) {
		store := newTestStore()

		seen := map[string]struct{}{}
		for i := 0; i < 25; i++ {
			article, err := store.Create(ctx, "hair oil", fmt.Sprintf("T%d", i), "<p>x</p>", "")
			require.NoError(t, err)
			_, dup := seen[article.ID]
			require.False(t, dup, "duplicate id %s", article.ID)
			seen[article.ID] = struct{}{}
		}
	})

	t.Run("returned article is the stored record", func(t *testing.T) {
		store := newTestStore()

		created, err := store.Create(ctx, "spf", "T", "<p>x</p>", "")
		require.NoError(t, err)

		_, err = store.Transition(ctx, created.ID, domain.StatusPreviewed, nil)
		require.NoError(t, err)

		// callers observe further mutations through the same record
		assert.Equal(t, domain.StatusPreviewed, created.Status)
	})
}

func TestMemoryArticleStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored article", func(t *testing.T) {
		store := newTestStore()
		created, err := store.Create(ctx, "spf", "T", "<p>x</p>", "meta")
		require.NoError(t, err)

		got, err := store.Get(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "meta", got.MetaDescription)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		store := newTestStore()

		_, err := store.Get(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemoryArticleStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	first, err := store.Create(ctx, "serum", "First", "<p>x</p>", "")
	require.NoError(t, err)
	second, err := store.Create(ctx, "shampoo", "Second", "<p>x</p>", "")
	require.NoError(t, err)

	summaries := store.List(ctx)

	require.Len(t, summaries, 2)
	assert.Equal(t, first.ID, summaries[0].ID)
	assert.Equal(t, second.ID, summaries[1].ID)
	assert.Equal(t, "First", summaries[0].Title)
	assert.Equal(t, domain.StatusDraft, summaries[1].Status)
}

func TestMemoryArticleStore_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("walks the full lifecycle forward", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)

		previewed, err := store.Transition(ctx, a.ID, domain.StatusPreviewed, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPreviewed, previewed.Status)

		published, err := store.Transition(ctx, a.ID, domain.StatusPublished, func(art *domain.Article) error {
			art.PublishedRef = "wp-42"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, published.Status)
		assert.Equal(t, "wp-42", published.PublishedRef)
	})

	t.Run("publish straight from draft is allowed", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)

		published, err := store.Transition(ctx, a.ID, domain.StatusPublished, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, published.Status)
	})

	t.Run("published is terminal", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)
		_, err = store.Transition(ctx, a.ID, domain.StatusPublished, nil)
		require.NoError(t, err)

		for _, to := range []domain.Status{domain.StatusDraft, domain.StatusPreviewed, domain.StatusPublished} {
			_, err := store.Transition(ctx, a.ID, to, nil)
			assert.True(t, domain.IsInvalidTransition(err), "expected invalid transition to %s", to)
		}
	})

	t.Run("backward transition is rejected without mutation", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)
		_, err = store.Transition(ctx, a.ID, domain.StatusPreviewed, nil)
		require.NoError(t, err)

		_, err = store.Transition(ctx, a.ID, domain.StatusDraft, nil)

		assert.True(t, domain.IsInvalidTransition(err))
		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPreviewed, got.Status)
	})

	t.Run("commit failure aborts the transition", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)

		boom := errors.New("cms unavailable")
		_, err = store.Transition(ctx, a.ID, domain.StatusPublished, func(*domain.Article) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.Empty(t, got.PublishedRef)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		store := newTestStore()

		_, err := store.Transition(ctx, "missing", domain.StatusPreviewed, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("concurrent publishes commit exactly once", func(t *testing.T) {
		store := newTestStore()
		a, err := store.Create(ctx, "serum", "T", "<p>x</p>", "")
		require.NoError(t, err)

		var commits int32
		var mu sync.Mutex
		results := make([]error, 0, 8)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Transition(ctx, a.ID, domain.StatusPublished, func(art *domain.Article) error {
					commits++ // guarded by the per-article lock
					art.PublishedRef = "wp-1"
					return nil
				})
				mu.Lock()
				results = append(results, err)
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), commits, "commit callback must run exactly once")

		var successes, invalid int
		for _, err := range results {
			switch {
			case err == nil:
				successes++
			case domain.IsInvalidTransition(err):
				invalid++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 7, invalid)
	})
}
