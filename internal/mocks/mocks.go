// Package mocks provides testify mocks for the pipeline's interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/publisher"
)

// MockGenerator mocks generator.Generator.
type MockGenerator struct {
	mock.Mock
}

// NewMockGenerator creates a MockGenerator that asserts its expectations
// on test cleanup.
func NewMockGenerator(t *testing.T) *MockGenerator {
	m := &MockGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGenerator) Generate(ctx context.Context, keyword string, internalLinks []domain.PublishedPost) (*domain.Draft, error) {
	args := m.Called(ctx, keyword, internalLinks)
	var draft *domain.Draft
	if args.Get(0) != nil {
		draft = args.Get(0).(*domain.Draft)
	}
	return draft, args.Error(1)
}

// MockPublisher mocks publisher.Publisher.
type MockPublisher struct {
	mock.Mock
}

// NewMockPublisher creates a MockPublisher that asserts its expectations
// on test cleanup.
func NewMockPublisher(t *testing.T) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPublisher) Publish(ctx context.Context, req publisher.PublishRequest) (*publisher.PublishResult, error) {
	args := m.Called(ctx, req)
	var result *publisher.PublishResult
	if args.Get(0) != nil {
		result = args.Get(0).(*publisher.PublishResult)
	}
	return result, args.Error(1)
}

func (m *MockPublisher) ListPosts(ctx context.Context, perPage int) ([]domain.PublishedPost, error) {
	args := m.Called(ctx, perPage)
	var posts []domain.PublishedPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.PublishedPost)
	}
	return posts, args.Error(1)
}

// MockDiscoverer mocks keywords.Discoverer.
type MockDiscoverer struct {
	mock.Mock
}

// NewMockDiscoverer creates a MockDiscoverer that asserts its expectations
// on test cleanup.
func NewMockDiscoverer(t *testing.T) *MockDiscoverer {
	m := &MockDiscoverer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDiscoverer) Discover(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error) {
	args := m.Called(ctx, topic)
	var suggestions []domain.KeywordSuggestion
	if args.Get(0) != nil {
		suggestions = args.Get(0).([]domain.KeywordSuggestion)
	}
	return suggestions, args.Error(1)
}

// MockPipelineService mocks service.PipelineServiceInterface.
type MockPipelineService struct {
	mock.Mock
}

// NewMockPipelineService creates a MockPipelineService that asserts its
// expectations on test cleanup.
func NewMockPipelineService(t *testing.T) *MockPipelineService {
	m := &MockPipelineService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPipelineService) DiscoverKeywords(ctx context.Context, topic string) ([]domain.KeywordSuggestion, error) {
	args := m.Called(ctx, topic)
	var suggestions []domain.KeywordSuggestion
	if args.Get(0) != nil {
		suggestions = args.Get(0).([]domain.KeywordSuggestion)
	}
	return suggestions, args.Error(1)
}

func (m *MockPipelineService) GenerateDraft(ctx context.Context, keyword string) (*domain.Draft, error) {
	args := m.Called(ctx, keyword)
	var draft *domain.Draft
	if args.Get(0) != nil {
		draft = args.Get(0).(*domain.Draft)
	}
	return draft, args.Error(1)
}

func (m *MockPipelineService) CreateDraft(ctx context.Context, keyword string, draft *domain.Draft) (*domain.Article, error) {
	args := m.Called(ctx, keyword, draft)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockPipelineService) ListArticles(ctx context.Context) []domain.ArticleSummary {
	args := m.Called(ctx)
	var summaries []domain.ArticleSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.ArticleSummary)
	}
	return summaries
}

func (m *MockPipelineService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockPipelineService) Preview(ctx context.Context, id string) (*domain.PreviewPayload, error) {
	args := m.Called(ctx, id)
	var payload *domain.PreviewPayload
	if args.Get(0) != nil {
		payload = args.Get(0).(*domain.PreviewPayload)
	}
	return payload, args.Error(1)
}

func (m *MockPipelineService) Publish(ctx context.Context, id string) (*domain.Article, error) {
	args := m.Called(ctx, id)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockPipelineService) ListPublishedPosts(ctx context.Context) ([]domain.PublishedPost, error) {
	args := m.Called(ctx)
	var posts []domain.PublishedPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.PublishedPost)
	}
	return posts, args.Error(1)
}
