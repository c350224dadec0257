package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/logger"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/middleware"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/service"
)

// PipelineHandler handles article pipeline HTTP requests.
type PipelineHandler struct {
	svc service.PipelineServiceInterface
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(svc service.PipelineServiceInterface) *PipelineHandler {
	return &PipelineHandler{svc: svc}
}

// KeywordsRequest is the body for POST /api/v1/keywords.
type KeywordsRequest struct {
	Topic string `json:"topic"`
}

// GenerateRequest is the body for POST /api/v1/articles/generate.
type GenerateRequest struct {
	Keyword string `json:"keyword"`
}

// CreateArticleRequest is the body for POST /api/v1/articles.
type CreateArticleRequest struct {
	Keyword         string `json:"keyword"`
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Content         string `json:"content"`
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID              string                 `json:"id"`
	Keyword         string                 `json:"keyword"`
	Title           string                 `json:"title"`
	MetaDescription string                 `json:"meta_description"`
	Content         string                 `json:"content"`
	AffiliateLinks  []domain.AffiliateLink `json:"affiliate_links"`
	Status          string                 `json:"status"`
	PublishedRef    string                 `json:"published_ref,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Keyword:         a.Keyword,
		Title:           a.Title,
		MetaDescription: a.MetaDescription,
		Content:         a.Content,
		AffiliateLinks:  a.AffiliateLinks,
		Status:          string(a.Status),
		PublishedRef:    a.PublishedRef,
		CreatedAt:       a.CreatedAt.Format(TimeFormat),
		UpdatedAt:       a.UpdatedAt.Format(TimeFormat),
	}
}

// respondError maps pipeline errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.IsGenerationFailed(err), domain.IsPublishFailed(err):
		logger.WithRequestID(requestID).Error("collaborator call failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.WithRequestID(requestID).Error("request failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process request"})
	}
}

// DiscoverKeywords handles POST /api/v1/keywords
func (h *PipelineHandler) DiscoverKeywords(c *gin.Context) {
	var req KeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	suggestions, err := h.svc.DiscoverKeywords(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topic": req.Topic, "keywords": suggestions})
}

// GenerateDraft handles POST /api/v1/articles/generate
func (h *PipelineHandler) GenerateDraft(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.svc.GenerateDraft(c.Request.Context(), req.Keyword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// CreateArticle handles POST /api/v1/articles
func (h *PipelineHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.svc.CreateDraft(c.Request.Context(), req.Keyword, &domain.Draft{
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Content:         req.Content,
		FocusKeyword:    req.Keyword,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// ListArticles handles GET /api/v1/articles
func (h *PipelineHandler) ListArticles(c *gin.Context) {
	summaries := h.svc.ListArticles(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"articles": summaries})
}

// GetArticle handles GET /api/v1/articles/:id
func (h *PipelineHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// PreviewArticle handles POST /api/v1/articles/:id/preview
func (h *PipelineHandler) PreviewArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	payload, err := h.svc.Preview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// PublishArticle handles POST /api/v1/articles/:id/publish
func (h *PipelineHandler) PublishArticle(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.svc.Publish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ListPosts handles GET /api/v1/posts
func (h *PipelineHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPublishedPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
