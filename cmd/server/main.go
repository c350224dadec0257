package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/affiliate"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/config"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/content"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/generator"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/handler"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/keywords"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/logger"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/middleware"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/publisher"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/repository"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/service"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/validator"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Affiliate catalog
	catalog := affiliate.DefaultCatalog()
	if cfg.AffiliateCatalogPath != "" {
		catalog, err = affiliate.LoadCatalog(cfg.AffiliateCatalogPath)
		if err != nil {
			logger.Fatal("Failed to load affiliate catalog",
				slog.String("path", cfg.AffiliateCatalogPath),
				slog.String("error", err.Error()))
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := affiliate.NewSelector(catalog, rng)
	injector := content.NewInjector()

	// In-memory article store
	store := repository.NewMemoryArticleStore(selector, injector, cfg.MaxAffiliateLinks)

	// Text generator
	var gen generator.Generator
	switch cfg.GeneratorProvider {
	case "openai":
		gen = generator.NewOpenAIGenerator(cfg.OpenAIAPIKey)
	default:
		gen = generator.NewAnthropicGenerator(cfg.AnthropicAPIKey)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	// WordPress publisher
	pub := publisher.NewWordPressPublisher(httpClient, cfg.WPSiteURL, cfg.WPUsername, cfg.WPAppPassword)

	// Keyword discovery falls back to intent templates without an API key
	var discoverer keywords.Discoverer
	if cfg.SerpAPIKey != "" {
		discoverer = keywords.NewSerpDiscoverer(httpClient, cfg.SerpBaseURL, cfg.SerpAPIKey)
	} else {
		logger.Warn("SERP_API_KEY not set, using template keyword discovery")
		discoverer = keywords.NewTemplateDiscoverer()
	}

	v := validator.NewValidator()

	pipelineService := service.NewPipelineService(store, gen, pub, discoverer, v)

	pipelineHandler := handler.NewPipelineHandler(pipelineService)
	healthHandler := handler.NewHealthHandler(version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/keywords", pipelineHandler.DiscoverKeywords)

		articles := v1.Group("/articles")
		{
			articles.POST("/generate", pipelineHandler.GenerateDraft)
			articles.POST("", pipelineHandler.CreateArticle)
			articles.GET("", pipelineHandler.ListArticles)
			articles.GET("/:id", pipelineHandler.GetArticle)
			articles.POST("/:id/preview", pipelineHandler.PreviewArticle)
			articles.POST("/:id/publish", pipelineHandler.PublishArticle)
		}

		v1.GET("/posts", pipelineHandler.ListPosts)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("generator", cfg.GeneratorProvider))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
