package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"argo-assistant/config"
	_ "argo-assistant/docs" // Swagger docs
	"argo-assistant/internal/chat"
	chatHTTP "argo-assistant/internal/chat/delivery/http"
	"argo-assistant/internal/chat/provider"
	"argo-assistant/internal/chat/usecase"
	"argo-assistant/internal/conversation"
	"argo-assistant/internal/health"
	"argo-assistant/internal/httpserver"
	"argo-assistant/internal/middleware"
	"argo-assistant/internal/router"
	"argo-assistant/pkg/llmprovider"
	"argo-assistant/pkg/log"
	"argo-assistant/pkg/websearch"
)

// @title       ARGO Assistant API
// @description Chat dispatch service: keyword routing to AI completion, structured lookup and web search, with best-effort conversation logging.
// @version     1
// @host        localhost:5001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ARGO assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. AI completion (mandatory)
	llm, err := llmprovider.InitializeProvider(cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize AI completion provider: ", err)
		os.Exit(1)
	}
	llmManager := llmprovider.NewManager(llm, &llmprovider.Config{Timeout: cfg.Dispatch.ProviderTimeout}, logger)
	logger.Infof(ctx, "✅ AI completion: %s (%s)", llmManager.Name(), llmManager.Model())

	// 4. Conversation store (optional)
	store, closeStore := initStore(ctx, cfg, logger)
	defer closeStore()

	// 5. Web search (optional)
	var searcher websearch.Searcher
	if cfg.WebSearch.APIKey != "" {
		client, wsErr := websearch.New(websearch.Config{
			APIKey:            cfg.WebSearch.APIKey,
			BaseURL:           cfg.WebSearch.BaseURL,
			ResultCount:       cfg.WebSearch.ResultCount,
			RequestsPerSecond: cfg.WebSearch.RequestsPerSecond,
			CacheSize:         cfg.WebSearch.CacheSize,
			CacheTTL:          cfg.WebSearch.CacheTTL,
		})
		if wsErr != nil {
			logger.Warnf(ctx, "Web search not available (optional): %v", wsErr)
		} else {
			searcher = client
			logger.Info(ctx, "✅ Web search initialized")
		}
	} else {
		logger.Warn(ctx, "Web search skipped: WEB_SEARCH_API_KEY is missing")
	}

	// 6. Chat domain
	providers := map[router.Category]chat.ResponseProvider{
		router.CategoryAICompletion: provider.NewCompletion(llmManager, provider.CompletionOptions{
			SystemPrompt: cfg.LLM.SystemPrompt,
			MaxTokens:    cfg.LLM.MaxTokens,
			Temperature:  cfg.LLM.Temperature,
		}),
		router.CategoryStructuredLookup: provider.NewLookup(store, 0),
		router.CategoryWebSearch:        provider.NewSearch(searcher),
	}
	convLogger := conversation.New(logger, store, cfg.Dispatch.LogTimeout)
	chatUC := usecase.New(logger, router.New(), providers, convLogger, cfg.Dispatch.ProviderTimeout)

	// 7. Health
	healthReporter := health.New(health.Availability{
		AICompletion: cfg.LLM.APIKey != "",
		Store:        store != nil,
		WebSearch:    searcher != nil,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.CORS),
		ChatHandler:    chatHTTP.New(logger, chatUC),
		HealthReporter: healthReporter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
