package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/smart-tour/app/observability/metrics"
	"github.com/FACorreiaa/smart-tour/config"
	"github.com/FACorreiaa/smart-tour/internal/api/brochure"
	llmChat "github.com/FACorreiaa/smart-tour/internal/api/chat_prompt"
	"github.com/FACorreiaa/smart-tour/internal/api/gazetteer"
	generativeAI "github.com/FACorreiaa/smart-tour/internal/api/generative_ai"
	"github.com/FACorreiaa/smart-tour/internal/api/geocoding"
	"github.com/FACorreiaa/smart-tour/internal/api/places"
	"github.com/FACorreiaa/smart-tour/internal/api/recommendations"
	travelMap "github.com/FACorreiaa/smart-tour/internal/api/travel_map"
)

// Container holds all application dependencies
type Container struct {
	Config                 *config.Config
	Logger                 *slog.Logger
	RecommendationsService *recommendations.ServiceImpl
	RecommendationsHandler *recommendations.HandlerImpl
	ChatHandler            *llmChat.HandlerImpl
	MapHandler             *travelMap.HandlerImpl
	BrochureHandler        *brochure.HandlerImpl
}

// NewContainer initializes and returns a new dependency container. A missing
// generative API key is not fatal: recommendation calls then fail with a
// configuration error.
func NewContainer(ctx context.Context, cfg *config.Config, m *metrics.AppMetrics, logger *slog.Logger) (*Container, error) {
	var generator generativeAI.Generator
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.APIKey, logger)
	if err != nil {
		logger.Warn("Generative AI client unavailable, recommendations will fail until a key is configured", slog.Any("error", err))
	} else {
		generator = aiClient
	}
	return Build(cfg, generator, m, logger)
}

// Build wires the services around an already constructed generator, which may be nil.
func Build(cfg *config.Config, generator generativeAI.Generator, m *metrics.AppMetrics, logger *slog.Logger) (*Container, error) {
	if cfg.Geocoding.APIKey == "" {
		logger.Warn("Geocoding API key not set, coordinates will come from the gazetteer only")
	}
	geocoder := geocoding.NewClient(cfg.Geocoding, logger)
	extractor := places.NewExtractor(geocoder, gazetteer.Default(), cfg.Extractor.MaxConcurrency, m, logger)

	recommendationsService := recommendations.NewServiceImpl(generator, extractor, cfg.Gemini, m, logger)
	recommendationsHandler := recommendations.NewHandlerImpl(recommendationsService, logger)

	chatRepo := llmChat.NewRepositoryImpl(cfg.Chat.SessionTTL, cfg.Chat.CleanupInterval, logger)
	chatService := llmChat.NewServiceImpl(chatRepo, recommendationsService, llmChat.NewValidator(cfg.Chat.MinBudgetINR), m, logger)
	chatHandler := llmChat.NewHandlerImpl(chatService, logger)

	renderer, err := travelMap.NewRenderer()
	if err != nil {
		logger.Error("Failed to initialise map renderer", slog.Any("error", err))
		return nil, err
	}
	mapHandler := travelMap.NewHandlerImpl(chatService, renderer, logger)

	brochureService := brochure.NewServiceImpl(chatService, cfg.Brochure, logger)
	brochureHandler := brochure.NewHandlerImpl(brochureService, logger)

	return &Container{
		Config:                 cfg,
		Logger:                 logger,
		RecommendationsService: recommendationsService,
		RecommendationsHandler: recommendationsHandler,
		ChatHandler:            chatHandler,
		MapHandler:             mapHandler,
		BrochureHandler:        brochureHandler,
	}, nil
}
