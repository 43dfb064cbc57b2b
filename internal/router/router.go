package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/FACorreiaa/smart-tour/app/middleware"
	"github.com/FACorreiaa/smart-tour/config"
	"github.com/FACorreiaa/smart-tour/internal/api/brochure"
	llmChat "github.com/FACorreiaa/smart-tour/internal/api/chat_prompt"
	"github.com/FACorreiaa/smart-tour/internal/api/recommendations"
	travelMap "github.com/FACorreiaa/smart-tour/internal/api/travel_map"
)

// Config contains dependencies needed for the router setup
type Config struct {
	RecommendationsHandler *recommendations.HandlerImpl
	ChatHandler            *llmChat.HandlerImpl
	MapHandler             *travelMap.HandlerImpl
	BrochureHandler        *brochure.HandlerImpl
	MetricsHandler         http.Handler
	AllowedOrigins         []string
	RateLimit              config.RateLimitConfig
	Logger                 *slog.Logger
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request id, logger, recoverer) is applied in main.go
// before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(appMiddleware.Cors(cfg.AllowedOrigins))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		slog.InfoContext(r.Context(), "Root endpoint hit")
		_, _ = w.Write([]byte("Welcome to the Smart Tour API"))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	// routes that reach the generative API
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Logger))
		r.Post("/recommendations", cfg.RecommendationsHandler.Recommend)
		r.Post("/generate", cfg.RecommendationsHandler.Generate)
	})

	r.Get("/download-pdf", cfg.BrochureHandler.DownloadBrochure)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/map", cfg.MapHandler.BuildMap)

		r.Route("/chat/sessions", func(r chi.Router) {
			r.Post("/", cfg.ChatHandler.StartSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", cfg.ChatHandler.GetSession)
				r.Get("/map", cfg.MapHandler.SessionMap)
				r.Get("/itinerary.pdf", cfg.BrochureHandler.ItineraryPDF)
				r.With(appMiddleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Logger)).
					Post("/messages", cfg.ChatHandler.SendMessage)
			})
		})
	})

	return r
}
