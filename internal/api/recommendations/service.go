package recommendations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/smart-tour/app/observability/metrics"
	"github.com/FACorreiaa/smart-tour/config"
	generativeAI "github.com/FACorreiaa/smart-tour/internal/api/generative_ai"
	"github.com/FACorreiaa/smart-tour/internal/api/places"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service turns travel preferences into recommendation text and mappable places.
type Service interface {
	Recommend(ctx context.Context, prefs types.UserPreferences) (*types.RecommendationResult, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Extractor is satisfied by *places.Extractor.
type Extractor interface {
	Extract(ctx context.Context, text string) places.Result
}

type ServiceImpl struct {
	generator generativeAI.Generator
	extractor Extractor
	cfg       config.GeminiConfig
	metrics   *metrics.AppMetrics
	logger    *slog.Logger
}

// NewServiceImpl accepts a nil generator; calls then fail with a configuration error.
func NewServiceImpl(generator generativeAI.Generator, extractor Extractor, cfg config.GeminiConfig, m *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		generator: generator,
		extractor: extractor,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
	}
}

func (s *ServiceImpl) Recommend(ctx context.Context, prefs types.UserPreferences) (*types.RecommendationResult, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "Recommend", trace.WithAttributes(
		attribute.String("preferences.place_type", prefs.PlaceType),
		attribute.String("preferences.season", prefs.Season),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Recommend"))
	start := time.Now()
	outcome := "error"
	defer func() {
		s.metrics.RecordRecommendation(ctx, outcome, time.Since(start).Seconds())
	}()

	prefs = types.UserPreferences{
		PlaceType: strings.TrimSpace(prefs.PlaceType),
		Budget:    strings.TrimSpace(prefs.Budget),
		Season:    strings.TrimSpace(prefs.Season),
		Source:    strings.TrimSpace(prefs.Source),
	}
	if field := prefs.Missing(); field != "" {
		outcome = "missing_parameter"
		span.SetStatus(codes.Error, "missing parameter")
		return nil, &types.MissingParameterError{Field: field}
	}

	prompt := buildRecommendationPrompt(prefs.PlaceType, prefs.Budget, prefs.Season, prefs.Source)
	gc := generativeAI.NewContentConfig(s.cfg, s.cfg.MaxOutputTokens, s.cfg.SearchGrounding)

	text, err := s.generate(ctx, prompt, gc)
	if err != nil {
		outcome = outcomeFor(err)
		l.ErrorContext(ctx, "Recommendation generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, err
	}

	res := s.extractor.Extract(ctx, text)
	if res.Degraded() {
		outcome = "degraded"
		l.WarnContext(ctx, "Falling back to default places", slog.Any("failure", res.Failure))
	} else {
		outcome = "ok"
	}

	result := &types.RecommendationResult{
		Recommendations: text,
		Places:          res.PlacesOrDefault(),
	}
	span.SetAttributes(attribute.Int("places.count", len(result.Places)))
	span.SetStatus(codes.Ok, "recommendation generated")
	l.InfoContext(ctx, "Recommendation generated", slog.Int("places", len(result.Places)), slog.Bool("degraded", res.Degraded()))
	return result, nil
}

func (s *ServiceImpl) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GenerateText")
	defer span.End()

	if strings.TrimSpace(prompt) == "" {
		return "", &types.MissingParameterError{Field: "prompt"}
	}

	text, err := s.generate(ctx, prompt, generativeAI.NewContentConfig(s.cfg, s.cfg.GenerateTokens, false))
	if err != nil {
		s.logger.ErrorContext(ctx, "Text generation failed", slog.String("method", "GenerateText"), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return "", err
	}
	return text, nil
}

// generate walks the candidate models once, in order, and returns the first success.
func (s *ServiceImpl) generate(ctx context.Context, prompt string, gc *genai.GenerateContentConfig) (string, error) {
	if s.cfg.APIKey == "" || s.generator == nil {
		return "", fmt.Errorf("%w: gemini api key is not set", types.ErrConfiguration)
	}

	var lastErr error
	for _, model := range s.cfg.Models {
		text, err := s.generator.GenerateContent(ctx, model, prompt, gc)
		if err != nil {
			s.metrics.RecordModelAttempt(ctx, model, "error")
			s.logger.WarnContext(ctx, "Model call failed, trying next candidate", slog.String("model", model), slog.Any("error", err))
			lastErr = err
			continue
		}
		s.metrics.RecordModelAttempt(ctx, model, "ok")
		return text, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no candidate models configured")
	}
	return "", fmt.Errorf("%w: %w", types.ErrUpstream, lastErr)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, types.ErrConfiguration):
		return "configuration"
	case errors.Is(err, types.ErrUpstream):
		return "upstream"
	default:
		return "error"
	}
}
