package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	RecommendationsTotal    metric.Int64Counter
	RecommendationDuration  metric.Float64Histogram
	ModelAttemptsTotal      metric.Int64Counter
	GeocodeResolutionsTotal metric.Int64Counter
	ExtractionDegradedTotal metric.Int64Counter
	ConversationTurnsTotal  metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("SmartTour")
		var err error
		m := &AppMetrics{}

		m.RecommendationsTotal, err = meter.Int64Counter(
			"recommendations_total",
			metric.WithDescription("Total number of recommendation requests by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create recommendations_total: %v", err)
		}

		m.RecommendationDuration, err = meter.Float64Histogram(
			"recommendation_duration_seconds",
			metric.WithDescription("Duration of the generate-extract-geocode pipeline in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create recommendation_duration_seconds: %v", err)
		}

		m.ModelAttemptsTotal, err = meter.Int64Counter(
			"model_attempts_total",
			metric.WithDescription("Generative model calls by model and outcome"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_attempts_total: %v", err)
		}

		m.GeocodeResolutionsTotal, err = meter.Int64Counter(
			"geocode_resolutions_total",
			metric.WithDescription("Place name resolutions by coordinate source"),
			metric.WithUnit("{place}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_resolutions_total: %v", err)
		}

		m.ExtractionDegradedTotal, err = meter.Int64Counter(
			"extraction_degraded_total",
			metric.WithDescription("Extractions that fell back to the default place list"),
			metric.WithUnit("{extraction}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create extraction_degraded_total: %v", err)
		}

		m.ConversationTurnsTotal, err = meter.Int64Counter(
			"conversation_turns_total",
			metric.WithDescription("Chat turns handled by conversation state"),
			metric.WithUnit("{turn}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create conversation_turns_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// The Record helpers are nil-safe so services can run without metrics in tests.

func (m *AppMetrics) RecordRecommendation(ctx context.Context, outcome string, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.RecommendationsTotal.Add(ctx, 1, attrs)
	m.RecommendationDuration.Record(ctx, seconds, attrs)
}

func (m *AppMetrics) RecordModelAttempt(ctx context.Context, model, outcome string) {
	if m == nil {
		return
	}
	m.ModelAttemptsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("outcome", outcome),
	))
}

func (m *AppMetrics) RecordGeocode(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.GeocodeResolutionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (m *AppMetrics) RecordDegraded(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.ExtractionDegradedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *AppMetrics) RecordTurn(ctx context.Context, state string) {
	if m == nil {
		return
	}
	m.ConversationTurnsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("state", state)))
}
