package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/smart-tour/config"
)

var _ Generator = (*AIClient)(nil)

// Generator produces text for a prompt with a named model.
type Generator interface {
	GenerateContent(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

var ErrMissingAPIKey = errors.New("generative API key not configured")

type AIClient struct {
	client *genai.Client
	logger *slog.Logger
}

func NewAIClient(ctx context.Context, apiKey string, logger *slog.Logger) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if apiKey == "" {
		span.SetStatus(codes.Error, "API key not set")
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &AIClient{client: client, logger: logger}, nil
}

// GenerateContent runs a single non-streaming completion. A response without
// text parts yields "" and no error.
func (ai *AIClient) GenerateContent(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", model),
	))
	defer span.End()

	result, err := ai.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("model %s: %w", model, err)
	}

	text := FirstCandidateText(result)
	if text == "" {
		ai.logger.WarnContext(ctx, "Model returned no text", slog.String("model", model))
	}
	span.SetAttributes(attribute.Int("response.length", len(text)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return text, nil
}

// FirstCandidateText joins the text parts of the first candidate, skipping
// thought parts. Any missing piece of the response shape gives "".
func FirstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// NewContentConfig maps config onto request parameters. Search grounding adds
// the GoogleSearch tool.
func NewContentConfig(cfg config.GeminiConfig, maxOutputTokens int32, searchGrounding bool) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopK:            genai.Ptr(cfg.TopK),
		TopP:            genai.Ptr(cfg.TopP),
		MaxOutputTokens: maxOutputTokens,
	}
	if searchGrounding {
		gc.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return gc
}
