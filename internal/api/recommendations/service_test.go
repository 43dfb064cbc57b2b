package recommendations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/smart-tour/config"
	"github.com/FACorreiaa/smart-tour/internal/api/places"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, model, prompt, cfg)
	return args.String(0), args.Error(1)
}

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, text string) places.Result {
	args := m.Called(ctx, text)
	return args.Get(0).(places.Result)
}

func testGeminiConfig() config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:          "key",
		Models:          []string{"model-a", "model-b"},
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 4096,
		GenerateTokens:  2048,
		SearchGrounding: true,
	}
}

func setupServiceTest(cfg config.GeminiConfig) (*ServiceImpl, *MockGenerator, *MockExtractor) {
	gen := new(MockGenerator)
	ext := new(MockExtractor)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceImpl(gen, ext, cfg, nil, logger), gen, ext
}

var validPrefs = types.UserPreferences{PlaceType: "beach", Budget: "30k", Season: "winter", Source: "delhi"}

func TestRecommend(t *testing.T) {
	ctx := context.Background()
	parsed := []types.Place{{Name: "Baga", State: "Goa", Lat: 15.55, Lng: 73.75}}

	t.Run("missing field is reported by name", func(t *testing.T) {
		svc, gen, _ := setupServiceTest(testGeminiConfig())
		_, err := svc.Recommend(ctx, types.UserPreferences{PlaceType: "beach", Budget: " ", Season: "winter", Source: "delhi"})

		var missing *types.MissingParameterError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "budget", missing.Field)
		assert.ErrorIs(t, err, types.ErrMissingParameter)
		gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing credential is a configuration error", func(t *testing.T) {
		cfg := testGeminiConfig()
		cfg.APIKey = ""
		svc, gen, _ := setupServiceTest(cfg)

		_, err := svc.Recommend(ctx, validPrefs)
		assert.ErrorIs(t, err, types.ErrConfiguration)
		gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil generator is a configuration error", func(t *testing.T) {
		svc := NewServiceImpl(nil, new(MockExtractor), testGeminiConfig(), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := svc.Recommend(ctx, validPrefs)
		assert.ErrorIs(t, err, types.ErrConfiguration)
	})

	t.Run("first model success stops the loop", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, "model-a", mock.Anything, mock.Anything).Return("1. Goa (Baga)", nil).Once()
		ext.On("Extract", mock.Anything, "1. Goa (Baga)").Return(places.Result{Places: parsed})

		res, err := svc.Recommend(ctx, validPrefs)
		require.NoError(t, err)
		assert.Equal(t, "1. Goa (Baga)", res.Recommendations)
		assert.Equal(t, parsed, res.Places)
		gen.AssertNotCalled(t, "GenerateContent", mock.Anything, "model-b", mock.Anything, mock.Anything)
	})

	t.Run("falls through to the next candidate model", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, "model-a", mock.Anything, mock.Anything).Return("", errors.New("quota")).Once()
		gen.On("GenerateContent", mock.Anything, "model-b", mock.Anything, mock.Anything).Return("1. Goa (Baga)", nil).Once()
		ext.On("Extract", mock.Anything, mock.Anything).Return(places.Result{Places: parsed})

		res, err := svc.Recommend(ctx, validPrefs)
		require.NoError(t, err)
		assert.Equal(t, parsed, res.Places)
		gen.AssertExpectations(t)
	})

	t.Run("all models failing is an upstream error", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("503"))

		_, err := svc.Recommend(ctx, validPrefs)
		assert.ErrorIs(t, err, types.ErrUpstream)
		gen.AssertNumberOfCalls(t, "GenerateContent", 2)
		ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	})

	t.Run("empty text is tolerated and degrades to defaults", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, "model-a", mock.Anything, mock.Anything).Return("", nil)
		ext.On("Extract", mock.Anything, "").Return(places.Result{Failure: &places.ExtractionFailure{Reason: places.ReasonNoPlaces}})

		res, err := svc.Recommend(ctx, validPrefs)
		require.NoError(t, err)
		assert.Equal(t, "", res.Recommendations)
		assert.Equal(t, types.DefaultPlaces(), res.Places)
	})

	t.Run("prompt and parameters", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, "model-a",
			mock.MatchedBy(func(p string) bool {
				return strings.Contains(p, "for beach places with a budget of 30k INR to visit in winter from delhi") &&
					strings.Contains(p, "Suggest 5 specific destinations") &&
					strings.Contains(p, "avoid using **")
			}),
			mock.MatchedBy(func(c *genai.GenerateContentConfig) bool {
				return c.MaxOutputTokens == 4096 && len(c.Tools) == 1 && *c.TopK == 40
			}),
		).Return("text", nil)
		ext.On("Extract", mock.Anything, "text").Return(places.Result{Places: parsed})

		_, err := svc.Recommend(ctx, validPrefs)
		require.NoError(t, err)
		gen.AssertExpectations(t)
	})
}

func TestGenerateText(t *testing.T) {
	ctx := context.Background()

	t.Run("missing prompt", func(t *testing.T) {
		svc, _, _ := setupServiceTest(testGeminiConfig())
		_, err := svc.GenerateText(ctx, "  ")
		var missing *types.MissingParameterError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "prompt", missing.Field)
	})

	t.Run("uses generic token limit without tools", func(t *testing.T) {
		svc, gen, ext := setupServiceTest(testGeminiConfig())
		gen.On("GenerateContent", mock.Anything, "model-a", "hello",
			mock.MatchedBy(func(c *genai.GenerateContentConfig) bool {
				return c.MaxOutputTokens == 2048 && len(c.Tools) == 0
			}),
		).Return("hi there", nil)

		text, err := svc.GenerateText(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hi there", text)
		ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	})

	t.Run("no models configured is upstream", func(t *testing.T) {
		cfg := testGeminiConfig()
		cfg.Models = nil
		svc, _, _ := setupServiceTest(cfg)
		_, err := svc.GenerateText(ctx, "hello")
		assert.ErrorIs(t, err, types.ErrUpstream)
	})
}

func TestBuildRecommendationPromptDeterministic(t *testing.T) {
	a := buildRecommendationPrompt("mountain", "50k", "monsoon", "pune")
	b := buildRecommendationPrompt("mountain", "50k", "monsoon", "pune")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Travel from pune: How to get there.")
	assert.Contains(t, a, "Travel Tips for monsoon")
}
