package recommendations

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/internal/api"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// Recommend godoc
// @Summary      Get travel recommendations
// @Description  Generates five Indian destinations for the given preferences and resolves mappable places.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        preferences body types.UserPreferences true "Travel preferences"
// @Success      200 {object} types.RecommendationResult
// @Failure      400 {object} types.Response "Missing parameter"
// @Failure      429 {object} types.Response "Too many requests"
// @Failure      500 {object} types.Response "Configuration or upstream failure"
// @Router       /recommendations [post]
func (h *HandlerImpl) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "Recommend", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "Recommend"))

	var req types.UserPreferences
	if err := api.DecodeJSONBodyAllowUnknown(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Recommend(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate recommendations", slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// Generate godoc
// @Summary      Free-form text generation
// @Description  Sends a raw prompt to the generative model and returns its text.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateRequest true "Prompt"
// @Success      200 {object} types.GenerateResponse
// @Failure      400 {object} types.Response "Missing prompt"
// @Failure      500 {object} types.Response "Configuration or upstream failure"
// @Router       /generate [post]
func (h *HandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "Generate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "Generate"))

	var req types.GenerateRequest
	if err := api.DecodeJSONBodyAllowUnknown(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.service.GenerateText(ctx, req.Prompt)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate text", slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.GenerateResponse{Response: text})
}
