package travelMap

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/internal/api"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

// SessionReader gives the map access to the places of a chat session.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
}

type HandlerImpl struct {
	sessions SessionReader
	renderer *Renderer
	logger   *slog.Logger
}

func NewHandlerImpl(sessions SessionReader, renderer *Renderer, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// BuildMap godoc
// @Summary      Build a map view
// @Description  Groups places by state, assigns marker colours and computes the viewport.
// @Tags         Map
// @Accept       json
// @Produce      json
// @Param        request body types.MapRequest true "Places to plot"
// @Success      200 {object} MapView
// @Failure      400 {object} types.Response "Invalid input"
// @Router       /api/v1/map [post]
func (h *HandlerImpl) BuildMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MapHandler").Start(r.Context(), "BuildMap", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/map"),
	))
	defer span.End()

	var req types.MapRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "Invalid map request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	interactive := true
	if req.Interactive != nil {
		interactive = *req.Interactive
	}
	api.WriteJSONResponse(w, r, http.StatusOK, BuildView(req.Places, interactive))
}

// SessionMap godoc
// @Summary      Map of a session's destinations
// @Description  Renders the latest recommended places as a Leaflet page, a list page with view=list, or JSON when requested.
// @Tags         Map
// @Produce      html
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        view query string false "list for the non-interactive fallback"
// @Success      200 {object} MapView
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /api/v1/chat/sessions/{sessionID}/map [get]
func (h *HandlerImpl) SessionMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("MapHandler").Start(r.Context(), "SessionMap", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/chat/sessions/{sessionID}/map"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "SessionMap"))

	sessionID, ok := api.URLParamUUID(w, r, "sessionID")
	if !ok {
		return
	}

	session, err := h.sessions.GetSession(ctx, sessionID)
	if err != nil {
		l.WarnContext(ctx, "Map requested for unknown session", slog.String("session_id", sessionID.String()), slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}

	view := BuildView(session.Places, r.URL.Query().Get("view") != ModeList)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		api.WriteJSONResponse(w, r, http.StatusOK, view)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		l.ErrorContext(ctx, "Failed to render map", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		l.ErrorContext(ctx, "Failed to write map page", slog.Any("error", err))
	}
}
