package llmChat

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

// StartSession godoc
// @Summary      Start a chat session
// @Description  Creates a questionnaire session and returns the greeting with the first question.
// @Tags         Chat
// @Produce      json
// @Success      201 {object} types.ChatTurn
// @Failure      500 {object} types.Response "Internal Server Error"
// @Router       /api/v1/chat/sessions [post]
func (h *HandlerImpl) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "StartSession", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/chat/sessions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "StartSession"))

	turn, err := h.service.StartSession(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to start session", slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, turn)
}

// SendMessage godoc
// @Summary      Answer the current question
// @Description  Validates the answer, advances the questionnaire and, after the last answer, returns recommendations and places.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        message body types.ChatMessageRequest true "User message"
// @Success      200 {object} types.ChatTurn
// @Failure      400 {object} types.Response "Invalid input"
// @Failure      404 {object} types.Response "Session not found"
// @Failure      409 {object} types.Response "Conversation ended or busy"
// @Router       /api/v1/chat/sessions/{sessionID}/messages [post]
func (h *HandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/chat/sessions/{sessionID}/messages"),
	))
	defer span.End()

	l := h.logger.With(slog.String("HandlerImpl", "SendMessage"))

	sessionID, ok := api.URLParamUUID(w, r, "sessionID")
	if !ok {
		return
	}
	l = l.With(slog.String("session_id", sessionID.String()))

	var req types.ChatMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	turn, err := h.service.HandleMessage(ctx, sessionID, req.Message)
	if err != nil {
		l.WarnContext(ctx, "Chat message rejected", slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, turn)
}

// GetSession godoc
// @Summary      Get a chat session
// @Description  Returns the full transcript, collected preferences and latest places.
// @Tags         Chat
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.ChatSession
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session not found"
// @Router       /api/v1/chat/sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := api.URLParamUUID(w, r, "sessionID")
	if !ok {
		return
	}

	session, err := h.service.GetSession(ctx, sessionID)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, session)
}
